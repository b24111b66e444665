package parser

import (
	"fmt"
	"regexp"
	"strings"

	"cparse/internal/domain"
)

// signatureRe matches a lone function header: a possibly multi-word return
// type, a name (optionally carrying a leading pointer sigil) and a
// parenthesized parameter list with nothing trailing.
var signatureRe = regexp.MustCompile(`^\s*([A-Za-z_][\w \t*]*?)[ \t]+(\*?[A-Za-z_]\w*)[ \t]*\(([^)]*)\)\s*$`)

// MatchSignature parses a textual snippet expected to hold exactly one
// function header. The last whitespace-separated token before the
// parenthesis is the name; everything before it is the return type. A
// pointer sigil attached to the name migrates onto the return type, so
// "int *make(void)" and "int* make(void)" produce the same record.
// Returns ErrNoSignature when the snippet has no header shape.
func MatchSignature(snippet string) (domain.Function, error) {
	m := signatureRe.FindStringSubmatch(snippet)
	if m == nil {
		return domain.Function{}, fmt.Errorf("%w in %q", ErrNoSignature, strings.TrimSpace(snippet))
	}

	returnType := joinType(strings.Fields(m[1]))
	name := m[2]
	if strings.HasPrefix(name, "*") {
		returnType += "*"
		name = strings.TrimPrefix(name, "*")
	}

	params, err := ParseParameters(m[3])
	if err != nil {
		return domain.Function{}, err
	}

	return domain.Function{ReturnType: returnType, Name: name, Parameters: params}, nil
}
