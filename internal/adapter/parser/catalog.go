package parser

import (
	"errors"
	"regexp"

	"cparse/internal/domain"
)

// headerRe finds header candidates anywhere in a source text: a header shape
// immediately followed by ";" (prototype) or "{" (definition start).
var headerRe = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z_][\w \t*]*?)[ \t]+(\*?[A-Za-z_]\w*)[ \t]*\(([^)]*)\)\s*[;{]`)

// Catalog scans an entire source text for function prototypes and
// definitions, in source order. Prototype and definition of the same
// function both appear; deduplication is the caller's concern. Candidates
// without a valid header shape are skipped; a malformed parameter list
// aborts the scan.
func Catalog(content string) ([]domain.Function, error) {
	var functions []domain.Function
	for _, m := range headerRe.FindAllStringSubmatch(content, -1) {
		fn, err := MatchSignature(m[1] + " " + m[2] + "(" + m[3] + ")")
		if errors.Is(err, ErrNoSignature) {
			continue
		}
		if err != nil {
			return nil, err
		}
		functions = append(functions, fn)
	}
	return functions, nil
}
