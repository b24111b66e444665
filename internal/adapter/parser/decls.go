package parser

import (
	"regexp"
	"strings"

	"cparse/internal/domain"
)

// declRe matches a single-variable declaration of a primitive type with an
// optional initializer. Qualifier keywords count as the whole type, so
// "unsigned int x;" does not match and is skipped.
var declRe = regexp.MustCompile(`^\s*(int|float|char|double|long|short|unsigned|signed|void)\s+([\w*]+)(\s*=\s*([^;]+))?\s*;`)

// callRe matches an initializer that is itself a call expression.
var callRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*\(([^)]*)\)\s*$`)

// ExtractVariables scans body lines for local variable declarations and
// returns one Variable per matching line, in line order. Lines outside the
// supported declaration grammar are skipped. Initializer text is stored
// verbatim; when it has a call-expression shape the Variable additionally
// carries a CallRef with the callee name and raw arguments.
func ExtractVariables(body []string) []domain.Variable {
	var vars []domain.Variable
	for _, line := range body {
		m := declRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		v := domain.Variable{DataType: m[1], Name: m[2]}
		if m[3] != "" {
			// Text after the last "=", up to the terminating ";".
			pieces := strings.Split(m[4], "=")
			v.Value = strings.TrimSpace(pieces[len(pieces)-1])
			v.HasValue = true
			if cm := callRe.FindStringSubmatch(v.Value); cm != nil {
				v.Call = callRef(cm[1], cm[2])
			}
		}

		vars = append(vars, v)
	}
	return vars
}

func callRef(callee, rawArgs string) *domain.CallRef {
	ref := &domain.CallRef{Callee: callee}
	rawArgs = strings.TrimSpace(rawArgs)
	if rawArgs == "" {
		return ref
	}
	for _, arg := range strings.Split(rawArgs, ",") {
		ref.Args = append(ref.Args, strings.TrimSpace(arg))
	}
	return ref
}
