// Package parser extracts structural facts from C-like source text: function
// signatures, definition bodies and simple local declarations. It is a
// lexical extractor, not a C front end: comments, string literals and the
// preprocessor are not modeled.
package parser

import (
	"fmt"
	"strings"

	"cparse/internal/domain"
)

// ParseParameters parses the text between a function's parentheses into an
// ordered parameter list. The empty string and a sole "void" both yield zero
// parameters. A piece that cannot be split into type and name returns
// ErrMalformedParameter.
func ParseParameters(raw string) ([]domain.Parameter, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []domain.Parameter{}, nil
	}

	pieces := strings.Split(raw, ",")
	if len(pieces) == 1 && strings.TrimSpace(pieces[0]) == "void" {
		return []domain.Parameter{}, nil
	}

	params := make([]domain.Parameter, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		fields := strings.Fields(piece)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedParameter, piece)
		}

		name := fields[len(fields)-1]
		dataType := joinType(fields[:len(fields)-1])
		if strings.HasPrefix(name, "*") {
			dataType += "*"
			name = strings.TrimPrefix(name, "*")
		}
		if name == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedParameter, piece)
		}

		params = append(params, domain.Parameter{DataType: dataType, Name: name})
	}

	return params, nil
}

// joinType joins type tokens with single spaces, attaching tokens that start
// with a pointer sigil directly to the preceding token, so "int *" and
// "int*" both render as "int*".
func joinType(tokens []string) string {
	var out string
	for _, tok := range tokens {
		switch {
		case out == "":
			out = tok
		case strings.HasPrefix(tok, "*"):
			out += tok
		default:
			out += " " + tok
		}
	}
	return out
}
