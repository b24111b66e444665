package parser

import (
	"fmt"
	"regexp"
	"strings"

	"cparse/internal/domain"
)

// ExtractBody locates fn's definition in content and returns the trimmed,
// non-empty lines strictly between the opening brace line and the line on
// which the brace depth returns to zero.
//
// The definition is found by re-deriving the exact canonical header text
// ("ret name(type name, ...) {"), so a definition whose formatting differs
// from that rendering is not found. Depth counting is purely lexical: braces
// inside string or character literals or comments are counted like any other
// brace and will desynchronize the scan.
//
// Returns ErrBodyNotFound when the header never matches and
// ErrUnterminatedBody when end of input arrives while still inside the body.
func ExtractBody(content string, fn domain.Function) ([]string, error) {
	header := headerPattern(fn)

	inside := false
	depth := 0
	var body []string

	for _, line := range strings.Split(content, "\n") {
		if !inside {
			if header.MatchString(line) {
				// The header's trailing "{" is the first open brace.
				inside = true
				depth = 1
			}
			continue
		}

		for _, ch := range line {
			switch ch {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		if depth == 0 {
			// The terminating line is excluded from the body.
			return compactLines(body), nil
		}
		body = append(body, line)
	}

	if inside {
		return nil, fmt.Errorf("%w: %s", ErrUnterminatedBody, fn.Signature())
	}
	return nil, fmt.Errorf("%w: %s", ErrBodyNotFound, fn.Signature())
}

// headerPattern builds the anchored regexp for fn's canonical definition
// header, with only leading whitespace allowed before the return type.
func headerPattern(fn domain.Function) *regexp.Regexp {
	return regexp.MustCompile(
		`^\s*` + regexp.QuoteMeta(fn.ReturnType) +
			`\s+` + regexp.QuoteMeta(fn.Name) +
			`\s*\(` + regexp.QuoteMeta(fn.ParamString()) + `\)\s*\{`)
}

// compactLines trims every line and drops the empty ones.
func compactLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
