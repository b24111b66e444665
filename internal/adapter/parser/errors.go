package parser

import "errors"

var (
	// ErrMalformedParameter reports a parameter piece that cannot be split
	// into a type and a name. Fatal for the parse call; silently dropping
	// the piece would desynchronize later header lookup.
	ErrMalformedParameter = errors.New("malformed parameter")

	// ErrNoSignature reports a snippet with no function header shape.
	// Recoverable: catalog scanning skips candidates that produce it.
	ErrNoSignature = errors.New("no function signature found")

	// ErrBodyNotFound reports that a definition header never matched.
	ErrBodyNotFound = errors.New("function body not found")

	// ErrUnterminatedBody reports a matched header whose brace depth never
	// returned to zero before end of input.
	ErrUnterminatedBody = errors.New("unterminated function body")
)
