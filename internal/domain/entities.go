package domain

import (
	"strings"
	"time"
)

// Parameter is a single entry in a function's parameter list. Pointer sigils
// live on DataType, never on Name ("int *x" and "int* x" both parse to
// DataType "int*", Name "x").
type Parameter struct {
	DataType string `json:"data_type"`
	Name     string `json:"name"`
}

// Function is a parsed signature. A prototype and its definition produce the
// same record.
type Function struct {
	ReturnType string      `json:"return_type"`
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
}

// ParamString renders the parameter list in canonical "type name" form,
// comma-joined. Body extraction re-derives the definition header from this
// exact text, so parsing and lookup must agree on it.
func (f Function) ParamString() string {
	parts := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		parts = append(parts, p.DataType+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}

// Signature renders the canonical header text without a trailing body brace.
func (f Function) Signature() string {
	return f.ReturnType + " " + f.Name + "(" + f.ParamString() + ")"
}

// CallRef records a call-expression initializer: the callee name and the raw
// argument texts. Arguments are never evaluated.
type CallRef struct {
	Callee string   `json:"callee"`
	Args   []string `json:"args,omitempty"`
}

// Variable is a local declaration of a primitive type. Value holds the
// initializer text verbatim when present; HasValue distinguishes "int x;"
// from an empty initializer. Call is non-nil when the initializer is a call
// expression, in which case Value still carries the raw text.
type Variable struct {
	DataType string   `json:"data_type"`
	Name     string   `json:"name"`
	Value    string   `json:"value,omitempty"`
	HasValue bool     `json:"has_value"`
	Call     *CallRef `json:"call,omitempty"`
}

// FileEntry identifies one cataloged source file.
type FileEntry struct {
	ID      string
	Path    string
	ModTime time.Time
}
