package port

import "context"

// Runner compiles and executes source files out of process.
type Runner interface {
	// Compile compiles the source file to a throwaway artifact.
	Compile(ctx context.Context, srcPath string) (Result, error)

	// Run compiles the source file and executes the resulting binary.
	Run(ctx context.Context, srcPath string) (Result, error)
}

// Result carries the captured output of a compile or run step. A non-zero
// ExitCode is an expected outcome, not a Go error; errors are reserved for
// invocation failures (missing binary, timeout).
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Ok reports whether the step exited cleanly.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}
