package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"cparse/internal/port"
)

// DefaultTimeout bounds a single compile or run step.
const DefaultTimeout = 30 * time.Second

// GccRunner compiles and executes C sources with an external compiler.
// Every invocation compiles to a unique artifact under the system temp
// directory, so concurrent runs never race on a shared output name.
type GccRunner struct {
	compiler string
	flags    []string
	timeout  time.Duration
}

func NewGccRunner(compiler string, flags []string, timeout time.Duration) *GccRunner {
	if compiler == "" {
		compiler = "gcc"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &GccRunner{
		compiler: compiler,
		flags:    flags,
		timeout:  timeout,
	}
}

// Compile compiles srcPath to a throwaway artifact and discards it.
func (r *GccRunner) Compile(ctx context.Context, srcPath string) (port.Result, error) {
	outPath := r.artifactPath()
	defer os.Remove(outPath)

	return r.compileTo(ctx, srcPath, outPath)
}

// Run compiles srcPath and, when compilation succeeds, executes the binary
// and captures its output. The artifact is removed afterwards.
func (r *GccRunner) Run(ctx context.Context, srcPath string) (port.Result, error) {
	outPath := r.artifactPath()
	defer os.Remove(outPath)

	res, err := r.compileTo(ctx, srcPath, outPath)
	if err != nil || !res.Ok() {
		return res, err
	}

	return r.execute(ctx, outPath)
}

func (r *GccRunner) compileTo(ctx context.Context, srcPath, outPath string) (port.Result, error) {
	args := append([]string{srcPath, "-o", outPath}, r.flags...)
	return r.execute(ctx, r.compiler, args...)
}

func (r *GccRunner) execute(ctx context.Context, name string, args ...string) (port.Result, error) {
	execCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(execCtx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := port.Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if execCtx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("%s timed out after %s", name, r.timeout)
		}
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return result, fmt.Errorf("failed to run %s: %w", name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

func (r *GccRunner) artifactPath() string {
	return filepath.Join(os.TempDir(), "cparse-"+uuid.NewString())
}
