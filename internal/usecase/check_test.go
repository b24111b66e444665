package usecase

import (
	"context"
	"testing"

	"cparse/internal/port"
)

// stubRunner returns canned compile results without invoking a compiler.
type stubRunner struct {
	result port.Result
	err    error
}

func (s *stubRunner) Compile(ctx context.Context, srcPath string) (port.Result, error) {
	return s.result, s.err
}

func (s *stubRunner) Run(ctx context.Context, srcPath string) (port.Result, error) {
	return s.result, s.err
}

func TestCheck_NotACFile(t *testing.T) {
	uc := NewCheckUseCase(memReader{}, &stubRunner{}, "main", "return 0;")

	result, err := uc.Check(context.Background(), "program.py")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Passed {
		t.Error("expected failure for non-C file")
	}
	if result.Reason == "" {
		t.Error("expected a reason")
	}
}

func TestCheck_CompileFailure(t *testing.T) {
	r := &stubRunner{result: port.Result{ExitCode: 1, Stderr: "main.c:3: error: expected ';'"}}
	uc := NewCheckUseCase(memReader{}, r, "main", "return 0;")

	result, err := uc.Check(context.Background(), "main.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Passed {
		t.Error("expected failure when compilation fails")
	}
	if result.CompilerOutput == "" {
		t.Error("expected compiler output carried in the result")
	}
}

func TestCheck_MissingReturn(t *testing.T) {
	src := "int main() {\n    printf(\"hi\");\n}\n"
	uc := NewCheckUseCase(memReader{"main.c": src}, &stubRunner{}, "main", "return 0;")

	result, err := uc.Check(context.Background(), "main.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Passed {
		t.Error("expected failure without trailing return 0;")
	}
}

func TestCheck_Pass(t *testing.T) {
	src := "int main() {\n    printf(\"hi\");\n    return 0;\n}\n"
	uc := NewCheckUseCase(memReader{"main.c": src}, &stubRunner{}, "main", "return 0;")

	result, err := uc.Check(context.Background(), "main.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Passed {
		t.Errorf("expected pass, got reason %q", result.Reason)
	}
}

func TestCheck_EntryBodyNotFoundPasses(t *testing.T) {
	// A compiling file whose entry definition is formatted outside the
	// canonical header shape is not checkable and passes.
	src := "int main(void)\n{\n    return 1;\n}\n"
	uc := NewCheckUseCase(memReader{"main.c": src}, &stubRunner{}, "main", "return 0;")

	result, err := uc.Check(context.Background(), "main.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Passed {
		t.Errorf("expected pass when entry body is not findable, got %q", result.Reason)
	}
}
