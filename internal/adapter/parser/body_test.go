package parser

import (
	"errors"
	"testing"

	"cparse/internal/domain"
)

func mustSignature(t *testing.T, snippet string) domain.Function {
	t.Helper()
	fn, err := MatchSignature(snippet)
	if err != nil {
		t.Fatalf("MatchSignature(%q): %v", snippet, err)
	}
	return fn
}

func TestExtractBody_Simple(t *testing.T) {
	src := "int f() {\n  int x = 5;\n}\n"
	body, err := ExtractBody(src, mustSignature(t, "int f()"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 1 || body[0] != "int x = 5;" {
		t.Errorf("expected [\"int x = 5;\"], got %v", body)
	}
}

func TestExtractBody_NestedBraces(t *testing.T) {
	src := `int classify(int n) {
    if (n > 0) {
        return 1;
    }
    return 0;
}
int other() {
    return 2;
}
`
	body, err := ExtractBody(src, mustSignature(t, "int classify(int n)"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"if (n > 0) {", "return 1;", "}", "return 0;"}
	if len(body) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(body), body)
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], body[i])
		}
	}
}

func TestExtractBody_BlankLinesDropped(t *testing.T) {
	src := "void f() {\n\n  int a;\n\n  int b;\n}\n"
	body, err := ExtractBody(src, mustSignature(t, "void f()"))
	if err != nil {
		t.Fatal(err)
	}
	if len(body) != 2 || body[0] != "int a;" || body[1] != "int b;" {
		t.Errorf("expected trimmed non-empty lines, got %v", body)
	}
}

func TestExtractBody_EmptyBody(t *testing.T) {
	// Found with an empty body is distinct from not found.
	body, err := ExtractBody("void noop() {\n}\n", mustSignature(t, "void noop()"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("expected empty body, got %v", body)
	}
}

func TestExtractBody_NotFound(t *testing.T) {
	src := "int g() {\n  return 1;\n}\n"
	_, err := ExtractBody(src, mustSignature(t, "int f()"))
	if !errors.Is(err, ErrBodyNotFound) {
		t.Errorf("expected ErrBodyNotFound, got %v", err)
	}
}

func TestExtractBody_FormattingDriftNotFound(t *testing.T) {
	// The lookup is an exact re-derivation of the canonical header text, so
	// a reformatted parameter list is not matched.
	src := "int add(int a,int b) {\n  return a + b;\n}\n"
	_, err := ExtractBody(src, mustSignature(t, "int add(int a, int b)"))
	if !errors.Is(err, ErrBodyNotFound) {
		t.Errorf("expected ErrBodyNotFound on formatting drift, got %v", err)
	}
}

func TestExtractBody_Unterminated(t *testing.T) {
	src := "int f() {\n  int x = 5;\n"
	_, err := ExtractBody(src, mustSignature(t, "int f()"))
	if !errors.Is(err, ErrUnterminatedBody) {
		t.Errorf("expected ErrUnterminatedBody, got %v", err)
	}
}

func TestExtractBody_LeadingWhitespaceHeader(t *testing.T) {
	src := "    int f() {\n        return 3;\n    }\n"
	body, err := ExtractBody(src, mustSignature(t, "int f()"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) != 1 || body[0] != "return 3;" {
		t.Errorf("expected [\"return 3;\"], got %v", body)
	}
}
