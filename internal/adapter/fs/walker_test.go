package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("int main() {\n}\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_DefaultIncludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "main.c"))
	writeFile(t, filepath.Join(tmpDir, "util.h"))
	writeFile(t, filepath.Join(tmpDir, "notes.txt"))
	writeFile(t, filepath.Join(tmpDir, "sub", "math.c"))

	w := NewWalker(nil, nil)
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(files) != 3 {
		t.Errorf("expected 3 matched files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		ext := filepath.Ext(f.Path)
		if ext != ".c" && ext != ".h" {
			t.Errorf("unexpected file matched: %s", f.Path)
		}
	}
}

func TestWalker_Excludes(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "main.c"))
	writeFile(t, filepath.Join(tmpDir, "build", "gen.c"))

	w := NewWalker([]string{"**/*.c"}, []string{"**/build/**"})
	files, err := w.Walk(tmpDir)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "main.c" {
		t.Errorf("expected main.c, got %s", files[0].Path)
	}
}

func TestReader(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "main.c")
	writeFile(t, path)

	content, err := NewReader().ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "int main() {\n}\n" {
		t.Errorf("unexpected content %q", content)
	}

	if _, err := NewReader().ReadFile(filepath.Join(tmpDir, "missing.c")); err == nil {
		t.Error("expected error for missing file")
	}
}
