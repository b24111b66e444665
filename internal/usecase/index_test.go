package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"cparse/internal/adapter/fs"
	"cparse/internal/adapter/store"
)

func newIndexFixture(t *testing.T) (*IndexUseCase, *store.BoltStore, string) {
	t.Helper()

	tmpDir := t.TempDir()
	st, err := store.NewBoltStore(filepath.Join(tmpDir, "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	srcDir := filepath.Join(tmpDir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}

	walker := fs.NewWalker([]string{"**/*.c"}, nil)
	return NewIndexUseCase(st, walker, fs.NewReader()), st, srcDir
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndex_CatalogsFiles(t *testing.T) {
	uc, st, srcDir := newIndexFixture(t)

	writeSource(t, srcDir, "main.c", "int main() {\n    return 0;\n}\n")
	writeSource(t, srcDir, "math.c", "int sum(int a, int b);\nint sum(int a, int b) {\n    return a + b;\n}\n")

	result, err := uc.Index(srcDir, nil)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	if result.FilesIndexed != 2 {
		t.Errorf("expected 2 files indexed, got %d", result.FilesIndexed)
	}
	if result.FunctionsFound != 3 {
		t.Errorf("expected 3 catalog entries, got %d", result.FunctionsFound)
	}

	ids, err := st.FilesForName("sum")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Errorf("expected sum cataloged in 1 file, got %v", ids)
	}
}

func TestIndex_SkipsUnchanged(t *testing.T) {
	uc, _, srcDir := newIndexFixture(t)
	writeSource(t, srcDir, "main.c", "int main() {\n    return 0;\n}\n")

	if _, err := uc.Index(srcDir, nil); err != nil {
		t.Fatal(err)
	}
	result, err := uc.Index(srcDir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.FilesIndexed != 0 || result.FilesSkipped != 1 {
		t.Errorf("expected second run to skip, got indexed=%d skipped=%d",
			result.FilesIndexed, result.FilesSkipped)
	}
	if result.FunctionsFound != 1 {
		t.Errorf("expected skipped file's functions counted, got %d", result.FunctionsFound)
	}
}

func TestIndex_DeletesRemoved(t *testing.T) {
	uc, st, srcDir := newIndexFixture(t)
	path := writeSource(t, srcDir, "old.c", "int gone() {\n    return 1;\n}\n")

	if _, err := uc.Index(srcDir, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	result, err := uc.Index(srcDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.FilesDeleted != 1 {
		t.Errorf("expected 1 deleted, got %d", result.FilesDeleted)
	}

	ids, err := st.FilesForName("gone")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Errorf("expected postings removed for deleted file, got %v", ids)
	}
}

func TestIndex_CollectsParseErrors(t *testing.T) {
	uc, _, srcDir := newIndexFixture(t)
	writeSource(t, srcDir, "ok.c", "int main() {\n    return 0;\n}\n")
	writeSource(t, srcDir, "bad.c", "int f(garbage) {\n}\n")

	result, err := uc.Index(srcDir, nil)
	if err != nil {
		t.Fatalf("per-file failures must not abort the run: %v", err)
	}
	if result.FilesIndexed != 1 {
		t.Errorf("expected 1 file indexed, got %d", result.FilesIndexed)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 collected error, got %v", result.Errors)
	}
}

func TestIndex_ReportsProgress(t *testing.T) {
	uc, _, srcDir := newIndexFixture(t)
	writeSource(t, srcDir, "main.c", "int main() {\n    return 0;\n}\n")

	var calls int
	var lastTotal int
	_, err := uc.Index(srcDir, func(processed, total int, current string) {
		calls++
		lastTotal = total
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Error("expected progress callbacks")
	}
	if lastTotal != 1 {
		t.Errorf("expected total 1, got %d", lastTotal)
	}
}
