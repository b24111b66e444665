package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"cparse/internal/adapter/parser"
	"cparse/internal/domain"
	"cparse/internal/port"
)

// IndexUseCase catalogs the functions of every matched source file under a
// directory and persists them in the catalog store.
type IndexUseCase struct {
	store  port.CatalogStore
	walker port.Walker
	reader port.SourceReader
}

func NewIndexUseCase(store port.CatalogStore, walker port.Walker, reader port.SourceReader) *IndexUseCase {
	return &IndexUseCase{
		store:  store,
		walker: walker,
		reader: reader,
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed   int
	FilesSkipped   int
	FilesDeleted   int
	FunctionsFound int
	Errors         []string
}

// ProgressFunc reports indexing progress to the caller.
type ProgressFunc func(processed, total int, currentFile string)

// Index catalogs files under root. Files whose mod time has not advanced
// since the last run are skipped; files that disappeared are removed from
// the store. Per-file parse failures are collected, not fatal.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existing, err := u.store.ListFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list cataloged files: %w", err)
	}
	existingMap := make(map[string]domain.FileEntry)
	for _, entry := range existing {
		existingMap[entry.Path] = entry
	}

	seenPaths := make(map[string]bool)

	for i, file := range files {
		if progress != nil {
			progress(i, len(files), file.Path)
		}
		seenPaths[file.Path] = true

		if prev, ok := existingMap[file.Path]; ok && prev.ModTime.Unix() >= file.ModTime {
			result.FilesSkipped++
			functions, _ := u.store.GetFunctions(prev.ID)
			result.FunctionsFound += len(functions)
			continue
		}

		count, err := u.indexFile(file)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", file.Path, err))
			continue
		}
		result.FilesIndexed++
		result.FunctionsFound += count
	}

	for path, entry := range existingMap {
		if !seenPaths[path] {
			if err := u.store.DeleteFile(entry.ID); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			} else {
				result.FilesDeleted++
			}
		}
	}

	if progress != nil {
		progress(len(files), len(files), "")
	}

	return result, nil
}

func (u *IndexUseCase) indexFile(file port.FileInfo) (int, error) {
	content, err := u.reader.ReadFile(file.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	functions, err := parser.Catalog(content)
	if err != nil {
		return 0, err
	}

	entry := domain.FileEntry{
		ID:      fileID(file.Path),
		Path:    file.Path,
		ModTime: time.Unix(file.ModTime, 0),
	}
	if err := u.store.PutFile(entry); err != nil {
		return 0, fmt.Errorf("failed to store file entry: %w", err)
	}
	if err := u.store.PutFunctions(entry.ID, functions); err != nil {
		return 0, fmt.Errorf("failed to store functions: %w", err)
	}

	return len(functions), nil
}

// fileID creates a stable ID for a source file based on its path.
func fileID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
