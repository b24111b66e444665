package port

import "cparse/internal/domain"

type CatalogStore interface {
	PutFile(entry domain.FileEntry) error

	GetFile(id string) (domain.FileEntry, error)

	ListFiles() ([]domain.FileEntry, error)

	DeleteFile(id string) error

	PutFunctions(fileID string, functions []domain.Function) error

	GetFunctions(fileID string) ([]domain.Function, error)

	FilesForName(name string) ([]string, error)

	Clear() error

	Close() error
}
