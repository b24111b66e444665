package port

type SourceReader interface {
	ReadFile(path string) (string, error)
}

type Walker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}
