package usecase

import (
	"errors"
	"fmt"

	"cparse/internal/adapter/parser"
	"cparse/internal/domain"
	"cparse/internal/port"
)

// ErrUnknownFunction reports a function name absent from a file's catalog.
var ErrUnknownFunction = errors.New("function not in catalog")

// ScanUseCase runs the extraction pipeline over a single source file:
// catalog the signatures, extract one function's body, extract the local
// declarations inside it.
type ScanUseCase struct {
	reader port.SourceReader
}

func NewScanUseCase(reader port.SourceReader) *ScanUseCase {
	return &ScanUseCase{reader: reader}
}

// Functions catalogs every prototype and definition in the file, in source
// order, duplicates included.
func (u *ScanUseCase) Functions(path string) ([]domain.Function, error) {
	content, err := u.reader.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parser.Catalog(content)
}

// Body returns the body lines of the named function's definition. The first
// catalog entry with that name selects the signature used for lookup.
func (u *ScanUseCase) Body(path, name string) ([]string, error) {
	content, fn, err := u.find(path, name)
	if err != nil {
		return nil, err
	}
	return parser.ExtractBody(content, fn)
}

// Variables returns the local declarations inside the named function's body.
func (u *ScanUseCase) Variables(path, name string) ([]domain.Variable, error) {
	body, err := u.Body(path, name)
	if err != nil {
		return nil, err
	}
	return parser.ExtractVariables(body), nil
}

func (u *ScanUseCase) find(path, name string) (string, domain.Function, error) {
	content, err := u.reader.ReadFile(path)
	if err != nil {
		return "", domain.Function{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	functions, err := parser.Catalog(content)
	if err != nil {
		return "", domain.Function{}, err
	}
	for _, fn := range functions {
		if fn.Name == name {
			return content, fn, nil
		}
	}
	return "", domain.Function{}, fmt.Errorf("%w: %s in %s", ErrUnknownFunction, name, path)
}
