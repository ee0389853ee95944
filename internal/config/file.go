package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when a settings path names a directory.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// FileFetcher serves the contents of a file read once at construction.
type FileFetcher struct {
	path string
	data []byte
}

// NewFileFetcher reads fpath and returns a fetcher over its contents.
func NewFileFetcher(fpath string) (*FileFetcher, error) {
	clean := filepath.Clean(fpath)

	stat, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", clean, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", clean, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(clean) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", clean, err)
	}

	return &FileFetcher{path: clean, data: data}, nil
}

// Fetch returns a copy of the file contents.
func (f *FileFetcher) Fetch() ([]byte, error) {
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

func (f *FileFetcher) Path() string {
	return f.path
}
