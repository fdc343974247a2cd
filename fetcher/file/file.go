package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the resolved path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements the datastore.Fetcher interface for a directory tree on
// the local filesystem. Every Fetch reads from disk; nothing is cached, so
// changes to the backing files between calls are always observed.
type Fetcher struct {
	root string
}

// New creates a Fetcher rooted at the given directory. No I/O is performed;
// the directory does not need to exist until the first Fetch.
func New(root string) *Fetcher {
	return &Fetcher{root: filepath.Clean(root)}
}

// Root returns the directory the fetcher reads from.
func (f *Fetcher) Root() string {
	return f.root
}

// Fetch reads and returns the contents of the file at path, relative to the
// root directory. Errors wrap the underlying os error, so a missing file
// still matches errors.Is(err, fs.ErrNotExist).
func (f *Fetcher) Fetch(path string) ([]byte, error) {
	cleanPath := filepath.Clean(filepath.Join(f.root, path))

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and rooted
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}
