// Package file provides a filesystem-backed Fetcher implementation for the
// datastore package.
//
// A Fetcher is bound to a root directory at construction and reads files at
// paths relative to that root. Reads happen on every Fetch call with no
// caching, because the backing files are assumed externally mutable between
// lookups.
//
// Usage:
//
//	fetcher := file.New("/path/to/datastore")
//	data, err := fetcher.Fetch("a/b.yaml")
//
// Error Handling:
//   - Errors include the full resolved path for easier debugging
//   - Use errors.Is(err, fs.ErrNotExist) to check for missing files
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory hits
package file
