// Package datastore resolves dotted keypaths against a tree of YAML files
// rooted at a directory. A keypath such as "a.b.c.d" is deliberately
// ambiguous: any leading run of components may name directories and a file,
// with the rest looked up as nested mapping keys inside that file. The store
// probes every interpretation in order, preferring the longest file path,
// and returns the first one that matches.
package datastore

import (
	"fmt"
	"log/slog"
	"strings"

	filefetcher "github.com/0xalexb/hjarta-datastore/fetcher/file"
	"github.com/0xalexb/hjarta-datastore/keypath"
	yamlparser "github.com/0xalexb/hjarta-datastore/parser/yaml"
)

// Fetcher defines an interface for reading raw bytes at a path relative to
// the store root. See fetcher/file for the filesystem implementation.
type Fetcher interface {
	Fetch(path string) ([]byte, error)
}

// Parser defines an interface for turning raw document bytes into values.
//
//   - Unmarshal decodes an entire document into a typed target.
//   - Mapping parses a document as a generic string-keyed mapping, with
//     nested mappings as map[string]any, sequences as []any, and scalars as
//     Go scalars.
//   - Decode converts a generic node produced by Mapping into a typed
//     target.
//
// See parser/yaml for the goccy/go-yaml implementation.
type Parser interface {
	Unmarshal(data []byte, target any) error
	Mapping(data []byte) (map[string]any, error)
	Decode(node any, target any) error
}

// Store is a handle onto a directory tree of structured data files. It holds
// no open resources and no mutable state, so a single Store is safe for
// concurrent use.
type Store struct {
	root       string
	extensions []string
	fetcher    Fetcher
	parser     Parser
}

// Open returns a Store bound to the directory at root. No I/O is performed
// until a lookup runs, so Open succeeds even if root does not exist yet.
func Open(root string, opts ...Option) *Store {
	store := &Store{
		root:       root,
		extensions: keypath.DefaultExtensions,
		fetcher:    nil,
		parser:     nil,
	}

	for _, apply := range opts {
		apply(store)
	}

	if store.fetcher == nil {
		store.fetcher = filefetcher.New(root)
	}

	if store.parser == nil {
		store.parser = yamlparser.NewParser()
	}

	return store
}

// Root returns the directory the store was opened on.
func (s *Store) Root() string {
	return s.root
}

// Get resolves a dotted keypath to a value of type T.
//
// The keypath is parsed and every interpretation is probed in order: first
// the whole keypath as a nested file path, then progressively shorter path
// prefixes with the remaining components looked up as mapping keys inside
// the matched file. The first interpretation that yields a structurally
// valid value wins. Intermediate failures (missing file, undecodable
// document, absent key) move the search to the next interpretation; the
// caller only ever sees the first success or a terminal error.
//
// Errors: ErrInvalidKeyPath if rawKeypath is malformed, ErrKeyNotFound if
// every interpretation misses, ErrDataParse if the deepest matching
// interpretation holds a value that does not decode into T.
//
// Extensions given here override the store's extension list for this call.
func Get[T any](store *Store, rawKeypath string, extensions ...string) (T, error) {
	var zero T

	kp, err := keypath.Parse(rawKeypath)
	if err != nil {
		return zero, err
	}

	if len(extensions) == 0 {
		extensions = store.extensions
	}

	iter := kp.Candidates(extensions...).Iter()
	for candidate, ok := iter.Next(); ok; candidate, ok = iter.Next() {
		result, found, err := tryCandidate[T](store, candidate)
		if err != nil {
			return zero, err
		}

		if found {
			slog.Debug("keypath resolved", "keypath", kp.String(), "path", candidate.Path, "keys", candidate.Keys)

			return result, nil
		}
	}

	return zero, fmt.Errorf("%w: %q", ErrKeyNotFound, kp.String())
}

// tryCandidate probes one interpretation. A false return with a nil error is
// a soft miss: the candidate did not match but the search may continue. A
// non-nil error terminates the search.
func tryCandidate[T any](store *Store, candidate keypath.Candidate) (T, bool, error) {
	var zero T

	data, err := store.fetcher.Fetch(candidate.Path)
	if err != nil {
		slog.Debug("candidate not readable", "path", candidate.Path, "error", err)

		return zero, false, nil
	}

	if len(candidate.Keys) == 0 {
		var result T

		err := store.parser.Unmarshal(data, &result)
		if err != nil {
			slog.Debug("candidate document does not decode", "path", candidate.Path, "error", err)

			return zero, false, nil
		}

		return result, true, nil
	}

	mapping, err := store.parser.Mapping(data)
	if err != nil {
		slog.Debug("candidate is not a mapping document", "path", candidate.Path, "error", err)

		return zero, false, nil
	}

	node, ok := descend(mapping, candidate.Keys)
	if !ok {
		slog.Debug("candidate keys absent", "path", candidate.Path, "keys", candidate.Keys)

		return zero, false, nil
	}

	var result T

	err = store.parser.Decode(node, &result)
	if err != nil {
		// This interpretation reached the deepest matched structure, so a
		// value of the wrong shape is a real error rather than a miss.
		return zero, false, fmt.Errorf("%w: decoding %q in %q: %w",
			ErrDataParse, strings.Join(candidate.Keys, keypath.Delimiter), candidate.Path, err)
	}

	return result, true, nil
}

// descend walks keys through nested mappings, re-binding node one level at a
// time. It reports false when a key is absent or an intermediate value is
// not a mapping.
func descend(mapping map[string]any, keys []string) (any, bool) {
	node := any(mapping)

	for _, key := range keys {
		current, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}

		child, ok := current[key]
		if !ok {
			return nil, false
		}

		node = child
	}

	return node, true
}

// GetWithPath loads the whole file at path, relative to the store root, into
// a value of type T. No candidate search takes place: the path names an
// exact file, extension included, so every failure is surfaced immediately.
func GetWithPath[T any](store *Store, path string) (T, error) {
	var zero T

	data, err := store.fetcher.Fetch(path)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrRead, path, err)
	}

	var result T

	err = store.parser.Unmarshal(data, &result)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrDataParse, path, err)
	}

	return result, nil
}

// GetWithKey loads the file at path and looks up a single top-level key.
func GetWithKey[T any](store *Store, path, key string) (T, error) {
	return GetWithKeys[T](store, path, []string{key})
}

// GetWithKeys loads the file at path and descends through keys, one nested
// mapping per key, decoding the final value into T. As with GetWithPath the
// file is named exactly, so failures are surfaced immediately: ErrRead for
// an unreadable file, ErrDataParse for a document that is not a mapping or a
// final value of the wrong shape, ErrKeyNotFound for an absent key or a
// non-mapping intermediate value, and ErrEmptyKeys when keys is empty.
func GetWithKeys[T any](store *Store, path string, keys []string) (T, error) {
	var zero T

	if len(keys) == 0 {
		return zero, ErrEmptyKeys
	}

	data, err := store.fetcher.Fetch(path)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrRead, path, err)
	}

	mapping, err := store.parser.Mapping(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrDataParse, path, err)
	}

	node, ok := descend(mapping, keys)
	if !ok {
		return zero, fmt.Errorf("%w: %q in %q", ErrKeyNotFound, strings.Join(keys, keypath.Delimiter), path)
	}

	var result T

	err = store.parser.Decode(node, &result)
	if err != nil {
		return zero, fmt.Errorf("%w: decoding %q in %q: %w",
			ErrDataParse, strings.Join(keys, keypath.Delimiter), path, err)
	}

	return result, nil
}
