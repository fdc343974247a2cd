package keypath

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Delimiter separates the components of a keypath.
const Delimiter = "."

// invalidCharacters must not appear inside a keypath component.
const invalidCharacters = "./"

// DefaultExtensions is the extension list used when a caller does not supply one.
//
//nolint:gochecknoglobals // package-wide default, callers may override per call.
var DefaultExtensions = []string{"yaml", "yml"}

// ErrInvalidKeyPath is returned when a raw keypath string cannot be parsed.
var ErrInvalidKeyPath = errors.New("keypath contains slashes or empty components")

// KeyPath is a validated, immutable sequence of keypath components.
//
// Construct via Parse. The zero value is empty and yields no candidates.
type KeyPath struct {
	components []string
}

// Parse validates raw as a keypath and returns it in component form.
//
// The raw string is split on the delimiter and every component is trimmed of
// surrounding whitespace. Parsing fails with ErrInvalidKeyPath if any trimmed
// component is empty or contains a delimiter or path-separator character.
// Validation is all-or-nothing: no KeyPath is produced unless every component
// is valid.
func Parse(raw string) (KeyPath, error) {
	parts := strings.Split(raw, Delimiter)
	components := make([]string, 0, len(parts))

	for _, part := range parts {
		component := strings.TrimSpace(part)
		if component == "" || strings.ContainsAny(component, invalidCharacters) {
			return KeyPath{}, fmt.Errorf("%w: %q", ErrInvalidKeyPath, raw)
		}

		components = append(components, component)
	}

	return KeyPath{components: components}, nil
}

// String returns the canonical form: the trimmed components rejoined with the
// delimiter. Surrounding whitespace from the raw input is not preserved.
func (k KeyPath) String() string {
	return strings.Join(k.components, Delimiter)
}

// Components returns a copy of the parsed components in order.
func (k KeyPath) Components() []string {
	components := make([]string, len(k.components))
	copy(components, k.components)

	return components
}

// Len returns the number of components.
func (k KeyPath) Len() int {
	return len(k.components)
}

// Candidate is one interpretation of a keypath: a file path built from a
// leading run of components plus the residual trailing components, which are
// applied as nested mapping keys inside the file at Path.
type Candidate struct {
	Path string
	Keys []string
}

// Candidates is the finite, lazily evaluated sequence of every interpretation
// of a keypath. Nothing is materialized ahead of consumption; each candidate
// is computed from its index on demand, so the sequence can be walked in
// either direction and abandoned early at no cost.
type Candidates struct {
	components []string
	extensions []string
}

// Candidates returns the interpretation sequence for the keypath. With no
// extensions given, DefaultExtensions is used.
func (k KeyPath) Candidates(extensions ...string) Candidates {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	return Candidates{components: k.components, extensions: extensions}
}

// Len returns the total number of candidates: one per component count per
// extension.
func (c Candidates) Len() int {
	return len(c.components) * len(c.extensions)
}

// At returns the candidate at index i in forward order. Forward order starts
// with the longest possible path prefix (every component a path segment, no
// residual keys) and shortens the prefix one component at a time, emitting
// every extension before moving to the next prefix length.
//
// At panics if i is outside [0, Len()).
func (c Candidates) At(i int) Candidate {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("keypath: candidate index %d out of range [0, %d)", i, c.Len()))
	}

	prefixLen := len(c.components) - i/len(c.extensions)
	extension := c.extensions[i%len(c.extensions)]

	keys := make([]string, len(c.components)-prefixLen)
	copy(keys, c.components[prefixLen:])

	return Candidate{
		Path: filepath.Join(c.components[:prefixLen]...) + Delimiter + extension,
		Keys: keys,
	}
}

// Iter returns a cursor over the candidates in forward order.
func (c Candidates) Iter() *Iter {
	return &Iter{candidates: c, next: 0, step: 1}
}

// Reversed returns a cursor over the candidates in the exact mirror of
// forward order: the shortest path prefix (most residual keys) first. Use it
// when in-file key lookup should win over nested file paths.
func (c Candidates) Reversed() *Iter {
	return &Iter{candidates: c, next: c.Len() - 1, step: -1}
}

// Iter walks a candidate sequence one candidate at a time.
type Iter struct {
	candidates Candidates
	next       int
	step       int
}

// Next returns the next candidate, or false when the sequence is exhausted.
func (it *Iter) Next() (Candidate, bool) {
	if it.next < 0 || it.next >= it.candidates.Len() {
		return Candidate{}, false
	}

	candidate := it.candidates.At(it.next)
	it.next += it.step

	return candidate, true
}
