// Package yaml provides a YAML parser implementation for the datastore
// package.
//
// This package uses github.com/goccy/go-yaml and exposes the three
// operations the datastore needs: decoding a whole document into a typed
// target, parsing a document as a generic string-keyed mapping for key
// descent, and re-decoding a generic subtree into a typed target. The
// subtree decode round-trips through YAML so scalar coercion rules match
// whole-document decoding.
//
// Usage:
//
//	parser := yaml.NewParser()
//	mapping, err := parser.Mapping(data)
//	var port int
//	err = parser.Decode(mapping["port"], &port)
//
// Duplicate mapping keys are handled by goccy/go-yaml's default decoding
// behavior; this package does not add strictness of its own. Callers that
// need different duplicate-key handling can supply their own
// datastore.Parser implementation.
package yaml
