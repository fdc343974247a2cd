package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements the datastore.Parser interface for YAML documents using
// goccy/go-yaml.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Unmarshal decodes an entire YAML document into target.
func (p *Parser) Unmarshal(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	err := yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Mapping decodes a YAML document as a generic string-keyed mapping. Nested
// mappings decode as map[string]any, sequences as []any, and scalars as Go
// scalars. A document whose top level is not a mapping is an error.
func (p *Parser) Mapping(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var mapping map[string]any

	err := yaml.Unmarshal(data, &mapping)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return mapping, nil
}

// Decode converts a generic node, as produced by Mapping, into target. The
// node is round-tripped through YAML so scalar coercion behaves exactly as
// it does when unmarshaling a whole document.
func (p *Parser) Decode(node any, target any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
