package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// YAMLCodec decodes condensed-structure documents from YAML, the format used
// for hand-written fixtures and pipeline configuration dumps.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier.
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Decode reads and validates one document.
func (c *YAMLCodec) Decode(r io.Reader) (*condensed.Structure, error) {
	var structure condensed.Structure
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&structure); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := structure.Validate(); err != nil {
		return nil, err
	}
	return &structure, nil
}
