package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// JSONCodec decodes condensed-structure documents from JSON, the native
// output format of the condenser.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier.
func (c *JSONCodec) Format() string {
	return "json"
}

// Decode reads and validates one document.
func (c *JSONCodec) Decode(r io.Reader) (*condensed.Structure, error) {
	var structure condensed.Structure
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&structure); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if err := structure.Validate(); err != nil {
		return nil, err
	}
	return &structure, nil
}
