// Package codec decodes condensed-structure documents, the hand-off format
// of the external structure condenser, into the typed model. Decoded
// documents are validated before they are returned; a document that fails
// validation never reaches the view layer.
package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xtal-tools/xtalsum/internal/condensed"
)

// Decoder reads a condensed-structure document from one serialization format.
type Decoder interface {
	Decode(r io.Reader) (*condensed.Structure, error)
	Format() string
}

// ForExtension returns the decoder matching a file extension.
func ForExtension(ext string) (Decoder, error) {
	switch strings.ToLower(ext) {
	case ".json":
		return NewJSONCodec(), nil
	case ".yaml", ".yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported document format %q (expected .json, .yaml or .yml)", ext)
	}
}

// DecodeFile reads and validates a condensed-structure document from disk,
// choosing the decoder by file extension.
func DecodeFile(path string) (*condensed.Structure, error) {
	dec, err := ForExtension(filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	structure, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return structure, nil
}
