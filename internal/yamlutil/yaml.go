// Package yamlutil is the module's single entry point for YAML decoding,
// keeping the parser dependency out of every other package.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// A converter config is a handful of strings; anything near this limit is
// not a config file.
const MaxDocumentSize = 256 << 10

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilTarget        = errors.New("yamlutil: nil decode target")
	ErrDocumentTooLarge = errors.New("yamlutil: document too large")
)

// Decode parses a YAML document into v. Unknown fields are ignored.
func Decode(data []byte, v any) error {
	return decode(data, v)
}

// DecodeStrict parses a YAML document into v and rejects unknown fields,
// so a typo in a config key surfaces as an error instead of a silently
// ignored setting.
func DecodeStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case len(data) == 0:
		return ErrEmptyDocument
	case len(data) > MaxDocumentSize:
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	case v == nil:
		return ErrNilTarget
	}

	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
