package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// ErrMalformed indicates a document that does not describe a tree.
	ErrMalformed = errors.New("codec: malformed document")
	// ErrUnsupportedFormat indicates an unknown format name or extension.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
	// ErrUnsupportedEncoding indicates an unknown input character encoding.
	ErrUnsupportedEncoding = errors.New("codec: unsupported input encoding")
)

// Format selects the exchange format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	keyValue    = "value"
	keyChildren = "children"
)

// ParseFormat maps a format name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromExtension picks a Format from a file name's extension.
func FormatFromExtension(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// marshalValue encodes a single Go value in format f.
func marshalValue(f Format, v any, indent int) ([]byte, error) {
	switch f {
	case FormatJSON:
		if indent <= 0 {
			return json.Marshal(v)
		}
		return json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	case FormatYAML:
		if indent <= 0 {
			return yaml.Marshal(v)
		}
		return yaml.MarshalWithOptions(v, yaml.Indent(indent))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// unmarshalGeneric decodes data into untyped maps, slices and scalars. JSON
// numbers are kept as json.Number so re-encoding them is lossless.
func unmarshalGeneric(f Format, data []byte) (any, error) {
	var out any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return out, nil
}

// unmarshalValue decodes data into the typed destination v.
func unmarshalValue(f Format, data []byte, v any) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
