package codec

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/tree"
	"github.com/joshuapare/pathkit/pkg/types"
)

const defaultIndent = 2

// EncodeOptions configures Marshal and Encode.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level (0 = compact JSON,
	// library default for YAML).
	// Default: 2
	Indent int
}

// DefaultEncodeOptions returns the options used by the CLI.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Indent: defaultIndent}
}

// DecodeOptions configures Unmarshal and Decode.
type DecodeOptions struct {
	// Name labels the decoded tree.
	Name string

	// InputEncoding names the character encoding of the document:
	// "" (sniff BOM, else UTF-8), "utf-8", "utf-16" (BOM required),
	// "utf-16le", "utf-16be", "latin1", "windows-1252".
	// Default: ""
	InputEncoding string
}

// DefaultDecodeOptions returns options that read UTF-8 (or BOM-marked
// UTF-16) documents.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

// jsonNode is the JSON shape of one node. encoding/json sorts map keys, so
// children come out in lexicographic order.
type jsonNode[T any] struct {
	Value    *T                      `json:"value,omitempty"`
	Children map[string]*jsonNode[T] `json:"children,omitempty"`
}

func buildJSON[T any](n *tree.Node[T]) *jsonNode[T] {
	out := &jsonNode[T]{}
	if v, ok := n.Value(); ok {
		out.Value = &v
	}
	for _, name := range n.ChildNames() {
		if out.Children == nil {
			out.Children = make(map[string]*jsonNode[T], n.NumChildren())
		}
		out.Children[name] = buildJSON(n.Child(name))
	}
	return out
}

// buildYAML renders one node as an ordered mapping.
func buildYAML[T any](n *tree.Node[T]) yaml.MapSlice {
	out := yaml.MapSlice{}
	if v, ok := n.Value(); ok {
		out = append(out, yaml.MapItem{Key: keyValue, Value: v})
	}
	if n.NumChildren() > 0 {
		children := make(yaml.MapSlice, 0, n.NumChildren())
		for _, name := range n.ChildNames() {
			children = append(children, yaml.MapItem{Key: name, Value: buildYAML(n.Child(name))})
		}
		out = append(out, yaml.MapItem{Key: keyChildren, Value: children})
	}
	return out
}

// Marshal encodes the whole tree in format f.
func Marshal[T any](t *tree.Tree[T], f Format, opts EncodeOptions) ([]byte, error) {
	var doc any
	switch f {
	case FormatJSON:
		doc = buildJSON(t.Root())
	case FormatYAML:
		doc = buildYAML(t.Root())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	data, err := marshalValue(f, doc, opts.Indent)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	if f == FormatJSON && !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}

// Encode writes the encoded tree to w.
func Encode[T any](w io.Writer, t *tree.Tree[T], f Format, opts EncodeOptions) error {
	data, err := Marshal(t, f, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Unmarshal decodes a document produced by Marshal (or written by hand in
// the same shape) into a new tree.
func Unmarshal[T any](data []byte, f Format, opts DecodeOptions) (*tree.Tree[T], error) {
	return Decode[T](bytes.NewReader(data), f, opts)
}

// Decode reads a whole document from r and decodes it into a new tree.
func Decode[T any](r io.Reader, f Format, opts DecodeOptions) (*tree.Tree[T], error) {
	if _, err := ParseFormat(string(f)); err != nil {
		return nil, err
	}
	ur, err := toUTF8(r, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(ur)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	t := tree.New[T](opts.Name)
	if len(bytes.TrimSpace(data)) == 0 {
		return t, nil
	}
	doc, err := unmarshalGeneric(f, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := decodeNode(t, f, "", doc); err != nil {
		return nil, err
	}
	return t, nil
}

// decodeNode rebuilds the node at path from its generic document form.
func decodeNode[T any](t *tree.Tree[T], f Format, path string, doc any) error {
	if doc == nil {
		return createDirectory(t, path)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: node %q is %T, want a mapping", ErrMalformed, path, doc)
	}
	for key := range m {
		if key != keyValue && key != keyChildren {
			return fmt.Errorf("%w: node %q has unknown key %q", ErrMalformed, path, key)
		}
	}

	raw, hasValue := m[keyValue]
	if hasValue {
		v, err := decodeValue[T](f, raw)
		if err != nil {
			return fmt.Errorf("%w: value at %q: %w", ErrMalformed, path, err)
		}
		if _, _, err := t.Add(path, v); err != nil {
			return err
		}
	}

	var children map[string]any
	if c, ok := m[keyChildren]; ok && c != nil {
		children, ok = c.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: children of %q is %T, want a mapping", ErrMalformed, path, c)
		}
	}
	if len(children) == 0 && !hasValue {
		return createDirectory(t, path)
	}

	for _, name := range slices.Sorted(maps.Keys(children)) {
		childPath := pathseg.Child(path, name)
		if err := pathseg.ValidateSegment(name); err != nil {
			return types.Wrap(types.ErrInvalidPath, childPath, err)
		}
		if err := decodeNode(t, f, childPath, children[name]); err != nil {
			return err
		}
	}
	return nil
}

// decodeValue converts a generic value into T by re-encoding it in the
// document's own format.
func decodeValue[T any](f Format, raw any) (T, error) {
	var v T
	data, err := marshalValue(f, raw, 0)
	if err != nil {
		return v, err
	}
	err = unmarshalValue(f, data, &v)
	return v, err
}

func createDirectory[T any](t *tree.Tree[T], path string) error {
	if path == "" {
		return nil
	}
	return t.CreateDirectory(path)
}
