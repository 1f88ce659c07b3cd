package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/joshuapare/pathkit/internal/logger"
	"github.com/joshuapare/pathkit/pkg/codec"
	"github.com/joshuapare/pathkit/pkg/tree"
)

// document is a tree loaded from (and saved back to) a file.
type document struct {
	path   string
	format codec.Format
	tree   *tree.Tree[any]
}

// documentFormat resolves the format of path: --format, then $PATHCTL_FORMAT,
// then the file extension.
func documentFormat(path string) (codec.Format, error) {
	name := formatName
	if name == "" {
		name = os.Getenv(envFormat)
	}
	if name != "" {
		return codec.ParseFormat(name)
	}
	return codec.FormatFromExtension(path)
}

func documentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// loadDocument decodes the document at path. With create set, a missing file
// yields an empty tree that save will write out.
func loadDocument(path string, create bool) (*document, error) {
	f, err := documentFormat(path)
	if err != nil {
		return nil, err
	}

	printVerbose("Opening document: %s\n", path)

	file, err := os.Open(path)
	if err != nil {
		if create && errors.Is(err, fs.ErrNotExist) {
			logger.L.Debug("creating document", "path", path, "format", f)
			return &document{path: path, format: f, tree: tree.New[any](documentName(path))}, nil
		}
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	t, err := codec.Decode[any](file, f, codec.DecodeOptions{
		Name:          documentName(path),
		InputEncoding: inputEncoding,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	logger.L.Debug("loaded document", "path", path, "format", f, "values", t.Len())
	return &document{path: path, format: f, tree: t}, nil
}

// save writes the tree back to its file. Output is always UTF-8.
func (d *document) save() error {
	data, err := codec.Marshal(d.tree, d.format, codec.DefaultEncodeOptions())
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	logger.L.Debug("saved document", "path", d.path, "format", d.format, "values", d.tree.Len())
	return nil
}

// parseValue reads a command-line value as a YAML scalar, so "42", "true"
// and "null" keep their types. Anything that does not parse stays a string.
func parseValue(s string) any {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
