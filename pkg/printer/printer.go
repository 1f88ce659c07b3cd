// Package printer renders a tree or subtree for humans (text) or tools (JSON).
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/joshuapare/pathkit/pkg/tree"
)

const (
	DefaultMaxDepth      = 0
	DefaultMaxValueRunes = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a box-drawn tree.
	FormatText Format = "text"

	// FormatJSON outputs nested JSON objects.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// MaxDepth limits how many levels below the starting node are printed
	// (0 = unlimited).
	// Default: 0
	MaxDepth int

	// ShowValues includes stored values next to node names.
	// Default: true
	ShowValues bool

	// MaxValueRunes truncates long rendered values in text output.
	// Set to 0 for no limit.
	// Default: 64
	MaxValueRunes int

	// Color enables ANSI colours in text output: values cyan, directories
	// yellow, the root label magenta.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		MaxDepth:      DefaultMaxDepth,
		ShowValues:    true,
		MaxValueRunes: DefaultMaxValueRunes,
		Color:         false,
	}
}

// Printer handles formatted output of a tree.
type Printer[T any] struct {
	opts   Options
	writer io.Writer
	tree   *tree.Tree[T]

	rootColor  *color.Color
	dirColor   *color.Color
	valueColor *color.Color
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(t, os.Stdout, printer.DefaultOptions())
//	p.PrintTree("etc")
func New[T any](t *tree.Tree[T], w io.Writer, opts Options) *Printer[T] {
	p := &Printer[T]{
		opts:       opts,
		writer:     w,
		tree:       t,
		rootColor:  color.New(color.FgMagenta, color.Bold, color.Underline),
		dirColor:   color.New(color.FgYellow, color.Bold),
		valueColor: color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{p.rootColor, p.dirColor, p.valueColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintTree prints the subtree rooted at path.
func (p *Printer[T]) PrintTree(path string) error {
	if _, err := p.tree.ListDirectory(path); err != nil {
		return fmt.Errorf("find %q: %w", path, err)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(path)
	case FormatText:
		return p.printTreeText(path)
	default:
		return p.printTreeText(path)
	}
}

// PrintValue prints the single value stored at path.
func (p *Printer[T]) PrintValue(path string) error {
	v, err := p.tree.Obtain(path)
	if err != nil {
		return fmt.Errorf("get value %q: %w", path, err)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(path, v)
	default:
		_, err = fmt.Fprintln(p.writer, p.valueColor.Sprint(p.formatValue(v)))
		return err
	}
}

// Print is a shorthand for New(t, w, opts).PrintTree(path).
func Print[T any](w io.Writer, t *tree.Tree[T], path string, opts Options) error {
	return New(t, w, opts).PrintTree(path)
}
