package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/tree"
)

// jsonNode represents one node in JSON output.
type jsonNode struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Value    any        `json:"value,omitempty"`
	HasValue bool       `json:"has_value"`
	Children []jsonNode `json:"children,omitempty"`
}

// printTreeJSON prints the subtree at path as one JSON document.
func (p *Printer[T]) printTreeJSON(path string) error {
	start, label, err := p.start(path)
	if err != nil {
		return err
	}
	segs, _ := pathseg.Normalize(path)

	doc := p.buildJSON(label, pathseg.Join(segs), start, 1)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

func (p *Printer[T]) buildJSON(name, path string, n *tree.Node[T], depth int) jsonNode {
	out := jsonNode{Name: name, Path: path}
	if v, ok := n.Value(); ok {
		out.HasValue = true
		if p.opts.ShowValues {
			out.Value = v
		}
	}
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return out
	}
	for _, childName := range n.ChildNames() {
		out.Children = append(out.Children,
			p.buildJSON(childName, pathseg.Child(path, childName), n.Child(childName), depth+1))
	}
	return out
}

// printValueJSON prints a single value in JSON format.
func (p *Printer[T]) printValueJSON(path string, v T) error {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(map[string]any{
		"path":  pathseg.Join(segs),
		"value": v,
	}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
