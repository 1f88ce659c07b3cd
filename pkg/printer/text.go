package printer

import (
	"fmt"
	"unicode/utf8"

	"github.com/xlab/treeprint"

	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/tree"
)

const truncatedSuffix = "…"

// printTreeText renders the subtree at path as a box-drawn tree. The root
// line carries the tree name (or the starting path).
func (p *Printer[T]) printTreeText(path string) error {
	start, label, err := p.start(path)
	if err != nil {
		return err
	}

	rootLabel := "> " + p.rootColor.Sprint(label)
	if v, ok := start.Value(); ok && p.opts.ShowValues {
		rootLabel += " = " + p.valueColor.Sprint(p.formatValue(v))
	}
	out := treeprint.NewWithRoot(rootLabel)
	p.addChildren(out, start, 1)

	_, err = fmt.Fprint(p.writer, out.String())
	return err
}

// start resolves path to its node and the label printed for it.
func (p *Printer[T]) start(path string) (*tree.Node[T], string, error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return nil, "", err
	}
	n := p.tree.Root()
	for _, seg := range segs {
		n = n.Child(seg)
	}
	label := pathseg.Join(segs)
	if label == "" {
		label = p.tree.Name()
	}
	if label == "" {
		label = pathseg.SeparatorString
	}
	return n, label, nil
}

func (p *Printer[T]) addChildren(branch treeprint.Tree, n *tree.Node[T], depth int) {
	if p.opts.MaxDepth > 0 && depth > p.opts.MaxDepth {
		return
	}
	for _, name := range n.ChildNames() {
		child := n.Child(name)
		label := p.nodeLabel(name, child)
		if child.NumChildren() == 0 {
			branch.AddNode(label)
			continue
		}
		p.addChildren(branch.AddBranch(label), child, depth+1)
	}
}

// nodeLabel renders one line: directories in the directory colour, leaves in
// the value colour, with "= value" appended when values are shown.
func (p *Printer[T]) nodeLabel(name string, n *tree.Node[T]) string {
	label := p.valueColor.Sprint(name)
	if n.NumChildren() > 0 || !n.HasValue() {
		label = p.dirColor.Sprint(name)
	}
	if v, ok := n.Value(); ok && p.opts.ShowValues {
		label += " = " + p.valueColor.Sprint(p.formatValue(v))
	}
	return label
}

func (p *Printer[T]) formatValue(v T) string {
	s := fmt.Sprintf("%v", v)
	if p.opts.MaxValueRunes > 0 && utf8.RuneCountInString(s) > p.opts.MaxValueRunes {
		runes := []rune(s)
		s = string(runes[:p.opts.MaxValueRunes]) + truncatedSuffix
	}
	return s
}
