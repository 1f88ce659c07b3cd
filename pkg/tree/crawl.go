package tree

import (
	"errors"
	"iter"

	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/types"
)

// SkipDir can be returned by a WalkFunc to skip the children of the node
// being visited.
var SkipDir = errors.New("skip this directory")

// WalkFunc is called by Walk for every node. path is the canonical full path
// of the node ("" for the root).
type WalkFunc[T any] func(path string, n *Node[T]) error

// Crawl returns a depth-first, pre-order sequence of (full path, value) pairs
// for every value-bearing node in the subtree at path, the node itself
// included. Siblings are visited in lexicographic order. Nodes without a
// value are traversed but not yielded.
//
// The sequence is evaluated lazily and may be ranged over more than once;
// each pass reflects the tree at that moment. The tree must not be modified
// while a pass is in progress.
//
// Crawl fails with types.ErrNotFound if path does not resolve.
func (t *Tree[T]) Crawl(path string) (iter.Seq2[string, T], error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return nil, err
	}
	if t.resolve(segs) == nil {
		return nil, types.WithPath(types.ErrNotFound, path)
	}
	base := pathseg.Join(segs)
	return func(yield func(string, T) bool) {
		chain := t.resolve(segs)
		if chain == nil {
			return
		}
		crawlNode(chain[len(chain)-1], base, yield)
	}, nil
}

// crawlNode yields n and its descendants; it returns false once yield asks to
// stop.
func crawlNode[T any](n *Node[T], path string, yield func(string, T) bool) bool {
	if n.hasValue && !yield(path, n.value) {
		return false
	}
	for _, name := range n.ChildNames() {
		if !crawlNode(n.children[name], pathseg.Child(path, name), yield) {
			return false
		}
	}
	return true
}

// Walk calls fn for every node in the subtree at path, in the same order as
// Crawl, including nodes that hold no value. If fn returns SkipDir the
// children of that node are skipped; any other error stops the walk and is
// returned.
func (t *Tree[T]) Walk(path string, fn WalkFunc[T]) error {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return err
	}
	chain := t.resolve(segs)
	if chain == nil {
		return types.WithPath(types.ErrNotFound, path)
	}
	err = walkNode(chain[len(chain)-1], pathseg.Join(segs), fn)
	if errors.Is(err, SkipDir) {
		return nil
	}
	return err
}

func walkNode[T any](n *Node[T], path string, fn WalkFunc[T]) error {
	if err := fn(path, n); err != nil {
		return err
	}
	for _, name := range n.ChildNames() {
		err := walkNode(n.children[name], pathseg.Child(path, name), fn)
		if err != nil && !errors.Is(err, SkipDir) {
			return err
		}
	}
	return nil
}

// ListDirectory returns the names of the immediate children of path in
// lexicographic order. A node without children yields an empty list.
func (t *Tree[T]) ListDirectory(path string) ([]string, error) {
	n, err := t.lookup(path)
	if err != nil {
		return nil, err
	}
	return n.ChildNames(), nil
}
