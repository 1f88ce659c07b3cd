package tree

import (
	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/types"
)

// Subtree is a branch detached from a tree by RemoveTree. It owns its nodes
// until it is grafted back with Graft, which consumes it.
type Subtree[T any] struct {
	root *Node[T]
}

// Root returns the top node of the branch, or nil once the subtree has been
// grafted.
func (s *Subtree[T]) Root() *Node[T] {
	if s == nil {
		return nil
	}
	return s.root
}

// Value returns the value held at the top of the branch.
func (s *Subtree[T]) Value() (T, bool) {
	return s.Root().Value()
}

// Len returns the number of values in the branch.
func (s *Subtree[T]) Len() int {
	return s.Root().countValues()
}

// Merge moves the subtree at src to dst.
//
// Missing directories along dst are created. If dst already exists, the two
// subtrees are combined name by name: children present on one side only are
// kept as they are, children present on both sides are combined recursively,
// and where both sides hold a value the value moved from src wins. Afterwards
// src no longer exists and its emptied ancestors are pruned.
//
// Merge fails with types.ErrNotFound if src does not resolve, and with
// types.ErrSelfContainment if dst is src or lies below it. A failed Merge
// leaves the tree untouched.
func (t *Tree[T]) Merge(src, dst string) error {
	srcSegs, err := pathseg.Normalize(src)
	if err != nil {
		return err
	}
	dstSegs, err := pathseg.Normalize(dst)
	if err != nil {
		return err
	}
	chain := t.resolve(srcSegs)
	if chain == nil {
		return types.WithPath(types.ErrNotFound, src)
	}
	if pathseg.IsWithin(dstSegs, srcSegs) {
		return types.WithPath(types.ErrSelfContainment, dst)
	}

	moved := t.detach(chain, srcSegs)
	mergeNodes(t.mkdirAll(dstSegs), moved)
	return nil
}

// Graft attaches a detached subtree at path, creating missing directories and
// combining with any existing node exactly as Merge does. The subtree is
// consumed; grafting it again is a no-op beyond directory creation.
func (t *Tree[T]) Graft(path string, sub *Subtree[T]) error {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return err
	}
	dst := t.mkdirAll(segs)
	if sub != nil && sub.root != nil {
		mergeNodes(dst, sub.root)
		sub.root = nil
	}
	return nil
}

// MergeTree moves every node of other into t, rooted at t's root, with the
// same conflict rules as Merge. other is left empty. Merging a tree into
// itself fails with types.ErrSelfContainment.
func (t *Tree[T]) MergeTree(other *Tree[T]) error {
	if other == nil {
		return nil
	}
	if other == t || (other.root != nil && other.root == t.root) {
		return types.WithPath(types.ErrSelfContainment, pathseg.SeparatorString)
	}
	moved := other.Root()
	other.root = &Node[T]{}
	mergeNodes(t.Root(), moved)
	return nil
}

// mergeNodes folds src into dst. src must not be reachable from dst.
func mergeNodes[T any](dst, src *Node[T]) {
	if src.hasValue {
		dst.setValue(src.value)
	}
	for name, sc := range src.children {
		if dc := dst.child(name); dc != nil {
			mergeNodes(dc, sc)
			continue
		}
		dst.attachChild(name, sc)
	}
	src.children = nil
}
