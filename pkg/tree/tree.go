package tree

import (
	"github.com/joshuapare/pathkit/internal/pathseg"
	"github.com/joshuapare/pathkit/pkg/types"
)

// Tree is a path-addressed hierarchy of values of type T.
//
// The zero value is an empty, unnamed tree ready for use.
type Tree[T any] struct {
	name string
	root *Node[T]
}

// New creates an empty tree. The name only labels the root when printing.
func New[T any](name string) *Tree[T] {
	return &Tree[T]{name: name, root: &Node[T]{}}
}

// Name returns the label given to New.
func (t *Tree[T]) Name() string { return t.name }

// Root returns the root node. The root is never pruned.
func (t *Tree[T]) Root() *Node[T] {
	if t.root == nil {
		t.root = &Node[T]{}
	}
	return t.root
}

// resolve walks segs from the root without creating anything. It returns the
// chain of visited nodes (chain[0] is the root, chain[i] the node at segs[:i])
// or nil if any segment is missing.
func (t *Tree[T]) resolve(segs []string) []*Node[T] {
	chain := make([]*Node[T], 1, len(segs)+1)
	chain[0] = t.Root()
	cur := chain[0]
	for _, seg := range segs {
		cur = cur.child(seg)
		if cur == nil {
			return nil
		}
		chain = append(chain, cur)
	}
	return chain
}

// lookup resolves path to its node, failing with NotFound if absent.
func (t *Tree[T]) lookup(path string) (*Node[T], error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return nil, err
	}
	chain := t.resolve(segs)
	if chain == nil {
		return nil, types.WithPath(types.ErrNotFound, path)
	}
	return chain[len(chain)-1], nil
}

// mkdirAll walks segs from the root, creating every missing node.
func (t *Tree[T]) mkdirAll(segs []string) *Node[T] {
	cur := t.Root()
	for _, seg := range segs {
		cur = cur.childOrCreate(seg)
	}
	return cur
}

// prune detaches empty nodes along chain, deepest first, stopping at the
// root or at the first node that still holds a value or another child.
func prune[T any](chain []*Node[T], segs []string) {
	for i := len(segs); i > 0; i-- {
		if !chain[i].isEmpty() {
			return
		}
		chain[i-1].detachChild(segs[i-1])
	}
}

// CreateDirectory creates every missing node along path (mkdir -p). It is
// idempotent and only fails on a malformed path.
func (t *Tree[T]) CreateDirectory(path string) error {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return err
	}
	t.mkdirAll(segs)
	return nil
}

// Add stores v at path, creating missing directories. Any previous value is
// overwritten and returned with replaced set to true.
func (t *Tree[T]) Add(path string, v T) (prev T, replaced bool, err error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return prev, false, err
	}
	prev, replaced = t.mkdirAll(segs).setValue(v)
	return prev, replaced, nil
}

// Insert stores v at path like Add, but fails with types.ErrAlreadyExists
// instead of overwriting an existing value. A failed Insert leaves the tree
// untouched.
func (t *Tree[T]) Insert(path string, v T) error {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return err
	}
	if chain := t.resolve(segs); chain != nil && chain[len(chain)-1].hasValue {
		return types.WithPath(types.ErrAlreadyExists, path)
	}
	t.mkdirAll(segs).setValue(v)
	return nil
}

// Obtain returns the value stored at path. It fails with types.ErrNotFound
// when the path does not resolve or resolves to a node without a value; use
// Exists to tell the two apart.
func (t *Tree[T]) Obtain(path string) (T, error) {
	var zero T
	n, err := t.lookup(path)
	if err != nil {
		return zero, err
	}
	v := n.peekValue()
	if v == nil {
		return zero, types.WithPath(types.ErrNotFound, path)
	}
	return *v, nil
}

// Update calls fn with a pointer to the value stored at path so it can be
// modified in place. It fails like Obtain.
func (t *Tree[T]) Update(path string, fn func(v *T)) error {
	n, err := t.lookup(path)
	if err != nil {
		return err
	}
	v := n.peekValue()
	if v == nil {
		return types.WithPath(types.ErrNotFound, path)
	}
	fn(v)
	return nil
}

// Exists reports whether path resolves to a node, with or without a value.
func (t *Tree[T]) Exists(path string) (bool, error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return false, err
	}
	return t.resolve(segs) != nil, nil
}

// Remove clears the value at path and returns it. If the node is left with
// neither value nor children it is removed, and so is every ancestor that
// becomes empty as a result. A node that still has children stays behind as
// a directory.
func (t *Tree[T]) Remove(path string) (prev T, removed bool, err error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return prev, false, err
	}
	chain := t.resolve(segs)
	if chain == nil {
		return prev, false, types.WithPath(types.ErrNotFound, path)
	}
	prev, removed = chain[len(chain)-1].takeValue()
	prune(chain, segs)
	return prev, removed, nil
}

// RemoveTree detaches the whole subtree at path, value and descendants, and
// prunes the vacated ancestors as Remove does. Removing the root path empties
// the tree.
func (t *Tree[T]) RemoveTree(path string) (*Subtree[T], error) {
	segs, err := pathseg.Normalize(path)
	if err != nil {
		return nil, err
	}
	chain := t.resolve(segs)
	if chain == nil {
		return nil, types.WithPath(types.ErrNotFound, path)
	}
	return &Subtree[T]{root: t.detach(chain, segs)}, nil
}

// detach unlinks the node at the end of chain and prunes its ancestors.
func (t *Tree[T]) detach(chain []*Node[T], segs []string) *Node[T] {
	if len(segs) == 0 {
		n := t.root
		t.root = &Node[T]{}
		return n
	}
	n := chain[len(chain)-2].detachChild(segs[len(segs)-1])
	prune(chain[:len(chain)-1], segs[:len(segs)-1])
	return n
}

// Len returns the number of stored values. It visits every node.
func (t *Tree[T]) Len() int {
	return t.root.countValues()
}
