package tree

import (
	"maps"
	"slices"
)

// Node is one point in the hierarchy: an optional value and an owned,
// name-indexed set of children.
//
// Nodes are only mutated through Tree operations. The exported methods are
// read-only views used by printers and codecs.
type Node[T any] struct {
	value    T
	hasValue bool
	children map[string]*Node[T]
}

// child returns the named child or nil.
func (n *Node[T]) child(name string) *Node[T] {
	return n.children[name]
}

// childOrCreate returns the named child, inserting an empty node if absent.
func (n *Node[T]) childOrCreate(name string) *Node[T] {
	if c, ok := n.children[name]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node[T])
	}
	c := &Node[T]{}
	n.children[name] = c
	return c
}

// attachChild installs c under name. The slot must be free.
func (n *Node[T]) attachChild(name string, c *Node[T]) {
	if n.children == nil {
		n.children = make(map[string]*Node[T])
	}
	n.children[name] = c
}

// detachChild removes the named child and returns it, or nil if absent.
func (n *Node[T]) detachChild(name string) *Node[T] {
	c, ok := n.children[name]
	if !ok {
		return nil
	}
	delete(n.children, name)
	if len(n.children) == 0 {
		n.children = nil
	}
	return c
}

func (n *Node[T]) setValue(v T) (prev T, had bool) {
	prev, had = n.value, n.hasValue
	n.value, n.hasValue = v, true
	return prev, had
}

func (n *Node[T]) takeValue() (v T, had bool) {
	v, had = n.value, n.hasValue
	var zero T
	n.value, n.hasValue = zero, false
	return v, had
}

func (n *Node[T]) peekValue() *T {
	if !n.hasValue {
		return nil
	}
	return &n.value
}

func (n *Node[T]) isEmpty() bool {
	return !n.hasValue && len(n.children) == 0
}

// Value returns the value stored at this node and whether one is present.
func (n *Node[T]) Value() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, n.hasValue
}

// HasValue reports whether a value is stored at this node.
func (n *Node[T]) HasValue() bool {
	return n != nil && n.hasValue
}

// Child returns the named child, or nil if there is none.
func (n *Node[T]) Child(name string) *Node[T] {
	if n == nil {
		return nil
	}
	return n.child(name)
}

// ChildNames returns the names of the immediate children in lexicographic
// order.
func (n *Node[T]) ChildNames() []string {
	if n == nil || len(n.children) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(n.children))
}

// NumChildren returns the number of immediate children.
func (n *Node[T]) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// IsEmpty reports whether the node has neither a value nor children.
func (n *Node[T]) IsEmpty() bool {
	return n == nil || n.isEmpty()
}

// countValues returns the number of value-bearing nodes in the subtree.
func (n *Node[T]) countValues() int {
	if n == nil {
		return 0
	}
	count := 0
	if n.hasValue {
		count++
	}
	for _, c := range n.children {
		count += c.countValues()
	}
	return count
}
