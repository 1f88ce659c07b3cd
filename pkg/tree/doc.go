// Package tree provides an in-memory hierarchical key-value store addressed
// by slash-delimited paths.
//
// A Tree behaves like a virtual filesystem namespace over arbitrary values of
// a single type T. Paths name nodes; a node may hold a value, have children,
// or both (a "hybrid" node). Intermediate directories are created on demand
// and removed again once they become empty.
//
// # Core Types
//
//   - Tree: owns the root node and implements every path-addressed operation.
//   - Node: one vertex, an optional value plus name-indexed children.
//   - Subtree: a detached branch returned by RemoveTree and accepted by Graft.
//
// # Usage Example
//
//	t := tree.New[int]("config")
//
//	t.Add("a/b/c", 1)
//	t.Add("a/b/d", 2)
//	t.CreateDirectory("a/empty")
//
//	v, err := t.Obtain("a/b/c") // 1
//
//	seq, err := t.Crawl("a")
//	for path, v := range seq {
//	    fmt.Println(path, v) // a/b/c 1, a/b/d 2
//	}
//
//	err = t.Merge("a/b", "x") // moves a/b to x (x/c, x/d), prunes a
//
// # Paths
//
// "a/b", "/a/b" and "a/b/" address the same node; "" and "/" address the
// root. Empty segments ("a//b") fail with types.ErrInvalidPath. Segment
// comparison is exact and case-sensitive.
//
// # Ordering
//
// Crawl, Walk and ListDirectory visit siblings in lexicographic order of
// their names, independent of map iteration order.
//
// # Concurrency
//
// A Tree is not safe for concurrent use. Callers sharing a tree must hold
// their own lock around every call; see the registry package for a locked
// wrapper.
package tree
