package registry

import (
	"sync"

	"github.com/joshuapare/pathkit/pkg/tree"
)

// Entry is one (path, value) pair produced by Shared.Crawl.
type Entry[T any] struct {
	Path  string
	Value T
}

// Shared wraps a tree with a sync.RWMutex. Reads take the read lock,
// mutations the write lock.
type Shared[T any] struct {
	mu   sync.RWMutex
	tree *tree.Tree[T]
}

// NewShared wraps t. The caller must not use t directly afterwards.
func NewShared[T any](t *tree.Tree[T]) *Shared[T] {
	if t == nil {
		t = tree.New[T]("")
	}
	// Root allocates on first use; do it here so readers never write.
	t.Root()
	return &Shared[T]{tree: t}
}

// Read runs fn under the read lock. fn must not modify the tree.
func (s *Shared[T]) Read(fn func(t *tree.Tree[T]) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.tree)
}

// Write runs fn under the write lock, for sequences of operations that must
// appear atomic to other users of the tree.
func (s *Shared[T]) Write(fn func(t *tree.Tree[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.tree)
}

func (s *Shared[T]) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Name()
}

func (s *Shared[T]) CreateDirectory(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.CreateDirectory(path)
}

func (s *Shared[T]) Add(path string, v T) (prev T, replaced bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Add(path, v)
}

func (s *Shared[T]) Insert(path string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Insert(path, v)
}

func (s *Shared[T]) Obtain(path string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Obtain(path)
}

// Update runs fn on the stored value under the write lock.
func (s *Shared[T]) Update(path string, fn func(v *T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Update(path, fn)
}

func (s *Shared[T]) Exists(path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Exists(path)
}

func (s *Shared[T]) Remove(path string) (prev T, removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(path)
}

func (s *Shared[T]) RemoveTree(path string) (*tree.Subtree[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.RemoveTree(path)
}

func (s *Shared[T]) Merge(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Merge(src, dst)
}

func (s *Shared[T]) Graft(path string, sub *tree.Subtree[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Graft(path, sub)
}

// Crawl returns a snapshot of the crawl at path. A lazy sequence would have
// to hold the lock across the caller's loop, so the entries are collected
// under the read lock instead.
func (s *Shared[T]) Crawl(path string) ([]Entry[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seq, err := s.tree.Crawl(path)
	if err != nil {
		return nil, err
	}
	var out []Entry[T]
	for p, v := range seq {
		out = append(out, Entry[T]{Path: p, Value: v})
	}
	return out, nil
}

func (s *Shared[T]) ListDirectory(path string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.ListDirectory(path)
}

func (s *Shared[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len()
}
