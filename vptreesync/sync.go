// Package vptreesync wraps a *vptree.Tree behind a sync.RWMutex, the way
// lvlath's core.Graph guards its vertex and edge maps behind muVert and
// muEdgeAdj: queries take the read lock, structural mutations take the
// write lock.
//
// This is deliberately an external collaborator, not part of the engine:
// the spec places "any concurrency control layered on top of the
// engine — a single reader/writer lock serializing queries against
// structural mutations" out of scope for the engine itself and treats it
// as the embedder's responsibility. vptreesync is that embedder.
package vptreesync

import (
	"sync"

	"github.com/vp-tree/vptree"
)

// Tree is a concurrency-safe wrapper around a *vptree.Tree[T, D]. The
// zero value is not usable; construct one with New.
type Tree[T any, D vptree.Number] struct {
	mu   sync.RWMutex
	tree *vptree.Tree[T, D]
}

// New wraps an already-constructed *vptree.Tree for concurrent use.
func New[T any, D vptree.Number](t *vptree.Tree[T, D]) *Tree[T, D] {
	return &Tree[T, D]{tree: t}
}

// Len returns the wrapped tree's item count under a read lock.
func (s *Tree[T, D]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Len()
}

// NN runs NN under a read lock.
func (s *Tree[T, D]) NN(query T) (vptree.Result[T, D], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.NN(query)
}

// KNN runs KNN under a read lock.
func (s *Tree[T, D]) KNN(query T, k int) ([]vptree.Result[T, D], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.KNN(query, k)
}

// Range runs Range under a read lock.
func (s *Tree[T, D]) Range(query T, maxDist D) ([]vptree.Result[T, D], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree.Range(query, maxDist)
}

// Build runs Build under a write lock.
func (s *Tree[T, D]) Build(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Build(items)
}

// Rebuild runs Rebuild under a write lock.
func (s *Tree[T, D]) Rebuild() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Rebuild()
}

// Add runs Add under a write lock.
func (s *Tree[T, D]) Add(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Add(item)
}

// AddRebuild runs AddRebuild under a write lock.
func (s *Tree[T, D]) AddRebuild(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.AddRebuild(items)
}

// Teardown runs Teardown under a write lock.
func (s *Tree[T, D]) Teardown() []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tree.Teardown()
}

// Destroy runs Destroy under a write lock.
func (s *Tree[T, D]) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree.Destroy()
}
