// file:radix/pkg/x_radix/rtree.go
package x_radix

import (
	"errors"
)

// RadixTree
//---------------------

var (
	// ErrDuplicateKey is returned by Insert when the key is already live.
	ErrDuplicateKey = errors.New("duplicate_key")
	// ErrEmptyKey is returned by Insert for the empty string.
	ErrEmptyKey = errors.New("empty_key")
)

// RadixTree is a compressed prefix tree mapping string keys to values.
// Deleted keys are tombstoned in place when descendants still need the
// node as a path, so structure is only ever removed at the leaves.
type RadixTree[T any] struct {
	root *node[T]
	size int
}

// New creates an empty tree with a root sentinel.
func New[T any]() *RadixTree[T] {
	return &RadixTree[T]{root: newBranch[T]("")}
}

// Size returns the number of live entries.
func (t *RadixTree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Empty clears the tree.
func (t *RadixTree[T]) Empty() *RadixTree[T] {
	if t == nil {
		return New[T]()
	}
	t.root, t.size = newBranch[T](""), 0
	return t
}

// Insert associates value with key. A key that is already live fails
// with ErrDuplicateKey; a tombstoned key is resurrected with the new
// value. The tree is untouched when an error is returned.
func (t *RadixTree[T]) Insert(key string, value T) error {
	if t == nil {
		return nil
	}
	if key == "" {
		return ErrEmptyKey
	}
	if err := t.root.insert(newNode(key, value)); err != nil {
		return err
	}
	t.size++
	return nil
}

// Delete removes the association for key. The node is tombstoned when
// it still has children and removed outright when it is a leaf. Branch
// nodes are never collapsed afterwards.
func (t *RadixTree[T]) Delete(key string) bool {
	if t == nil || key == "" {
		return false
	}
	if !t.root.remove(key) {
		return false
	}
	t.size--
	return true
}

// Find returns the value stored for exactly key, or nil when the key
// is missing or tombstoned.
func (t *RadixTree[T]) Find(key string) (*T, bool) {
	if t == nil || key == "" {
		return nil, false
	}
	if v := t.root.find(key); v != nil {
		return v, true
	}
	return nil, false
}

// Contains reports whether key is live in the tree.
func (t *RadixTree[T]) Contains(key string) bool {
	_, ok := t.Find(key)
	return ok
}

// Search returns the values of every live key under prefix, in
// structural DFS order. A key matches when it extends prefix, or when
// prefix extends it down to the node owning the prefix.
func (t *RadixTree[T]) Search(prefix string) []T {
	if t == nil {
		return nil
	}
	if prefix == "" {
		return t.root.collect(nil)
	}
	return t.root.search(prefix, nil)
}

// Walk visits every live entry in internal order until cb returns false.
func (t *RadixTree[T]) Walk(cb func(key string, val *T) bool) {
	if t == nil || cb == nil {
		return
	}
	t.root.walk(cb)
}
