// file:radix/pkg/x_radix/node.go
package x_radix

import (
	"strings"
)

//---------------------
// Node
//---------------------

// node is a single tree node. The label is the full key prefix the
// node stands for, never a parent-relative suffix; every containment
// test below runs against whole labels. A nil value marks either a
// synthetic branch point or a tombstone, the two are indistinguishable
// by identity.
type node[T any] struct {
	label    string
	value    *T
	children []*node[T] // unordered, exclusively owned
}

// newNode creates a live entry node for label.
func newNode[T any](label string, value T) *node[T] {
	return &node[T]{label: label, value: &value}
}

// newBranch creates a valueless node. With label "" it is the root
// sentinel, which accepts any key.
func newBranch[T any](label string) *node[T] {
	return &node[T]{label: label}
}

func (n *node[T]) hasValue() bool { return n.value != nil }
func (n *node[T]) isLeaf() bool   { return len(n.children) == 0 }

//---------------------
// Insert
//---------------------

// insert places nn into the subtree under n. n's own label is already
// a prefix of nn.label, so only the children are dispatched on;
// siblings diverge right after n's label and at most one rule can
// match.
func (n *node[T]) insert(nn *node[T]) error {
	for i, c := range n.children {
		// Same label: duplicate when live, resurrection when not.
		if c.label == nn.label {
			if c.hasValue() {
				return ErrDuplicateKey
			}
			c.value = nn.value
			return nil
		}
		// Child owns the new key, descend.
		if strings.HasPrefix(nn.label, c.label) {
			return c.insert(nn)
		}
		// Shared prefix counts only past n's own label; every child
		// trivially shares that much with the new key.
		prefix := CommonPrefix(c.label, nn.label)
		if len(prefix) <= len(n.label) {
			continue
		}
		// Fork: neither label contains the other. When the shared
		// prefix is the new key itself, the new node becomes the
		// branch and adopts the existing child.
		if prefix == nn.label {
			nn.children = append(nn.children, c)
			n.children[i] = nn
			return nil
		}
		br := newBranch[T](prefix)
		br.children = append(br.children, c, nn)
		n.children[i] = br
		return nil
	}
	n.children = append(n.children, nn)
	return nil
}

//---------------------
// Delete
//---------------------

// remove clears the entry for key in the subtree under n. The matching
// node is detached only when it is a leaf; with children it stays as a
// tombstoned path node.
func (n *node[T]) remove(key string) bool {
	for i, c := range n.children {
		if c.label == key {
			if !c.hasValue() {
				return false
			}
			if c.isLeaf() {
				n.children = append(n.children[:i], n.children[i+1:]...)
			} else {
				c.value = nil
			}
			return true
		}
		if strings.HasPrefix(key, c.label) {
			return c.remove(key)
		}
	}
	return false
}

//---------------------
// Lookup
//---------------------

// find returns the value stored for exactly key, nil when missing or
// tombstoned.
func (n *node[T]) find(key string) *T {
	for _, c := range n.children {
		if c.label == key {
			return c.value
		}
		if strings.HasPrefix(key, c.label) {
			return c.find(key)
		}
	}
	return nil
}

// search locates the node owning prefix and collects its subtree.
func (n *node[T]) search(prefix string, out []T) []T {
	for _, c := range n.children {
		if strings.HasPrefix(c.label, prefix) {
			return c.collect(out)
		}
		if strings.HasPrefix(prefix, c.label) {
			return c.search(prefix, out)
		}
	}
	return out
}

// collect appends the live values of n's entire subtree, DFS.
func (n *node[T]) collect(out []T) []T {
	if n.hasValue() {
		out = append(out, *n.value)
	}
	for _, c := range n.children {
		out = c.collect(out)
	}
	return out
}

// walk visits live entries in internal order; false from cb stops the
// traversal.
func (n *node[T]) walk(cb func(key string, val *T) bool) bool {
	if n.hasValue() {
		if !cb(n.label, n.value) {
			return false
		}
	}
	for _, c := range n.children {
		if !c.walk(cb) {
			return false
		}
	}
	return true
}
