// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package porttrie provides a generic prefix tree keyed by chains of
// single-byte port numbers. Each node holds at most one payload;
// intermediate nodes created along an inserted chain carry none until
// something is inserted at their exact location.
//
// The child mapping is unordered. The one operation that imposes
// order is ChildPorts, which sorts ascending so that consumers (the
// tree renderer, primarily) can produce deterministic output. Every
// other traversal order is unspecified.
//
// Tries are built incrementally and then read; the container does no
// internal locking and is not safe for concurrent mutation.
package porttrie

import "slices"

// Trie is a node in a port-keyed prefix tree over payload type T.
// The zero value is ready to use as an empty root. A parent owns its
// children exclusively; there are no shared or back references.
type Trie[T any] struct {
	value    T
	hasValue bool
	children map[uint8]*Trie[T]
}

// New returns an empty trie root representing the empty port chain.
func New[T any]() *Trie[T] {
	return &Trie[T]{}
}

// Insert stores value at the location named by ports, creating any
// missing intermediate nodes on the way down. An existing payload at
// that exact location is overwritten; ancestors and descendants are
// untouched. An empty chain stores at the receiver itself.
func (t *Trie[T]) Insert(ports []uint8, value T) {
	node := t
	for _, port := range ports {
		child, ok := node.children[port]
		if !ok {
			if node.children == nil {
				node.children = make(map[uint8]*Trie[T])
			}
			child = &Trie[T]{}
			node.children[port] = child
		}
		node = child
	}
	node.value = value
	node.hasValue = true
}

// Lookup descends one level per port and returns the node at the
// exact terminal location, or nil if any segment of the chain does
// not exist. An empty chain returns the receiver.
func (t *Trie[T]) Lookup(ports []uint8) *Trie[T] {
	node := t
	for _, port := range ports {
		node = node.children[port]
		if node == nil {
			return nil
		}
	}
	return node
}

// Child returns the immediate child behind the given port, or nil.
func (t *Trie[T]) Child(port uint8) *Trie[T] {
	return t.children[port]
}

// Value returns the payload stored at this node, if any.
func (t *Trie[T]) Value() (T, bool) {
	return t.value, t.hasValue
}

// Descendants collects every payload in this node's subtree,
// depth-first and pre-order: the node's own payload first (when
// present), then each child subtree in ascending port order.
func (t *Trie[T]) Descendants() []T {
	var values []T
	var collect func(node *Trie[T])
	collect = func(node *Trie[T]) {
		if node.hasValue {
			values = append(values, node.value)
		}
		for _, port := range node.ChildPorts() {
			collect(node.children[port])
		}
	}
	collect(t)
	return values
}

// ChildPorts returns the immediate child port numbers sorted
// ascending. This ordered read exists for deterministic rendering;
// storage itself keeps no order.
func (t *Trie[T]) ChildPorts() []uint8 {
	ports := make([]uint8, 0, len(t.children))
	for port := range t.children {
		ports = append(ports, port)
	}
	slices.Sort(ports)
	return ports
}

// DirectChildren returns the payloads of immediate children that
// carry one, keyed by port number.
func (t *Trie[T]) DirectChildren() map[uint8]T {
	values := make(map[uint8]T)
	for port, child := range t.children {
		if child.hasValue {
			values[port] = child.value
		}
	}
	return values
}

// Len returns the number of payload-carrying nodes in this subtree,
// the receiver included.
func (t *Trie[T]) Len() int {
	count := 0
	if t.hasValue {
		count = 1
	}
	for _, child := range t.children {
		count += child.Len()
	}
	return count
}
