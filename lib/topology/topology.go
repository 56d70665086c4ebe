// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package topology provides the path-indexed hierarchical device
// index: a flat map from canonical path string to payload, plus one
// port trie per bus whose payloads are keys back into the flat map.
//
// The double indirection is deliberate. The flat map is the single
// owner of payload values and gives O(1) direct lookup; the per-bus
// tries are structure-only indices that give O(depth) hierarchical
// queries without duplicating payloads. The price is an invariant:
// every key stored in a trie must exist in the flat map. InsertPath
// is the single write path that maintains it; the package exposes no
// other mutator.
//
// An Index is populated once from a snapshot of device records and
// read afterwards. There is no internal locking; callers needing
// live updates rebuild a fresh Index and swap it whole.
package topology

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strconv"
	"strings"

	"github.com/bureau-foundation/usbtree/lib/buspath"
	"github.com/bureau-foundation/usbtree/lib/porttrie"
)

// Lookup and insertion errors. Callers classify with errors.Is; the
// offending path text travels in the wrapped message.
var (
	// ErrDeviceNotFound reports a must-succeed lookup that found
	// nothing at the caller-supplied path.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrInvalidPath reports a path that failed to parse while
	// resolving an insertion or lookup; it wraps the underlying
	// buspath sentinel.
	ErrInvalidPath = errors.New("invalid device path")
)

// Index stores payloads of type T addressable both by canonical path
// string (flat, O(1)) and by bus-and-port-chain position (per-bus
// trie, O(depth)).
type Index[T any] struct {
	devices map[string]T
	trees   map[string]*porttrie.Trie[string]
}

// New returns an empty index.
func New[T any]() *Index[T] {
	return &Index[T]{
		devices: make(map[string]T),
		trees:   make(map[string]*porttrie.Trie[string]),
	}
}

// InsertPath stores value at path. The canonical key is written to
// the flat map (overwriting any prior value at that exact key) and
// then inserted into the bus's trie, created on demand. This is the
// only write path; it keeps every trie key resolvable.
func (x *Index[T]) InsertPath(path buspath.Path, value T) {
	key := path.Key()
	x.devices[key] = value

	busKey := path.BusKey()
	tree, ok := x.trees[busKey]
	if !ok {
		tree = porttrie.New[string]()
		x.trees[busKey] = tree
	}
	tree.Insert(path.Ports, key)
}

// Insert is the convenience form taking the bus as a string. The bus
// must parse as an unsigned 8-bit decimal; failure surfaces an error
// chaining ErrInvalidPath and the buspath sentinel rather than
// silently aliasing bad input to some default bus.
func (x *Index[T]) Insert(bus string, ports []uint8, value T) error {
	if bus == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPath, buspath.ErrMissingBus)
	}
	parsed, err := strconv.ParseUint(bus, 10, 8)
	if err != nil {
		return fmt.Errorf("%w: %w: %q", ErrInvalidPath, buspath.ErrInvalidBus, bus)
	}
	x.InsertPath(buspath.New(uint8(parsed), ports...), value)
	return nil
}

// Get looks up a payload by path string. A literal key match is
// tried first (already-canonical strings hit the flat map directly);
// otherwise the string is parsed and the canonical form retried, so
// non-canonical but valid spellings like "01:2" still resolve.
// Absence is an ordinary false, never an error.
func (x *Index[T]) Get(s string) (T, bool) {
	if value, ok := x.devices[s]; ok {
		return value, true
	}
	path, err := buspath.Parse(s)
	if err != nil {
		var zero T
		return zero, false
	}
	value, ok := x.devices[path.Key()]
	return value, ok
}

// GetByPath looks up a payload by parsed path.
func (x *Index[T]) GetByPath(path buspath.Path) (T, bool) {
	value, ok := x.devices[path.Key()]
	return value, ok
}

// Require is the must-succeed variant of Get. The returned error
// wraps ErrDeviceNotFound and carries the original lookup string.
func (x *Index[T]) Require(s string) (T, error) {
	if value, ok := x.Get(s); ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrDeviceNotFound, s)
}

// RequireByPath is the must-succeed variant of GetByPath.
func (x *Index[T]) RequireByPath(path buspath.Path) (T, error) {
	if value, ok := x.GetByPath(path); ok {
		return value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", ErrDeviceNotFound, path.String())
}

// SubtreeByPath returns every payload at and beneath path: the trie
// node at the location is found, its descendant keys are resolved
// back through the flat map, and unresolvable keys (impossible while
// the insertion invariant holds) are dropped silently. Payloads come
// back in depth-first pre-order with siblings ascending by port.
// Unknown bus or absent node yields nil.
func (x *Index[T]) SubtreeByPath(path buspath.Path) []T {
	tree, ok := x.trees[path.BusKey()]
	if !ok {
		return nil
	}
	node := tree.Lookup(path.Ports)
	if node == nil {
		return nil
	}
	return x.resolveKeys(node.Descendants())
}

// Subtree returns every payload at and beneath the location named by
// s. The string is parsed as a canonical path first; strings that do
// not parse fall back to the legacy lenient form, where the text
// before the colon (or the whole string) is the bus key and port
// tokens that fail to parse are dropped. The fallback keeps bare bus
// queries like "1" working.
func (x *Index[T]) Subtree(s string) []T {
	if path, err := buspath.Parse(s); err == nil {
		return x.SubtreeByPath(path)
	}

	bus, portText, found := strings.Cut(s, ":")
	if !found {
		bus = s
		portText = ""
	}
	tree, ok := x.trees[bus]
	if !ok {
		return nil
	}
	node := tree.Lookup(parseLegacyPorts(portText))
	if node == nil {
		return nil
	}
	return x.resolveKeys(node.Descendants())
}

// Buses returns the known bus identifiers. Both mutators produce
// canonical decimal keys, so the sort is numeric; a non-numeric key
// (unreachable through the public API) would sort after the numeric
// ones, lexicographically.
func (x *Index[T]) Buses() []string {
	buses := make([]string, 0, len(x.trees))
	for bus := range x.trees {
		buses = append(buses, bus)
	}
	sort.Slice(buses, func(i, j int) bool {
		a, errA := strconv.Atoi(buses[i])
		b, errB := strconv.Atoi(buses[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return buses[i] < buses[j]
		}
	})
	return buses
}

// BusTree returns the raw structural trie for a bus, or nil when the
// bus is unknown. The trie's payloads are flat-map keys, not device
// records; this accessor exists primarily for the renderer.
func (x *Index[T]) BusTree(bus string) *porttrie.Trie[string] {
	return x.trees[bus]
}

// Devices returns a copy of the flat key-to-payload map.
func (x *Index[T]) Devices() map[string]T {
	return maps.Clone(x.devices)
}

// Len returns the number of stored payloads.
func (x *Index[T]) Len() int {
	return len(x.devices)
}

// resolveKeys maps trie keys back to payloads, dropping any key
// missing from the flat map.
func (x *Index[T]) resolveKeys(keys []string) []T {
	values := make([]T, 0, len(keys))
	for _, key := range keys {
		if value, ok := x.devices[key]; ok {
			values = append(values, value)
		}
	}
	return values
}

// parseLegacyPorts parses a dot-separated port chain leniently,
// dropping tokens that are not unsigned 8-bit decimals.
func parseLegacyPorts(s string) []uint8 {
	if s == "" {
		return nil
	}
	var ports []uint8
	for _, token := range strings.Split(s, ".") {
		port, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			continue
		}
		ports = append(ports, uint8(port))
	}
	return ports
}
