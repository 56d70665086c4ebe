// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package buspath provides the canonical addressing scheme for USB
// topology locations: a bus number plus an ordered chain of port
// numbers, written "bus:port.port.port". The bus and every port fit
// an unsigned 8-bit range. An empty chain after the colon denotes the
// bus root itself ("2:").
//
// The string form is both the human-facing address syntax and the map
// key used by the topology index, so Parse and String are exact
// inverses: for every valid Path p, Parse(p.String()) reproduces p.
package buspath

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Parse errors. The offending text travels in the wrapped message;
// callers classify with errors.Is.
var (
	// ErrMissingBus reports an empty bus component before the colon.
	ErrMissingBus = errors.New("missing bus number")

	// ErrInvalidBus reports a bus component that is not an unsigned
	// 8-bit decimal integer.
	ErrInvalidBus = errors.New("invalid bus number")

	// ErrInvalidPort reports a port token that is not an unsigned
	// 8-bit decimal integer.
	ErrInvalidPort = errors.New("invalid port number")

	// ErrInvalidFormat reports a path string with no colon separator.
	ErrInvalidFormat = errors.New(`invalid path format, expected "bus:port.port"`)
)

// Path identifies a location in a USB bus topology: the bus number
// and the ordered chain of ports leading from the bus root down to
// the location. Paths are values; every constructor and derivation
// copies the port chain, so a Path never aliases caller memory and
// never changes after construction.
type Path struct {
	// Bus is the bus number.
	Bus uint8

	// Ports is the port chain from the bus root to this location,
	// in traversal order. Empty for a bus-root path.
	Ports []uint8
}

// New constructs a Path from a bus number and port chain.
func New(bus uint8, ports ...uint8) Path {
	return Path{Bus: bus, Ports: append([]uint8(nil), ports...)}
}

// BusRoot constructs the path of a bus root (empty port chain).
func BusRoot(bus uint8) Path {
	return Path{Bus: bus}
}

// Parse parses "bus:port.port.port" into a Path. The colon is
// mandatory; the remainder after it may be empty (bus root) or a
// dot-separated chain of decimal port numbers.
func Parse(s string) (Path, error) {
	busText, portText, found := strings.Cut(s, ":")
	if !found {
		return Path{}, ErrInvalidFormat
	}
	if busText == "" {
		return Path{}, ErrMissingBus
	}

	bus, err := strconv.ParseUint(busText, 10, 8)
	if err != nil {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidBus, busText)
	}

	if portText == "" {
		return Path{Bus: uint8(bus)}, nil
	}

	tokens := strings.Split(portText, ".")
	ports := make([]uint8, 0, len(tokens))
	for _, token := range tokens {
		port, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return Path{}, fmt.Errorf("%w: %q", ErrInvalidPort, token)
		}
		ports = append(ports, uint8(port))
	}

	return Path{Bus: uint8(bus), Ports: ports}, nil
}

// String renders the canonical form: "2:" for a bus root, otherwise
// "1:2.3.4". Decimal, no leading zeros. The exact inverse of Parse.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(int(p.Bus)))
	b.WriteByte(':')
	for i, port := range p.Ports {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(port)))
	}
	return b.String()
}

// Key returns the canonical string form used as the flat-map key in
// the topology index. Identical to String; named for intent.
func (p Path) Key() string {
	return p.String()
}

// BusKey returns the decimal bus string used as the per-bus index key.
func (p Path) BusKey() string {
	return strconv.Itoa(int(p.Bus))
}

// IsBusRoot reports whether the path denotes a bus root (no ports).
func (p Path) IsBusRoot() bool {
	return len(p.Ports) == 0
}

// Depth returns the length of the port chain. Zero for a bus root.
func (p Path) Depth() int {
	return len(p.Ports)
}

// Equal reports whether two paths address the same location: same
// bus and element-wise equal port chains.
func (p Path) Equal(q Path) bool {
	return p.Bus == q.Bus && slices.Equal(p.Ports, q.Ports)
}

// Parent returns the path one level up (last port dropped). The
// second return is false for a bus root, which has no parent.
func (p Path) Parent() (Path, bool) {
	if len(p.Ports) == 0 {
		return Path{}, false
	}
	return Path{Bus: p.Bus, Ports: append([]uint8(nil), p.Ports[:len(p.Ports)-1]...)}, true
}

// Child returns the path one level down through the given port.
func (p Path) Child(port uint8) Path {
	ports := make([]uint8, 0, len(p.Ports)+1)
	ports = append(ports, p.Ports...)
	ports = append(ports, port)
	return Path{Bus: p.Bus, Ports: ports}
}

// IsAncestorOf reports whether p lies strictly above q: same bus,
// strictly shorter chain, and q's chain starts with all of p's.
// Ancestry is never reflexive.
func (p Path) IsAncestorOf(q Path) bool {
	return p.Bus == q.Bus &&
		len(p.Ports) < len(q.Ports) &&
		slices.Equal(q.Ports[:len(p.Ports)], p.Ports)
}

// IsDescendantOf reports whether p lies strictly below q. Exactly
// q.IsAncestorOf(p).
func (p Path) IsDescendantOf(q Path) bool {
	return q.IsAncestorOf(p)
}
