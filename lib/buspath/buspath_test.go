// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package buspath_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bureau-foundation/usbtree/lib/buspath"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantBus   uint8
		wantPorts []uint8
	}{
		{name: "full-chain", input: "1:2.3.4", wantBus: 1, wantPorts: []uint8{2, 3, 4}},
		{name: "single-port", input: "3:1", wantBus: 3, wantPorts: []uint8{1}},
		{name: "bus-root", input: "2:", wantBus: 2, wantPorts: nil},
		{name: "bus-zero", input: "0:", wantBus: 0, wantPorts: nil},
		{name: "max-values", input: "255:255.255", wantBus: 255, wantPorts: []uint8{255, 255}},
		{name: "port-zero", input: "1:0", wantBus: 1, wantPorts: []uint8{0}},
		{name: "leading-zeros", input: "007:01.002", wantBus: 7, wantPorts: []uint8{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := buspath.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if path.Bus != tt.wantBus {
				t.Errorf("Bus = %d, want %d", path.Bus, tt.wantBus)
			}
			if !slices.Equal(path.Ports, tt.wantPorts) {
				t.Errorf("Ports = %v, want %v", path.Ports, tt.wantPorts)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantText string
	}{
		{name: "no-colon", input: "1", wantErr: buspath.ErrInvalidFormat},
		{name: "empty", input: "", wantErr: buspath.ErrInvalidFormat},
		{name: "ports-without-colon", input: "1.2.3", wantErr: buspath.ErrInvalidFormat},
		{name: "empty-bus", input: ":", wantErr: buspath.ErrMissingBus},
		{name: "empty-bus-with-ports", input: ":1.2", wantErr: buspath.ErrMissingBus},
		{name: "alpha-bus", input: "abc:1", wantErr: buspath.ErrInvalidBus, wantText: "abc"},
		{name: "bus-overflow", input: "256:1", wantErr: buspath.ErrInvalidBus, wantText: "256"},
		{name: "negative-bus", input: "-1:2", wantErr: buspath.ErrInvalidBus, wantText: "-1"},
		{name: "alpha-port", input: "1:2.x.4", wantErr: buspath.ErrInvalidPort, wantText: "x"},
		{name: "port-overflow", input: "1:300", wantErr: buspath.ErrInvalidPort, wantText: "300"},
		{name: "empty-port-token", input: "1:2..3", wantErr: buspath.ErrInvalidPort},
		{name: "trailing-dot", input: "1:2.", wantErr: buspath.ErrInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buspath.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantText != "" && !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q does not name the offending text %q", err, tt.wantText)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		path buspath.Path
		want string
	}{
		{name: "chain", path: buspath.New(1, 2, 3), want: "1:2.3"},
		{name: "deep-chain", path: buspath.New(1, 2, 3, 4), want: "1:2.3.4"},
		{name: "bus-root", path: buspath.BusRoot(2), want: "2:"},
		{name: "single-port", path: buspath.New(10, 4), want: "10:4"},
		{name: "zeros", path: buspath.New(0, 0), want: "0:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.path.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRoundTrip checks Parse(p.String()) == p across the full bus range
// and a spread of port chains. Downstream index correctness rests on
// this law.
func TestRoundTrip(t *testing.T) {
	chains := [][]uint8{
		nil,
		{0},
		{1},
		{255},
		{1, 2},
		{2, 3, 4},
		{0, 0, 0},
		{1, 2, 3, 4, 5, 6, 7},
		{255, 0, 255, 0},
	}
	for bus := 0; bus <= 255; bus++ {
		for _, chain := range chains {
			path := buspath.New(uint8(bus), chain...)
			parsed, err := buspath.Parse(path.String())
			if err != nil {
				t.Fatalf("Parse(%q): %v", path.String(), err)
			}
			if !parsed.Equal(path) {
				t.Fatalf("round trip of %v via %q gave %v", path, path.String(), parsed)
			}
		}
	}
}

func TestParentChildInverse(t *testing.T) {
	paths := []buspath.Path{
		buspath.BusRoot(1),
		buspath.New(1, 2),
		buspath.New(3, 4, 5, 6),
	}
	for _, path := range paths {
		for _, port := range []uint8{0, 1, 7, 255} {
			child := path.Child(port)
			parent, ok := child.Parent()
			if !ok {
				t.Fatalf("%v.Child(%d).Parent(): no parent", path, port)
			}
			if !parent.Equal(path) {
				t.Errorf("%v.Child(%d).Parent() = %v, want %v", path, port, parent, path)
			}
		}
	}
}

func TestParentOfBusRoot(t *testing.T) {
	if _, ok := buspath.BusRoot(1).Parent(); ok {
		t.Error("Parent() of a bus root reported ok = true")
	}
}

func TestAncestry(t *testing.T) {
	ancestor := buspath.New(1, 2)
	descendant := buspath.New(1, 2, 3, 4)

	if !ancestor.IsAncestorOf(descendant) {
		t.Error("IsAncestorOf = false for a strict prefix on the same bus")
	}
	if !descendant.IsDescendantOf(ancestor) {
		t.Error("IsDescendantOf = false for the symmetric pair")
	}
	if ancestor.IsDescendantOf(descendant) {
		t.Error("IsDescendantOf = true in the wrong direction")
	}

	tests := []struct {
		name string
		a, b buspath.Path
	}{
		{name: "reflexive", a: ancestor, b: ancestor},
		{name: "different-bus", a: buspath.New(1, 2), b: buspath.New(2, 2, 3)},
		{name: "diverging-chain", a: buspath.New(1, 2), b: buspath.New(1, 3, 4)},
		{name: "longer-than-target", a: buspath.New(1, 2, 3), b: buspath.New(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.IsAncestorOf(tt.b) {
				t.Errorf("%v.IsAncestorOf(%v) = true, want false", tt.a, tt.b)
			}
		})
	}

	busRoot := buspath.BusRoot(1)
	if !busRoot.IsAncestorOf(descendant) {
		t.Error("bus root is not an ancestor of a device on its bus")
	}
}

func TestValueSemantics(t *testing.T) {
	ports := []uint8{2, 3}
	path := buspath.New(1, ports...)
	ports[0] = 99
	if path.String() != "1:2.3" {
		t.Errorf("Path aliased constructor input: String() = %q", path.String())
	}

	child := path.Child(4)
	if path.Depth() != 2 {
		t.Errorf("Child mutated receiver: Depth() = %d, want 2", path.Depth())
	}
	if child.String() != "1:2.3.4" {
		t.Errorf("Child() = %q, want %q", child.String(), "1:2.3.4")
	}

	parent, _ := child.Parent()
	parent.Ports[0] = 99
	if child.String() != "1:2.3.4" {
		t.Errorf("Parent shares memory with child: child = %q", child.String())
	}
}

func TestDepthAndBusKey(t *testing.T) {
	path := buspath.New(10, 1, 2, 3)
	if path.Depth() != 3 {
		t.Errorf("Depth() = %d, want 3", path.Depth())
	}
	if path.BusKey() != "10" {
		t.Errorf("BusKey() = %q, want %q", path.BusKey(), "10")
	}
	if path.IsBusRoot() {
		t.Error("IsBusRoot() = true for a path with ports")
	}
	if !buspath.BusRoot(10).IsBusRoot() {
		t.Error("IsBusRoot() = false for a bus root")
	}
}
