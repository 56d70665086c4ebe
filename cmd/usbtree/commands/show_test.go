// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/buspath"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

// collapseColumns splits output into lines with tabwriter padding
// squeezed to single spaces, so tests assert content and order
// without re-deriving column widths.
func collapseColumns(out string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func TestPrintDeviceFull(t *testing.T) {
	device := usb.DeviceInfo{
		Bus:          1,
		Ports:        []uint8{2, 3},
		Address:      4,
		VendorID:     0x2109,
		ProductID:    0x3431,
		Manufacturer: "VIA Labs, Inc.",
		Product:      "USB2.0 Hub",
		Serial:       "0000001",
		Class:        0x09,
		Subclass:     0x00,
		Protocol:     0x01,
		Speed:        usb.SpeedHigh,
		MaxChildren:  4,
	}

	var out strings.Builder
	if err := printDevice(&out, device); err != nil {
		t.Fatalf("printDevice: %v", err)
	}

	want := []string{
		"Path: 1:2.3",
		"Bus: 001",
		"Port chain: 2.3",
		"Address: 004",
		"ID: 2109:3431",
		"Manufacturer: VIA Labs, Inc.",
		"Product: USB2.0 Hub",
		"Serial: 0000001",
		"Class: 0x09 (hub)",
		"Subclass: 0x00",
		"Protocol: 0x01",
		"Speed: High Speed (480 Mbps)",
		"Ports: 4",
	}
	got := collapseColumns(out.String())
	if len(got) != len(want) {
		t.Fatalf("printDevice wrote %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPrintDeviceMinimal(t *testing.T) {
	// A bus root hub with no descriptor strings and no reported
	// speed: optional rows are omitted, not printed blank.
	device := usb.DeviceInfo{
		Bus:       3,
		Address:   1,
		VendorID:  0x1d6b,
		ProductID: 0x0002,
		Class:     0x03,
	}

	var out strings.Builder
	if err := printDevice(&out, device); err != nil {
		t.Fatalf("printDevice: %v", err)
	}

	want := []string{
		"Path: 3:",
		"Bus: 003",
		"Address: 001",
		"ID: 1d6b:0002",
		"Class: 0x03 (human interface device)",
		"Subclass: 0x00",
		"Protocol: 0x00",
	}
	got := collapseColumns(out.String())
	if len(got) != len(want) {
		t.Fatalf("printDevice wrote %d lines, want %d:\n%s", len(got), len(want), out.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPortChain(t *testing.T) {
	tests := []struct {
		name  string
		ports []uint8
		want  string
	}{
		{name: "single", ports: []uint8{1}, want: "1"},
		{name: "nested", ports: []uint8{2, 3, 1}, want: "2.3.1"},
		{name: "empty", ports: nil, want: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := portChain(test.ports); got != test.want {
				t.Errorf("portChain(%v) = %q, want %q", test.ports, got, test.want)
			}
		})
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want buspath.Path
	}{
		{name: "full path", arg: "1:2.3", want: buspath.New(1, 2, 3)},
		{name: "bus root", arg: "2:", want: buspath.BusRoot(2)},
		{name: "bare bus shorthand", arg: "2", want: buspath.BusRoot(2)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseTarget(test.arg)
			if err != nil {
				t.Fatalf("parseTarget(%q): %v", test.arg, err)
			}
			if !got.Equal(test.want) {
				t.Errorf("parseTarget(%q) = %q, want %q", test.arg, got, test.want)
			}
		})
	}
}

func TestParseTargetRejects(t *testing.T) {
	// "300" overflows the 8-bit bus range, so the shorthand does not
	// rescue it.
	for _, arg := range []string{"one:two", "300", "2.3", ""} {
		if _, err := parseTarget(arg); err == nil {
			t.Errorf("parseTarget(%q) accepted a non-path", arg)
		}
	}
}

func TestRunShowRequiresPath(t *testing.T) {
	err := runShow(&showParams{}, nil)
	if err == nil {
		t.Fatal("runShow accepted zero arguments")
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Fatalf("runShow error = %v, want a validation ToolError", err)
	}
	if !strings.Contains(toolErr.Hint, "1:2.3") {
		t.Errorf("hint = %q, want a path example", toolErr.Hint)
	}
}

func TestRunShowRejectsExtraArgs(t *testing.T) {
	err := runShow(&showParams{}, []string{"1:2", "1:3"})
	if err == nil {
		t.Fatal("runShow accepted two path arguments")
	}
	if !strings.Contains(err.Error(), "unexpected argument: 1:3") {
		t.Errorf("runShow error = %q, want the extra argument named", err)
	}
}

func TestRunShowInvalidPath(t *testing.T) {
	// Malformed paths fail before any enumeration happens.
	err := runShow(&showParams{}, []string{"one:two"})
	if err == nil {
		t.Fatal("runShow accepted a malformed path")
	}
	if !errors.Is(err, topology.ErrInvalidPath) {
		t.Errorf("runShow error = %v, want ErrInvalidPath in the chain", err)
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Errorf("runShow error = %v, want a validation ToolError", err)
	}
	if !strings.Contains(err.Error(), "invalid device path") {
		t.Errorf("runShow error = %q, want it to name the invalid path", err)
	}
}
