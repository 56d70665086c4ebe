// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/usbtree/lib/usb"
)

// writeSyntheticFile creates a file at the given path within root,
// creating parent directories as needed.
func writeSyntheticFile(t *testing.T, root, path, content string) {
	t.Helper()
	fullPath := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(fullPath), err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", fullPath, err)
	}
}

// syntheticSysfs builds a small but realistic device directory: one
// root hub, an external hub on port 2, a keyboard behind that hub,
// plus the interface entries and stray names a real sysfs contains.
func syntheticSysfs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	// Root hub of bus 1. Sysfs attribute files carry a trailing
	// newline, which the reader must trim.
	writeSyntheticFile(t, root, "usb1/idVendor", "1d6b\n")
	writeSyntheticFile(t, root, "usb1/idProduct", "0002\n")
	writeSyntheticFile(t, root, "usb1/devnum", "1\n")
	writeSyntheticFile(t, root, "usb1/bDeviceClass", "09\n")
	writeSyntheticFile(t, root, "usb1/bDeviceSubClass", "00\n")
	writeSyntheticFile(t, root, "usb1/bDeviceProtocol", "01\n")
	writeSyntheticFile(t, root, "usb1/manufacturer", "Linux Foundation\n")
	writeSyntheticFile(t, root, "usb1/product", "xHCI Host Controller\n")
	writeSyntheticFile(t, root, "usb1/serial", "0000:00:14.0\n")
	writeSyntheticFile(t, root, "usb1/speed", "480\n")
	writeSyntheticFile(t, root, "usb1/maxchild", "12\n")

	// External hub on port 2.
	writeSyntheticFile(t, root, "1-2/idVendor", "05e3\n")
	writeSyntheticFile(t, root, "1-2/idProduct", "0608\n")
	writeSyntheticFile(t, root, "1-2/devnum", "5\n")
	writeSyntheticFile(t, root, "1-2/bDeviceClass", "09\n")
	writeSyntheticFile(t, root, "1-2/product", "USB2.0 Hub\n")
	writeSyntheticFile(t, root, "1-2/speed", "480\n")
	writeSyntheticFile(t, root, "1-2/maxchild", "4\n")

	// Keyboard behind the hub.
	writeSyntheticFile(t, root, "1-2.3/idVendor", "046d\n")
	writeSyntheticFile(t, root, "1-2.3/idProduct", "c31c\n")
	writeSyntheticFile(t, root, "1-2.3/devnum", "8\n")
	writeSyntheticFile(t, root, "1-2.3/bDeviceClass", "00\n")
	writeSyntheticFile(t, root, "1-2.3/manufacturer", "Logitech\n")
	writeSyntheticFile(t, root, "1-2.3/product", "USB Keyboard\n")
	writeSyntheticFile(t, root, "1-2.3/serial", "0046D-C31C\n")
	writeSyntheticFile(t, root, "1-2.3/speed", "1.5\n")

	// Interface entries and strays that enumeration must skip.
	writeSyntheticFile(t, root, "1-0:1.0/bInterfaceClass", "09\n")
	writeSyntheticFile(t, root, "1-2:1.0/bInterfaceClass", "09\n")
	writeSyntheticFile(t, root, "1-2.3:1.0/bInterfaceClass", "03\n")
	writeSyntheticFile(t, root, "usbmisc/placeholder", "x\n")

	return root
}

func TestSysfsListDevices(t *testing.T) {
	lister := usb.SysfsLister{Root: syntheticSysfs(t)}
	devices, err := lister.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(devices) != 3 {
		t.Fatalf("ListDevices returned %d devices, want 3", len(devices))
	}

	byKey := map[string]usb.DeviceInfo{}
	for _, device := range devices {
		byKey[device.Path().Key()] = device
	}

	rootHub, ok := byKey["1:"]
	if !ok {
		t.Fatal("root hub usb1 missing from listing")
	}
	if rootHub.VendorID != 0x1d6b || rootHub.ProductID != 0x0002 {
		t.Errorf("root hub ID = %s, want 1d6b:0002", rootHub.ID())
	}
	if !rootHub.IsHub() {
		t.Error("root hub class not parsed as hub")
	}
	if rootHub.Address != 1 || rootHub.MaxChildren != 12 {
		t.Errorf("root hub address/maxchild = %d/%d, want 1/12", rootHub.Address, rootHub.MaxChildren)
	}
	if rootHub.Manufacturer != "Linux Foundation" || rootHub.Serial != "0000:00:14.0" {
		t.Errorf("root hub strings not trimmed: %+v", rootHub)
	}

	keyboard, ok := byKey["1:2.3"]
	if !ok {
		t.Fatal("keyboard 1-2.3 missing from listing")
	}
	if keyboard.Address != 8 {
		t.Errorf("keyboard address = %d, want 8", keyboard.Address)
	}
	if keyboard.Speed != usb.SpeedLow {
		t.Errorf("keyboard speed = %q, want low", keyboard.Speed)
	}
	if keyboard.Product != "USB Keyboard" || keyboard.Manufacturer != "Logitech" {
		t.Errorf("keyboard strings wrong: %+v", keyboard)
	}

	hub := byKey["1:2"]
	if hub.Speed != usb.SpeedHigh || !hub.IsHub() {
		t.Errorf("hub record wrong: %+v", hub)
	}
}

func TestSysfsMissingAttributes(t *testing.T) {
	root := t.TempDir()
	// A bare device directory with a single attribute. Everything
	// else reads as a zero value.
	writeSyntheticFile(t, root, "2-1/idVendor", "abcd\n")

	devices, err := usb.SysfsLister{Root: root}.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(devices) != 1 {
		t.Fatalf("ListDevices returned %d devices, want 1", len(devices))
	}
	device := devices[0]
	if device.VendorID != 0xabcd {
		t.Errorf("VendorID = %04x, want abcd", device.VendorID)
	}
	if device.ProductID != 0 || device.Address != 0 || device.Product != "" {
		t.Errorf("missing attributes not zero-valued: %+v", device)
	}
	if device.Speed != usb.SpeedUnknown {
		t.Errorf("Speed = %q, want unknown", device.Speed)
	}
	if device.DisplayName() != "Unknown Device" {
		t.Errorf("DisplayName() = %q, want Unknown Device", device.DisplayName())
	}
}

func TestSysfsSkipsUnrecognizedNames(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"usbx", "1-2:1.0", "notadevice", "3-", "x-1"} {
		writeSyntheticFile(t, root, filepath.Join(name, "idVendor"), "ffff\n")
	}

	devices, err := usb.SysfsLister{Root: root}.ListDevices()
	if err != nil {
		t.Fatalf("ListDevices: %v", err)
	}
	if len(devices) != 0 {
		t.Errorf("ListDevices returned %d devices from stray entries, want 0", len(devices))
	}
}

func TestSysfsMissingRoot(t *testing.T) {
	lister := usb.SysfsLister{Root: filepath.Join(t.TempDir(), "absent")}
	_, err := lister.ListDevices()
	if err == nil {
		t.Fatal("ListDevices succeeded on a missing root")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ListDevices error = %v, want fs.ErrNotExist in the chain", err)
	}
}

func TestLoadIndexFromSysfs(t *testing.T) {
	index, err := usb.LoadIndex(usb.SysfsLister{Root: syntheticSysfs(t)})
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if index.Len() != 3 {
		t.Errorf("Len() = %d, want 3", index.Len())
	}
	if _, ok := index.Get("1:2.3"); !ok {
		t.Error("keyboard not reachable through the index")
	}
	if got := index.Buses(); len(got) != 1 || got[0] != "1" {
		t.Errorf("Buses() = %v, want [1]", got)
	}
}
