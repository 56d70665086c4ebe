// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bureau-foundation/usbtree/lib/buspath"
)

// ListDevices reads one directory entry per device under the sysfs
// root. Entry names encode the topology: "usbN" is the root hub of
// bus N, "B-P.Q.R" is the device reached through ports P, Q, R on
// bus B. Interface entries (names containing ':') and entries that
// do not match either form are skipped.
func (l SysfsLister) ListDevices() ([]DeviceInfo, error) {
	root := l.root()
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var devices []DeviceInfo
	for _, entry := range entries {
		name := entry.Name()
		if strings.Contains(name, ":") {
			continue
		}
		path, ok := parseEntryName(name)
		if !ok {
			continue
		}
		devices = append(devices, readDevice(filepath.Join(root, name), path))
	}
	return devices, nil
}

// parseEntryName maps a sysfs entry name to a topology path. Returns
// false for names in neither the root-hub nor the port-chain form.
func parseEntryName(name string) (buspath.Path, bool) {
	if rest, ok := strings.CutPrefix(name, "usb"); ok {
		bus, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return buspath.Path{}, false
		}
		return buspath.BusRoot(uint8(bus)), true
	}

	busText, chainText, found := strings.Cut(name, "-")
	if !found {
		return buspath.Path{}, false
	}
	bus, err := strconv.ParseUint(busText, 10, 8)
	if err != nil {
		return buspath.Path{}, false
	}
	ports := make([]uint8, 0, strings.Count(chainText, ".")+1)
	for _, token := range strings.Split(chainText, ".") {
		port, err := strconv.ParseUint(token, 10, 8)
		if err != nil {
			return buspath.Path{}, false
		}
		ports = append(ports, uint8(port))
	}
	return buspath.New(uint8(bus), ports...), true
}

// readDevice collects a device's attributes from its sysfs directory.
// Missing or unreadable attribute files produce zero-valued fields
// rather than failures: a half-enumerated device is still worth
// showing in the tree.
func readDevice(dir string, path buspath.Path) DeviceInfo {
	return DeviceInfo{
		Bus:          path.Bus,
		Ports:        path.Ports,
		Address:      uint8(readSysfsInt(filepath.Join(dir, "devnum"))),
		VendorID:     uint16(readSysfsHex(filepath.Join(dir, "idVendor"))),
		ProductID:    uint16(readSysfsHex(filepath.Join(dir, "idProduct"))),
		Manufacturer: readSysfsString(filepath.Join(dir, "manufacturer")),
		Product:      readSysfsString(filepath.Join(dir, "product")),
		Serial:       readSysfsString(filepath.Join(dir, "serial")),
		Class:        uint8(readSysfsHex(filepath.Join(dir, "bDeviceClass"))),
		Subclass:     uint8(readSysfsHex(filepath.Join(dir, "bDeviceSubClass"))),
		Protocol:     uint8(readSysfsHex(filepath.Join(dir, "bDeviceProtocol"))),
		Speed:        ParseSpeed(readSysfsString(filepath.Join(dir, "speed"))),
		MaxChildren:  readSysfsInt(filepath.Join(dir, "maxchild")),
	}
}

// readSysfsString reads a single-line sysfs file and returns its
// trimmed content. Returns "" on any error.
func readSysfsString(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readSysfsInt reads a decimal integer from a sysfs file. Returns 0
// on error.
func readSysfsInt(path string) int {
	value := readSysfsString(path)
	if value == "" {
		return 0
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

// readSysfsHex reads a hexadecimal value from a sysfs file (the
// descriptor attributes are written without a 0x prefix). Returns 0
// on error.
func readSysfsHex(path string) uint64 {
	value := readSysfsString(path)
	if value == "" {
		return 0
	}
	result, err := strconv.ParseUint(value, 16, 64)
	if err != nil {
		return 0
	}
	return result
}
