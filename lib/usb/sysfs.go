// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

// DefaultSysfsRoot is the directory the kernel populates with one
// entry per USB device and interface.
const DefaultSysfsRoot = "/sys/bus/usb/devices"

// SysfsLister enumerates devices from the kernel's sysfs tree. The
// zero value reads the standard location; tests and containers point
// Root at an alternate tree with the same layout.
type SysfsLister struct {
	// Root overrides DefaultSysfsRoot when non-empty.
	Root string
}

func (l SysfsLister) root() string {
	if l.Root != "" {
		return l.Root
	}
	return DefaultSysfsRoot
}
