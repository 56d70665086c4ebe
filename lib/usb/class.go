// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import "fmt"

// classNames maps bDeviceClass values to descriptive labels. The
// entries follow the USB-IF class code assignments.
var classNames = map[uint8]string{
	0x00: "per-interface",
	0x01: "audio",
	0x02: "communications",
	0x03: "human interface device",
	0x05: "physical",
	0x06: "image",
	0x07: "printer",
	0x08: "mass storage",
	0x09: "hub",
	0x0a: "CDC data",
	0x0b: "smart card",
	0x0d: "content security",
	0x0e: "video",
	0x0f: "personal healthcare",
	0x10: "audio/video",
	0x11: "billboard",
	0x12: "USB Type-C bridge",
	0xdc: "diagnostic",
	0xe0: "wireless controller",
	0xef: "miscellaneous",
	0xfe: "application-specific",
	0xff: "vendor-specific",
}

// ClassName returns a descriptive label for a device class byte.
// Unassigned codes format as "unknown (0xNN)".
func ClassName(class uint8) string {
	if name, ok := classNames[class]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02x)", class)
}
