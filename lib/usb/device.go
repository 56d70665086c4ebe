// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import (
	"fmt"

	"github.com/bureau-foundation/usbtree/lib/buspath"
)

// deviceClassHub is the bDeviceClass value assigned to hubs by the
// USB specification.
const deviceClassHub = 0x09

// DeviceInfo describes one enumerated USB device. All fields come
// from the device descriptor and sysfs attributes; string fields are
// empty when the device does not report them.
type DeviceInfo struct {
	// Bus is the number of the bus the device is attached to.
	Bus uint8 `json:"bus"`

	// Ports is the port chain from the root hub to the device. Empty
	// for a bus's root hub itself.
	Ports []uint8 `json:"ports,omitempty"`

	// Address is the device's address on its bus, assigned at
	// enumeration time. Addresses are unique per bus but not stable
	// across replug.
	Address uint8 `json:"address"`

	// VendorID and ProductID identify the device model (the idVendor
	// and idProduct descriptor fields).
	VendorID  uint16 `json:"vendor_id"`
	ProductID uint16 `json:"product_id"`

	// Manufacturer, Product, and Serial are the device's descriptor
	// strings. Devices may omit any of them.
	Manufacturer string `json:"manufacturer,omitempty"`
	Product      string `json:"product,omitempty"`
	Serial       string `json:"serial,omitempty"`

	// Class, Subclass, and Protocol are the device-level class triple
	// (bDeviceClass and friends). A Class of zero defers class
	// information to the interface descriptors.
	Class    uint8 `json:"class"`
	Subclass uint8 `json:"subclass"`
	Protocol uint8 `json:"protocol"`

	// Speed is the negotiated connection speed, when known.
	Speed Speed `json:"speed,omitempty"`

	// MaxChildren is the number of downstream ports, nonzero only for
	// hubs.
	MaxChildren int `json:"max_children,omitempty"`
}

// Path returns the device's topology location.
func (d DeviceInfo) Path() buspath.Path {
	return buspath.New(d.Bus, d.Ports...)
}

// ID returns the conventional "vvvv:pppp" lowercase-hex identifier.
func (d DeviceInfo) ID() string {
	return fmt.Sprintf("%04x:%04x", d.VendorID, d.ProductID)
}

// IsHub reports whether the device-level class marks this device as
// a hub.
func (d DeviceInfo) IsHub() bool {
	return d.Class == deviceClassHub
}

// DisplayName returns the product string, or a placeholder when the
// device reports none.
func (d DeviceInfo) DisplayName() string {
	if d.Product == "" {
		return "Unknown Device"
	}
	return d.Product
}

// String formats the device the way tree and list output shows it:
// zero-padded address, vendor:product identifier, display name.
func (d DeviceInfo) String() string {
	return fmt.Sprintf("Device %03d: ID %s %s", d.Address, d.ID(), d.DisplayName())
}
