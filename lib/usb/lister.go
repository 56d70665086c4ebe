// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import (
	"fmt"

	"github.com/bureau-foundation/usbtree/lib/topology"
)

// Lister enumerates the currently attached USB devices. Listing takes
// a snapshot; it holds no state between calls.
type Lister interface {
	ListDevices() ([]DeviceInfo, error)
}

// LoadIndex enumerates devices through the lister and builds a
// topology index keyed by each device's path. Every command that
// needs the device tree starts here.
func LoadIndex(lister Lister) (*topology.Index[DeviceInfo], error) {
	devices, err := lister.ListDevices()
	if err != nil {
		return nil, fmt.Errorf("listing usb devices: %w", err)
	}

	index := topology.New[DeviceInfo]()
	for _, device := range devices {
		index.InsertPath(device.Path(), device)
	}
	return index, nil
}
