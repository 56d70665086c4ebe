// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package usb

import (
	"errors"
	"fmt"
)

// ListDevices is unavailable off Linux: sysfs is a Linux kernel
// interface.
func (l SysfsLister) ListDevices() ([]DeviceInfo, error) {
	return nil, fmt.Errorf("enumerating from %s: %w", l.root(), errors.ErrUnsupported)
}
