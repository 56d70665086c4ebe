// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

import (
	"slices"

	"github.com/zeebo/blake3"
)

// Fingerprint digests a device list into a 32-byte BLAKE3 hash that
// is stable under enumeration order. Two listings fingerprint equal
// exactly when they contain the same devices with the same
// attributes, so pollers can compare fingerprints instead of diffing
// snapshots.
func Fingerprint(devices []DeviceInfo) [32]byte {
	lines := make([]string, 0, len(devices))
	for _, device := range devices {
		// Path key plus the rendered record covers identity and the
		// attributes a change should be visible for.
		lines = append(lines, device.Path().Key()+"\t"+device.String()+"\t"+string(device.Speed))
	}
	slices.Sort(lines)

	hasher := blake3.New()
	for _, line := range lines {
		hasher.WriteString(line)
		hasher.WriteString("\n")
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}
