// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package usb enumerates USB devices and carries their descriptors.
//
// The package is the boundary between the pure topology data
// structures (lib/buspath, lib/topology) and the operating system.
// [DeviceInfo] is the payload type the rest of the tool works with;
// [Lister] is the enumeration seam; [SysfsLister] is the Linux
// implementation, reading /sys/bus/usb/devices the same way the
// kernel's own tooling does. [LoadIndex] ties them together by
// building a topology index from one enumeration pass.
//
// Enumeration is read-only and snapshot-based: a listing reflects the
// bus at one instant, and callers that want freshness list again and
// swap the resulting index. [Fingerprint] supports that pattern by
// digesting a device list so unchanged snapshots can be discarded
// cheaply.
package usb
