// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Usbtree renders the host's USB device topology as a per-bus tree, in
// the spirit of lsusb -t. It reads the kernel's sysfs view of connected
// devices, indexes them by bus and port chain, and offers tree, flat
// list, single-device, and live-watch views. Run 'usbtree --help' for
// the command reference.
package main
