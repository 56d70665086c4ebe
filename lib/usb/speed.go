// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package usb

// Speed identifies a negotiated USB connection speed. The zero value
// means the speed is unknown (not reported, or an unrecognized rate).
type Speed string

// Connection speeds by USB generation.
const (
	SpeedUnknown     Speed = ""
	SpeedLow         Speed = "low"           // 1.5 Mbps (USB 1.0)
	SpeedFull        Speed = "full"          // 12 Mbps (USB 1.1)
	SpeedHigh        Speed = "high"          // 480 Mbps (USB 2.0)
	SpeedSuper       Speed = "super"         // 5 Gbps (USB 3.0)
	SpeedSuperPlus   Speed = "super-plus"    // 10 Gbps (USB 3.1)
	SpeedSuperPlusX2 Speed = "super-plus-x2" // 20 Gbps (USB 3.2 dual-lane)
)

// ParseSpeed maps the sysfs "speed" attribute (the signaling rate in
// megabits per second, as text) to a Speed. Unrecognized rates parse
// as SpeedUnknown.
func ParseSpeed(text string) Speed {
	switch text {
	case "1.5":
		return SpeedLow
	case "12":
		return SpeedFull
	case "480":
		return SpeedHigh
	case "5000":
		return SpeedSuper
	case "10000":
		return SpeedSuperPlus
	case "20000":
		return SpeedSuperPlusX2
	default:
		return SpeedUnknown
	}
}

// String returns the conventional name for the speed with its
// signaling rate.
func (s Speed) String() string {
	switch s {
	case SpeedLow:
		return "Low Speed (1.5 Mbps)"
	case SpeedFull:
		return "Full Speed (12 Mbps)"
	case SpeedHigh:
		return "High Speed (480 Mbps)"
	case SpeedSuper:
		return "Super Speed (5 Gbps)"
	case SpeedSuperPlus:
		return "Super Speed+ (10 Gbps)"
	case SpeedSuperPlusX2:
		return "Super Speed+ (20 Gbps)"
	default:
		return "Unknown Speed"
	}
}
