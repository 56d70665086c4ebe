// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

// Style controls the visual form of a rendered topology tree: the
// connector glyphs, whether bus headers are printed, and whether
// output is colored by depth.
type Style struct {
	// Colored enables per-depth ANSI coloring of device lines and
	// bus headers.
	Colored bool

	// ShowHeader enables the "Bus NNN" line above each bus block.
	ShowHeader bool

	// Indent is appended to the prefix beneath a last sibling, where
	// no vertical continuation line is needed.
	Indent string

	// Branch connects a device that has further siblings below it.
	Branch string

	// Corner connects the last device under its parent.
	Corner string

	// Vertical continues a parent's branch line past its non-last
	// children.
	Vertical string
}

// DefaultStyle returns the standard style: Unicode box-drawing
// connectors, bus headers, and depth coloring.
func DefaultStyle() Style {
	return Style{
		Colored:    true,
		ShowHeader: true,
		Indent:     "    ",
		Branch:     "├── ",
		Corner:     "└── ",
		Vertical:   "│   ",
	}
}

// ASCIIStyle returns the default style with pure-ASCII connectors,
// for terminals and logs that cannot display box-drawing characters.
// Coloring stays enabled.
func ASCIIStyle() Style {
	style := DefaultStyle()
	style.Branch = "|-- "
	style.Corner = "`-- "
	style.Vertical = "|   "
	return style
}

// PlainStyle returns the default style with coloring disabled. The
// connectors remain Unicode.
func PlainStyle() Style {
	style := DefaultStyle()
	style.Colored = false
	return style
}
