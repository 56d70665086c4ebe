// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render draws a device topology index as indented text, one
// block per bus: a "Bus NNN" header, the bus's devices connected with
// box-drawing characters, and a blank separator line. Lines are
// colored by tree depth so sibling levels are easy to tell apart on
// deep hubs.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/usbtree/lib/porttrie"
	"github.com/bureau-foundation/usbtree/lib/topology"
)

// DepthColors is the palette cycled through as the tree deepens. The
// codes are basic ANSI foreground colors, so output stays legible on
// both light and dark terminal themes.
var DepthColors = [10]lipgloss.Color{
	lipgloss.Color("1"),  // red
	lipgloss.Color("3"),  // yellow
	lipgloss.Color("2"),  // green
	lipgloss.Color("6"),  // cyan
	lipgloss.Color("4"),  // blue
	lipgloss.Color("5"),  // magenta
	lipgloss.Color("9"),  // bright red
	lipgloss.Color("11"), // bright yellow
	lipgloss.Color("10"), // bright green
	lipgloss.Color("14"), // bright cyan
}

// TreeRenderer renders a topology index whose payloads know how to
// describe themselves. The renderer reads the index but never
// mutates it.
type TreeRenderer[T fmt.Stringer] struct {
	index       *topology.Index[T]
	style       Style
	depthStyles [len(DepthColors)]lipgloss.Style
}

// NewTreeRenderer creates a renderer for index with the given style.
func NewTreeRenderer[T fmt.Stringer](index *topology.Index[T], style Style) *TreeRenderer[T] {
	renderer := &TreeRenderer[T]{
		index: index,
		style: style,
	}

	// Force the basic ANSI color profile: callers decide whether to
	// color through Style.Colored, and auto-detection would strip the
	// escapes anyway whenever stdout is not a terminal (pipes, tests).
	lip := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI))
	lip.SetColorProfile(termenv.ANSI)
	for i, color := range DepthColors {
		renderer.depthStyles[i] = lip.NewStyle().Foreground(color)
	}
	return renderer
}

// Render writes the full tree to w.
func (r *TreeRenderer[T]) Render(w io.Writer) error {
	_, err := io.WriteString(w, r.String())
	return err
}

// String renders the full tree: every bus in numeric order, each as a
// header line (depth 0) followed by its devices (depth 1 and below)
// and a trailing blank line.
func (r *TreeRenderer[T]) String() string {
	var out strings.Builder
	for _, bus := range r.index.Buses() {
		if r.style.ShowHeader {
			out.WriteString(r.colorize(busLabel(bus), 0))
			out.WriteByte('\n')
		}

		if tree := r.index.BusTree(bus); tree != nil {
			ports := tree.ChildPorts()
			for i, port := range ports {
				if child := tree.Child(port); child != nil {
					r.renderNode(&out, child, "", i == len(ports)-1, 1)
				}
			}
		}

		out.WriteByte('\n')
	}
	return out.String()
}

// renderNode writes one trie node and recurses into its children in
// ascending port order. A node whose key no longer resolves in the
// index produces no line of its own; its subtree still renders. The
// root payload of a bus (depth 0) is represented by the bus header,
// so no connector is drawn for it.
func (r *TreeRenderer[T]) renderNode(out *strings.Builder, node *porttrie.Trie[string], prefix string, isLast bool, depth int) {
	if key, ok := node.Value(); ok {
		if payload, found := r.index.Get(key); found {
			connector := ""
			if depth > 0 {
				if isLast {
					connector = r.style.Corner
				} else {
					connector = r.style.Branch
				}
			}
			out.WriteString(prefix)
			out.WriteString(connector)
			out.WriteString(r.colorize(payload.String(), depth))
			out.WriteByte('\n')
		}
	}

	ports := node.ChildPorts()
	for i, port := range ports {
		child := node.Child(port)
		if child == nil {
			continue
		}
		childPrefix := ""
		if depth > 0 {
			if isLast {
				childPrefix = prefix + r.style.Indent
			} else {
				childPrefix = prefix + r.style.Vertical
			}
		}
		r.renderNode(out, child, childPrefix, i == len(ports)-1, depth+1)
	}
}

// colorize styles text with the palette entry for depth, cycling
// past the palette's end. Uncolored styles return text unchanged.
func (r *TreeRenderer[T]) colorize(text string, depth int) string {
	if !r.style.Colored {
		return text
	}
	return r.depthStyles[depth%len(DepthColors)].Render(text)
}

// busLabel formats the header for a bus key. Canonical keys are
// decimal and render zero-padded; anything else renders verbatim.
func busLabel(bus string) string {
	if n, err := strconv.Atoi(bus); err == nil {
		return fmt.Sprintf("Bus %03d", n)
	}
	return "Bus " + bus
}
