// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"

	"github.com/muesli/termenv"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/config"
	"github.com/bureau-foundation/usbtree/lib/render"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

// sourceParams locates device enumeration and configuration. Every
// enumeration-backed command embeds it, so a synthetic sysfs tree (or
// a bind-mounted host view inside a container) can stand in for the
// real one.
type sourceParams struct {
	Sysfs  string `flag:"sysfs" desc:"sysfs devices directory" default:"/sys/bus/usb/devices"`
	Config string `flag:"config" desc:"config file path (overrides $USBTREE_CONFIG)"`
}

// lister returns the device source for the configured sysfs root.
func (p *sourceParams) lister() usb.Lister {
	return usb.SysfsLister{Root: p.Sysfs}
}

// index enumerates the current devices into a topology index.
func (p *sourceParams) index() (*topology.Index[usb.DeviceInfo], error) {
	index, err := usb.LoadIndex(p.lister())
	if err != nil {
		return nil, cli.Internal("%w", err)
	}
	return index, nil
}

// activeConfig loads the configuration named by --config, falling back
// to $USBTREE_CONFIG and then to built-in defaults.
func (p *sourceParams) activeConfig() (*config.Config, error) {
	cfg, err := config.LoadActive(p.Config)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return cfg, nil
}

// styleParams are the tree drawing flags shared by the tree, subtree,
// and watch commands.
type styleParams struct {
	ASCII    bool   `flag:"ascii" desc:"draw connectors with ASCII characters"`
	Plain    bool   `flag:"plain" desc:"disable colors (same as --color never)"`
	Color    string `flag:"color" desc:"when to color output: auto, always, or never (default from config)"`
	NoHeader bool   `flag:"no-header" desc:"omit the Bus NNN header lines"`
	Indent   string `flag:"indent" desc:"per-level indent under last siblings (default from config)"`
}

// treeStyle resolves the effective style: configuration first, then
// command-line overrides.
func (p *styleParams) treeStyle(cfg *config.Config) (render.Style, error) {
	colored, err := p.colorEnabled(cfg)
	if err != nil {
		return render.Style{}, err
	}
	style := cfg.Render.TreeStyle(colored)
	if p.ASCII {
		ascii := render.ASCIIStyle()
		style.Branch = ascii.Branch
		style.Corner = ascii.Corner
		style.Vertical = ascii.Vertical
	}
	if p.NoHeader {
		style.ShowHeader = false
	}
	if p.Indent != "" {
		style.Indent = p.Indent
	}
	return style, nil
}

// colorEnabled turns the color mode into a concrete decision. The
// --plain shortcut wins, then an explicit --color, then the config.
// Mode "auto" colors when stdout advertises color support (termenv
// profile detection, which also honors NO_COLOR).
func (p *styleParams) colorEnabled(cfg *config.Config) (bool, error) {
	mode := cfg.Render.Color
	if p.Color != "" {
		mode = p.Color
	}
	if p.Plain {
		mode = config.ColorNever
	}
	switch mode {
	case config.ColorAlways:
		return true, nil
	case config.ColorNever:
		return false, nil
	case config.ColorAuto:
		return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii, nil
	default:
		return false, cli.Validation("invalid color mode %q (use auto, always, or never)", mode)
	}
}

// filterParams narrow output to matching devices. Shared by the tree
// and list commands.
type filterParams struct {
	Bus     int      `flag:"bus" desc:"only include devices on this bus number" default:"-1"`
	Devices []string `flag:"device,d" desc:"only include devices matching vendor[:product] hex IDs (repeatable)"`
}

// active reports whether any narrowing was requested.
func (p *filterParams) active() bool {
	return p.Bus >= 0 || len(p.Devices) > 0
}

// compile parses the --device specs.
func (p *filterParams) compile() ([]usb.IDFilter, error) {
	filters := make([]usb.IDFilter, 0, len(p.Devices))
	for _, spec := range p.Devices {
		filter, err := usb.ParseIDFilter(spec)
		if err != nil {
			return nil, cli.Validation("%w", err)
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// matches applies the bus and ID filters to one device.
func (p *filterParams) matches(device usb.DeviceInfo, filters []usb.IDFilter) bool {
	if p.Bus >= 0 && int(device.Bus) != p.Bus {
		return false
	}
	return usb.MatchesAny(device, filters)
}

// filterIndex rebuilds the index keeping matching devices plus their
// ancestors, so a filtered tree keeps its connective spine back to
// the root hub.
func (p *filterParams) filterIndex(index *topology.Index[usb.DeviceInfo]) (*topology.Index[usb.DeviceInfo], error) {
	if !p.active() {
		return index, nil
	}
	filters, err := p.compile()
	if err != nil {
		return nil, err
	}

	filtered := topology.New[usb.DeviceInfo]()
	for _, device := range index.Devices() {
		if !p.matches(device, filters) {
			continue
		}
		filtered.InsertPath(device.Path(), device)

		for path, ok := device.Path().Parent(); ok; path, ok = path.Parent() {
			if ancestor, found := index.GetByPath(path); found {
				filtered.InsertPath(path, ancestor)
			}
		}
	}
	return filtered, nil
}
