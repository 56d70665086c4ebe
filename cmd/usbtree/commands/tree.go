// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/render"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

// treeParams are shared between "usbtree tree" and the bare "usbtree"
// invocation, which renders the same view.
type treeParams struct {
	cli.JSONOutput
	sourceParams
	styleParams
	filterParams
}

// busGroup is the JSON shape of one bus: the bus number and its
// devices in topology order.
type busGroup struct {
	Bus     int              `json:"bus"`
	Devices []usb.DeviceInfo `json:"devices"`
}

func treeCommand() *cli.Command {
	var params treeParams
	return &cli.Command{
		Name:    "tree",
		Summary: "Render the USB topology as a per-bus tree",
		Description: `Render every bus as a tree of connected devices, hubs indenting
their downstream ports. This is the default when usbtree is invoked
with no command.

Filters keep matching devices plus the hubs on the path back to the
root, so the tree stays connected.`,
		Usage: "usbtree tree [flags]",
		Examples: []cli.Example{
			{
				Description: "Full topology with colors when stdout is a terminal",
				Command:     "usbtree tree",
			},
			{
				Description: "ASCII connectors for plain-text logs",
				Command:     "usbtree tree --ascii --color never",
			},
			{
				Description: "Only bus 1, showing a specific vendor",
				Command:     "usbtree tree --bus 1 --device 1d6b",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runTree(&params, args)
		},
	}
}

func runTree(params *treeParams, args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	cfg, err := params.activeConfig()
	if err != nil {
		return err
	}
	index, err := params.index()
	if err != nil {
		return err
	}
	index, err = params.filterIndex(index)
	if err != nil {
		return err
	}

	if done, err := params.EmitJSON(busGroups(index)); done {
		return err
	}

	style, err := params.treeStyle(cfg)
	if err != nil {
		return err
	}
	return render.NewTreeRenderer(index, style).Render(os.Stdout)
}

// busGroups flattens the index into its JSON form, one group per bus
// in ascending bus order.
func busGroups(index *topology.Index[usb.DeviceInfo]) []busGroup {
	groups := make([]busGroup, 0, len(index.Buses()))
	for _, bus := range index.Buses() {
		number, _ := strconv.Atoi(bus)
		groups = append(groups, busGroup{
			Bus:     number,
			Devices: index.Subtree(bus),
		})
	}
	return groups
}
