// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/buspath"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

type busesParams struct {
	cli.JSONOutput
	sourceParams
}

// busSummary is one line of buses output: the bus number, how many
// devices it carries (root hub included), and the root hub's name.
type busSummary struct {
	Bus     int    `json:"bus"`
	Devices int    `json:"devices"`
	RootHub string `json:"root_hub,omitempty"`
}

func busesCommand() *cli.Command {
	var params busesParams
	return &cli.Command{
		Name:    "buses",
		Summary: "Summarize the host's USB buses",
		Description: `Print one line per bus: its number, device count, and root hub.
Useful for a quick inventory before drilling into one bus with
"usbtree tree --bus N".`,
		Usage: "usbtree buses [flags]",
		Examples: []cli.Example{
			{
				Description: "Bus inventory",
				Command:     "usbtree buses",
			},
			{
				Description: "As JSON for scripts",
				Command:     "usbtree buses --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runBuses(&params, args)
		},
	}
}

func runBuses(params *busesParams, args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	index, err := params.index()
	if err != nil {
		return err
	}
	summaries := busSummaries(index)

	if done, err := params.EmitJSON(summaries); done {
		return err
	}
	for _, summary := range summaries {
		if summary.RootHub != "" {
			fmt.Printf("Bus %03d: %d devices (%s)\n", summary.Bus, summary.Devices, summary.RootHub)
		} else {
			fmt.Printf("Bus %03d: %d devices\n", summary.Bus, summary.Devices)
		}
	}
	return nil
}

// busSummaries collapses the index into per-bus counts in ascending
// bus order.
func busSummaries(index *topology.Index[usb.DeviceInfo]) []busSummary {
	summaries := make([]busSummary, 0, len(index.Buses()))
	for _, bus := range index.Buses() {
		number, _ := strconv.Atoi(bus)
		summary := busSummary{
			Bus:     number,
			Devices: len(index.Subtree(bus)),
		}
		// The root hub is keyed by its bus-root path ("1:"), not the
		// bare bus identifier Buses() yields.
		if rootHub, ok := index.GetByPath(buspath.BusRoot(uint8(number))); ok {
			summary.RootHub = rootHub.DisplayName()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
