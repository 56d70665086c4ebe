// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

type listParams struct {
	cli.JSONOutput
	sourceParams
	filterParams
}

func listCommand() *cli.Command {
	var params listParams
	return &cli.Command{
		Name:    "list",
		Summary: "List devices flat, one line per device",
		Description: `List every connected device in lsusb's one-line format, sorted by
bus then device address. With filters and no matching devices the
exit code is 1, so scripts can probe for hardware.`,
		Usage: "usbtree list [flags]",
		Examples: []cli.Example{
			{
				Description: "All devices",
				Command:     "usbtree list",
			},
			{
				Description: "Check whether a specific device is connected",
				Command:     "usbtree list --device 046d:c52b",
			},
			{
				Description: "Devices on bus 2 as JSON",
				Command:     "usbtree list --bus 2 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runList(&params, args)
		},
	}
}

func runList(params *listParams, args []string) error {
	if len(args) > 0 {
		return cli.Validation("unexpected argument: %s", args[0])
	}

	index, err := params.index()
	if err != nil {
		return err
	}
	filters, err := params.compile()
	if err != nil {
		return err
	}

	devices := make([]usb.DeviceInfo, 0, index.Len())
	for _, device := range index.Devices() {
		if params.matches(device, filters) {
			devices = append(devices, device)
		}
	}
	slices.SortFunc(devices, func(a, b usb.DeviceInfo) int {
		if c := cmp.Compare(a.Bus, b.Bus); c != 0 {
			return c
		}
		return cmp.Compare(a.Address, b.Address)
	})

	if done, err := params.EmitJSON(devices); done {
		if err != nil {
			return err
		}
	} else {
		for _, device := range devices {
			fmt.Printf("Bus %03d %s\n", device.Bus, device)
		}
	}

	// No matches with filters in force means the probe failed; signal
	// it the way lsusb -d does.
	if len(devices) == 0 && params.active() {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
