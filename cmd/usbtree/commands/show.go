// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/buspath"
	"github.com/bureau-foundation/usbtree/lib/topology"
	"github.com/bureau-foundation/usbtree/lib/usb"
)

type showParams struct {
	cli.JSONOutput
	sourceParams
}

func showCommand() *cli.Command {
	var params showParams
	return &cli.Command{
		Name:    "show",
		Summary: "Show one device's details",
		Description: `Show everything known about the device at a port path: identity,
position in the topology, class, and negotiated speed. A bare bus
number addresses that bus's root hub.`,
		Usage: "usbtree show <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "The device at bus 1, port 2, port 3",
				Command:     "usbtree show 1:2.3",
			},
			{
				Description: "The root hub of bus 2, as JSON",
				Command:     "usbtree show 2 --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runShow(&params, args)
		},
	}
}

func runShow(params *showParams, args []string) error {
	if len(args) == 0 {
		return cli.Validation("expected a device path argument").
			WithHint("Paths look like '1:2.3' (bus 1, port 2, port 3). Run 'usbtree list' to see connected devices.")
	}
	if len(args) > 1 {
		return cli.Validation("unexpected argument: %s", args[1])
	}

	path, err := parseTarget(args[0])
	if err != nil {
		return cli.Validation("%w: %w", topology.ErrInvalidPath, err)
	}

	index, err := params.index()
	if err != nil {
		return err
	}
	device, err := index.RequireByPath(path)
	if err != nil {
		return cli.NotFound("%w", err).
			WithHint("Run 'usbtree list' to see connected devices.")
	}

	if done, err := params.EmitJSON(device); done {
		return err
	}
	return printDevice(os.Stdout, device)
}

// parseTarget resolves the path argument. The canonical "bus:ports"
// form is tried first; a bare bus number is accepted as shorthand for
// that bus's root, so "2" addresses the same device as "2:". Failure
// reports the canonical-form parse error.
func parseTarget(arg string) (buspath.Path, error) {
	path, err := buspath.Parse(arg)
	if err == nil {
		return path, nil
	}
	if bus, busErr := strconv.ParseUint(arg, 10, 8); busErr == nil {
		return buspath.BusRoot(uint8(bus)), nil
	}
	return buspath.Path{}, err
}

// printDevice writes the aligned key/value detail view. Empty string
// descriptors are omitted rather than printed blank.
func printDevice(w io.Writer, device usb.DeviceInfo) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Path:\t%s\n", device.Path())
	fmt.Fprintf(tw, "Bus:\t%03d\n", device.Bus)
	if len(device.Ports) > 0 {
		fmt.Fprintf(tw, "Port chain:\t%s\n", portChain(device.Ports))
	}
	fmt.Fprintf(tw, "Address:\t%03d\n", device.Address)
	fmt.Fprintf(tw, "ID:\t%s\n", device.ID())
	if device.Manufacturer != "" {
		fmt.Fprintf(tw, "Manufacturer:\t%s\n", device.Manufacturer)
	}
	if device.Product != "" {
		fmt.Fprintf(tw, "Product:\t%s\n", device.Product)
	}
	if device.Serial != "" {
		fmt.Fprintf(tw, "Serial:\t%s\n", device.Serial)
	}
	fmt.Fprintf(tw, "Class:\t0x%02x (%s)\n", device.Class, usb.ClassName(device.Class))
	fmt.Fprintf(tw, "Subclass:\t0x%02x\n", device.Subclass)
	fmt.Fprintf(tw, "Protocol:\t0x%02x\n", device.Protocol)
	if device.Speed != usb.SpeedUnknown {
		fmt.Fprintf(tw, "Speed:\t%s\n", device.Speed)
	}
	if device.IsHub() && device.MaxChildren > 0 {
		fmt.Fprintf(tw, "Ports:\t%d\n", device.MaxChildren)
	}
	return tw.Flush()
}

// portChain formats the port walk from the root hub, "2.3" style.
func portChain(ports []uint8) string {
	parts := make([]string, len(ports))
	for i, port := range ports {
		parts[i] = strconv.Itoa(int(port))
	}
	return strings.Join(parts, ".")
}
