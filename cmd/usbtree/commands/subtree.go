// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
)

type subtreeParams struct {
	cli.JSONOutput
	sourceParams
}

func subtreeCommand() *cli.Command {
	var params subtreeParams
	return &cli.Command{
		Name:    "subtree",
		Summary: "List a device and everything downstream of it",
		Description: `List the device at a path followed by every device reachable through
it, in topology order. A bare bus number selects the whole bus. An
unknown path lists nothing.`,
		Usage: "usbtree subtree <path> [flags]",
		Examples: []cli.Example{
			{
				Description: "Everything hanging off the hub at bus 1 port 2",
				Command:     "usbtree subtree 1:2",
			},
			{
				Description: "All of bus 3",
				Command:     "usbtree subtree 3",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runSubtree(&params, args)
		},
	}
}

func runSubtree(params *subtreeParams, args []string) error {
	if len(args) == 0 {
		return cli.Validation("expected a device path argument").
			WithHint("Pass a full path like '1:2' or a bare bus number like '1'.")
	}
	if len(args) > 1 {
		return cli.Validation("unexpected argument: %s", args[1])
	}

	index, err := params.index()
	if err != nil {
		return err
	}
	devices := index.Subtree(args[0])

	if done, err := params.EmitJSON(devices); done {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	for _, device := range devices {
		fmt.Fprintf(tw, "%s\t%s\n", device.Path(), device)
	}
	return tw.Flush()
}
