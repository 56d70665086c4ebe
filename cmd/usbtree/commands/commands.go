// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the usbtree command tree. Each command is a
// factory returning a cli.Command with its flags bound to a params
// struct; shared flag groups (sysfs source, tree style, device
// filters) are embedded structs reused across commands.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/lib/version"
)

// Root returns the top-level usbtree command. Invoked bare it renders
// the topology tree, the same view as "usbtree tree".
func Root() *cli.Command {
	var params treeParams
	return &cli.Command{
		Name:    "usbtree",
		Summary: "Inspect the host's USB topology",
		Description: `Usbtree reads the kernel's view of connected USB devices from sysfs
and presents it as a per-bus tree, a flat list, or a live updating
view. Invoked without a command it renders the tree.`,
		Usage: "usbtree [flags]\n  usbtree <command> [flags]",
		Examples: []cli.Example{
			{
				Description: "Render the topology tree",
				Command:     "usbtree",
			},
			{
				Description: "Find a device and show its details",
				Command:     "usbtree list --device 046d && usbtree show 1:2.3",
			},
			{
				Description: "Watch devices come and go",
				Command:     "usbtree watch --interval 1s",
			},
		},
		Params: func() any { return &params },
		Subcommands: []*cli.Command{
			treeCommand(),
			listCommand(),
			showCommand(),
			subtreeCommand(),
			busesCommand(),
			watchCommand(),
			versionCommand(),
		},
		Run: func(ctx context.Context, args []string, _ *slog.Logger) error {
			return runTree(&params, args)
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version and build information",
		Usage:   "usbtree version",
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			fmt.Printf("usbtree %s\n", version.Full())
			return nil
		},
	}
}
