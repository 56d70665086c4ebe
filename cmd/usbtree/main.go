// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/usbtree/cmd/usbtree/cli"
	"github.com/bureau-foundation/usbtree/cmd/usbtree/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like list with a filter
		// that matches nothing) return a cli.ExitError carrying the
		// desired code. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	return commands.Root().Execute(os.Args[1:])
}

// exitCode maps categorized command errors to shell exit codes:
// validation errors (bad paths, bad flag values) exit 2, the usage
// convention, and everything else exits 1.
func exitCode(err error) int {
	var toolError *cli.ToolError
	if errors.As(err, &toolError) && toolError.Category == cli.CategoryValidation {
		return 2
	}
	return 1
}
