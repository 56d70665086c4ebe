// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the usbtree binary.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a params struct factory, and a
// Run function. Commands are assembled into a tree in cmd/usbtree/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Flags are declared as struct tags on a command's params struct and
// bound to a [pflag.FlagSet] by [BindFlags]. Shared flag groups (the
// render style flags, the sysfs source flags) are plain structs embedded
// into each command's params struct; BindFlags recurses into embedded
// structs, so a group declared once serves every command that embeds it.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Commands that support machine-readable output embed [JSONOutput] in
// their params struct and call [JSONOutput.EmitJSON]. Failures travel as
// categorized [ToolError] values so the binary's main function can map
// them to exit codes without parsing message text.
package cli
