// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for usbtree.
//
// Configuration is optional: every setting has a built-in default and
// the tool runs with no file at all. When a file is used, it comes
// from a single explicit source, either the USBTREE_CONFIG environment
// variable or a --config flag. There is no ~/.config discovery and no
// automatic file search, so the active configuration is always
// auditable.
//
// Key exports:
//
//   - [Config] -- render and watch settings
//   - [Default] -- the built-in defaults
//   - [LoadFile] and [Load] -- strict loading from a path or the
//     environment variable
//   - [LoadActive] -- the lenient entry point commands use: explicit
//     path, then environment, then defaults
//
// This package depends only on lib/render (for mapping settings to a
// tree style).
package config
