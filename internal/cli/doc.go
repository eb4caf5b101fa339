// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing and command handlers for the
// mentionctx command line tool.
//
// Commands:
//
//   - expand (default): resolve @file mentions in a message and print the
//     composed message with its context block
//   - repl: interactive compose loop with input history
//   - config: show, locate, or initialize the configuration file
//   - version, help
//
// Output honors NO_COLOR, FORCE_COLOR, and TTY detection; --json switches
// every command to a machine-readable envelope on stdout with human
// diagnostics on stderr.
package cli
