// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command routing for mentionctx.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdExpand Command = iota
	CmdRepl
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Workspace string   // --workspace / -w
	JSON      bool     // --json
	Quiet     bool     // --quiet / -q
	BlockOnly bool     // --block-only
	Preview   bool     // --preview
	Stdin     bool     // --stdin: read the message from stdin
	Mentions  []string // --mention (repeatable)

	// Message is the joined positional text for expand.
	Message string

	// Subcommand for the config command (show, path, init)
	Subcommand string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `mentionctx - workspace @file mention expansion

Resolves @path references in a message against a sandboxed workspace root,
loads the referenced files under strict size budgets, and prints the message
with a bounded context block prepended.

Usage:
  mentionctx [expand] [flags] [message...]
  mentionctx repl [flags]
  mentionctx config [show|path|init]
  mentionctx version

Commands:
  expand     Expand @file mentions in a message (default)
  repl       Interactive compose loop with input history
  config     Show, locate, or initialize the configuration file
  version    Print version information
  help       Show this help

Flags:
  -w, --workspace PATH   Workspace root (default: config, then cwd)
      --mention PATH     Add an explicit mention (repeatable)
      --stdin            Read the message from stdin
      --block-only       Print only the rendered context block
      --preview          Render the composed message as markdown (TTY only)
      --json             Machine-readable JSON output
  -q, --quiet            Suppress diagnostics on stderr
  -h, --help             Show this help

Examples:
  mentionctx "Review @src/agent.ts for issues"
  mentionctx -w ~/code/app --mention /README.md "Summarize the readme"
  git log -1 --format=%B | mentionctx --stdin --json
  mentionctx repl -w ~/code/app

Budgets (defaults): 8 files, 256 KB/file, 14000 chars/file, 60000 chars total.
Override in ~/.mentionctx/config.toml or with MENTIONCTX_* variables.
`

// Usage prints the usage text to stdout.
func Usage() {
	fmt.Print(usageText)
}

// Parse parses os.Args into a command and its arguments.
func Parse() (Command, *Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses the given argument list. Split out from Parse for tests.
func ParseArgs(argv []string) (Command, *Args) {
	args := &Args{}
	cmd := CmdExpand

	rest := argv
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		switch rest[0] {
		case "expand":
			cmd, rest = CmdExpand, rest[1:]
		case "repl":
			cmd, rest = CmdRepl, rest[1:]
		case "config":
			cmd, rest = CmdConfig, rest[1:]
			if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
				args.Subcommand, rest = rest[0], rest[1:]
			}
		case "version":
			cmd, rest = CmdVersion, rest[1:]
		case "help":
			cmd, rest = CmdHelp, rest[1:]
		}
	}

	var positional []string
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch arg {
		case "-w", "--workspace":
			if i+1 < len(rest) {
				i++
				args.Workspace = rest[i]
			}
		case "--mention":
			if i+1 < len(rest) {
				i++
				args.Mentions = append(args.Mentions, rest[i])
			}
		case "--stdin":
			args.Stdin = true
		case "--block-only":
			args.BlockOnly = true
		case "--preview":
			args.Preview = true
		case "--json":
			args.JSON = true
		case "-q", "--quiet":
			args.Quiet = true
		case "-h", "--help":
			return CmdHelp, args
		case "--version":
			return CmdVersion, args
		default:
			positional = append(positional, arg)
		}
	}

	args.Raw = positional
	args.Message = strings.Join(positional, " ")
	return cmd, args
}
