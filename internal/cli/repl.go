// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive compose loop for the mentionctx CLI.
//
// Handles the "mentionctx repl" command: read messages line by line with
// history support, expand their @file mentions, and print the composed
// result. Useful for checking what a message will carry before sending it.
//
// Command: repl [flags]
//
// Slash commands: /help, /workspace <path>, /limits, /quit
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jdarrow/mentionctx/internal/config"
	"github.com/jdarrow/mentionctx/internal/mention"
	"github.com/jdarrow/mentionctx/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ReplCLI provides input history and line editing for the compose loop.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ReplCLI struct {
	line        *liner.State
	historyFile string
}

// NewReplCLI creates a ReplCLI with input history support.
func NewReplCLI() *ReplCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		// Fallback to temp directory if config dir unavailable
		configDir = os.TempDir()
	}

	r := &ReplCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "repl_history"),
	}
	r.LoadHistory()
	return r
}

// LoadHistory loads input history from file.
func (r *ReplCLI) LoadHistory() {
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (r *ReplCLI) ReadInput(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (r *ReplCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (r *ReplCLI) Close() {
	r.SaveHistory()
	r.line.Close()
}

// =============================================================================
// REPL COMMAND
// =============================================================================

// HandleRepl runs the interactive compose loop.
func HandleRepl(args *Args) error {
	if !IsTTY() {
		return fmt.Errorf("stdin is not a terminal; the repl requires interactive input")
	}

	cfg := config.Current()
	root, err := resolveWorkspace(args, cfg)
	if err != nil {
		return err
	}

	limits := cfg.Limits()
	builder, err := mention.NewBuilder(root, &limits)
	if err != nil {
		return err
	}

	input := NewReplCLI()
	defer input.Close()

	fmt.Println(TitleStyle.Render("mentionctx repl"))
	fmt.Printf("workspace: %s\n", ValueStyle.Render(builder.Root()))
	fmt.Println(LabelStyle.Render("Type a message with @file mentions; /help for commands."))

	for {
		line, err := input.ReadInput(PromptStyle.Render("mentionctx> "))
		if err != nil {
			// Ctrl+C (aborted) or Ctrl+D (EOF) exits gracefully
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			exit, newBuilder := handleReplCommand(line, builder, &limits)
			if exit {
				return nil
			}
			if newBuilder != nil {
				builder = newBuilder
			}
			continue
		}

		result := builder.Build(context.Background(), line, nil)
		printDiagnostics(result)

		if !result.HasContext() {
			fmt.Println(LabelStyle.Render("(no file context loaded)"))
			continue
		}
		fmt.Println(mention.ComposeMessage(line, result.Block))
	}
}

// handleReplCommand processes a slash command. Returns exit=true for /quit
// and a replacement builder after /workspace.
func handleReplCommand(line string, builder *mention.Builder, limits *mention.Limits) (exit bool, newBuilder *mention.Builder) {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "/quit", "/exit":
		return true, nil

	case "/help":
		fmt.Println("  /workspace <path>  switch the workspace root")
		fmt.Println("  /limits            show the active budgets")
		fmt.Println("  /quit              exit")

	case "/workspace":
		rest = strings.TrimSpace(rest)
		if rest == "" {
			fmt.Println(WarningStyle.Render("usage: /workspace <path>"))
			break
		}
		b, err := mention.NewBuilder(rest, limits)
		if err != nil {
			fmt.Println(ErrorStyle.Render("cannot switch workspace: " + err.Error()))
			break
		}
		fmt.Printf("workspace: %s\n", ValueStyle.Render(b.Root()))
		return false, b

	case "/limits":
		l := builder.Limits()
		fmt.Printf("  max files:       %s\n", util.IntToString(l.MaxFiles))
		fmt.Printf("  max file bytes:  %s\n", util.FormatByteCount(l.MaxFileBytes))
		fmt.Printf("  max file chars:  %s\n", util.IntToString(l.MaxFileChars))
		fmt.Printf("  max total chars: %s\n", util.IntToString(l.MaxTotalChars))

	default:
		fmt.Println(WarningStyle.Render(unknownCommandNote(cmd)))
	}
	return false, nil
}

// maxEchoedCommandLen bounds how much of an unrecognized slash command is
// echoed back; pasted garbage should not flood the error line.
const maxEchoedCommandLen = 32

func unknownCommandNote(cmd string) string {
	return "unknown command: " + util.TruncateRunes(cmd, maxEchoedCommandLen)
}
