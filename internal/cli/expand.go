// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// expand.go - Expand command handler for the mentionctx CLI.
//
// Handles the "mentionctx expand" command (also the default command): build
// the workspace mention context for a message and print the composed result.
//
// Command: expand [flags] [message...]
//
// Examples:
//   mentionctx "Review @src/agent.ts for issues"
//   mentionctx expand -w ~/code/app --mention /README.md "Summarize"
//   git log -1 --format=%B | mentionctx --stdin --json
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/jdarrow/mentionctx/internal/config"
	"github.com/jdarrow/mentionctx/internal/mention"
	"github.com/jdarrow/mentionctx/internal/util"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer renders the composed message for --preview output. Built
// lazily so the wrap column can come from configuration.
var (
	markdownRenderer     *glamour.TermRenderer
	markdownRendererOnce sync.Once
)

// markdownWrap resolves the configured wrap column; 0 (or negative) means
// the current terminal width.
func markdownWrap(wrap int) int {
	if wrap <= 0 {
		return GetTerminalWidth()
	}
	return wrap
}

// renderMarkdown renders markdown content for terminal display, word-wrapped
// at the given column. Returns the original content if rendering fails or
// the renderer is unavailable.
func renderMarkdown(content string, wrap int) string {
	markdownRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(markdownWrap(wrap)),
		)
		if err == nil {
			markdownRenderer = r
		}
	})
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// =============================================================================
// EXPAND COMMAND
// =============================================================================

// expandFileInfo is the per-file payload for JSON output.
type expandFileInfo struct {
	Mention   string `json:"mention"`
	Path      string `json:"path"`
	Bytes     int64  `json:"bytes"`
	Chars     int    `json:"chars"`
	Truncated bool   `json:"truncated"`
}

// expandSkipInfo is the per-skip payload for JSON output.
type expandSkipInfo struct {
	Mention string `json:"mention"`
	Reason  string `json:"reason"`
}

// expandData is the JSON payload for the expand command.
type expandData struct {
	Workspace string           `json:"workspace"`
	Mentions  []string         `json:"mentions"`
	Files     []expandFileInfo `json:"files"`
	Skipped   []expandSkipInfo `json:"skipped"`
	Block     string           `json:"block,omitempty"`
	Composed  string           `json:"composed"`
}

// HandleExpand runs the expand command.
func HandleExpand(args *Args) error {
	cfg := config.Current()

	root, err := resolveWorkspace(args, cfg)
	if err != nil {
		return err
	}

	message, err := readMessage(args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" && len(args.Mentions) == 0 {
		return errors.New("no message given; see 'mentionctx help'")
	}

	limits := cfg.Limits()
	builder, err := mention.NewBuilder(root, &limits)
	if err != nil {
		return err
	}

	result := builder.Build(context.Background(), message, args.Mentions)
	composed := mention.ComposeMessage(message, result.Block)

	if args.JSON {
		return printExpandJSON(builder.Root(), result, composed)
	}

	if !args.Quiet {
		printDiagnostics(result)
	}

	switch {
	case args.BlockOnly:
		if result.Block != "" {
			fmt.Println(result.Block)
		}
	case previewRequested(args, cfg) && IsStdoutTTY():
		fmt.Print(renderMarkdown(composed, cfg.Output.Wrap))
	default:
		fmt.Println(composed)
	}
	return nil
}

// previewRequested reports whether the composed message should render as
// markdown: the --preview flag, or output.preview in the config.
func previewRequested(args *Args, cfg *config.Config) bool {
	return args.Preview || cfg.Output.Preview
}

// resolveWorkspace picks the workspace root: flag, then config, then cwd.
func resolveWorkspace(args *Args, cfg *config.Config) (string, error) {
	if args.Workspace != "" {
		return args.Workspace, nil
	}
	if cfg.Workspace.Root != "" {
		return cfg.Workspace.Root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

// readMessage returns the message text from the positional args, or from
// stdin when --stdin was given or input is piped with no positional text.
func readMessage(args *Args) (string, error) {
	if args.Stdin || (args.Message == "" && !IsTTY()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read message from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	return args.Message, nil
}

func printExpandJSON(root string, result *mention.Result, composed string) error {
	data := expandData{
		Workspace: root,
		Mentions:  result.Mentions,
		Files:     make([]expandFileInfo, 0, len(result.Files)),
		Skipped:   make([]expandSkipInfo, 0, len(result.Skipped)),
		Block:     result.Block,
		Composed:  composed,
	}
	for _, f := range result.Files {
		data.Files = append(data.Files, expandFileInfo{
			Mention:   f.Mention,
			Path:      f.AbsPath,
			Bytes:     f.ByteSize,
			Chars:     util.RuneLen(f.Content),
			Truncated: f.Truncated,
		})
	}
	for _, s := range result.Skipped {
		data.Skipped = append(data.Skipped, expandSkipInfo{Mention: s.Mention, Reason: s.Reason})
	}
	return NewJSONResponse("expand", data).Print()
}

// printDiagnostics writes the per-mention outcome summary to stderr.
func printDiagnostics(result *mention.Result) {
	writeDiagnostics(os.Stderr, result, GetTerminalWidth())
}

// writeDiagnostics writes one aligned line per mention outcome. The note
// column (byte counts, skip reasons) is clipped so lines stay within the
// terminal width.
func writeDiagnostics(w io.Writer, result *mention.Result, termWidth int) {
	if len(result.Mentions) == 0 {
		return
	}

	width := 0
	for _, f := range result.Files {
		if pw := util.StringWidth(f.RelPath); pw > width {
			width = pw
		}
	}
	for _, s := range result.Skipped {
		if pw := util.StringWidth(s.Mention); pw > width {
			width = pw
		}
	}

	// tag + space + path column + two-space gap
	noteWidth := termWidth - len("[skipped]") - 1 - width - 2
	if noteWidth < MinTerminalWidth/2 {
		noteWidth = MinTerminalWidth / 2
	}

	for _, f := range result.Files {
		note := util.FormatByteCount(f.ByteSize)
		if f.Truncated {
			note += ", truncated"
		}
		fmt.Fprintf(w, "%s %s  %s\n",
			SuccessStyle.Render("[loaded]"),
			util.PadRight(f.RelPath, width),
			LabelStyle.Render(util.TruncateWidth(note, noteWidth)))
	}
	for _, s := range result.Skipped {
		fmt.Fprintf(w, "%s %s  %s\n",
			WarningStyle.Render("[skipped]"),
			util.PadRight(s.Mention, width),
			LabelStyle.Render(util.TruncateWidth(s.Reason, noteWidth)))
	}
}
