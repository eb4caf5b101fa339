// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection and handling for the mentionctx CLI.
//
// USABILITY: TTY detection for proper terminal handling
//
// Ensures proper behavior across interactive terminals (colors, prompts),
// piped output (no colors, no prompts), and CI environments (NO_COLOR).
package cli

import (
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jdarrow/mentionctx/internal/config"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
// Use this to determine if interactive prompts are possible.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
// Use this to determine if colored output should be used.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// TERMINAL WIDTH
// =============================================================================

const (
	// DefaultTerminalWidth is the fallback width when detection fails
	DefaultTerminalWidth = 80

	// MinTerminalWidth is the minimum width used for wrapping
	MinTerminalWidth = 40
)

// GetTerminalWidth returns the current terminal width.
// Returns DefaultTerminalWidth (80) if width cannot be determined.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	return width
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if colored output should be used.
// Respects the output.color config, the NO_COLOR environment variable
// (https://no-color.org/), FORCE_COLOR, and TTY detection.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		colorsEnabled = colorsEnabledFor(
			config.Current().Output.Color,
			os.Getenv("NO_COLOR"),
			os.Getenv("FORCE_COLOR"),
			IsStdoutTTY(),
		)
	})
	return colorsEnabled
}

// colorsEnabledFor decides color output from the config mode and the
// environment. An explicit "always" or "never" is absolute; "auto" honors
// NO_COLOR first (any non-empty value disables), then FORCE_COLOR, then
// TTY detection.
func colorsEnabledFor(mode, noColor, forceColor string, stdoutTTY bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if noColor != "" {
		return false
	}
	if forceColor != "" {
		return true
	}
	return stdoutTTY
}

// GetColorProfile returns the appropriate termenv color profile.
// Returns Ascii (no colors) for non-TTY or when NO_COLOR is set.
func GetColorProfile() termenv.Profile {
	if !ColorsEnabled() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
