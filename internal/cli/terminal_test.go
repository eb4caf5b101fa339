// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal_test.go - Color decision tests.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsEnabledFor(t *testing.T) {
	tests := []struct {
		name       string
		mode       string
		noColor    string
		forceColor string
		stdoutTTY  bool
		want       bool
	}{
		{"always wins over pipe", "always", "", "", false, true},
		{"always wins over NO_COLOR", "always", "1", "", true, true},
		{"never wins over tty", "never", "", "", true, false},
		{"never wins over FORCE_COLOR", "never", "", "1", true, false},
		{"auto on tty", "auto", "", "", true, true},
		{"auto on pipe", "auto", "", "", false, false},
		{"auto NO_COLOR disables", "auto", "1", "", true, false},
		{"auto NO_COLOR beats FORCE_COLOR", "auto", "1", "1", true, false},
		{"auto FORCE_COLOR enables on pipe", "auto", "", "1", false, true},
		{"unknown mode behaves like auto", "", "", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorsEnabledFor(tt.mode, tt.noColor, tt.forceColor, tt.stdoutTTY)
			assert.Equal(t, tt.want, got)
		})
	}
}
