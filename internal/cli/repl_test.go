// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl_test.go - Repl helper tests.
package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownCommandNote(t *testing.T) {
	assert.Equal(t, "unknown command: /frobnicate", unknownCommandNote("/frobnicate"))

	// Pasted garbage is bounded to one short error line.
	long := "/" + strings.Repeat("x", 200)
	note := unknownCommandNote(long)
	assert.Equal(t, "unknown command: /"+strings.Repeat("x", 28)+"...", note)
	assert.LessOrEqual(t, len(note), len("unknown command: ")+maxEchoedCommandLen)
}
