// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli_test.go - CLI argument parsing tests.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args defaults to expand", nil, CmdExpand},
		{"explicit expand", []string{"expand", "hi"}, CmdExpand},
		{"bare message defaults to expand", []string{"fix @main.go"}, CmdExpand},
		{"repl", []string{"repl"}, CmdRepl},
		{"config", []string{"config"}, CmdConfig},
		{"version", []string{"version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag wins", []string{"expand", "-h"}, CmdHelp},
		{"version flag wins", []string{"--version"}, CmdVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestParseArgs_ExpandFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{
		"-w", "/srv/app",
		"--mention", "/README.md",
		"--mention", "/docs/setup.md",
		"--json",
		"-q",
		"Review", "@src/agent.ts", "please",
	})

	assert.Equal(t, CmdExpand, cmd)
	assert.Equal(t, "/srv/app", args.Workspace)
	assert.Equal(t, []string{"/README.md", "/docs/setup.md"}, args.Mentions)
	assert.True(t, args.JSON)
	assert.True(t, args.Quiet)
	assert.Equal(t, "Review @src/agent.ts please", args.Message)
}

func TestParseArgs_StdinAndBlockOnly(t *testing.T) {
	_, args := ParseArgs([]string{"--stdin", "--block-only", "--preview"})

	assert.True(t, args.Stdin)
	assert.True(t, args.BlockOnly)
	assert.True(t, args.Preview)
	assert.Empty(t, args.Message)
}

func TestParseArgs_ConfigSubcommand(t *testing.T) {
	tests := []struct {
		argv []string
		want string
	}{
		{[]string{"config"}, ""},
		{[]string{"config", "show"}, "show"},
		{[]string{"config", "path"}, "path"},
		{[]string{"config", "init"}, "init"},
	}

	for _, tt := range tests {
		cmd, args := ParseArgs(tt.argv)
		assert.Equal(t, CmdConfig, cmd)
		assert.Equal(t, tt.want, args.Subcommand)
	}
}

func TestParseArgs_MissingFlagValue(t *testing.T) {
	// A trailing flag with no value must not panic or consume anything.
	_, args := ParseArgs([]string{"--workspace"})
	assert.Empty(t, args.Workspace)

	_, args = ParseArgs([]string{"--mention"})
	assert.Empty(t, args.Mentions)
}
