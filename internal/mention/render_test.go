// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"strings"
	"testing"
)

func TestLanguageLabel(t *testing.T) {
	tests := []struct {
		relPath string
		want    string
	}{
		{"/src/agent.ts", "ts"},
		{"/main.go", "go"},
		{"/README.md", "md"},
		{"/Config.TOML", "toml"},
		{"/script.py", "py"},
		{"/Makefile", "text"},       // no extension
		{"/archive.tar.gz", "gz"},   // last extension wins
		{"/weird.c++", "text"},      // non-alphanumeric
		{"/data.verylongextension", "text"},
		{"/notes.", "text"},
	}

	for _, tt := range tests {
		if got := languageLabel(tt.relPath); got != tt.want {
			t.Errorf("languageLabel(%q) = %q, want %q", tt.relPath, got, tt.want)
		}
	}
}

func TestRenderBlock_Empty(t *testing.T) {
	if got := RenderBlock(nil); got != "" {
		t.Errorf("RenderBlock(nil) = %q, want empty", got)
	}
	if got := RenderBlock([]File{}); got != "" {
		t.Errorf("RenderBlock([]) = %q, want empty", got)
	}
}

func TestRenderBlock_Format(t *testing.T) {
	files := []File{
		{RelPath: "/src/agent.ts", ByteSize: 42, Content: "export class Agent {}"},
		{RelPath: "/big.log", ByteSize: 9000, Truncated: true, Content: "line\n\n[Truncated]"},
	}

	block := RenderBlock(files)

	if !strings.HasPrefix(block, blockHeading+"\n\n"+blockInstruction) {
		t.Fatalf("block does not open with heading and instruction:\n%s", block)
	}
	if !strings.Contains(block, "#### /src/agent.ts (42 bytes)\n\n```ts\nexport class Agent {}\n```") {
		t.Errorf("first excerpt malformed:\n%s", block)
	}
	if !strings.Contains(block, "#### /big.log (9000 bytes, truncated)\n\n```log\n") {
		t.Errorf("truncated header malformed:\n%s", block)
	}
	// Byte counts always reflect the on-disk size, even when truncated.
	if strings.Contains(block, "(17 bytes") {
		t.Error("header used content length instead of ByteSize")
	}
}

func TestComposeMessage(t *testing.T) {
	message := "Fix the login handler"

	t.Run("empty block leaves message untouched", func(t *testing.T) {
		if got := ComposeMessage(message, ""); got != message {
			t.Errorf("ComposeMessage() = %q, want original message", got)
		}
		if got := ComposeMessage(message, "  \n\t"); got != message {
			t.Errorf("ComposeMessage() with blank block = %q, want original message", got)
		}
	})

	t.Run("block goes first, message under its own heading", func(t *testing.T) {
		block := RenderBlock([]File{{RelPath: "/a.go", ByteSize: 3, Content: "pkg"}})
		got := ComposeMessage(message, block)

		want := block + "\n\n" + userRequestHeading + "\n\n" + message
		if got != want {
			t.Errorf("ComposeMessage() =\n%s\nwant\n%s", got, want)
		}
		if !strings.HasSuffix(got, message) {
			t.Error("original message must close the composed text")
		}
	})
}
