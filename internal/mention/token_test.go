// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"reflect"
	"testing"
)

// =============================================================================
// CANONICALIZE TESTS
// =============================================================================

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"src/agent.ts", "/src/agent.ts", true},
		{"./src/agent.ts", "/src/agent.ts", true},
		{"/src/agent.ts", "/src/agent.ts", true},
		{`src\win\path.go`, "/src/win/path.go", true},
		{"src//double//slash.go", "/src/double/slash.go", true},
		{"src/./inner/../file.go", "/src/file.go", true},
		{"README.md,", "/README.md", true},
		{"main.go).", "/main.go", true},
		{`"quoted.txt"`, `/"quoted.txt`, true}, // only trailing quotes stripped
		{"file.go!?", "/file.go", true},

		{"..", "", false},
		{"../secret", "", false},
		{"./..", "", false},
		{"a/../..", "", false},
		{".", "", false},
		{"/", "", false},
		{"...", "", false}, // trailing-dot stripping leaves nothing
	}

	for _, tc := range tests {
		got, ok := Canonicalize(tc.raw)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("Canonicalize(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

// =============================================================================
// EXTRACTION TESTS
// =============================================================================

func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			name:    "single mention",
			message: "Review @src/agent.ts for issues",
			want:    []string{"/src/agent.ts"},
		},
		{
			name:    "mention at start",
			message: "@main.go has a bug",
			want:    []string{"/main.go"},
		},
		{
			name:    "email excluded, traversal excluded",
			message: "Email me at dev@example.com and check @../secret plus @README.md",
			want:    []string{"/README.md"},
		},
		{
			name:    "deduplicated in discovery order",
			message: "@a.go then @b.go then @a.go again",
			want:    []string{"/a.go", "/b.go"},
		},
		{
			name:    "prefix variants collapse to one canonical form",
			message: "@./x.go and @/x.go and @x.go",
			want:    []string{"/x.go"},
		},
		{
			name:    "trailing punctuation stripped",
			message: "see @docs/notes.md, then @src/util.go.",
			want:    []string{"/docs/notes.md", "/src/util.go"},
		},
		{
			// The @ must start the string or follow whitespace; one glued
			// to an opening paren is ordinary text.
			name:    "at glued to preceding text excluded",
			message: "wrap it as (@src/util.go) here",
			want:    nil,
		},
		{
			name:    "adjacent at-tokens only match the first",
			message: "weird @a.go@b.go token",
			want:    []string{"/a.go"},
		},
		{
			name:    "bare at sign ignored",
			message: "just an @ sign",
			want:    nil,
		},
		{
			name:    "no mentions",
			message: "plain message without references",
			want:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractMentions(tc.message)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractMentions(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestExtractMentions_Idempotent(t *testing.T) {
	message := "Check @src/a.go and @b.md plus dev@example.com and @src/a.go"

	first := ExtractMentions(message)
	second := ExtractMentions(message)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("ExtractMentions not idempotent: %v then %v", first, second)
	}
}

// =============================================================================
// EXPLICIT MERGE TESTS
// =============================================================================

func TestMergeExplicit(t *testing.T) {
	tests := []struct {
		name     string
		mentions []string
		explicit []string
		want     []string
	}{
		{
			name:     "appended after in-text mentions",
			mentions: []string{"/a.go"},
			explicit: []string{"/b.go", "c.go"},
			want:     []string{"/a.go", "/b.go", "/c.go"},
		},
		{
			name:     "canonical duplicates skipped",
			mentions: []string{"/a.go"},
			explicit: []string{"./a.go", "/a.go", "/d.go"},
			want:     []string{"/a.go", "/d.go"},
		},
		{
			name:     "invalid explicit mentions dropped",
			mentions: nil,
			explicit: []string{"../escape", ".", "/ok.md"},
			want:     []string{"/ok.md"},
		},
		{
			name:     "nil explicit is a no-op",
			mentions: []string{"/a.go"},
			explicit: nil,
			want:     []string{"/a.go"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mergeExplicit(tc.mentions, tc.explicit)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("mergeExplicit(%v, %v) = %v, want %v", tc.mentions, tc.explicit, got, tc.want)
			}
		})
	}
}
