// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string helpers for the mention engine and CLI.
package util

import "testing"

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxRunes int
		want     string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 8, "hello..."},
		{"tiny limit skips ellipsis", "hello", 2, "he"},
		{"zero limit", "hello", 0, ""},
		{"negative limit", "hello", -1, ""},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
		{"cjk runes", "你好世界你好世界", 5, "你好..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateRunes(tt.input, tt.maxRunes); got != tt.want {
				t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
			}
		})
	}
}

func TestTruncateRunesNoEllipsis(t *testing.T) {
	tests := []struct {
		input    string
		maxRunes int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"héllo", 2, "hé"},
	}

	for _, tt := range tests {
		if got := TruncateRunesNoEllipsis(tt.input, tt.maxRunes); got != tt.want {
			t.Errorf("TruncateRunesNoEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxRunes, got, tt.want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"你好", 2},
	}

	for _, tt := range tests {
		if got := RuneLen(tt.input); got != tt.want {
			t.Errorf("RuneLen(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 5, "ab   "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
		{"你好", 6, "你好  "}, // double-width runes
	}

	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTruncateWidth(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		want     string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 0, ""},
		{"hello", 2, "he"},
	}

	for _, tt := range tests {
		if got := TruncateWidth(tt.input, tt.maxWidth); got != tt.want {
			t.Errorf("TruncateWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
		}
	}
}

func TestFormatByteCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{262144, "256.0 KB"},
		{1572864, "1.5 MB"},
	}

	for _, tt := range tests {
		if got := FormatByteCount(tt.n); got != tt.want {
			t.Errorf("FormatByteCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestIntConversions(t *testing.T) {
	if got := IntToString(42); got != "42" {
		t.Errorf("IntToString(42) = %q", got)
	}
	if got := Int64ToString(-7); got != "-7" {
		t.Errorf("Int64ToString(-7) = %q", got)
	}
}
