// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and conversion helpers shared by the
// mention engine and the CLI.
//
// The truncation helpers are rune-aware: they count characters, not bytes,
// so multi-byte UTF-8 content is never cut mid-character. The width helpers
// account for double-width (CJK) characters via go-runewidth and are used
// for aligning CLI table output.
package util
