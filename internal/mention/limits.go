// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

// =============================================================================
// BUDGET LIMITS
// =============================================================================

// Default budget values. Existing callers depend on these exact numbers and
// on the skip-reason wording derived from them.
const (
	// DefaultMaxFiles is the maximum number of mentions processed per call.
	DefaultMaxFiles = 8

	// DefaultMaxFileBytes is the largest file the loader will read (256 KB).
	DefaultMaxFileBytes = 256 * 1024

	// DefaultMaxFileChars is the per-file character cap after decoding.
	DefaultMaxFileChars = 14000

	// DefaultMaxTotalChars is the cumulative character cap across all files
	// in one call.
	DefaultMaxTotalChars = 60000
)

// binarySniffLen is how many leading bytes are sampled for the NUL-byte
// binary check. This is a cheap heuristic, not a content-type classifier.
const binarySniffLen = 4096

// truncationMarker is appended wherever content was cut, at either the
// per-file or the cumulative boundary.
const truncationMarker = "\n\n[Truncated]"

// Limits holds the budget configuration for one builder. The zero value is
// not useful on its own; use DefaultLimits or fill every field.
type Limits struct {
	// MaxFiles is the mention cap per call.
	MaxFiles int

	// MaxFileBytes is the single-file size cap; larger files are never read.
	MaxFileBytes int64

	// MaxFileChars is the per-file retained character cap.
	MaxFileChars int

	// MaxTotalChars is the cumulative retained character cap.
	MaxTotalChars int
}

// DefaultLimits returns the documented default budgets.
func DefaultLimits() Limits {
	return Limits{
		MaxFiles:      DefaultMaxFiles,
		MaxFileBytes:  DefaultMaxFileBytes,
		MaxFileChars:  DefaultMaxFileChars,
		MaxTotalChars: DefaultMaxTotalChars,
	}
}

// withDefaults replaces non-positive fields with the documented defaults.
func (l Limits) withDefaults() Limits {
	if l.MaxFiles <= 0 {
		l.MaxFiles = DefaultMaxFiles
	}
	if l.MaxFileBytes <= 0 {
		l.MaxFileBytes = DefaultMaxFileBytes
	}
	if l.MaxFileChars <= 0 {
		l.MaxFileChars = DefaultMaxFileChars
	}
	if l.MaxTotalChars <= 0 {
		l.MaxTotalChars = DefaultMaxTotalChars
	}
	return l
}
