// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides conversion helpers for the mention engine and CLI.
package util

import "strconv"

// IntToString converts an int to string.
// Uses strconv.Itoa for optimal performance.
func IntToString(i int) string {
	return strconv.Itoa(i)
}

// Int64ToString converts an int64 to string.
// Uses strconv.FormatInt for optimal performance.
func Int64ToString(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatByteCount renders a byte count as a short human-readable string
// (e.g. "262144 B", "256.0 KB", "1.5 MB").
func FormatByteCount(n int64) string {
	const unit = 1024
	if n < unit {
		return Int64ToString(n) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	value := float64(n) / float64(div)
	suffix := [...]string{"KB", "MB", "GB", "TB"}[exp]
	return strconv.FormatFloat(value, 'f', 1, 64) + " " + suffix
}
