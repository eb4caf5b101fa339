// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"path"
	"regexp"
	"strings"
)

// =============================================================================
// TOKENIZER
// =============================================================================

// mentionPattern matches an @ token that starts the string or follows
// whitespace. The boundary requirement is what keeps email-like addresses
// (user@example.com) out: their @ is preceded by an alphanumeric, so the
// local part is consumed as ordinary text.
//
// PERFORMANCE: Pre-compiled regex (compiled once at startup)
var mentionPattern = regexp.MustCompile(`(?:^|\s)@([^\s@]+)`)

// trailingPunct holds punctuation that is almost certainly not part of a
// filename when it trails a mention: closing brackets, sentence punctuation,
// and quotes.
const trailingPunct = ")]}>.,;:!?'\""

// Canonicalize converts a raw @ token into its canonical mention form: a
// POSIX-style, slash-prefixed, workspace-relative path. Returns false for
// tokens that normalize to nothing or that try to climb above the root.
func Canonicalize(raw string) (string, bool) {
	token := strings.TrimRight(raw, trailingPunct)

	// Normalize to POSIX separators before any path logic.
	token = strings.ReplaceAll(token, "\\", "/")

	// Strip a single leading ./ or / prefix; the canonical form re-adds
	// exactly one slash below.
	switch {
	case strings.HasPrefix(token, "./"):
		token = token[2:]
	case strings.HasPrefix(token, "/"):
		token = token[1:]
	}

	cleaned := path.Clean(token)
	if cleaned == "" || cleaned == "." {
		return "", false
	}
	// Anything that still points above the root is discarded here, before
	// any file-system access. The sandbox check remains authoritative.
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", false
	}

	return "/" + cleaned, true
}

// ExtractMentions scans a message for @ tokens and returns the ordered,
// deduplicated list of canonical mention paths. Order is first-seen order;
// the canonical form is the uniqueness key.
func ExtractMentions(message string) []string {
	matches := mentionPattern.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var mentions []string
	for _, m := range matches {
		canonical, ok := Canonicalize(m[1])
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		mentions = append(mentions, canonical)
	}
	return mentions
}

// mergeExplicit appends caller-supplied mention strings to an extracted
// mention list, running each through the same normalization and skipping
// canonical duplicates. Explicit mentions keep their given order, after the
// in-text mentions.
func mergeExplicit(mentions, explicit []string) []string {
	if len(explicit) == 0 {
		return mentions
	}

	seen := make(map[string]struct{}, len(mentions)+len(explicit))
	for _, m := range mentions {
		seen[m] = struct{}{}
	}
	merged := mentions
	for _, raw := range explicit {
		canonical, ok := Canonicalize(raw)
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		merged = append(merged, canonical)
	}
	return merged
}
