// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"fmt"
	"path"
	"strings"
)

// =============================================================================
// CONTEXT RENDERER
// =============================================================================

const (
	// blockHeading opens the rendered context block.
	blockHeading = "### Referenced Workspace Files"

	// blockInstruction tells the model the snapshots are authoritative.
	blockInstruction = "The file contents below are snapshots of the mentioned workspace files and are authoritative for this request."

	// userRequestHeading separates the context block from the original
	// message in the composed output.
	userRequestHeading = "### User Request"

	// defaultLanguageLabel tags excerpts whose extension yields no usable
	// label.
	defaultLanguageLabel = "text"

	// maxLanguageLabelLen bounds how long an extension-derived label may be.
	maxLanguageLabelLen = 12
)

// RenderBlock formats the loaded files into a single context block, or
// returns the empty string when no file was loaded.
//
// Each file renders as a header line (relative path, byte count, truncation
// annotation) followed by the content in a fenced excerpt tagged with a
// language label inferred from the file extension.
func RenderBlock(files []File) string {
	if len(files) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(blockHeading)
	sb.WriteString("\n\n")
	sb.WriteString(blockInstruction)

	for _, f := range files {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("#### %s (%d bytes", f.RelPath, f.ByteSize))
		if f.Truncated {
			sb.WriteString(", truncated")
		}
		sb.WriteString(")\n\n```")
		sb.WriteString(languageLabel(f.RelPath))
		sb.WriteString("\n")
		sb.WriteString(f.Content)
		sb.WriteString("\n```")
	}

	return sb.String()
}

// ComposeMessage splices a rendered context block in front of the original
// message. An empty (or whitespace-only) block leaves the message unchanged.
func ComposeMessage(message, block string) string {
	if strings.TrimSpace(block) == "" {
		return message
	}
	return block + "\n\n" + userRequestHeading + "\n\n" + message
}

// languageLabel derives a short fence label from the file extension.
// Cosmetic only; anything that is not 1-12 lowercase alphanumerics falls
// back to the generic text label.
func languageLabel(relPath string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(relPath), "."))
	if ext == "" || len(ext) > maxLanguageLabelLen {
		return defaultLanguageLabel
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultLanguageLabel
		}
	}
	return ext
}
