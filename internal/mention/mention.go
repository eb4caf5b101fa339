// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"context"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// File is a workspace file that was successfully loaded for one mention.
// It is never mutated after the loader creates it.
type File struct {
	// Mention is the canonical mention string that produced this file.
	Mention string

	// RelPath is the root-relative path, equal to the mention string.
	RelPath string

	// AbsPath is the absolute resolved path used for the read.
	AbsPath string

	// ByteSize is the file's size on disk, before any truncation.
	ByteSize int64

	// Truncated reports whether the content was cut at either the per-file
	// or the cumulative budget boundary.
	Truncated bool

	// Content is the final (possibly truncated) text.
	Content string
}

// Skipped is a mention that did not yield usable content, with a stable,
// user-facing reason.
type Skipped struct {
	Mention string
	Reason  string
}

// Result is the aggregate outcome of one Build call.
//
// Every recognized mention appears in exactly one of Files or Skipped; no
// mention string repeats within either list.
type Result struct {
	// Mentions is the full recognized mention list, deduplicated, in
	// discovery order.
	Mentions []string

	// Files holds the loaded files in discovery order.
	Files []File

	// Skipped holds the mentions that were dropped, in discovery order.
	Skipped []Skipped

	// Block is the rendered context block, empty when no file was loaded.
	Block string
}

// HasContext reports whether any file content was loaded.
func (r *Result) HasContext() bool {
	return len(r.Files) > 0
}

// SkipReasons returns each skipped mention formatted as "mention: reason",
// for diagnostic display.
func (r *Result) SkipReasons() []string {
	if len(r.Skipped) == 0 {
		return nil
	}
	reasons := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		reasons = append(reasons, s.Mention+": "+s.Reason)
	}
	return reasons
}

// =============================================================================
// BUILDER
// =============================================================================

// Builder runs the mention pipeline against one workspace root. It holds no
// mutable state; a single Builder is safe for concurrent use.
type Builder struct {
	sandbox *Sandbox
	limits  Limits
}

// NewBuilder creates a builder for the given workspace root. A nil limits
// pointer selects the documented defaults; non-positive fields are filled
// with their defaults.
func NewBuilder(workspaceRoot string, limits *Limits) (*Builder, error) {
	sandbox, err := NewSandbox(workspaceRoot)
	if err != nil {
		return nil, err
	}

	l := DefaultLimits()
	if limits != nil {
		l = limits.withDefaults()
	}

	return &Builder{
		sandbox: sandbox,
		limits:  l,
	}, nil
}

// Root returns the absolute workspace root the builder is confined to.
func (b *Builder) Root() string {
	return b.sandbox.Root()
}

// Limits returns the active budget configuration.
func (b *Builder) Limits() Limits {
	return b.limits
}

// Build runs the full pipeline for one message. Explicit mentions are merged
// after the in-text mentions. Per-mention problems become Skipped entries;
// Build itself never fails.
func (b *Builder) Build(ctx context.Context, message string, explicit []string) *Result {
	mentions := mergeExplicit(ExtractMentions(message), explicit)

	result := &Result{Mentions: mentions}
	if len(mentions) == 0 {
		return result
	}

	// Mentions beyond the cap are recorded without any file-system access.
	active := mentions
	var capped []string
	if len(active) > b.limits.MaxFiles {
		capped = active[b.limits.MaxFiles:]
		active = active[:b.limits.MaxFiles]
	}

	for i, out := range b.loadAll(ctx, active) {
		if out.reason != "" {
			result.Skipped = append(result.Skipped, Skipped{Mention: active[i], Reason: out.reason})
			continue
		}
		result.Files = append(result.Files, *out.file)
	}
	for _, m := range capped {
		result.Skipped = append(result.Skipped, Skipped{Mention: m, Reason: overLimitReason(b.limits.MaxFiles)})
	}

	result.Block = RenderBlock(result.Files)
	return result
}

// =============================================================================
// PACKAGE ENTRY POINTS
// =============================================================================

// Expand is the one-shot entry point: tokenize the message, resolve and load
// the mentioned files under the default budgets, and render the context
// block. It fails only on caller misuse (missing workspace root).
func Expand(ctx context.Context, message, workspaceRoot string, explicit []string) (*Result, error) {
	b, err := NewBuilder(workspaceRoot, nil)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, message, explicit), nil
}
