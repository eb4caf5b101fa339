// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in a user message into a bounded
// block of workspace file content that can be prepended to the message before
// it is sent to a model.
//
// The pipeline runs in four stages for each call:
//
//  1. Tokenize the message into an ordered, deduplicated list of canonical
//     mention paths (POSIX-style, leading slash).
//  2. Resolve each candidate against the workspace root and reject anything
//     that would land outside it.
//  3. Load file content under per-file and cumulative budgets, skipping
//     directories, oversized files, and binary content with a reason.
//  4. Render the loaded files into a single context block and splice it in
//     front of the original message.
//
// # Key Types
//
//   - Limits: the budget knobs (mention cap, byte cap, char caps)
//   - File: a successfully loaded workspace file
//   - Skipped: a mention that could not be loaded, with its reason
//   - Result: the aggregate outcome of one call
//
// # Usage
//
// One-off expansion:
//
//	res, err := mention.Expand(ctx, "Review @src/agent.ts", workspaceRoot, nil)
//	msg := mention.ComposeMessage("Review @src/agent.ts", res.Block)
//
// Reusable builder with custom limits:
//
//	b, err := mention.NewBuilder(workspaceRoot, &limits)
//	res := b.Build(ctx, message, nil)
//
// The engine keeps no state between calls and only ever reads from the file
// system. Per-mention failures never abort the call; they surface as Skipped
// entries on the Result.
package mention
