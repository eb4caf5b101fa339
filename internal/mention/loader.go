// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/jdarrow/mentionctx/internal/util"
)

// =============================================================================
// SKIP REASONS
// =============================================================================

// Skip reasons are stable, user-facing strings. Callers and tests depend on
// the exact wording.
const (
	reasonDirectory       = "mention points to a directory; only files are supported."
	reasonBinary          = "file appears to be binary and cannot be injected as text context."
	reasonBudgetExhausted = "message already reached max injected context size"
	reasonReadFallback    = "failed to read mentioned file"
	reasonNotUTF8         = "file content is not valid UTF-8 text"
)

// overLimitReason names the configured mention cap.
func overLimitReason(maxFiles int) string {
	return fmt.Sprintf("Only %d @file references can be loaded per message.", maxFiles)
}

// byteLimitReason names the configured single-file byte cap.
func byteLimitReason(maxBytes int64) string {
	return fmt.Sprintf("file is larger than the %d byte limit for mentioned files", maxBytes)
}

// readFailureReason prefers the underlying error message, falling back to a
// generic reason when none is available.
func readFailureReason(err error) string {
	if err == nil || err.Error() == "" {
		return reasonReadFallback
	}
	return err.Error()
}

// =============================================================================
// BUDGETED LOADER
// =============================================================================

// probeResult is the per-mention outcome of the I/O phase, before the
// cumulative budget is applied.
type probeResult struct {
	absPath   string
	size      int64
	content   string
	truncated bool
	reason    string
}

// outcome is the final classification of one mention.
type outcome struct {
	file   *File
	reason string
}

// loadAll converts the capped mention list into ordered outcomes.
//
// The stat/read work for each mention is independent and runs concurrently;
// the cumulative character budget is then applied sequentially in discovery
// order, so concurrency never changes which mentions get truncated or
// skipped.
func (b *Builder) loadAll(ctx context.Context, mentions []string) []outcome {
	probes := make([]probeResult, len(mentions))

	var wg sync.WaitGroup
	for i, m := range mentions {
		wg.Add(1)
		go func(i int, m string) {
			defer wg.Done()
			probes[i] = b.probe(ctx, m)
		}(i, m)
	}
	wg.Wait()

	out := make([]outcome, len(mentions))
	used := 0
	for i, p := range probes {
		if p.reason != "" {
			out[i] = outcome{reason: p.reason}
			continue
		}

		remaining := b.limits.MaxTotalChars - used
		if remaining <= 0 {
			out[i] = outcome{reason: reasonBudgetExhausted}
			continue
		}

		text, truncated := p.content, p.truncated
		if util.RuneLen(text) > remaining {
			// Leave headroom for the marker so the committed total stays
			// within the cap.
			keep := remaining - util.RuneLen(truncationMarker)
			if keep < 0 {
				keep = 0
			}
			text = util.TruncateRunesNoEllipsis(text, keep) + truncationMarker
			truncated = true
		}
		used += util.RuneLen(text)

		out[i] = outcome{file: &File{
			Mention:   mentions[i],
			RelPath:   mentions[i],
			AbsPath:   p.absPath,
			ByteSize:  p.size,
			Truncated: truncated,
			Content:   text,
		}}
	}
	return out
}

// probe performs the per-mention file-system work: sandbox resolution, stat,
// size and type checks, the read itself, binary detection, and the per-file
// character cap. The cumulative budget is not applied here.
func (b *Builder) probe(ctx context.Context, mention string) probeResult {
	if err := ctx.Err(); err != nil {
		return probeResult{reason: readFailureReason(err)}
	}

	absPath, ok := b.sandbox.Resolve(mention)
	if !ok {
		return probeResult{reason: reasonOutsideRoot}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return probeResult{reason: readFailureReason(err)}
	}
	if info.IsDir() {
		return probeResult{reason: reasonDirectory}
	}
	if info.Size() > b.limits.MaxFileBytes {
		// Never read oversized files into memory.
		return probeResult{reason: byteLimitReason(b.limits.MaxFileBytes)}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return probeResult{reason: readFailureReason(err)}
	}
	if isBinary(data) {
		return probeResult{reason: reasonBinary}
	}
	if !utf8.Valid(data) {
		return probeResult{reason: reasonNotUTF8}
	}

	text := string(data)
	truncated := false
	if util.RuneLen(text) > b.limits.MaxFileChars {
		text = util.TruncateRunesNoEllipsis(text, b.limits.MaxFileChars) + truncationMarker
		truncated = true
	}

	return probeResult{
		absPath:   absPath,
		size:      info.Size(),
		content:   text,
		truncated: truncated,
	}
}

// isBinary reports whether the first binarySniffLen bytes contain a NUL
// byte. Best-effort sampling; exact behavior matters more than
// sophistication here.
func isBinary(data []byte) bool {
	sample := data
	if len(sample) > binarySniffLen {
		sample = sample[:binarySniffLen]
	}
	return bytes.IndexByte(sample, 0) >= 0
}
