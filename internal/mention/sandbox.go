// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mention resolves @path references in user messages.
package mention

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// =============================================================================
// SANDBOX
// =============================================================================

// ErrNoWorkspaceRoot is returned when a builder is created without a
// workspace root. This is the only caller-contract failure in the package;
// everything else degrades to a Skipped entry.
var ErrNoWorkspaceRoot = errors.New("workspace root is required")

// reasonOutsideRoot is the skip reason recorded for mentions that resolve
// outside the workspace. The wording is stable; callers display it verbatim.
const reasonOutsideRoot = "path resolves outside the workspace root"

// Sandbox confines mention resolution to a single workspace root.
//
// The tokenizer already drops ..-leading tokens, but this check is the
// authoritative boundary: normalization artifacts or unusual root
// configurations must not produce an escape.
type Sandbox struct {
	root string
}

// NewSandbox resolves the workspace root to an absolute, cleaned path once.
func NewSandbox(root string) (*Sandbox, error) {
	if strings.TrimSpace(root) == "" {
		return nil, ErrNoWorkspaceRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	return &Sandbox{root: filepath.Clean(abs)}, nil
}

// Root returns the absolute workspace root.
func (s *Sandbox) Root() string {
	return s.root
}

// Resolve converts a canonical mention into an absolute platform path.
// It accepts only the root itself or a strict descendant of it; a
// partial-prefix collision such as root /work against /work2/x is rejected.
func (s *Sandbox) Resolve(mention string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimPrefix(mention, "/"))
	resolved := filepath.Join(s.root, rel)

	if resolved == s.root {
		return resolved, true
	}
	if strings.HasPrefix(resolved, s.root+string(os.PathSeparator)) {
		return resolved, true
	}
	return "", false
}
