// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// mentionctx.
//
// Configuration comes from three layers, lowest precedence first:
//
//   - Built-in defaults (the documented engine budgets)
//   - ~/.mentionctx/config.toml
//   - MENTIONCTX_* environment variables
//
// Validation clamps out-of-range budget values back to their defaults
// instead of failing, so a damaged config file never breaks the tool.
package config
