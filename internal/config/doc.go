// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config resolves the backend address and UI knobs for the ellie
// TUI from, in priority order: environment variables, an injected or
// file-provided configuration (~/.ellie/config.toml or config.json), and
// built-in defaults. The result is fixed for the process lifetime.
package config
