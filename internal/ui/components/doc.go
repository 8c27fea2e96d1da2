// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds the small reusable TUI widgets: the header
// bar, the typing indicator, and the error/success banner.
package components
