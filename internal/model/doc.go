// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation domain types for the ellie TUI:
// the two-sender Message, the append-only Conversation log, and the fixed
// client-side strings (greeting, reset greeting, fallback reply).
//
// The package has no dependencies on the UI or the network layer; the
// backend client converts wire messages into these types at the boundary,
// and the chat view renders them.
package model
