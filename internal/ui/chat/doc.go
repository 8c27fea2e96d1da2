// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the chat screen: the Bubble Tea model driving
// the conversation, its view, and the slash command handling.
package chat
