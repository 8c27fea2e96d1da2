// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

import (
	"fmt"
	"strings"

	"github.com/elliebot/ellie-tui/internal/util"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who authored a message. The wire protocol only knows
// two values, "ai" and "user"; anything else is rejected at the boundary.
type Sender string

const (
	SenderAI   Sender = "ai"
	SenderUser Sender = "user"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAI:
		return "Ellie"
	default:
		return string(s)
	}
}

// ParseSender validates a wire-level sender value.
func ParseSender(raw string) (Sender, error) {
	switch Sender(strings.ToLower(strings.TrimSpace(raw))) {
	case SenderAI:
		return SenderAI, nil
	case SenderUser:
		return SenderUser, nil
	default:
		return "", fmt.Errorf("unknown sender %q", raw)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single entry in the conversation log. Messages are immutable
// once created; the log is append-only.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// NewUserMessage creates a message authored by the user.
func NewUserMessage(text string) Message {
	return Message{Sender: SenderUser, Text: text}
}

// NewAIMessage creates a message authored by Ellie.
func NewAIMessage(text string) Message {
	return Message{Sender: SenderAI, Text: text}
}

// IsUser reports whether the message was authored by the user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Preview returns a single-line truncated preview of the message text.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(util.FirstLine(m.Text), maxRunes)
}

// =============================================================================
// FIXED CLIENT STRINGS
// =============================================================================

// The client substitutes these fixed strings so the conversation always
// renders something, whatever the backend does.
const (
	// DefaultGreeting opens a conversation when history is empty or the
	// history fetch fails.
	DefaultGreeting = "Hiii 💕 I’m Ellie. How’s your heart today?"

	// ResetGreeting replaces the log after a reset.
	ResetGreeting = "Fresh start 💖 What's on your mind?"

	// FallbackReply is appended in place of a reply when a send fails.
	FallbackReply = "Aww, something went wrong on my end 💔 Can you try again in a moment?"

	// ProfileSavedAck acknowledges a successful profile save.
	ProfileSavedAck = "Got it! I'll remember that 💕"
)
