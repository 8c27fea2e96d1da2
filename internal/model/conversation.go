// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"github.com/elliebot/ellie-tui/internal/util"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered, append-only message log shown to the
// user. Insertion order is display order is chronological order. It lives
// only for the process lifetime; the backend independently stores history.
type Conversation struct {
	greeting string
	messages []Message
}

// NewConversation creates an empty conversation with the built-in greeting.
func NewConversation() *Conversation {
	return &Conversation{
		greeting: DefaultGreeting,
		messages: make([]Message, 0),
	}
}

// SetGreeting overrides the opening message used when there is no history.
// A blank greeting keeps the default.
func (c *Conversation) SetGreeting(greeting string) {
	if util.IsBlank(greeting) {
		return
	}
	c.greeting = greeting
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the end of the log.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// AppendUser appends a user message and returns it.
func (c *Conversation) AppendUser(text string) Message {
	msg := NewUserMessage(text)
	c.Append(msg)
	return msg
}

// AppendAI appends an Ellie message and returns it.
func (c *Conversation) AppendAI(text string) Message {
	msg := NewAIMessage(text)
	c.Append(msg)
	return msg
}

// Seed replaces the log with fetched history. An empty history seeds the
// greeting instead, so the view always has something to show.
func (c *Conversation) Seed(history []Message) {
	if len(history) == 0 {
		c.messages = []Message{NewAIMessage(c.greeting)}
		return
	}
	c.messages = append(make([]Message, 0, len(history)), history...)
}

// Reset replaces the log with a single fresh greeting. It runs
// unconditionally; the backend reset call's outcome does not change it.
func (c *Conversation) Reset() {
	c.messages = []Message{NewAIMessage(ResetGreeting)}
}

// Messages returns the log for display. Callers must not mutate it.
func (c *Conversation) Messages() []Message {
	return c.messages
}

// Last returns the most recent message and true, or a zero Message and
// false when the log is empty.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty reports whether the log has no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}
