// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

// =============================================================================
// SENDER TESTS
// =============================================================================

func TestParseSender(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Sender
		wantErr bool
	}{
		{"ai", "ai", SenderAI, false},
		{"user", "user", SenderUser, false},
		{"uppercase normalized", "AI", SenderAI, false},
		{"surrounding whitespace", " user ", SenderUser, false},
		{"unknown rejected", "assistant", "", true},
		{"empty rejected", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSender(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseSender(%q) expected error, got %v", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSender(%q) unexpected error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("ParseSender(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestSender_DisplayName(t *testing.T) {
	if got := SenderUser.DisplayName(); got != "You" {
		t.Errorf("SenderUser.DisplayName() = %q, want %q", got, "You")
	}
	if got := SenderAI.DisplayName(); got != "Ellie" {
		t.Errorf("SenderAI.DisplayName() = %q, want %q", got, "Ellie")
	}
}

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("first line is quite long indeed\nsecond line")
	got := msg.Preview(10)
	if got != "first l..." {
		t.Errorf("Preview(10) = %q, want %q", got, "first l...")
	}

	short := NewAIMessage("hi")
	if got := short.Preview(10); got != "hi" {
		t.Errorf("Preview(10) = %q, want %q", got, "hi")
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversation_AppendOrder(t *testing.T) {
	conv := NewConversation()
	conv.AppendAI(DefaultGreeting)
	conv.AppendUser("hello")
	conv.AppendAI("hi there")

	msgs := conv.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Len = %d, want 3", len(msgs))
	}
	if msgs[1].Sender != SenderUser || msgs[1].Text != "hello" {
		t.Errorf("messages[1] = %+v, want user/hello", msgs[1])
	}
	if msgs[2].Sender != SenderAI || msgs[2].Text != "hi there" {
		t.Errorf("messages[2] = %+v, want ai/hi there", msgs[2])
	}

	last, ok := conv.Last()
	if !ok || last.Text != "hi there" {
		t.Errorf("Last() = %+v, %v; want hi there, true", last, ok)
	}
}

func TestConversation_SeedEmptyHistoryGreets(t *testing.T) {
	conv := NewConversation()
	conv.Seed(nil)

	if conv.Len() != 1 {
		t.Fatalf("Len = %d, want 1", conv.Len())
	}
	msg, _ := conv.Last()
	if msg.Sender != SenderAI || msg.Text != DefaultGreeting {
		t.Errorf("seeded message = %+v, want default greeting from ai", msg)
	}
}

func TestConversation_SetGreeting(t *testing.T) {
	conv := NewConversation()
	conv.SetGreeting("welcome back!")
	conv.Seed(nil)

	msg, _ := conv.Last()
	if msg.Text != "welcome back!" {
		t.Errorf("seeded message = %q, want override greeting", msg.Text)
	}

	// A blank override keeps the default; a non-empty history ignores it.
	conv = NewConversation()
	conv.SetGreeting("   ")
	conv.Seed(nil)
	if msg, _ := conv.Last(); msg.Text != DefaultGreeting {
		t.Errorf("seeded message = %q, want default greeting", msg.Text)
	}
}

func TestConversation_SeedReplacesLog(t *testing.T) {
	conv := NewConversation()
	conv.AppendUser("stale")

	history := []Message{
		NewAIMessage("old greeting"),
		NewUserMessage("old question"),
	}
	conv.Seed(history)

	if conv.Len() != 2 {
		t.Fatalf("Len = %d, want 2", conv.Len())
	}
	if msgs := conv.Messages(); msgs[0].Text != "old greeting" {
		t.Errorf("messages[0].Text = %q, want %q", msgs[0].Text, "old greeting")
	}
}

func TestConversation_ResetLeavesSingleGreeting(t *testing.T) {
	conv := NewConversation()
	conv.AppendAI(DefaultGreeting)
	conv.AppendUser("hello")
	conv.AppendAI("hi")

	conv.Reset()

	if conv.Len() != 1 {
		t.Fatalf("Len after reset = %d, want 1", conv.Len())
	}
	msg, _ := conv.Last()
	if msg.Sender != SenderAI || msg.Text != ResetGreeting {
		t.Errorf("post-reset message = %+v, want reset greeting from ai", msg)
	}

	// Reset on an already-reset log is still a single greeting.
	conv.Reset()
	if conv.Len() != 1 {
		t.Errorf("Len after second reset = %d, want 1", conv.Len())
	}
}
