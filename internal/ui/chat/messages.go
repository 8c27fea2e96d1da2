// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/elliebot/ellie-tui/internal/api"
	"github.com/elliebot/ellie-tui/internal/model"
)

// =============================================================================
// ASYNC MESSAGES
// =============================================================================

// HistoryLoadedMsg carries the result of the startup history fetch.
type HistoryLoadedMsg struct {
	Messages []model.Message
	Err      error
}

// ChatReplyMsg carries Ellie's reply to a sent message.
type ChatReplyMsg struct {
	Reply string
}

// ChatErrorMsg signals that sending a message failed.
type ChatErrorMsg struct {
	Err error
}

// ResetDoneMsg carries the result of a backend history reset.
type ResetDoneMsg struct {
	Err error
}

// ProfileSavedMsg carries the result of a profile save.
type ProfileSavedMsg struct {
	Err error
}

// =============================================================================
// COMMANDS
// =============================================================================

// fetchHistoryCmd loads the stored conversation for the user.
func fetchHistoryCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		history, err := client.FetchHistory(context.Background(), userID)
		return HistoryLoadedMsg{Messages: history, Err: err}
	}
}

// sendChatCmd sends a user message and waits for Ellie's reply.
func sendChatCmd(client *api.Client, userID, text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendChat(context.Background(), userID, text)
		if err != nil {
			return ChatErrorMsg{Err: err}
		}
		return ChatReplyMsg{Reply: reply}
	}
}

// resetHistoryCmd clears the stored conversation on the backend.
func resetHistoryCmd(client *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		return ResetDoneMsg{Err: client.ResetHistory(context.Background(), userID)}
	}
}

// saveProfileCmd stores the user's name and preferences.
func saveProfileCmd(client *api.Client, userID, name, preferences string) tea.Cmd {
	return func() tea.Msg {
		return ProfileSavedMsg{Err: client.SaveProfile(context.Background(), userID, name, preferences)}
	}
}
