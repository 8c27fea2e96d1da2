// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/elliebot/ellie-tui/internal/model"
	"github.com/elliebot/ellie-tui/internal/ui/components"
	"github.com/elliebot/ellie-tui/internal/ui/styles"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.typing.IsActive() {
		b.WriteString(" " + m.typing.View())
	}
	b.WriteString("\n")

	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.helpView())
	} else if m.banner.IsVisible() {
		b.WriteString(m.banner.View())
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Padding(0, 1).
			Render("enter send · shift+enter newline · ctrl+r reset · ctrl+c quit"))
	}

	return b.String()
}

// renderMessages lays the conversation out as chat bubbles: user messages
// hug the right edge, Ellie's sit on the left.
func (m Model) renderMessages() string {
	width := m.viewport.Width
	bubbleMax := width * 3 / 4
	if bubbleMax < 16 {
		bubbleMax = 16
	}

	var parts []string
	for _, msg := range m.conversation.Messages() {
		if msg.IsUser() {
			parts = append(parts, m.renderUserBubble(msg, width, bubbleMax))
		} else {
			parts = append(parts, m.renderAIBubble(msg, bubbleMax))
		}
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderUserBubble(msg model.Message, width, bubbleMax int) string {
	bubble := lipgloss.NewStyle().
		Foreground(styles.UserBubbleFg).
		Background(styles.UserBubbleBg).
		Padding(0, 1).
		MaxWidth(bubbleMax).
		Render(msg.Text)

	indent := width - lipgloss.Width(bubble) - 1
	if indent < 0 {
		indent = 0
	}
	return lipgloss.NewStyle().MarginLeft(indent).Render(bubble)
}

func (m Model) renderAIBubble(msg model.Message, bubbleMax int) string {
	name := components.Avatar + " " + lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Pink).
		Render(msg.Sender.DisplayName())

	body := msg.Text
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(msg.Text); err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	bubble := lipgloss.NewStyle().
		Foreground(styles.AIBubbleFg).
		MaxWidth(bubbleMax).
		Render(body)

	return name + "\n" + bubble
}

// helpView lists the slash commands.
func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(styles.Pink).Render("Commands"))
	for _, cmd := range slashCommands {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Lavender).Render(cmd.usage))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(styles.TextMuted).Render(cmd.desc))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
