// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elliebot/ellie-tui/internal/ui/styles"
	"github.com/elliebot/ellie-tui/internal/util"
)

// =============================================================================
// HEADER BAR
// =============================================================================

// Avatar is Ellie's avatar glyph. It is hidden when the header is too
// narrow to fit it alongside the title and hints.
const Avatar = "💗"

// HeaderStatus describes the indicator dot in the header.
type HeaderStatus int

const (
	StatusReady HeaderStatus = iota // Idle, ready for input
	StatusBusy                      // Awaiting a reply
	StatusError                     // Last action failed
)

// Header renders the top bar: avatar, title, subtitle, status dot, and the
// two maintenance action hints (reset, save profile).
type Header struct {
	title    string
	subtitle string
	status   HeaderStatus
	width    int
}

// NewHeader creates the ellie header.
func NewHeader() Header {
	return Header{
		title:    "Ellie",
		subtitle: "always here for you",
	}
}

// SetWidth sets the available render width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetStatus updates the status indicator.
func (h *Header) SetStatus(status HeaderStatus) {
	h.status = status
}

// View renders the header bar.
func (h Header) View() string {
	width := h.width
	if width <= 0 {
		width = 80
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Pink).
		Render(h.title)

	// The avatar degrades gracefully: drop it on narrow terminals.
	if width >= 40 {
		title = Avatar + " " + title
	}

	subtitle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(" | " + h.subtitle)

	var statusIcon string
	switch h.status {
	case StatusBusy:
		statusIcon = lipgloss.NewStyle().Foreground(styles.Lavender).Render(" ●")
	case StatusError:
		statusIcon = lipgloss.NewStyle().Foreground(styles.Rose).Render(" ●")
	default:
		statusIcon = lipgloss.NewStyle().Foreground(styles.Emerald).Render(" ●")
	}

	left := title + subtitle + statusIcon

	hints := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render("ctrl+r reset · ctrl+s profile · /help")

	// Right-align the hints, dropping them when space runs out.
	gap := width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		hints = ""
		gap = 0
	}
	if lipgloss.Width(left) > width-2 {
		left = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Pink).
			Render(util.TruncateWidth(h.title, width-2))
		gap = 0
	}
	content := left + lipgloss.NewStyle().Width(gap).Render("") + hints

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Width(width).
		Padding(0, 1).
		Render(content)
}
