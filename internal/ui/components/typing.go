// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/elliebot/ellie-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator is the animated three-dot indicator shown while Ellie is
// composing a reply. It only renders while active.
type TypingIndicator struct {
	spinner   spinner.Model
	startTime time.Time
	isActive  bool
	showTimer bool
}

// NewTypingIndicator creates a typing indicator with the three-dot frames.
func NewTypingIndicator() TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
		FPS:    time.Second / 6,
	}

	return TypingIndicator{
		spinner:   s,
		showTimer: true,
	}
}

// SetShowTimer enables or disables the elapsed time display.
func (t *TypingIndicator) SetShowTimer(show bool) {
	t.showTimer = show
}

// Start activates the indicator and records the start time.
func (t *TypingIndicator) Start() tea.Cmd {
	t.isActive = true
	t.startTime = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.isActive = false
}

// IsActive returns whether the indicator is currently running.
func (t *TypingIndicator) IsActive() bool {
	return t.isActive
}

// Update handles spinner tick messages.
func (t TypingIndicator) Update(msg tea.Msg) (TypingIndicator, tea.Cmd) {
	if !t.isActive {
		return t, nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return t, cmd
}

// View renders the indicator, e.g. "Ellie is typing .." with an optional
// elapsed timer once a reply is taking a while.
func (t TypingIndicator) View() string {
	if !t.isActive {
		return ""
	}

	label := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Italic(true).
		Render("Ellie is typing ")

	dots := lipgloss.NewStyle().
		Foreground(styles.Pink).
		Render(t.spinner.View())

	result := label + dots

	// Only show the timer once the wait is noticeable.
	if t.showTimer && !t.startTime.IsZero() {
		if elapsed := time.Since(t.startTime); elapsed >= 3*time.Second {
			timer := lipgloss.NewStyle().
				Foreground(styles.TextMuted).
				Render(" (" + formatElapsed(elapsed) + ")")
			result += timer
		}
	}

	return result
}

// formatElapsed formats a duration as whole seconds or minutes+seconds.
func formatElapsed(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 60 {
		return strconv.Itoa(seconds) + "s"
	}
	return strconv.Itoa(seconds/60) + "m " + strconv.Itoa(seconds%60) + "s"
}
