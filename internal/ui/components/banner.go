// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/elliebot/ellie-tui/internal/ui/styles"
	"github.com/elliebot/ellie-tui/internal/util"
)

// =============================================================================
// INLINE BANNER
// =============================================================================

// BannerLevel selects the banner's visual treatment.
type BannerLevel int

const (
	BannerError   BannerLevel = iota // Red, for failed actions
	BannerSuccess                    // Green, for acknowledgments
)

// Banner is the single-line inline notice under the input: the error banner
// when a backend call fails, the acknowledgment when a profile save lands.
// It renders nothing while clear.
type Banner struct {
	level   BannerLevel
	message string
	width   int
}

// NewBanner creates an empty banner.
func NewBanner() Banner {
	return Banner{}
}

// SetWidth sets the available render width.
func (b *Banner) SetWidth(width int) {
	b.width = width
}

// ShowError displays an error message.
func (b *Banner) ShowError(message string) {
	b.level = BannerError
	b.message = message
}

// ShowSuccess displays a success acknowledgment.
func (b *Banner) ShowSuccess(message string) {
	b.level = BannerSuccess
	b.message = message
}

// Clear hides the banner.
func (b *Banner) Clear() {
	b.message = ""
}

// IsVisible reports whether the banner has something to show.
func (b *Banner) IsVisible() bool {
	return b.message != ""
}

// Message returns the current banner text.
func (b *Banner) Message() string {
	return b.message
}

// View renders the banner, or an empty string when clear. The banner is a
// single line; multi-line messages collapse to their first line.
func (b Banner) View() string {
	if b.message == "" {
		return ""
	}

	maxWidth := b.width - 4
	if maxWidth < 10 {
		maxWidth = 10
	}
	message := util.FirstLine(b.message)

	switch b.level {
	case BannerSuccess:
		return lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Padding(0, 1).
			Render(util.TruncateWidth(message, maxWidth))
	default:
		return lipgloss.NewStyle().
			Foreground(styles.Rose).
			Background(styles.RoseDeep).
			Padding(0, 1).
			Render(util.TruncateWidth("Error: "+message, maxWidth))
	}
}
