// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypingIndicatorLifecycle(t *testing.T) {
	ti := NewTypingIndicator()
	ti.SetShowTimer(false)
	assert.False(t, ti.IsActive())
	assert.Empty(t, ti.View())

	cmd := ti.Start()
	require.NotNil(t, cmd)
	assert.True(t, ti.IsActive())
	assert.Contains(t, ti.View(), "Ellie is typing")

	ti.Stop()
	assert.False(t, ti.IsActive())
	assert.Empty(t, ti.View())
}

func TestTypingIndicatorTimerHiddenEarly(t *testing.T) {
	ti := NewTypingIndicator()
	ti.Start()
	// Timer only appears after a few seconds of waiting.
	assert.NotContains(t, ti.View(), "s)")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{61 * time.Second, "1m 1s"},
		{125 * time.Second, "2m 5s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.d))
	}
}

func TestBannerErrorAndClear(t *testing.T) {
	var b Banner
	b.SetWidth(80)
	assert.False(t, b.IsVisible())
	assert.Empty(t, b.View())

	b.ShowError("backend unreachable")
	assert.True(t, b.IsVisible())
	assert.Contains(t, b.View(), "Error: backend unreachable")

	b.Clear()
	assert.False(t, b.IsVisible())
	assert.Empty(t, b.View())
}

func TestBannerCollapsesMultiLineMessage(t *testing.T) {
	var b Banner
	b.SetWidth(80)
	b.ShowError("connection refused\ndial tcp 127.0.0.1:8000")

	view := b.View()
	assert.Contains(t, view, "connection refused")
	assert.NotContains(t, view, "dial tcp")
}

func TestBannerSuccessReplacesError(t *testing.T) {
	var b Banner
	b.SetWidth(80)
	b.ShowError("oops")
	b.ShowSuccess("profile saved")
	assert.Equal(t, "profile saved", b.Message())
	assert.NotContains(t, b.View(), "Error:")
}

func TestHeaderHidesAvatarWhenNarrow(t *testing.T) {
	h := NewHeader()

	h.SetWidth(100)
	assert.True(t, strings.Contains(h.View(), Avatar))

	h.SetWidth(30)
	assert.False(t, strings.Contains(h.View(), Avatar))
}

func TestHeaderStatusDot(t *testing.T) {
	h := NewHeader()
	h.SetWidth(100)
	h.SetStatus(StatusBusy)
	assert.Contains(t, h.View(), "●")
}
