// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/elliebot/ellie-tui/internal/api"
	"github.com/elliebot/ellie-tui/internal/config"
	"github.com/elliebot/ellie-tui/internal/model"
	"github.com/elliebot/ellie-tui/internal/ui/components"
	"github.com/elliebot/ellie-tui/internal/util"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// state tracks whether a reply is in flight. While awaiting a reply, new
// submissions are ignored; reset is always allowed.
type state int

const (
	stateReady state = iota
	stateAwaitingReply
)

const (
	inputHeight    = 3
	maxInputRunes  = 4000
	minNarrowWidth = 20
)

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	client *api.Client
	userID string
	cfg    *config.Config
	log    zerolog.Logger

	conversation *model.Conversation
	state        state

	header   components.Header
	viewport viewport.Model
	textarea textarea.Model
	typing   components.TypingIndicator
	banner   components.Banner
	renderer *glamour.TermRenderer

	width    int
	height   int
	ready    bool
	showHelp bool
}

// New builds the chat model. The conversation starts empty; Init kicks off
// the history fetch.
func New(client *api.Client, userID string, cfg *config.Config, log zerolog.Logger) Model {
	ta := textarea.New()
	ta.Placeholder = "Message Ellie... (Enter to send, Shift+Enter for a new line)"
	ta.Prompt = "│ "
	ta.CharLimit = maxInputRunes
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	// Enter submits; only the modified chords insert a line break.
	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
	)
	ta.Focus()

	typing := components.NewTypingIndicator()
	typing.SetShowTimer(cfg.UI.ShowTypingTimer)

	conversation := model.NewConversation()
	conversation.SetGreeting(cfg.UI.Greeting)

	return Model{
		client:       client,
		userID:       userID,
		cfg:          cfg,
		log:          log,
		conversation: conversation,
		state:        stateReady,
		header:       components.NewHeader(),
		textarea:     ta,
		typing:       typing,
		banner:       components.NewBanner(),
	}
}

// Init starts the cursor blink and the initial history load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, fetchHistoryCmd(m.client, m.userID))
}

// Update is the Bubble Tea message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit

		case "ctrl+r":
			return m, m.resetConversation()

		case "ctrl+s":
			name, prefs, err := parseProfileArgs(m.textarea.Value())
			if err != nil {
				m.banner.ShowError("type <name> | <preferences> in the input, then press ctrl+s")
				return m, nil
			}
			m.textarea.Reset()
			return m, m.saveProfile(name, prefs)

		case "enter":
			return m, m.submit()

		case "esc":
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}

		case "pgup", "pgdown":
			// The textarea owns most keys; paging scrolls the log.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.typing, cmd = m.typing.Update(msg)
		return m, cmd

	case HistoryLoadedMsg:
		history := msg.Messages
		if msg.Err != nil {
			// A failed fetch greets fresh with no user-visible error.
			m.log.Warn().Err(msg.Err).Msg("history fetch failed, starting fresh")
			history = nil
		}
		m.conversation.Seed(history)
		m.refreshLog()
		return m, nil

	case ChatReplyMsg:
		// A reset mid-flight abandons the pending request.
		if m.state != stateAwaitingReply {
			return m, nil
		}
		reply := strings.TrimSpace(msg.Reply)
		if reply == "" {
			reply = model.FallbackReply
		}
		m.conversation.AppendAI(reply)
		m.finishReply()
		return m, nil

	case ChatErrorMsg:
		if m.state != stateAwaitingReply {
			return m, nil
		}
		m.log.Error().Err(msg.Err).Msg("chat request failed")
		m.conversation.AppendAI(model.FallbackReply)
		m.banner.ShowError(msg.Err.Error())
		m.finishReply()
		return m, nil

	case ResetDoneMsg:
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("backend reset failed")
			m.banner.ShowError("reset didn't reach the server: " + msg.Err.Error())
			m.refreshLog()
		}
		return m, nil

	case ProfileSavedMsg:
		if msg.Err != nil {
			m.log.Error().Err(msg.Err).Msg("profile save failed")
			m.banner.ShowError("couldn't save your profile: " + msg.Err.Error())
		} else {
			m.conversation.AppendAI(model.ProfileSavedAck)
			m.banner.ShowSuccess("Profile saved")
			m.refreshLog()
		}
		return m, nil
	}

	// Non-key messages (blink ticks, mouse wheel) go to both widgets.
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit sends the current input. Blank input is ignored, slash commands
// are dispatched locally, and nothing is sent while a reply is in flight.
func (m *Model) submit() tea.Cmd {
	if util.IsBlank(m.textarea.Value()) {
		return nil
	}
	text := strings.TrimSpace(m.textarea.Value())

	if strings.HasPrefix(text, "/") {
		m.textarea.Reset()
		return m.handleSlashCommand(text)
	}

	if m.state == stateAwaitingReply {
		// Keep the draft; the user can resend once Ellie answers.
		return nil
	}

	m.textarea.Reset()
	m.banner.Clear()
	m.showHelp = false
	sent := m.conversation.AppendUser(text)
	m.log.Debug().Str("preview", sent.Preview(48)).Msg("sending chat message")
	m.state = stateAwaitingReply
	m.header.SetStatus(components.StatusBusy)
	m.refreshLog()

	return tea.Batch(
		m.typing.Start(),
		sendChatCmd(m.client, m.userID, text),
	)
}

// resetConversation wipes the log immediately and tells the backend to
// forget it too. It works even while a reply is pending.
func (m *Model) resetConversation() tea.Cmd {
	m.conversation.Reset()
	m.typing.Stop()
	m.state = stateReady
	m.banner.Clear()
	m.showHelp = false
	m.header.SetStatus(components.StatusReady)
	m.refreshLog()
	return resetHistoryCmd(m.client, m.userID)
}

// saveProfile stores the user's name and preferences on the backend.
func (m *Model) saveProfile(name, preferences string) tea.Cmd {
	m.banner.Clear()
	return saveProfileCmd(m.client, m.userID, name, preferences)
}

// finishReply returns the model to the ready state after a reply or error.
func (m *Model) finishReply() {
	m.typing.Stop()
	m.state = stateReady
	m.header.SetStatus(components.StatusReady)
	m.refreshLog()
}

// resize lays the screen out for a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	if width < minNarrowWidth {
		width = minNarrowWidth
	}

	m.header.SetWidth(width)
	m.banner.SetWidth(width)
	m.textarea.SetWidth(width - 2)

	// header + typing line + input + banner/hints
	chrome := 1 + 1 + inputHeight + 2
	logHeight := height - chrome
	if logHeight < 3 {
		logHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(width, logHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = logHeight
	}

	m.renderer = newMarkdownRenderer(width)
	m.refreshLog()
}

// refreshLog re-renders the message log and pins the view to the bottom.
func (m *Model) refreshLog() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}

// newMarkdownRenderer builds the glamour renderer for Ellie's messages,
// or nil when one can't be constructed (plain text is used instead).
func newMarkdownRenderer(width int) *glamour.TermRenderer {
	wrap := width - 10
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}
