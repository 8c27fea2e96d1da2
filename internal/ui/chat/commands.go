// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// slashCommand is an input-line command, entered as "/name args".
type slashCommand struct {
	name  string
	usage string
	desc  string
	run   func(m *Model, args string) tea.Cmd
}

// slashCommands is the registry, in help-display order.
var slashCommands = []slashCommand{
	{
		name:  "help",
		usage: "/help",
		desc:  "Show available commands",
		run: func(m *Model, _ string) tea.Cmd {
			m.showHelp = !m.showHelp
			return nil
		},
	},
	{
		name:  "reset",
		usage: "/reset",
		desc:  "Start the conversation over",
		run: func(m *Model, _ string) tea.Cmd {
			return m.resetConversation()
		},
	},
	{
		name:  "profile",
		usage: "/profile <name> | <preferences>",
		desc:  "Tell Ellie your name and what you like",
		run: func(m *Model, args string) tea.Cmd {
			name, prefs, err := parseProfileArgs(args)
			if err != nil {
				m.banner.ShowError(err.Error())
				return nil
			}
			return m.saveProfile(name, prefs)
		},
	},
	{
		name:  "quit",
		usage: "/quit",
		desc:  "Leave the chat",
		run: func(m *Model, _ string) tea.Cmd {
			return tea.Quit
		},
	},
}

// handleSlashCommand dispatches "/name args" input. Unknown commands show
// an error banner instead of being sent to the backend.
func (m *Model) handleSlashCommand(input string) tea.Cmd {
	fields := strings.SplitN(strings.TrimSpace(input), " ", 2)
	name := strings.TrimPrefix(fields[0], "/")
	args := ""
	if len(fields) > 1 {
		args = strings.TrimSpace(fields[1])
	}

	for _, cmd := range slashCommands {
		if cmd.name == name {
			return cmd.run(m, args)
		}
	}

	m.banner.ShowError("unknown command: /" + name + " (try /help)")
	return nil
}

// parseProfileArgs splits "name | preferences" into its parts. The name is
// required, preferences may be empty.
func parseProfileArgs(args string) (name, preferences string, err error) {
	parts := strings.SplitN(args, "|", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		preferences = strings.TrimSpace(parts[1])
	}
	if name == "" {
		return "", "", errors.New("usage: /profile <name> | <preferences>")
	}
	return name, preferences, nil
}
