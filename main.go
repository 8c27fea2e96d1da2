// ellie TUI - A cozy terminal chat with Ellie.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/elliebot/ellie-tui/internal/api"
	"github.com/elliebot/ellie-tui/internal/config"
	"github.com/elliebot/ellie-tui/internal/identity"
	"github.com/elliebot/ellie-tui/internal/logging"
	"github.com/elliebot/ellie-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env files override nothing already in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	config.SetGlobal(cfg)

	// The TUI owns stdout, so logs go to a file.
	logDir, err := config.ConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config dir: %w", err)
	}
	log, err := logging.Setup(logDir)
	if err != nil {
		log = logging.Nop()
	}
	log.Info().
		Str("version", Version).
		Str("backend", cfg.Backend.BaseURL).
		Msg("ellie starting")

	store, err := identity.NewStore()
	if err != nil {
		return fmt.Errorf("resolving identity path: %w", err)
	}
	userID, err := store.GetOrCreate()
	if err != nil {
		// A fresh id still works for this session; it just won't persist.
		log.Warn().Err(err).Msg("could not persist user id")
	}
	log.Info().Str("user_id", userID).Msg("identity ready")

	client := api.NewClient(cfg.Backend.BaseURL).
		WithTimeout(time.Duration(cfg.Backend.RequestTimeoutSecs) * time.Second).
		WithLogger(log)

	p := tea.NewProgram(
		chat.New(client, userID, cfg, log),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("tui exited with error")
		return fmt.Errorf("running ui: %w", err)
	}

	log.Info().Msg("ellie exiting")
	return nil
}
