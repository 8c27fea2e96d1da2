// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the structured logger for the ellie TUI.
//
// The terminal is owned by the Bubble Tea program, so logs go to a file
// under the ellie config directory instead of stdout/stderr.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// logFileName is the log file under the config directory.
const logFileName = "ellie.log"

// Setup opens the log file under dir and returns a logger writing to it.
// If the file cannot be opened the returned logger discards everything and
// the error reports why; the client must keep working without logs.
func Setup(dir string) (zerolog.Logger, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return Nop(), err
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return Nop(), err
	}

	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.InfoLevel), nil
}

// Nop returns a logger that discards all events.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
