// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package identity persists the per-machine opaque user identifier that
// correlates all backend calls. The id is generated once, written under the
// ellie config directory, and reused for the lifetime of that storage.
package identity

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elliebot/ellie-tui/internal/util"
)

// userIDFile is the fixed storage key, a file name under the config dir.
const userIDFile = "user_id"

// =============================================================================
// STORE
// =============================================================================

// Store reads and writes the persisted user identifier.
type Store struct {
	// path is the full path of the identifier file.
	path string
}

// NewStore creates a store rooted at ~/.ellie.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(homeDir, ".ellie", userIDFile)}, nil
}

// NewStoreWithDir creates a store rooted at a custom directory.
func NewStoreWithDir(dir string) *Store {
	return &Store{path: filepath.Join(dir, userIDFile)}
}

// Path returns the identifier file path.
func (s *Store) Path() string {
	return s.path
}

// =============================================================================
// GET OR CREATE
// =============================================================================

// GetOrCreate returns the stored user id, generating and persisting a new
// one if none exists. Repeated calls against the same storage scope return
// the same value.
//
// A usable id is always returned. The error reports a failed persist: the
// returned id is then valid for this process only and the next run will
// generate a fresh one. Callers should log it, not fail on it.
func (s *Store) GetOrCreate() (string, error) {
	if data, err := os.ReadFile(s.path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
	}

	id := newUserID()

	// 0600/0700: the id is the only credential the backend knows us by.
	if err := util.AtomicWriteFile(s.path, []byte(id+"\n"), 0600, 0700); err != nil {
		return id, err
	}
	return id, nil
}

// =============================================================================
// ID GENERATION
// =============================================================================

// newUserID generates a globally-unique identifier, preferring a random
// UUID and falling back to a timestamp-based value if secure randomness is
// unavailable.
func newUserID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return "user-" + strconv.FormatInt(time.Now().UnixNano(), 10)
}
