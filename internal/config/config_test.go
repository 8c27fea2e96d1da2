// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("Backend.BaseURL = %q, want %q", cfg.Backend.BaseURL, DefaultBackendURL)
	}
	if cfg.Backend.RequestTimeoutSecs != DefaultRequestTimeoutSecs {
		t.Errorf("RequestTimeoutSecs = %d, want %d", cfg.Backend.RequestTimeoutSecs, DefaultRequestTimeoutSecs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ELLIE_BACKEND_URL", "https://ellie.example.com")
	t.Setenv("ELLIE_TIMEOUT_SECS", "5")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.BaseURL != "https://ellie.example.com" {
		t.Errorf("BaseURL = %q, want env value", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RequestTimeoutSecs != 5 {
		t.Errorf("RequestTimeoutSecs = %d, want 5", cfg.Backend.RequestTimeoutSecs)
	}
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("ELLIE_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Backend.RequestTimeoutSecs != DefaultRequestTimeoutSecs {
		t.Errorf("RequestTimeoutSecs = %d, want default", cfg.Backend.RequestTimeoutSecs)
	}
}

func TestSetDefaults_TrimsTrailingSlash(t *testing.T) {
	cfg := Default()
	cfg.Backend.BaseURL = "http://localhost:8000/"
	cfg.SetDefaults()

	if cfg.Backend.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q, want trailing slash removed", cfg.Backend.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http ok", "http://localhost:8000", false},
		{"https ok", "https://ellie.example.com", false},
		{"missing scheme", "localhost:8000", true},
		{"bad scheme", "ftp://example.com", true},
		{"no host", "http://", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.Backend.BaseURL = tc.baseURL
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Validate(%q) expected error", tc.baseURL)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate(%q) unexpected error: %v", tc.baseURL, err)
			}
		})
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1"

[backend]
base_url = "http://10.0.0.5:9000"
request_timeout_secs = 15

[ui]
show_typing_timer = false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://10.0.0.5:9000" {
		t.Errorf("BaseURL = %q, want file value", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RequestTimeoutSecs != 15 {
		t.Errorf("RequestTimeoutSecs = %d, want 15", cfg.Backend.RequestTimeoutSecs)
	}
	if cfg.UI.ShowTypingTimer {
		t.Error("ShowTypingTimer = true, want false from file")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"backend": {"base_url": "http://127.0.0.1:8080"}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg := Default()
	if err := LoadJSON(cfg, path); err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if cfg.Backend.BaseURL != "http://127.0.0.1:8080" {
		t.Errorf("BaseURL = %q, want file value", cfg.Backend.BaseURL)
	}
}

func TestGlobal_SetAndReset(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	injected := Default()
	injected.Backend.BaseURL = "http://injected:1234"
	SetGlobal(injected)

	if got := Global(); got.Backend.BaseURL != "http://injected:1234" {
		t.Errorf("Global().Backend.BaseURL = %q, want injected value", got.Backend.BaseURL)
	}
}
