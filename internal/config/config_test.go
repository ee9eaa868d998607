package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rppedit/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.History.Enabled {
		t.Fatal("history should be disabled by default")
	}
	wantDB := filepath.Join(tempHome, ".local", "share", "rppedit", "history.db")
	if cfg.History.Path != wantDB {
		t.Fatalf("history path: got %q want %q", cfg.History.Path, wantDB)
	}
	if !cfg.Copy.Volume || !cfg.Copy.Pan || !cfg.Copy.Effects {
		t.Fatalf("unexpected copy defaults: %+v", cfg.Copy)
	}
	if cfg.Copy.Envelopes || cfg.Copy.FreshGUIDs {
		t.Fatalf("envelopes and fresh_guids should default off: %+v", cfg.Copy)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[logging]",
		`format = "json"`,
		`level = "debug"`,
		"",
		"[history]",
		"enabled = true",
		`path = "~/journal.db"`,
		"",
		"[copy]",
		"envelopes = true",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing resolved config, got exists=%v resolved=%q", exists, resolved)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging values: %+v", cfg.Logging)
	}
	if !cfg.History.Enabled {
		t.Fatal("history should be enabled")
	}
	if cfg.History.Path != filepath.Join(tempHome, "journal.db") {
		t.Fatalf("history path not expanded: %q", cfg.History.Path)
	}
	if !cfg.Copy.Envelopes {
		t.Fatal("copy.envelopes should be true")
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unsupported log format")
	}
}
