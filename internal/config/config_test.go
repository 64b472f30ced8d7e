package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "entries.json" {
		t.Errorf("expected default source, got %q", cfg.Source)
	}
	if cfg.Format != "text" || cfg.LogLevel != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	home, _ := homedir.Dir()
	if want := filepath.Join(home, ".journal-archive", "archive.db"); cfg.DB != want {
		t.Errorf("expected db %q, got %q", want, cfg.DB)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("JOURNAL_SOURCE", "https://example.com/entries.json")
	t.Setenv("JOURNAL_LOG_LEVEL", "debug")

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "https://example.com/entries.json" {
		t.Errorf("expected env source, got %q", cfg.Source)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected env log level, got %q", cfg.LogLevel)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "source: /data/journal.json\nformat: table\ndb: /data/archive.db\n"
	if err := os.WriteFile(filepath.Join(dir, ".journal-archive.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JOURNAL_CONFIG_PATH", dir)

	cfg, err := Load(New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "/data/journal.json" || cfg.Format != "table" || cfg.DB != "/data/archive.db" {
		t.Errorf("config file not applied: %+v", cfg)
	}
}
