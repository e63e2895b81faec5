package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Analyze.Top != nil || cfg.Bench.Record != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[analyze]
top = 5
workers = 3

[generate]
words = 100
caps = 0.25
punct-set = ".!"

[bench]
record = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Analyze.Top == nil || *cfg.Analyze.Top != 5 {
		t.Fatalf("unexpected top: %v", cfg.Analyze.Top)
	}
	if cfg.Analyze.Workers == nil || *cfg.Analyze.Workers != 3 {
		t.Fatalf("unexpected workers: %v", cfg.Analyze.Workers)
	}
	if cfg.Generate.CapsPct == nil || *cfg.Generate.CapsPct != 0.25 {
		t.Fatalf("unexpected caps: %v", cfg.Generate.CapsPct)
	}
	if cfg.Generate.PunctSet == nil || *cfg.Generate.PunctSet != ".!" {
		t.Fatalf("unexpected punct-set: %v", cfg.Generate.PunctSet)
	}
	if cfg.Generate.PunctPct != nil {
		t.Fatalf("expected unset punct")
	}
	if cfg.Bench.Record == nil || !*cfg.Bench.Record {
		t.Fatalf("unexpected record: %v", cfg.Bench.Record)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[analyze]\ntopp = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "analyze.topp") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "wordstats", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "wordstats", "wordstats.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
