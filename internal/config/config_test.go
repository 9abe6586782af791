package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Game.Duration != nil || cfg.Storage.DB != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[game]
duration = "90s"
countdown = "5s"
seed = 7
debug = true

[storage]
db = "/tmp/x.db"
export-dir = "/tmp/out"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Game.Duration == nil || *cfg.Game.Duration != "90s" {
		t.Fatalf("unexpected duration: %v", cfg.Game.Duration)
	}
	if cfg.Game.Countdown == nil || *cfg.Game.Countdown != "5s" {
		t.Fatalf("unexpected countdown: %v", cfg.Game.Countdown)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 7 {
		t.Fatalf("unexpected seed: %v", cfg.Game.Seed)
	}
	if cfg.Game.Debug == nil || !*cfg.Game.Debug {
		t.Fatalf("unexpected debug: %v", cfg.Game.Debug)
	}
	if cfg.Storage.DB == nil || *cfg.Storage.DB != "/tmp/x.db" {
		t.Fatalf("unexpected db: %v", cfg.Storage.DB)
	}
	if cfg.Storage.ExportDir == nil || *cfg.Storage.ExportDir != "/tmp/out" {
		t.Fatalf("unexpected export dir: %v", cfg.Storage.ExportDir)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game\nduration ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvDuration, "30s")
	t.Setenv(EnvSeed, "12")
	t.Setenv(EnvDebug, "off")
	t.Setenv(EnvDB, "/data/q.db")
	t.Setenv(EnvCountdown, "  ")

	file := "10s"
	cd := "4s"
	cfg := ApplyEnv(FileConfig{Game: GameConfig{Duration: &file, Countdown: &cd}})
	if *cfg.Game.Duration != "30s" {
		t.Fatalf("expected env duration, got %s", *cfg.Game.Duration)
	}
	if *cfg.Game.Countdown != "4s" {
		t.Fatalf("blank env must not override, got %s", *cfg.Game.Countdown)
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 12 {
		t.Fatalf("unexpected seed: %v", cfg.Game.Seed)
	}
	if cfg.Game.Debug == nil || *cfg.Game.Debug {
		t.Fatalf("expected debug=false, got %v", cfg.Game.Debug)
	}
	if *cfg.Storage.DB != "/data/q.db" {
		t.Fatalf("unexpected db: %s", *cfg.Storage.DB)
	}
}

func TestApplyEnvSkipsBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "twelve")
	cfg := ApplyEnv(FileConfig{})
	if cfg.Game.Seed != nil {
		t.Fatalf("expected seed to stay unset, got %d", *cfg.Game.Seed)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TAPQUIZ_EXPORT_DIR=/from/dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv(EnvExportDir, "")
	if err := os.Unsetenv(EnvExportDir); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load .env: %v", err)
	}
	cfg := ApplyEnv(FileConfig{})
	if cfg.Storage.ExportDir == nil || *cfg.Storage.ExportDir != "/from/dotenv" {
		t.Fatalf("unexpected export dir: %v", cfg.Storage.ExportDir)
	}
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored: %v", err)
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tapquiz", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "tapquiz", "tapquiz.db") {
		t.Fatalf("unexpected db path %s", got)
	}
}
