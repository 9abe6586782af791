package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDuration  = "TAPQUIZ_DURATION"
	EnvCountdown = "TAPQUIZ_COUNTDOWN"
	EnvSeed      = "TAPQUIZ_SEED"
	EnvDebug     = "TAPQUIZ_DEBUG"
	EnvDB        = "TAPQUIZ_DB"
	EnvExportDir = "TAPQUIZ_EXPORT_DIR"
)

// LoadDotEnv loads variables from the given .env files (default ./.env) without
// overriding variables already set. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overlays environment variables on top of cfg. Unparsable values are skipped.
func ApplyEnv(cfg FileConfig) FileConfig {
	if v, ok := lookup(EnvDuration); ok {
		cfg.Game.Duration = &v
	}
	if v, ok := lookup(EnvCountdown); ok {
		cfg.Game.Countdown = &v
	}
	if v, ok := lookup(EnvSeed); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = &n
		}
	}
	if v, ok := lookup(EnvDebug); ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			b := true
			cfg.Game.Debug = &b
		case "0", "false", "no", "off":
			b := false
			cfg.Game.Debug = &b
		}
	}
	if v, ok := lookup(EnvDB); ok {
		cfg.Storage.DB = &v
	}
	if v, ok := lookup(EnvExportDir); ok {
		cfg.Storage.ExportDir = &v
	}
	return cfg
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
