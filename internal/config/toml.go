// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Storage StorageConfig `toml:"storage"`
}

// GameConfig maps round settings. Durations use Go syntax, e.g. "60s".
type GameConfig struct {
	Duration  *string `toml:"duration"`
	Countdown *string `toml:"countdown"`
	Seed      *int64  `toml:"seed"`
	Debug     *bool   `toml:"debug"`
}

// StorageConfig maps persistence settings.
type StorageConfig struct {
	DB        *string `toml:"db"`
	ExportDir *string `toml:"export-dir"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
