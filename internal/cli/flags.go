// Package cli wires cobra flags, the environment and the config file into
// game settings shared by the tapquiz binaries.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tapquiz/internal/config"
	"github.com/verte-zerg/tapquiz/internal/model"
	"github.com/verte-zerg/tapquiz/internal/session"
)

// Flags holds raw flag values before config and environment are applied.
type Flags struct {
	Duration  time.Duration
	Countdown time.Duration
	Seed      int64
	Debug     bool
	DB        string
	ExportDir string
}

// Settings is the resolved configuration of one run.
type Settings struct {
	Game      model.GameConfig
	DBPath    string
	ExportDir string
}

// BindGameFlags registers the round flags on cmd.
func (f *Flags) BindGameFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&f.Duration, "duration", session.DefaultRoundDuration, "round length")
	cmd.Flags().DurationVar(&f.Countdown, "countdown", session.DefaultCountdownDuration, "countdown before each round")
	cmd.Flags().Int64Var(&f.Seed, "seed", 0, "seed for reproducible problems")
	cmd.Flags().BoolVar(&f.Debug, "debug", false, "start with debug mode on")
}

// BindStorageFlags registers the storage flags on cmd and its subcommands.
func (f *Flags) BindStorageFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.DB, "db", "", "history database path (default: XDG data dir)")
	cmd.PersistentFlags().StringVar(&f.ExportDir, "export-dir", ".", "directory for history exports")
}

// Resolve applies the config file and the environment beneath any flags the
// user set explicitly. Flags win over the environment, which wins over the file.
func Resolve(cmd *cobra.Command, f *Flags) (Settings, error) {
	if err := config.LoadDotEnv(); err != nil {
		return Settings{}, fmt.Errorf("failed to load .env: %w", err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = config.ApplyEnv(fileCfg)

	if err := applyDurationConfig(cmd, "duration", &f.Duration, fileCfg.Game.Duration); err != nil {
		return Settings{}, err
	}
	if err := applyDurationConfig(cmd, "countdown", &f.Countdown, fileCfg.Game.Countdown); err != nil {
		return Settings{}, err
	}
	hasSeed := changed(cmd, "seed")
	if applyInt64Config(cmd, "seed", &f.Seed, fileCfg.Game.Seed) {
		hasSeed = true
	}
	applyBoolConfig(cmd, "debug", &f.Debug, fileCfg.Game.Debug)
	applyStringConfig(cmd, "db", &f.DB, fileCfg.Storage.DB)
	applyStringConfig(cmd, "export-dir", &f.ExportDir, fileCfg.Storage.ExportDir)

	settings := Settings{
		Game: model.GameConfig{
			RoundDuration:     f.Duration,
			CountdownDuration: f.Countdown,
			Seed:              f.Seed,
			HasSeed:           hasSeed,
			Debug:             f.Debug,
		},
		DBPath:    f.DB,
		ExportDir: f.ExportDir,
	}
	if settings.DBPath == "" {
		settings.DBPath = config.DefaultDBPath()
	}
	if settings.ExportDir == "" {
		settings.ExportDir = "."
	}
	if err := validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func validate(s Settings) error {
	if s.Game.RoundDuration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if s.Game.CountdownDuration <= 0 {
		return fmt.Errorf("--countdown must be > 0")
	}
	return nil
}

// changed reports whether the flag exists on cmd and was set by the user.
func changed(cmd *cobra.Command, name string) bool {
	fl := cmd.Flags().Lookup(name)
	return fl != nil && fl.Changed
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil || changed(cmd, name) {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, *value, err)
	}
	*target = d
	return nil
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) bool {
	if value == nil || changed(cmd, name) {
		return false
	}
	*target = *value
	return true
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || changed(cmd, name) {
		return
	}
	*target = *value
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || changed(cmd, name) {
		return
	}
	*target = *value
}
