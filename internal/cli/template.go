package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/tapquiz/internal/config"
	"github.com/verte-zerg/tapquiz/internal/session"
)

// DefaultConfigTemplate is written by "tapquiz config" when no file exists.
func DefaultConfigTemplate() string {
	return fmt.Sprintf(`# tapquiz configuration
# Uncomment a value to enable it. Environment variables (%s, ...) override
# config values and CLI flags override both.

[game]
# duration = %q        # Round length
# countdown = %q        # Countdown before each round
# seed = 42              # Fixed seed for reproducible problems
# debug = false          # Start with debug mode on

[storage]
# db = "%s"
# export-dir = "."       # Directory for history exports
`,
		config.EnvDuration,
		session.DefaultRoundDuration.String(),
		session.DefaultCountdownDuration.String(),
		config.DefaultDBPath(),
	)
}

// EditConfig creates the config file if missing and opens it in $EDITOR.
func EditConfig() error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
