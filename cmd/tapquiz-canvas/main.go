// Package main opens tapquiz in a resizable window driven by mouse and touch.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tapquiz/internal/canvas"
	"github.com/verte-zerg/tapquiz/internal/canvas/render"
	"github.com/verte-zerg/tapquiz/internal/cli"
	"github.com/verte-zerg/tapquiz/internal/generator"
	"github.com/verte-zerg/tapquiz/internal/session"
)

var flags cli.Flags

func main() {
	rootCmd := &cobra.Command{
		Use:           "tapquiz-canvas",
		Short:         "Timed arithmetic quiz in a window",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          run,
	}
	flags.BindGameFlags(rootCmd)
	flags.BindStorageFlags(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	settings, err := cli.Resolve(cmd, &flags)
	if err != nil {
		return err
	}
	hist, closeDB, err := cli.OpenHistory(cmd.Context(), settings.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	gen := generator.New()
	if settings.Game.HasSeed {
		gen = generator.NewSeeded(settings.Game.Seed)
	}
	machine := session.New(gen, hist, settings.Game)
	ctrl := canvas.NewController(machine, hist, canvas.Options{
		ExportDir: settings.ExportDir,
		Debug:     settings.Game.Debug,
		Logf:      cli.LogErrf,
	})
	return render.Run(ctrl, "Arithmetic Quiz")
}
