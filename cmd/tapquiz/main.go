// Package main provides the CLI entrypoint for tapquiz.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tapquiz/internal/cli"
	"github.com/verte-zerg/tapquiz/internal/generator"
	"github.com/verte-zerg/tapquiz/internal/history"
	"github.com/verte-zerg/tapquiz/internal/model"
	"github.com/verte-zerg/tapquiz/internal/session"
	"github.com/verte-zerg/tapquiz/internal/stats"
	"github.com/verte-zerg/tapquiz/internal/statsui"
	"github.com/verte-zerg/tapquiz/internal/tui"
)

const (
	defaultCurveWindow = 5
	defaultRecentRows  = 10
)

var (
	flags cli.Flags

	statsLast        int
	statsCurveWindow int
	statsPlain       bool

	exportDir string
	clearYes  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tapquiz",
		Short:         "Timed arithmetic quiz where every answer is 1 to 10",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}
	flags.BindGameFlags(rootCmd)
	flags.BindStorageFlags(rootCmd)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
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
	ui := tui.NewModel(machine, hist, tui.Options{
		RoundDuration: settings.Game.RoundDuration,
		ExportDir:     settings.ExportDir,
		Debug:         settings.Game.Debug,
	})
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cli.EditConfig()
		},
	}
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show round history stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N rounds")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the interactive view")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsCurveWindow <= 0 {
		return fmt.Errorf("--curve-window must be > 0")
	}
	settings, err := cli.Resolve(cmd, &flags)
	if err != nil {
		return err
	}
	hist, closeDB, err := cli.OpenHistory(cmd.Context(), settings.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	entries := hist.Entries()
	if statsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printStats(cmd.OutOrStdout(), entries)
	}
	ui := statsui.NewModel(entries, statsui.Config{Last: statsLast, CurveWindow: statsCurveWindow})
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func printStats(w io.Writer, entries []model.HistoryEntry) error {
	report := stats.BuildReport(entries, statsLast, statsCurveWindow)
	if err := stats.RenderSummary(w, report, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderRecent(w, report.Entries, defaultRecentRows); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Export or clear the round history",
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the history as JSON",
		Args:  cobra.NoArgs,
		RunE:  runHistoryExportCmd,
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default: --export-dir)")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded rounds",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClearCmd,
	}
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "skip the confirmation prompt")

	cmd.AddCommand(exportCmd, clearCmd)
	return cmd
}

func runHistoryExportCmd(cmd *cobra.Command, _ []string) error {
	settings, err := cli.Resolve(cmd, &flags)
	if err != nil {
		return err
	}
	hist, closeDB, err := cli.OpenHistory(cmd.Context(), settings.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	dir := settings.ExportDir
	if cmd.Flags().Changed("dir") {
		dir = exportDir
	}
	now := time.Now()
	path, err := history.ExportToDir(dir, hist.ExportSnapshot(now), now)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rounds to %s\n", hist.Len(), path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runHistoryClearCmd(cmd *cobra.Command, _ []string) error {
	settings, err := cli.Resolve(cmd, &flags)
	if err != nil {
		return err
	}
	hist, closeDB, err := cli.OpenHistory(cmd.Context(), settings.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	if hist.Len() == 0 {
		cli.LogErrln("History is already empty.")
		return nil
	}
	if !clearYes {
		ok, err := confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("Delete all %d rounds? [y/N] ", hist.Len()))
		if err != nil {
			return err
		}
		if !ok {
			cli.LogErrln("Aborted.")
			return nil
		}
	}
	hist.Clear(cmd.Context())
	cli.LogErrln("History cleared.")
	return nil
}

// confirm asks a yes/no question; anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprint(out, prompt); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
