package history

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tapquiz/internal/model"
)

// ExportFileName names an export taken at t, in t's location.
func ExportFileName(t time.Time) string {
	return "arithmetic_history_" + t.Format("20060102_150405") + ".json"
}

// WriteExport writes export as an indented JSON document.
func WriteExport(w io.Writer, export model.Export) error {
	if export.History == nil {
		export.History = []model.HistoryEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// ExportToDir writes export into dir under ExportFileName(t) and returns the path.
func ExportToDir(dir string, export model.Export, t time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(dir, ExportFileName(t))
	tmpFile, err := os.CreateTemp(dir, "export-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp export: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := WriteExport(tmpFile, export); err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
