// Package history keeps the append-only log of completed rounds.
//
// The whole log is persisted as one JSON value under a fixed key. Persistence
// is best-effort: read failures yield an empty log and write failures are
// logged and dropped, so callers never see an error.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/verte-zerg/tapquiz/internal/model"
)

// DefaultKey is the storage key of the persisted log.
const DefaultKey = "arithmeticQuizHistory"

// KV is string key-value storage.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger routes persistence diagnostics to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(s *Store) {
		if logf != nil {
			s.logf = logf
		}
	}
}

// Store is the in-memory log plus its persistence.
type Store struct {
	kv      KV
	key     string
	logf    func(format string, args ...any)
	entries []model.HistoryEntry
}

// Open constructs a Store and loads the persisted log.
func Open(ctx context.Context, kv KV, opts ...Option) *Store {
	s := &Store{
		kv:   kv,
		key:  DefaultKey,
		logf: logErrf,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load(ctx)
	return s
}

// Load replaces the in-memory log with the persisted one and returns it.
func (s *Store) Load(ctx context.Context) []model.HistoryEntry {
	s.entries = s.read(ctx)
	return s.Entries()
}

func (s *Store) read(ctx context.Context) []model.HistoryEntry {
	if s.kv == nil {
		return nil
	}
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logf("failed to load history: %v\n", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	if err := validateLog([]byte(raw)); err != nil {
		s.logf("ignoring stored history: %v\n", err)
		return nil
	}
	var entries []model.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.logf("ignoring stored history: %v\n", err)
		return nil
	}
	return entries
}

// Append adds entry and persists the whole log.
func (s *Store) Append(ctx context.Context, entry model.HistoryEntry) {
	s.entries = append(s.entries, entry)
	s.persist(ctx)
}

// Clear empties the log and persists the empty state. Callers confirm first.
func (s *Store) Clear(ctx context.Context) {
	s.entries = nil
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}
	entries := s.entries
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		s.logf("failed to encode history: %v\n", err)
		return
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.logf("failed to save history: %v\n", err)
	}
}

// Entries returns a copy of the log in insertion order.
func (s *Store) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of completed rounds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) []model.HistoryEntry {
	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]model.HistoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// ExportSnapshot projects the log for serialization without changing it.
func (s *Store) ExportSnapshot(now time.Time) model.Export {
	return model.Export{
		ExportedAt: now.UTC().Format("2006-01-02T15:04:05.000Z"),
		Trials:     len(s.entries),
		History:    s.Entries(),
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
