package cli

import (
	"context"
	"fmt"

	"github.com/verte-zerg/tapquiz/internal/history"
	"github.com/verte-zerg/tapquiz/internal/store"
)

// OpenHistory opens the database at path and loads the round log from it.
// The returned close func must be called when done.
func OpenHistory(ctx context.Context, path string) (*history.Store, func(), error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeFn := func() {
		if cerr := st.Close(); cerr != nil {
			LogErrf("failed to close db: %v\n", cerr)
		}
	}
	return history.Open(ctx, st, history.WithLogger(LogErrf)), closeFn, nil
}
