package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shelftrack/logger"
)

func init() {
	logger.Init("error")
}

// newTestRepo opens a repo on a throwaway database file and bootstraps the
// schema and seed rows.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Logf("Failed to close storage: %v", err)
		}
	})
	require.NoError(t, r.Bootstrap(context.Background()))
	return r
}
