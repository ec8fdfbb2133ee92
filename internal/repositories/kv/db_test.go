package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestOpen_AppliesMigrationsAndReturnsUsableRepo(t *testing.T) {
	ctx := context.Background()

	repo, db, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repo.Set(ctx, "users", []byte(`[]`)))
	v, err := repo.Get(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
}
