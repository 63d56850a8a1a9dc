package localdata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_RunsMigrations(t *testing.T) {
	db, err := Open(context.Background(), "file:localdata-open?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	// The migrated schema must accept inserts right away.
	_, err = db.Exec(`INSERT INTO local_store(key,value) VALUES('k','v')`)
	require.NoError(t, err)
}

func TestSQLiteRepository_SetGetDelete(t *testing.T) {
	db, err := Open(context.Background(), "file:localdata-crud?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	repo := NewSQLiteRepository(db)

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	// Upsert overwrites.
	require.NoError(t, repo.Set(ctx, "token", []byte("xyz")))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("xyz"), got)

	require.NoError(t, repo.Delete(ctx, "token"))
	got, err = repo.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, got)
}
