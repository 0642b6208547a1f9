package blobstore_test

import (
	"testing"

	"github.com/fenwickcc/pavilion/internal/blobstore"
	"github.com/fenwickcc/pavilion/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (blobstore.BlobStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return blobstore.New(db), dbTeardown
}

func TestPutAndGet(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	err := store.Put("players", "players", []byte(`[{"id":"p1"}]`))
	require.NoError(t, err)

	value, err := store.Get("players", "players")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(value))

	// Overwrite replaces the whole document.
	err = store.Put("players", "players", []byte(`[]`))
	require.NoError(t, err)

	value, err = store.Get("players", "players")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(value))
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	_, err := store.Get("availability", "availability-nope")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Put("stats", "player-stats-p1", []byte(`{}`)))
	require.NoError(t, store.Delete("stats", "player-stats-p1"))

	_, err := store.Get("stats", "player-stats-p1")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Deleting a missing document is not an error.
	assert.NoError(t, store.Delete("stats", "player-stats-p1"))
}

func TestKeys(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Put("stats", "team-stats-Firsts-s1", []byte(`{}`)))
	require.NoError(t, store.Put("stats", "team-stats-Seconds-s1", []byte(`{}`)))
	require.NoError(t, store.Put("fixtures", "fixtures-s1", []byte(`[]`)))

	keys, err := store.Keys("stats")
	require.NoError(t, err)
	assert.Equal(t, []string{"team-stats-Firsts-s1", "team-stats-Seconds-s1"}, keys)
}

func TestClear(t *testing.T) {
	store, teardown := setupTestStore(t)
	defer teardown()

	require.NoError(t, store.Put("seasons", "seasons", []byte(`[]`)))
	require.NoError(t, store.Clear())

	_, err := store.Get("seasons", "seasons")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
