package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore(t *testing.T) {
	testStoreContract(t, func(t *testing.T) Store { return openTestSQLite(t) })
}

func TestSQLiteOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(KindSQLite, dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
	assert.Equal(t, KindSQLite, store.(*SQLStore).Kind())
}

func TestSQLiteReopenKeepsSaves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(dbPath)
	require.NoError(t, err)
	info, err := store.Save("persist", snapshotAfter(t, tinyConfig(), 1, 2))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	saves, err := store.List()
	require.NoError(t, err)
	require.Len(t, saves, 1)
	assert.Equal(t, info.ID, saves[0].ID)
}

func TestSQLiteResults(t *testing.T) {
	store := openTestSQLite(t)
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = fakeClock(start)

	results := []MatchResult{
		{SaveName: "a", Variant: "classic", Winner: "A", Moves: 7},
		{SaveName: "b", Variant: "classic", Winner: "B", Moves: 12},
		{SaveName: "c", Variant: "classic", Winner: "draw", Moves: 42},
		{SaveName: "d", Variant: "tiny", Winner: "A", Moves: 5},
	}
	for _, r := range results {
		require.NoError(t, store.RecordResult(r))
	}

	stats, err := store.Stats()
	require.NoError(t, err)
	require.Len(t, stats, 2)

	classic := stats[0]
	assert.Equal(t, "classic", classic.Variant)
	assert.Equal(t, 3, classic.Games)
	assert.Equal(t, 1, classic.WinsA)
	assert.Equal(t, 1, classic.WinsB)
	assert.Equal(t, 1, classic.Draws)
	assert.InDelta(t, 61.0/3, classic.AvgMoves, 0.001)
	assert.True(t, classic.LastPlayed.Equal(start.Add(2*time.Second)), "LastPlayed = %v", classic.LastPlayed)

	assert.Equal(t, "tiny", stats[1].Variant)
	assert.Equal(t, 1, stats[1].Games)

	recent, err := store.RecentResults(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "d", recent[0].SaveName)
	assert.Equal(t, "c", recent[1].SaveName)
}

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE b = ? AND c = ?"
	assert.Equal(t, q, sqliteDialect.rebind(q))
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", postgresDialect.rebind(q))
}
