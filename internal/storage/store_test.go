package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

func snapshotAfter(t *testing.T, cfg config.GameConfig, cols ...int) core.Snapshot {
	t.Helper()
	e, err := core.NewEngine(cfg)
	require.NoError(t, err)
	for _, c := range cols {
		_, _, ok := e.Play(c)
		require.True(t, ok)
	}
	return e.Snapshot()
}

// fakeClock returns a clock that advances one second per call.
func fakeClock(start time.Time) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(time.Second)
		return t
	}
}

func setClock(s Store, clock func() time.Time) {
	switch s := s.(type) {
	case *SQLStore:
		s.now = clock
	case *FileStore:
		s.now = clock
	}
}

// testStoreContract exercises the behaviour every backend shares.
func testStoreContract(t *testing.T, open func(t *testing.T) Store) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("round trip", func(t *testing.T) {
		s := open(t)
		cfg := config.DefaultGameConfig()
		cfg.Cylindrical = true
		cfg.Mode = config.ModePvC
		cfg.PlayerA = "Ann"

		for _, snap := range []core.Snapshot{
			snapshotAfter(t, cfg),
			snapshotAfter(t, cfg, 3, 3, 2),
			snapshotAfter(t, cfg, 3, 4, 3, 4, 3, 4, 3),
		} {
			_, err := s.Save("game", snap)
			require.NoError(t, err)

			loaded, err := s.Load("game")
			require.NoError(t, err)
			assert.Equal(t, snap, loaded)

			e, err := core.LoadSnapshot(loaded)
			require.NoError(t, err)
			assert.Equal(t, snap.Board, core.EncodeBoard(e.Board()))
		}
	})

	t.Run("same name updates in place", func(t *testing.T) {
		s := open(t)
		setClock(s, fakeClock(start))
		cfg := config.DefaultGameConfig()

		first, err := s.Save("My Game", snapshotAfter(t, cfg, 3))
		require.NoError(t, err)
		second, err := s.Save("My Game", snapshotAfter(t, cfg, 3, 3))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
		assert.Equal(t, "My Game - 7x6", second.Description)

		saves, err := s.List()
		require.NoError(t, err)
		require.Len(t, saves, 1)
		assert.Equal(t, first.ID, saves[0].ID)

		loaded, err := s.Load("My Game")
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.MoveCount)
	})

	t.Run("names are sanitised", func(t *testing.T) {
		s := open(t)
		setClock(s, fakeClock(start))

		info, err := s.Save("a/b:c", snapshotAfter(t, config.DefaultGameConfig()))
		require.NoError(t, err)
		assert.Equal(t, "a_b_c", info.Name)

		_, err = s.Load("a/b:c")
		assert.NoError(t, err)

		info, err = s.Save("  ", snapshotAfter(t, config.DefaultGameConfig()))
		require.NoError(t, err)
		assert.Equal(t, "Save_20260102_030406", info.Name)
	})

	t.Run("list is newest first", func(t *testing.T) {
		s := open(t)
		setClock(s, fakeClock(start))
		tiny := config.DefaultGameConfig()
		tiny.Width, tiny.Height, tiny.ConnectLength = 4, 4, 3

		for _, name := range []string{"one", "two", "three"} {
			_, err := s.Save(name, snapshotAfter(t, tiny))
			require.NoError(t, err)
		}

		saves, err := s.List()
		require.NoError(t, err)
		require.Len(t, saves, 3)
		assert.Equal(t, "three", saves[0].Name)
		assert.Equal(t, "two", saves[1].Name)
		assert.Equal(t, "one", saves[2].Name)
		assert.Equal(t, "one - 4x4", saves[2].Description)
		assert.True(t, saves[2].UpdatedAt.Equal(start), "UpdatedAt = %v", saves[2].UpdatedAt)
	})

	t.Run("missing saves", func(t *testing.T) {
		s := open(t)
		_, err := s.Save("gone", snapshotAfter(t, config.DefaultGameConfig()))
		require.NoError(t, err)

		require.NoError(t, s.Delete("gone"))
		assert.True(t, errors.Is(s.Delete("gone"), ErrSaveNotFound))

		_, err = s.Load("gone")
		assert.ErrorIs(t, err, ErrSaveNotFound)

		saves, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, saves)
	})
}

func TestSaveName(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	assert.Equal(t, "Save_20261019_083000", DefaultSaveName(now))
	assert.Equal(t, "Save_20261019_083000", SaveName("", now))
	assert.Equal(t, "final_v2", SaveName("final?v2", now))
	assert.Equal(t, "keep - this_one", SaveName(" keep - this.one ", now))
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open("mongo", "")
	assert.Error(t, err)

	_, err = Open(KindPostgres, "")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, parseTime(want).Equal(want))
	assert.True(t, parseTime("2026-01-02 03:04:05").Equal(want))
	assert.True(t, parseTime([]byte(formatTime(want))).Equal(want))
	assert.True(t, parseTime("not a time").IsZero())
	assert.True(t, parseTime(nil).IsZero())
}
