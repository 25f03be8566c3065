package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

func gameConfig(w, h, c int, cylindrical bool, d config.Difficulty) config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Width, cfg.Height, cfg.ConnectLength, cfg.Cylindrical = w, h, c, cylindrical
	cfg.Difficulty = d
	return cfg
}

func position(t *testing.T, cfg config.GameConfig, cols ...int) *core.Engine {
	t.Helper()
	e, err := core.NewEngine(cfg)
	require.NoError(t, err)
	for _, c := range cols {
		_, _, ok := e.Play(c)
		require.True(t, ok, "column %d rejected", c)
	}
	return e
}

// randomPositions plays seeded random games and collects every in-progress position.
func randomPositions(t *testing.T, cfg config.GameConfig, games int, seed int64) []*core.Engine {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var out []*core.Engine

	for i := 0; i < games; i++ {
		e, err := core.NewEngine(cfg)
		require.NoError(t, err)
		for e.Status() == core.StatusInProgress {
			snap := e.Snapshot()
			copyEngine, err := core.LoadSnapshot(snap)
			require.NoError(t, err)
			out = append(out, copyEngine)

			open := e.Board().OpenColumns()
			e.Play(open[rng.Intn(len(open))])
		}
	}
	return out
}

func TestPruningMatchesPlainMinimax(t *testing.T) {
	for _, cylindrical := range []bool{false, true} {
		cfg := gameConfig(4, 4, 3, cylindrical, config.DifficultyHard)
		positions := randomPositions(t, cfg, 6, 7)
		require.NotEmpty(t, positions)

		for depth := 1; depth <= 5; depth++ {
			pruned := New(cfg, WithDepth(depth))
			plain := New(cfg, WithDepth(depth), WithPruning(false))

			for i, e := range positions {
				b := e.Board()
				got := pruned.Search(b, e.NextIsA())
				want := plain.Search(b, e.NextIsA())

				assert.Equal(t, want.Column, got.Column,
					"cylindrical=%v depth=%d position=%d board=%s", cylindrical, depth, i, core.EncodeBoard(b))
				assert.Equal(t, want.Score, got.Score,
					"cylindrical=%v depth=%d position=%d", cylindrical, depth, i)
				assert.LessOrEqual(t, got.Nodes, want.Nodes)
			}
		}
	}
}

func TestSearchRestoresBoard(t *testing.T) {
	cfg := gameConfig(7, 6, 4, true, config.DifficultyMedium)
	e := position(t, cfg, 3, 3, 2, 4, 4, 1)

	b := e.Board()
	before := b.Clone()
	res := New(cfg).Search(b, e.NextIsA())

	require.True(t, b.Equal(before), "search left the board modified")
	assert.GreaterOrEqual(t, res.Column, 0)
	assert.Equal(t, 4, res.Depth)
	assert.Positive(t, res.Nodes)
}

func TestTakesImmediateWin(t *testing.T) {
	for _, d := range []config.Difficulty{config.DifficultyMedium, config.DifficultyHard} {
		cfg := gameConfig(7, 6, 4, false, d)
		e := position(t, cfg, 0, 6, 0, 6, 0, 6)

		res := New(cfg).Search(e.Board(), e.NextIsA())
		assert.Equal(t, 0, res.Column, "difficulty %s", d)
		assert.GreaterOrEqual(t, res.Score, WinScore, "difficulty %s", d)
	}
}

func TestBlocksOpponentWin(t *testing.T) {
	cfg := gameConfig(7, 6, 4, false, config.DifficultyMedium)
	// B holds columns 4, 5 and 6 on the bottom row.
	e := position(t, cfg, 0, 4, 0, 5, 1, 6)
	require.True(t, e.NextIsA())

	assert.Equal(t, 3, New(cfg).BestMove(e.Board(), true))
}

func TestSearchForSideB(t *testing.T) {
	cfg := gameConfig(7, 6, 4, false, config.DifficultyMedium)
	// B has three in column 6 and is to move.
	e := position(t, cfg, 0, 6, 1, 6, 3, 6, 5)
	require.False(t, e.NextIsA())

	// A threatens column 2, but B completes the column first.
	assert.Equal(t, 6, New(cfg).BestMove(e.Board(), false))
}

func TestEasyIsSeeded(t *testing.T) {
	cfg := gameConfig(7, 6, 4, false, config.DifficultyEasy)
	b := core.NewBoard(7, 6)

	s1 := New(cfg, WithSeed(99))
	s2 := New(cfg, WithSeed(99))
	assert.Equal(t, 0, s1.Depth())

	for i := 0; i < 20; i++ {
		c1 := s1.BestMove(b, true)
		c2 := s2.BestMove(b, true)
		require.Equal(t, c1, c2)
		require.True(t, b.ColumnHasSpace(c1))
	}
}

func TestOnlyOpenColumnIsChosen(t *testing.T) {
	// Columns 0-2 are full, column 3 is empty.
	b := core.NewBoard(4, 4)
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			m := core.MarkA
			if (x+y)%2 == 0 {
				m = core.MarkB
			}
			b.Set(x, y, m)
		}
	}

	for _, d := range []config.Difficulty{config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard} {
		cfg := gameConfig(4, 4, 3, false, d)
		assert.Equal(t, 3, New(cfg, WithSeed(1)).BestMove(b, true), "difficulty %s", d)
	}
}

func TestNoOpenColumn(t *testing.T) {
	b := core.NewBoard(3, 3)
	for i := range b.Cells {
		b.Cells[i] = core.MarkB
	}
	cfg := gameConfig(3, 3, 3, false, config.DifficultyHard)

	res := New(cfg).Search(b, true)
	assert.Equal(t, -1, res.Column)
	assert.Equal(t, -1, New(cfg, WithDepth(0)).BestMove(b, true))
}

func TestCenterOut(t *testing.T) {
	assert.Equal(t, []int{3, 2, 4, 1, 5, 0, 6}, centerOut(7))
	assert.Equal(t, []int{2, 1, 3, 0}, centerOut(4))
	assert.Equal(t, []int{1, 0, 2}, centerOut(3))
}

func TestDepthOverride(t *testing.T) {
	cfg := gameConfig(7, 6, 4, false, config.DifficultyHard)
	assert.Equal(t, 6, New(cfg).Depth())
	assert.Equal(t, 2, New(cfg, WithDepth(2)).Depth())
	assert.Equal(t, 0, New(cfg, WithDepth(-3)).Depth())
}
