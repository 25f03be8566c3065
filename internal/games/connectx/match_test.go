package connectx

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
	"github.com/vovakirdan/connectx/internal/registry"
)

func newTestMatch(t *testing.T, mode config.Mode, opts ...Option) *Match {
	t.Helper()
	cfg := config.DefaultGameConfig()
	cfg.Mode = mode
	cfg.Difficulty = config.DifficultyMedium
	m, err := NewMatch(cfg, opts...)
	require.NoError(t, err)
	return m
}

func dropAll(t *testing.T, m *Match, cols ...int) {
	t.Helper()
	for _, c := range cols {
		move, err := m.Drop(c)
		require.NoError(t, err)
		require.True(t, move.Valid, "column %d rejected", c)
	}
}

func TestPlayerVsPlayer(t *testing.T) {
	m := newTestMatch(t, config.ModePvP)
	assert.Equal(t, "Player 1's Turn", m.Message())
	assert.False(t, m.IsComputerTurn())

	move, err := m.Drop(3)
	require.NoError(t, err)
	assert.Equal(t, 5, move.Row)
	assert.Equal(t, core.MarkA, move.Mark)
	assert.Equal(t, "Player 2's Turn", m.Message())

	_, err = m.PlayComputer()
	assert.ErrorIs(t, err, ErrNotComputerTurn)

	dropAll(t, m, 4, 3, 4, 3, 4, 3)
	assert.True(t, m.IsOver())
	assert.Equal(t, core.StatusAWon, m.Status())
	assert.Equal(t, "Player 1 Wins!", m.Message())

	_, err = m.Drop(0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestDropRejectsBadColumns(t *testing.T) {
	m := newTestMatch(t, config.ModePvP)

	for _, c := range []int{-1, 7} {
		move, err := m.Drop(c)
		assert.ErrorIs(t, err, ErrColumnOutOfRange)
		assert.False(t, move.Valid)
	}

	dropAll(t, m, 0, 0, 0, 0, 0, 0)
	move, err := m.Drop(0)
	require.NoError(t, err, "a full column is not an error")
	assert.False(t, move.Valid)
	assert.Equal(t, 6, m.MoveCount())
}

func TestPlayerVsComputer(t *testing.T) {
	m := newTestMatch(t, config.ModePvC, WithSeed(1))
	assert.False(t, m.IsComputer(core.PlayerA))
	assert.True(t, m.IsComputer(core.PlayerB))

	dropAll(t, m, 3)
	require.True(t, m.IsComputerTurn())

	_, err := m.Drop(2)
	assert.ErrorIs(t, err, ErrNotHumanTurn)

	moves, err := m.RunComputer()
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.True(t, moves[0].Valid)
	assert.Equal(t, core.MarkB, moves[0].Mark)
	assert.False(t, m.IsComputerTurn())
	assert.Equal(t, 2, m.MoveCount())
}

func TestComputerBlocksHuman(t *testing.T) {
	// A has three in column 0, B two in column 6, B to move.
	m := newTestMatch(t, config.ModePvP)
	dropAll(t, m, 0, 6, 0, 6, 0)

	snap := m.Snapshot()
	snap.Config.Mode = config.ModePvC
	resumed, err := ResumeMatch(snap)
	require.NoError(t, err)
	require.True(t, resumed.IsComputerTurn())

	moves, err := resumed.RunComputer()
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, 0, moves[0].Column)
	assert.Equal(t, 2, moves[0].Row)
}

func TestComputerVsComputer(t *testing.T) {
	cfg, err := registry.Create("tiny")
	require.NoError(t, err)
	cfg.Mode = config.ModeCvC
	cfg.Difficulty = config.DifficultyEasy

	play := func() (*Match, []core.MoveDescriptor) {
		m, err := NewMatch(cfg, WithSeed(42))
		require.NoError(t, err)
		moves, err := m.RunComputer()
		require.NoError(t, err)
		return m, moves
	}

	m1, moves1 := play()
	m2, moves2 := play()

	assert.True(t, m1.IsOver())
	assert.Len(t, moves1, m1.MoveCount())
	assert.Equal(t, moves1, moves2, "seeded games must repeat")
	assert.Equal(t, m1.Snapshot(), m2.Snapshot())

	_, err = m1.PlayComputer()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSearchDepthOverride(t *testing.T) {
	cfg, err := registry.Create("tiny")
	require.NoError(t, err)
	cfg.Mode = config.ModeCvC

	m, err := NewMatch(cfg, WithSearchDepth(2))
	require.NoError(t, err)
	res := m.BestMove()
	assert.Equal(t, 2, res.Depth)
	assert.True(t, m.Board().IsEmpty(), "BestMove must not touch the match board")
}

func TestDrawMessage(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Width, cfg.Height, cfg.ConnectLength = 3, 3, 3
	m, err := NewMatch(cfg)
	require.NoError(t, err)

	dropAll(t, m, 0, 1, 2, 1, 0, 0, 2, 2, 1)
	assert.Equal(t, core.StatusDraw, m.Status())
	assert.Equal(t, "Game is a Draw!", m.Message())
}

func TestResumeMatch(t *testing.T) {
	m := newTestMatch(t, config.ModePvP)
	dropAll(t, m, 3, 4, 3, 4, 3, 4)

	resumed, err := ResumeMatch(m.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, "Player 1's Turn", resumed.Message())
	pos, ok := resumed.LastMove()
	require.True(t, ok)
	assert.Equal(t, core.Position{X: 4, Y: 3}, pos)

	dropAll(t, resumed, 3)
	assert.Equal(t, "Player 1 Wins!", resumed.Message())

	bad := m.Snapshot()
	bad.Board = "123"
	_, err = ResumeMatch(bad)
	assert.ErrorIs(t, err, core.ErrInvalidSnapshot)
}

func TestMatchLogsMoves(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	m := newTestMatch(t, config.ModePvP, WithLogger(logger))
	dropAll(t, m, 3, 4, 3, 4, 3, 4, 3)

	out := buf.String()
	assert.Contains(t, out, "move")
	assert.Contains(t, out, "column=4")
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "Player 1 Wins!")
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "cylinder", "tiny", "five", "wide"} {
		assert.True(t, registry.Exists(id), "variant %q", id)
	}

	wide, err := registry.Create("wide")
	require.NoError(t, err)
	assert.Equal(t, 12, wide.Width)
	assert.True(t, wide.Cylindrical)

	five, err := registry.Create("five")
	require.NoError(t, err)
	assert.Equal(t, 5, five.ConnectLength)
}
