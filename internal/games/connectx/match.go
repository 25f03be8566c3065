// Package connectx runs connect-x matches: it pairs the board engine with
// computer players according to the configured mode.
package connectx

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/ai"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

var (
	ErrGameOver         = errors.New("connectx: game is over")
	ErrNotHumanTurn     = errors.New("connectx: it is the computer's turn")
	ErrNotComputerTurn  = errors.New("connectx: it is a human player's turn")
	ErrColumnOutOfRange = errors.New("connectx: column out of range")
)

// Match is one game between two sides, each human or computer.
// It is not safe for concurrent use.
type Match struct {
	engine    *core.Engine
	searcher  *ai.Searcher
	logger    *log.Logger
	computerA bool
	computerB bool
}

// Option configures a Match.
type Option func(*matchOptions)

type matchOptions struct {
	logger *log.Logger
	search []ai.Option
}

// WithLogger sets the logger for move and result events.
func WithLogger(l *log.Logger) Option {
	return func(o *matchOptions) { o.logger = l }
}

// WithRand sets the random source of the computer player.
func WithRand(rng *rand.Rand) Option {
	return func(o *matchOptions) { o.search = append(o.search, ai.WithRand(rng)) }
}

// WithSeed seeds the computer player's random source.
func WithSeed(seed int64) Option {
	return func(o *matchOptions) { o.search = append(o.search, ai.WithSeed(seed)) }
}

// WithSearchDepth overrides the depth implied by the difficulty.
func WithSearchDepth(depth int) Option {
	return func(o *matchOptions) { o.search = append(o.search, ai.WithDepth(depth)) }
}

// NewMatch starts a game on an empty board.
func NewMatch(cfg config.GameConfig, opts ...Option) (*Match, error) {
	e, err := core.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return newMatch(e, opts), nil
}

// ResumeMatch continues a game from a snapshot.
func ResumeMatch(snap core.Snapshot, opts ...Option) (*Match, error) {
	e, err := core.LoadSnapshot(snap)
	if err != nil {
		return nil, err
	}
	return newMatch(e, opts), nil
}

func newMatch(e *core.Engine, opts []Option) *Match {
	o := matchOptions{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := e.Config()
	return &Match{
		engine:    e,
		searcher:  ai.New(cfg, o.search...),
		logger:    o.logger,
		computerA: cfg.Mode == config.ModeCvC,
		computerB: cfg.Mode == config.ModePvC || cfg.Mode == config.ModeCvC,
	}
}

// Config returns the match configuration.
func (m *Match) Config() config.GameConfig {
	return m.engine.Config()
}

// Board returns a copy of the board.
func (m *Match) Board() *core.Board {
	return m.engine.Board()
}

// Status returns the match state.
func (m *Match) Status() core.Status {
	return m.engine.Status()
}

// IsOver reports whether the game has finished.
func (m *Match) IsOver() bool {
	return m.engine.Status().IsTerminal()
}

// LastMove returns the last executed cell, if any.
func (m *Match) LastMove() (core.Position, bool) {
	return m.engine.LastMove()
}

// MoveCount returns the number of moves played.
func (m *Match) MoveCount() int {
	return m.engine.MoveCount()
}

// Snapshot captures the match for persistence.
func (m *Match) Snapshot() core.Snapshot {
	return m.engine.Snapshot()
}

// IsComputer reports whether p is computer-controlled.
func (m *Match) IsComputer(p core.Player) bool {
	switch p {
	case core.PlayerA:
		return m.computerA
	case core.PlayerB:
		return m.computerB
	default:
		return false
	}
}

// IsComputerTurn reports whether the side to move is computer-controlled.
func (m *Match) IsComputerTurn() bool {
	return !m.IsOver() && m.IsComputer(m.engine.NextPlayer())
}

// Label returns the display name of p.
func (m *Match) Label(p core.Player) string {
	cfg := m.engine.Config()
	switch p {
	case core.PlayerA:
		return cfg.PlayerA
	case core.PlayerB:
		return cfg.PlayerB
	default:
		return ""
	}
}

// NextPlayer returns the side to move.
func (m *Match) NextPlayer() core.Player {
	return m.engine.NextPlayer()
}

// CurrentLabel returns the display name of the side to move.
func (m *Match) CurrentLabel() string {
	return m.Label(m.engine.NextPlayer())
}

// Message describes the match state for a status line.
func (m *Match) Message() string {
	switch s := m.engine.Status(); s {
	case core.StatusAWon, core.StatusBWon:
		return fmt.Sprintf("%s Wins!", m.Label(s.Winner()))
	case core.StatusDraw:
		return "Game is a Draw!"
	default:
		return fmt.Sprintf("%s's Turn", m.CurrentLabel())
	}
}

// Drop plays a human move into column (0-based).
// A full column returns an invalid descriptor and no error; nothing changes.
func (m *Match) Drop(column int) (core.MoveDescriptor, error) {
	if m.IsOver() {
		return core.InvalidMove(column), ErrGameOver
	}
	if m.IsComputerTurn() {
		return core.InvalidMove(column), ErrNotHumanTurn
	}
	if w := m.engine.Config().Width; column < 0 || column >= w {
		return core.InvalidMove(column), fmt.Errorf("%w: %d not in 0..%d", ErrColumnOutOfRange, column, w-1)
	}
	return m.play(column), nil
}

// BestMove searches the current position for the side to move.
// The search runs on a copy of the board.
func (m *Match) BestMove() ai.Result {
	return m.searcher.Search(m.engine.Board(), m.engine.NextIsA())
}

// PlayComputer lets the computer make one move.
func (m *Match) PlayComputer() (core.MoveDescriptor, error) {
	if m.IsOver() {
		return core.InvalidMove(-1), ErrGameOver
	}
	if !m.IsComputerTurn() {
		return core.InvalidMove(-1), ErrNotComputerTurn
	}

	res := m.BestMove()
	m.logger.Debug("computer chose",
		"player", m.CurrentLabel(),
		"column", res.Column+1,
		"score", res.Score,
		"depth", res.Depth,
		"nodes", res.Nodes,
	)
	if res.Column < 0 {
		// Unreachable while the game is in progress: a board with no open column is a draw.
		return core.InvalidMove(-1), ErrGameOver
	}
	return m.play(res.Column), nil
}

// RunComputer plays computer moves until a human is to move or the game ends.
func (m *Match) RunComputer() ([]core.MoveDescriptor, error) {
	var moves []core.MoveDescriptor
	for m.IsComputerTurn() {
		move, err := m.PlayComputer()
		if err != nil {
			return moves, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

func (m *Match) play(column int) core.MoveDescriptor {
	label := m.CurrentLabel()
	move, out, ok := m.engine.Play(column)
	if !ok {
		m.logger.Debug("column full", "player", label, "column", column+1)
		return move
	}

	m.logger.Debug("move",
		"player", label,
		"column", column+1,
		"row", move.Row,
		"moves", m.engine.MoveCount(),
	)
	if out.Status.IsTerminal() {
		m.logger.Info("game over", "result", m.Message(), "moves", m.engine.MoveCount())
	}
	return move
}
