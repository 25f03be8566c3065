package core

import (
	"fmt"

	"github.com/vovakirdan/connectx/internal/config"
)

// Status is the match state.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusAWon       Status = "a_won"
	StatusBWon       Status = "b_won"
	StatusDraw       Status = "draw"
)

// IsTerminal reports whether no further moves can be executed.
func (s Status) IsTerminal() bool {
	return s == StatusAWon || s == StatusBWon || s == StatusDraw
}

// Winner returns the player who won, or NoPlayer.
func (s Status) Winner() Player {
	switch s {
	case StatusAWon:
		return PlayerA
	case StatusBWon:
		return PlayerB
	default:
		return NoPlayer
	}
}

func (s Status) valid() bool {
	switch s {
	case StatusInProgress, StatusAWon, StatusBWon, StatusDraw:
		return true
	default:
		return false
	}
}

func wonStatus(p Player) Status {
	if p == PlayerA {
		return StatusAWon
	}
	return StatusBWon
}

// MoveDescriptor describes a potential move. It carries no reference to the board.
type MoveDescriptor struct {
	Valid  bool
	Column int
	Row    int   // landing row, -1 when invalid
	Path   []int // rows passed while falling, 0..Row inclusive
	Mark   Mark  // mark that would be placed
}

// InvalidMove returns the descriptor for a column that cannot take a piece.
func InvalidMove(column int) MoveDescriptor {
	return MoveDescriptor{Valid: false, Column: column, Row: -1}
}

// Outcome is the result of executing a move.
type Outcome struct {
	Position Position
	Mover    Player
	Winner   Player
	Status   Status
}

// Engine owns one game's board and turn order.
// It is not safe for concurrent use.
type Engine struct {
	cfg      config.GameConfig
	board    *Board
	detector WinDetector
	nextIsA  bool
	status   Status
	lastMove *Position
	moves    int
}

// NewEngine validates cfg and returns an engine with an empty board, A to move.
func NewEngine(cfg config.GameConfig) (*Engine, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		board:    NewBoard(cfg.Width, cfg.Height),
		detector: NewWinDetector(cfg.ConnectLength, cfg.Cylindrical),
		nextIsA:  true,
		status:   StatusInProgress,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() config.GameConfig {
	return e.cfg
}

// Board returns a copy of the board.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

// Detector returns the win detector configured for this game.
func (e *Engine) Detector() WinDetector {
	return e.detector
}

// NextIsA reports whether player A moves next.
func (e *Engine) NextIsA() bool {
	return e.nextIsA
}

// NextPlayer returns the side to move.
func (e *Engine) NextPlayer() Player {
	return PlayerFor(e.nextIsA)
}

// Status returns the match state.
func (e *Engine) Status() Status {
	return e.status
}

// LastMove returns the last executed cell, if any.
func (e *Engine) LastMove() (Position, bool) {
	if e.lastMove == nil {
		return Position{}, false
	}
	return *e.lastMove, true
}

// MoveCount returns the number of executed moves.
func (e *Engine) MoveCount() int {
	return e.moves
}

// IsBoardFull reports whether the top row is fully occupied.
func (e *Engine) IsBoardFull() bool {
	return e.board.IsFull()
}

// ComputeMove returns where a piece dropped into column would land, without
// changing anything. A full or out-of-range column gives an invalid descriptor.
func (e *Engine) ComputeMove(column int) MoveDescriptor {
	row := e.board.LandingRow(column)
	if row < 0 {
		return InvalidMove(column)
	}
	path := make([]int, row+1)
	for y := range path {
		path[y] = y
	}
	return MoveDescriptor{
		Valid:  true,
		Column: column,
		Row:    row,
		Path:   path,
		Mark:   e.NextPlayer().Mark(),
	}
}

// ExecuteMove places the mover's mark at (column, row), passes the turn,
// and updates the status from the win and draw checks.
//
// The cell must come from a valid ComputeMove on the current position.
// Executing into an occupied or out-of-range cell, or after the game ended,
// is a caller bug and panics.
func (e *Engine) ExecuteMove(column, row int) Outcome {
	if e.status.IsTerminal() {
		panic(fmt.Sprintf("connectx: ExecuteMove(%d, %d) after the game ended (%s)", column, row, e.status))
	}
	if !e.board.InBounds(column, row) {
		panic(fmt.Sprintf("connectx: ExecuteMove(%d, %d) outside %dx%d board", column, row, e.board.W, e.board.H))
	}
	if m := e.board.At(column, row); m != MarkEmpty {
		panic(fmt.Sprintf("connectx: ExecuteMove(%d, %d) into occupied cell (%s)", column, row, m))
	}

	mover := e.NextPlayer()
	e.board.Set(column, row, mover.Mark())
	e.nextIsA = !e.nextIsA
	e.moves++
	e.lastMove = &Position{X: column, Y: row}

	winner := e.EvaluateWin(column, row)
	switch {
	case winner != NoPlayer:
		e.status = wonStatus(winner)
	case e.board.IsFull():
		e.status = StatusDraw
	}

	return Outcome{
		Position: Position{X: column, Y: row},
		Mover:    mover,
		Winner:   winner,
		Status:   e.status,
	}
}

// EvaluateWin runs the win detector at (x, y), tagging a completed run.
func (e *Engine) EvaluateWin(x, y int) Player {
	return e.detector.Evaluate(e.board, x, y)
}

// Play computes and, when valid, executes a move in column.
// The returned descriptor is invalid (and nothing changes) for a full column.
func (e *Engine) Play(column int) (MoveDescriptor, Outcome, bool) {
	move := e.ComputeMove(column)
	if !move.Valid {
		return move, Outcome{Status: e.status}, false
	}
	return move, e.ExecuteMove(move.Column, move.Row), true
}
