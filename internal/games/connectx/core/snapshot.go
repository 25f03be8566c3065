package core

import (
	"strings"

	"github.com/vovakirdan/connectx/internal/config"
)

// Snapshot is the plain-data form of a game, suitable for persistence.
type Snapshot struct {
	Config    config.GameConfig `json:"config"`
	Board     string            `json:"board"` // row-major, one digit per cell
	NextIsA   bool              `json:"next_is_a"`
	Status    Status            `json:"status"`
	LastMove  *Position         `json:"last_move,omitempty"`
	MoveCount int               `json:"move_count"`
}

// Snapshot captures the engine state.
func (e *Engine) Snapshot() Snapshot {
	var last *Position
	if e.lastMove != nil {
		p := *e.lastMove
		last = &p
	}
	return Snapshot{
		Config:    e.cfg,
		Board:     EncodeBoard(e.board),
		NextIsA:   e.nextIsA,
		Status:    e.status,
		LastMove:  last,
		MoveCount: e.moves,
	}
}

// LoadSnapshot rebuilds an engine from s.
// Every failure is a *SnapshotError matching ErrInvalidSnapshot.
func LoadSnapshot(s Snapshot) (*Engine, error) {
	cfg := s.Config.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, &SnapshotError{Code: "config", Message: "configuration rejected", Err: err}
	}

	board, err := DecodeBoard(s.Board, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if pos, ok := board.floating(); ok {
		return nil, snapshotErr("gravity", "piece at column %d row %d has an empty cell below", pos.X, pos.Y)
	}

	status := s.Status
	if status == "" {
		status = StatusInProgress
	}
	if !status.valid() {
		return nil, snapshotErr("status", "unknown status %q", s.Status)
	}

	var last *Position
	if s.LastMove != nil {
		if !board.InBounds(s.LastMove.X, s.LastMove.Y) {
			return nil, snapshotErr("last_move", "column %d row %d is outside the %dx%d board",
				s.LastMove.X, s.LastMove.Y, cfg.Width, cfg.Height)
		}
		p := *s.LastMove
		last = &p
	}

	if s.MoveCount < 0 {
		return nil, snapshotErr("move_count", "negative move count %d", s.MoveCount)
	}
	moves := s.MoveCount
	if moves == 0 {
		moves = board.FilledCount()
	}

	return &Engine{
		cfg:      cfg,
		board:    board,
		detector: NewWinDetector(cfg.ConnectLength, cfg.Cylindrical),
		nextIsA:  s.NextIsA,
		status:   status,
		lastMove: last,
		moves:    moves,
	}, nil
}

// EncodeBoard renders the cells as a digit string: 0 empty, 1 A, 2 B,
// 3 A-winning, 4 B-winning.
func EncodeBoard(b *Board) string {
	var sb strings.Builder
	sb.Grow(len(b.Cells))
	for _, m := range b.Cells {
		sb.WriteByte('0' + byte(m))
	}
	return sb.String()
}

// DecodeBoard parses a string produced by EncodeBoard.
func DecodeBoard(s string, w, h int) (*Board, error) {
	if len(s) != w*h {
		return nil, snapshotErr("board_length", "board has %d cells, want %dx%d = %d", len(s), w, h, w*h)
	}
	b := NewBoard(w, h)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '0'+byte(MarkBWin) {
			return nil, snapshotErr("cell", "unknown cell %q at column %d row %d", c, i%w, i/w)
		}
		b.Cells[i] = Mark(c - '0')
	}
	return b, nil
}
