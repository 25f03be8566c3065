package core

import (
	"testing"

	"github.com/vovakirdan/connectx/internal/config"
)

func classic() config.GameConfig {
	return config.DefaultGameConfig()
}

func sized(w, h, c int, cylindrical bool) config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Width, cfg.Height, cfg.ConnectLength, cfg.Cylindrical = w, h, c, cylindrical
	return cfg
}

func newEngine(t *testing.T, cfg config.GameConfig) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() failed: %v", err)
	}
	return e
}

// play drops pieces into the given columns, alternating sides.
func play(t *testing.T, e *Engine, cols ...int) Outcome {
	t.Helper()
	var out Outcome
	for i, c := range cols {
		move, o, ok := e.Play(c)
		if !ok {
			t.Fatalf("move %d: column %d rejected (%+v)", i, c, move)
		}
		out = o
	}
	return out
}

// boardFromRows builds a board from top-to-bottom rows using '.', 'A' and 'B'.
func boardFromRows(rows ...string) *Board {
	b := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case 'A':
				b.Set(x, y, MarkA)
			case 'B':
				b.Set(x, y, MarkB)
			}
		}
	}
	return b
}
