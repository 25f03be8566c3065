package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		cylindrical bool
		wantA       int
		wantB       int
	}{
		// 4 windows through (2,3): two horizontal, one vertical, one diagonal.
		{"flat", false, 4*Build + CenterBonus, -4 * Build},
		// Wrapping adds a horizontal and an up-right diagonal window.
		{"cylindrical", true, 6*Build + CenterBonus, -6 * Build},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := gameConfig(4, 4, 3, tc.cylindrical, config.DifficultyHard)
			s := New(cfg)

			b := core.NewBoard(4, 4)
			assert.Equal(t, 0, s.Evaluate(b, core.PlayerA))

			b.Set(2, 3, core.MarkA)
			assert.Equal(t, tc.wantA, s.Evaluate(b, core.PlayerA))
			assert.Equal(t, tc.wantB, s.Evaluate(b, core.PlayerB))
		})
	}
}

func TestEvaluateWeightsThreats(t *testing.T) {
	cfg := gameConfig(7, 6, 4, false, config.DifficultyHard)
	s := New(cfg)

	b := core.NewBoard(7, 6)
	for x := 0; x < 3; x++ {
		b.Set(x, 5, core.MarkA)
	}
	// Row 5 windows: 0-3 is one short, 1-4 two short.
	assert.Equal(t, NearWin+Build, s.Evaluate(b, core.PlayerA))
	assert.Equal(t, -2*NearWin-Build, s.Evaluate(b, core.PlayerB))

	// Blocking the open end kills the near-win window for both sides.
	b.Set(3, 5, core.MarkB)
	assert.Equal(t, 0, s.Evaluate(b, core.PlayerA))
}

func TestWindowCount(t *testing.T) {
	// 7x6 connect 4: 24 horizontal, 21 vertical, 12 per diagonal.
	assert.Len(t, buildWindows(7, 6, 4, false), 69)
	// Wrapped: 42 horizontal, 21 vertical, 21 per diagonal.
	assert.Len(t, buildWindows(7, 6, 4, true), 105)
	// Width equal to the run length keeps one horizontal window per row.
	assert.Len(t, buildWindows(4, 4, 4, true), 4+4+4+4)
}
