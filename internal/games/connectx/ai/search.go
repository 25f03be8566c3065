// Package ai picks moves for a computer player with depth-limited minimax
// and alpha-beta pruning.
package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

// Score weights.
const (
	WinScore    = 100000
	NearWin     = 100 // own window one mark short of a run
	Build       = 10  // own window two marks short
	CenterBonus = 3   // per own mark in the center column
)

const inf = math.MaxInt32

// Searcher chooses columns for one game configuration.
// It is not safe for concurrent use: the search mutates and restores the
// board it is given, and the random source is shared.
type Searcher struct {
	width, height int
	connect       int
	depth         int
	pruning       bool
	rng           *rand.Rand
	detector      core.WinDetector
	order         []int
	windows       [][]int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithRand sets the random source used by the easy tier.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) { s.rng = rng }
}

// WithSeed is WithRand with a fresh source seeded from seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithDepth overrides the depth derived from the difficulty. 0 means random play.
func WithDepth(depth int) Option {
	return func(s *Searcher) { s.depth = max(depth, 0) }
}

// WithPruning toggles alpha-beta cutoffs. It exists for comparison tests.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) { s.pruning = enabled }
}

// New creates a searcher for cfg. cfg is expected to be valid.
func New(cfg config.GameConfig, opts ...Option) *Searcher {
	s := &Searcher{
		width:    cfg.Width,
		height:   cfg.Height,
		connect:  cfg.ConnectLength,
		depth:    config.SearchDepth(cfg.Difficulty),
		pruning:  true,
		detector: core.NewWinDetector(cfg.ConnectLength, cfg.Cylindrical),
		order:    centerOut(cfg.Width),
		windows:  buildWindows(cfg.Width, cfg.Height, cfg.ConnectLength, cfg.Cylindrical),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Depth returns the search depth in plies. 0 means random play.
func (s *Searcher) Depth() int {
	return s.depth
}

// Result describes a finished search.
type Result struct {
	Column int // -1 when no column has space
	Score  int
	Depth  int
	Nodes  int // positions visited
}

// BestMove returns the column to play for the side given by nextIsA,
// or -1 when the board has no open column. The board is restored before returning.
func (s *Searcher) BestMove(b *core.Board, nextIsA bool) int {
	return s.Search(b, nextIsA).Column
}

// Search runs the configured search and reports its statistics.
func (s *Searcher) Search(b *core.Board, nextIsA bool) Result {
	open := b.OpenColumns()
	if len(open) == 0 {
		return Result{Column: -1, Depth: s.depth}
	}
	if s.depth == 0 {
		return Result{Column: open[s.rng.Intn(len(open))], Depth: 0, Nodes: 1}
	}

	side := core.PlayerFor(nextIsA)
	st := &state{s: s, b: b, side: side}

	best, bestScore := -1, -inf
	alpha := -inf
	for _, col := range s.order {
		if !b.ColumnHasSpace(col) {
			continue
		}
		score := st.try(col, side, func(row int) int {
			return st.minimax(col, row, s.depth-1, alpha, inf, side.Opponent())
		})
		if score > bestScore {
			best, bestScore = col, score
		}
		alpha = max(alpha, bestScore)
	}

	return Result{Column: best, Score: bestScore, Depth: s.depth, Nodes: st.nodes}
}

// state carries one search's scratch board and counters.
type state struct {
	s     *Searcher
	b     *core.Board
	side  core.Player // the searching side, scores are from its view
	nodes int
}

// try drops p's mark into col, runs fn with the landing row, and always lifts
// the piece again.
func (st *state) try(col int, p core.Player, fn func(row int) int) int {
	row := st.b.Drop(col, p.Mark())
	defer st.b.Lift(col, row)
	return fn(row)
}

// minimax scores the position after a piece landed at (x, y), with next to move
// and depth plies left.
func (st *state) minimax(x, y, depth, alpha, beta int, next core.Player) int {
	st.nodes++
	s := st.s

	if s.detector.Wins(st.b, x, y) {
		if st.b.At(x, y).Owner() == st.side {
			return WinScore + depth
		}
		return -WinScore - depth
	}
	if st.b.IsFull() {
		return 0
	}
	if depth == 0 {
		return s.Evaluate(st.b, st.side)
	}

	if next == st.side {
		best := -inf
		for _, col := range s.order {
			if !st.b.ColumnHasSpace(col) {
				continue
			}
			score := st.try(col, next, func(row int) int {
				return st.minimax(col, row, depth-1, alpha, beta, next.Opponent())
			})
			best = max(best, score)
			alpha = max(alpha, score)
			if s.pruning && alpha >= beta {
				break
			}
		}
		return best
	}

	best := inf
	for _, col := range s.order {
		if !st.b.ColumnHasSpace(col) {
			continue
		}
		score := st.try(col, next, func(row int) int {
			return st.minimax(col, row, depth-1, alpha, beta, next.Opponent())
		})
		best = min(best, score)
		beta = min(beta, score)
		if s.pruning && alpha >= beta {
			break
		}
	}
	return best
}

// centerOut orders columns from the middle outward, left side first.
func centerOut(width int) []int {
	center := width / 2
	order := []int{center}
	for d := 1; len(order) < width; d++ {
		if c := center - d; c >= 0 {
			order = append(order, c)
		}
		if c := center + d; c < width {
			order = append(order, c)
		}
	}
	return order
}
