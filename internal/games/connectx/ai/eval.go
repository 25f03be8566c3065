package ai

import "github.com/vovakirdan/connectx/internal/games/connectx/core"

// Evaluate scores a position for side without searching.
//
// Every window of exactly ConnectLength cells is classified: windows holding
// both sides' marks score 0, own windows one mark short score NearWin and two
// short score Build, the opponent's mirror windows score -2*NearWin and -Build.
// Own marks in the center column add CenterBonus each.
func (s *Searcher) Evaluate(b *core.Board, side core.Player) int {
	opp := side.Opponent()
	score := 0

	for _, w := range s.windows {
		own, theirs, empty := 0, 0, 0
		for _, i := range w {
			switch b.Cells[i].Owner() {
			case side:
				own++
			case opp:
				theirs++
			default:
				empty++
			}
		}
		score += s.scoreWindow(own, theirs, empty)
	}

	center := s.width / 2
	for y := 0; y < s.height; y++ {
		if b.At(center, y).Owner() == side {
			score += CenterBonus
		}
	}
	return score
}

func (s *Searcher) scoreWindow(own, theirs, empty int) int {
	if own > 0 && theirs > 0 {
		return 0
	}
	switch {
	case own == s.connect-1 && empty == 1:
		return NearWin
	case own == s.connect-2 && empty == 2:
		return Build
	case theirs == s.connect-1 && empty == 1:
		return -2 * NearWin
	case theirs == s.connect-2 && empty == 2:
		return -Build
	}
	return 0
}

// buildWindows lists the cell indexes of every window of connect cells.
// Horizontal and diagonal windows wrap around the columns on cylindrical boards.
func buildWindows(width, height, connect int, cylindrical bool) [][]int {
	var windows [][]int

	add := func(x0, y0, dx, dy int) {
		w := make([]int, 0, connect)
		for i := 0; i < connect; i++ {
			x, y := x0+dx*i, y0+dy*i
			if y < 0 || y >= height {
				return
			}
			if cylindrical {
				x = ((x % width) + width) % width
			} else if x < 0 || x >= width {
				return
			}
			w = append(w, y*width+x)
		}
		windows = append(windows, w)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// vertical
			add(x, y, 0, 1)

			// A wrapped horizontal window spanning the whole ring is the same
			// cell set from every start column.
			if x == 0 || !cylindrical || width > connect {
				add(x, y, 1, 0)
			}

			add(x, y, 1, 1)
			add(x, y, 1, -1)
		}
	}
	return windows
}
