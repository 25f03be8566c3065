package core

// direction is a (dx, dy) step. Only four are scanned; the other four are
// their mirrors and are covered by walking backward.
type direction struct {
	dx, dy int
}

var scanDirections = [...]direction{
	{0, 1},  // vertical
	{1, 0},  // horizontal
	{1, -1}, // diagonal up-right
	{1, 1},  // diagonal down-right
}

// WinDetector finds completed runs through a cell.
type WinDetector struct {
	connect     int
	cylindrical bool
}

// NewWinDetector creates a detector for runs of connect cells.
// With cylindrical set, column coordinates wrap modulo the board width.
func NewWinDetector(connect int, cylindrical bool) WinDetector {
	return WinDetector{connect: connect, cylindrical: cylindrical}
}

// ConnectLength returns the run length that wins.
func (d WinDetector) ConnectLength() int {
	return d.connect
}

// Cylindrical reports whether columns wrap.
func (d WinDetector) Cylindrical() bool {
	return d.cylindrical
}

// step moves one cell along dir, wrapping the column on cylindrical boards.
// Returns false when the step leaves the board.
func (d WinDetector) step(b *Board, x, y int, dir direction) (int, int, bool) {
	nx, ny := x+dir.dx, y+dir.dy
	if ny < 0 || ny >= b.H {
		return 0, 0, false
	}
	if d.cylindrical {
		nx = ((nx % b.W) + b.W) % b.W
	} else if nx < 0 || nx >= b.W {
		return 0, 0, false
	}
	return nx, ny, true
}

// Scan looks for a run of at least ConnectLength through (x, y) without
// modifying the board. It returns the owner and the run's cells, or NoPlayer.
// Winning variants count as their base mark.
func (d WinDetector) Scan(b *Board, x, y int) (Player, []Position) {
	base := b.At(x, y).Base()
	if base == MarkEmpty {
		return NoPlayer, nil
	}

	for _, dir := range scanDirections {
		run := []Position{{X: x, Y: y}}

		// forward
		cx, cy := x, y
		for len(run) < d.connect {
			nx, ny, ok := d.step(b, cx, cy, dir)
			if !ok || b.At(nx, ny).Base() != base {
				break
			}
			run = append(run, Position{X: nx, Y: ny})
			cx, cy = nx, ny
		}

		// backward
		back := direction{-dir.dx, -dir.dy}
		cx, cy = x, y
		for len(run) < d.connect {
			nx, ny, ok := d.step(b, cx, cy, back)
			if !ok || b.At(nx, ny).Base() != base {
				break
			}
			run = append(run, Position{X: nx, Y: ny})
			cx, cy = nx, ny
		}

		if len(run) >= d.connect {
			return base.Owner(), run
		}
	}
	return NoPlayer, nil
}

// Wins reports whether the piece at (x, y) completes a run.
func (d WinDetector) Wins(b *Board, x, y int) bool {
	p, _ := d.Scan(b, x, y)
	return p != NoPlayer
}

// Evaluate checks the just-placed cell (x, y). On a win every cell of the run
// is retagged with the owner's winning mark and the owner is returned;
// otherwise NoPlayer is returned and the board is untouched.
func (d WinDetector) Evaluate(b *Board, x, y int) Player {
	p, run := d.Scan(b, x, y)
	if p == NoPlayer {
		return NoPlayer
	}
	win := p.WinMark()
	for _, pos := range run {
		b.Set(pos.X, pos.Y, win)
	}
	return p
}
