// Package core provides the connect-x board engine: gravity-fill placement,
// win detection and snapshots. It is UI-agnostic, deterministic and does no I/O.
package core

import "fmt"

// Mark is the content of a single board cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkA
	MarkB
	MarkAWin // A's mark inside a completed run
	MarkBWin // B's mark inside a completed run
)

// Base folds the winning variants onto the owner's plain mark.
func (m Mark) Base() Mark {
	switch m {
	case MarkAWin:
		return MarkA
	case MarkBWin:
		return MarkB
	default:
		return m
	}
}

// IsEmpty reports whether the cell holds no piece.
func (m Mark) IsEmpty() bool {
	return m == MarkEmpty
}

// IsWinning reports whether m is one of the winning variants.
func (m Mark) IsWinning() bool {
	return m == MarkAWin || m == MarkBWin
}

// Owner returns the player whose piece m is.
func (m Mark) Owner() Player {
	switch m {
	case MarkA, MarkAWin:
		return PlayerA
	case MarkB, MarkBWin:
		return PlayerB
	default:
		return NoPlayer
	}
}

// String returns the string representation of a mark.
func (m Mark) String() string {
	switch m {
	case MarkEmpty:
		return "Empty"
	case MarkA:
		return "A"
	case MarkB:
		return "B"
	case MarkAWin:
		return "A-Win"
	case MarkBWin:
		return "B-Win"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
}

// Player identifies one side of the game.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

// Opponent returns the other side. NoPlayer has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return NoPlayer
	}
}

// Mark returns the plain mark placed by p.
func (p Player) Mark() Mark {
	switch p {
	case PlayerA:
		return MarkA
	case PlayerB:
		return MarkB
	default:
		return MarkEmpty
	}
}

// WinMark returns the winning variant of p's mark.
func (p Player) WinMark() Mark {
	switch p {
	case PlayerA:
		return MarkAWin
	case PlayerB:
		return MarkBWin
	default:
		return MarkEmpty
	}
}

// String returns the string representation of a player.
func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "None"
	}
}

// PlayerFor maps the next-mover flag to a player.
func PlayerFor(nextIsA bool) Player {
	if nextIsA {
		return PlayerA
	}
	return PlayerB
}
