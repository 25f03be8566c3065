// Package text renders boards and matches as terminal text.
package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectx/internal/games/connectx"
	"github.com/vovakirdan/connectx/internal/games/connectx/core"
)

// Piece symbols.
const (
	SymbolA     = "X"
	SymbolB     = "O"
	SymbolEmpty = "."
)

// Renderer turns boards into text.
type Renderer struct {
	theme Theme
	color bool
}

// NewRenderer creates a renderer. With color off every style is ignored.
func NewRenderer(color bool) *Renderer {
	if color {
		return &Renderer{theme: DefaultTheme(), color: true}
	}
	return &Renderer{theme: PlainTheme()}
}

// WithTheme replaces the color theme.
func (r *Renderer) WithTheme(t Theme) *Renderer {
	r.theme = t
	return r
}

func (r *Renderer) style(s lipgloss.Style, v string) string {
	if !r.color {
		return v
	}
	return s.Render(v)
}

func (r *Renderer) cell(m core.Mark, last bool) string {
	var sym string
	var st lipgloss.Style
	switch m {
	case core.MarkA:
		sym, st = SymbolA, r.theme.PieceA
	case core.MarkB:
		sym, st = SymbolB, r.theme.PieceB
	case core.MarkAWin:
		sym, st = SymbolA, r.theme.WinA
	case core.MarkBWin:
		sym, st = SymbolB, r.theme.WinB
	default:
		sym, st = SymbolEmpty, r.theme.Empty
	}
	if last {
		st = st.Inherit(r.theme.LastMove)
	}
	return r.style(st, sym)
}

// Board renders b with 1-based column numbers on top. Cylindrical boards get
// ':' side borders instead of '|'. last, if non-nil, is underlined.
func (r *Renderer) Board(b *core.Board, cylindrical bool, last *core.Position) string {
	cw := len(strconv.Itoa(b.W))
	border := "|"
	if cylindrical {
		border = ":"
	}

	var sb strings.Builder

	nums := make([]string, b.W)
	for x := range nums {
		nums[x] = fmt.Sprintf("%*d", cw, x+1)
	}
	sb.WriteString(" ")
	sb.WriteString(r.style(r.theme.Header, strings.Join(nums, " ")))
	sb.WriteString("\n")

	cells := make([]string, b.W)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			isLast := last != nil && last.X == x && last.Y == y
			cells[x] = strings.Repeat(" ", cw-1) + r.cell(b.At(x, y), isLast)
		}
		sb.WriteString(r.style(r.theme.Frame, border))
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString(r.style(r.theme.Frame, border))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Match renders the board of m followed by the legend and status message.
func (r *Renderer) Match(m *connectx.Match) string {
	cfg := m.Config()

	var last *core.Position
	if pos, ok := m.LastMove(); ok {
		last = &pos
	}

	var sb strings.Builder
	sb.WriteString(r.style(r.theme.Header, cfg.Summary()))
	sb.WriteString("\n")
	sb.WriteString(r.Board(m.Board(), cfg.Cylindrical, last))
	fmt.Fprintf(&sb, "%s %s   %s %s\n",
		r.style(r.theme.PieceA, SymbolA), labelFor(m, core.PlayerA),
		r.style(r.theme.PieceB, SymbolB), labelFor(m, core.PlayerB),
	)

	st := r.theme.Status
	if m.IsOver() {
		st = r.theme.Highlight
	}
	sb.WriteString(r.style(st, m.Message()))
	sb.WriteString("\n")
	return sb.String()
}

func labelFor(m *connectx.Match, p core.Player) string {
	if m.IsComputer(p) {
		return m.Label(p) + " (computer)"
	}
	return m.Label(p)
}
