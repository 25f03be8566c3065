package text

import "github.com/charmbracelet/lipgloss"

// Theme contains the styles used for board output.
type Theme struct {
	PieceA    lipgloss.Style
	PieceB    lipgloss.Style
	WinA      lipgloss.Style
	WinB      lipgloss.Style
	Empty     lipgloss.Style
	LastMove  lipgloss.Style // applied on top of the piece style
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Status    lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		PieceA:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Bright red
		PieceB:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Bright yellow
		WinA:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true),
		WinB:      lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Bold(true),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		LastMove:  lipgloss.NewStyle().Underline(true),
		Frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// PlainTheme returns a theme without any styling.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		PieceA:    plain,
		PieceB:    plain,
		WinA:      plain,
		WinB:      plain,
		Empty:     plain,
		LastMove:  plain,
		Frame:     plain,
		Header:    plain,
		Status:    plain,
		Highlight: plain,
	}
}
