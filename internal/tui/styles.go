package tui

import "github.com/charmbracelet/lipgloss"

// Terminal palette.
//
//nolint:gochecknoglobals // Shared styles are read-only after init.
var (
	ColorOK       = lipgloss.Color("42")
	ColorWarning  = lipgloss.Color("214")
	ColorCritical = lipgloss.Color("196")
	ColorSubtle   = lipgloss.Color("246")
	ColorBorder   = lipgloss.Color("240")
	ColorAccent   = lipgloss.Color("39")

	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	ValueStyle    = lipgloss.NewStyle().Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorSubtle).Italic(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// HexColor converts a "#rrggbb" display color to a lipgloss color.
func HexColor(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}
