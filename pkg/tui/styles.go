package tui

import "github.com/charmbracelet/lipgloss"

// Color palette shared across views.
const (
	ColorPrimary   = "170" // purple
	ColorActive    = "214" // orange
	ColorSuccess   = "42"  // green
	ColorError     = "196" // red
	ColorDim       = "241" // gray
	ColorVeryDim   = "238" // darker gray
	ColorWhite     = "255"
	ColorHighlight = "212" // pink
)

var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary))

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorActive)).
		Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Padding(0, 1)

	activePaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(0, 1)

	inactivePaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorVeryDim)).
				Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorPrimary))

	dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorVeryDim))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight))
)

func paneStyle(active bool) lipgloss.Style {
	if active {
		return activePaneStyle
	}
	return inactivePaneStyle
}
