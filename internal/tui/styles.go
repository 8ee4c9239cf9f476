package tui

import "github.com/charmbracelet/lipgloss"

var (
	milkBlue = lipgloss.Color("#7BA7D9")
	dimGray  = lipgloss.Color("241")

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(milkBlue).
			Padding(0, 1)

	rowStyle      = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(milkBlue).
			Bold(true)
	emptyStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(dimGray)

	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(milkBlue).
			Padding(1, 2)
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	buttonStyle      = lipgloss.NewStyle().Foreground(milkBlue).Bold(true)
	disabledStyle    = lipgloss.NewStyle().Foreground(dimGray)

	helpStyle = lipgloss.NewStyle().PaddingLeft(1)
)
