package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Title lipgloss.Style
	Error lipgloss.Style
	Usage lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Usage: lipgloss.NewStyle().Faint(true),
	}
}
