package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

	Value = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))

	Positive = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))

	Negative = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	Warn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))

	Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)
