package progress

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	current    lipgloss.Style
	message    lipgloss.Style
	errorText  lipgloss.Style
	success    lipgloss.Style
	solved     lipgloss.Style
	failed     lipgloss.Style
	skipped    lipgloss.Style
	premium    lipgloss.Style
	label      lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		current:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		message:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		errorText:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		solved:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		failed:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		skipped:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		premium:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
