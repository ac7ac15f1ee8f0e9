// Package components holds the shared visual pieces of the wizard.
package components

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle renders screen titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	// SubtitleStyle renders secondary text under titles.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	// LabelStyle renders parameter names in summaries.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	// ValueStyle renders parameter values in summaries.
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	// HintStyle renders key binding hints at the bottom of screens.
	HintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)
