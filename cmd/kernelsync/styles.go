package main

import "github.com/charmbracelet/lipgloss"

// Styles for list and doctor output.
var (
	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("40"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	boldStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)
