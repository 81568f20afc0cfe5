package main

import "github.com/charmbracelet/lipgloss/v2"

var (
	proposalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	yesStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	noStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noteStyle     = lipgloss.NewStyle().Faint(true)
)
