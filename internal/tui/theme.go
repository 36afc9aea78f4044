package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — hardwood court tones
var (
	primary   = lipgloss.Color("#F97316") // Basketball Orange
	secondary = lipgloss.Color("#14B8A6") // Teal
	success   = lipgloss.Color("#22C55E") // Green
	errColor  = lipgloss.Color("#F43F5E") // Rose
	text      = lipgloss.Color("#F8FAFC") // White
	textDim   = lipgloss.Color("#94A3B8") // Slate
	border    = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Align(lipgloss.Center)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primary).
			Bold(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(textDim)

	borderStyle = lipgloss.NewStyle().
			Foreground(border)
)
