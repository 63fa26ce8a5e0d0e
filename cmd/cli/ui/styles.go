// Package ui provides the interactive dashboard for margin-optimizer.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors shared across the dashboard
var (
	ColorSuccess = lipgloss.Color("#8BC34A") // healthy margin
	ColorWarning = lipgloss.Color("#FFC107") // acceptable margin
	ColorDanger  = lipgloss.Color("#e53935") // margin needs action
	ColorInfo    = lipgloss.Color("#2196F3")
	ColorMuted   = lipgloss.Color("#6b7280")
	ColorBorder  = lipgloss.Color("#2a3850")
	ColorAccent  = lipgloss.Color("#4db6ac")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(ColorAccent).
			Underline(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorDanger).
				Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedSuggestionStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(ColorAccent)

	noResultsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Italic(true).
			Foreground(ColorMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
