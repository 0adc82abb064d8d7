package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedText  = lipgloss.NewStyle().Foreground(mutedColor)

	itemNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	itemSelected = lipgloss.NewStyle().
			Foreground(successColor)

	itemFocused = lipgloss.NewStyle().
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Bold(true)

	itemDisabled = lipgloss.NewStyle().
			Foreground(mutedColor).
			Strikethrough(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	eventStyle = lipgloss.NewStyle().Foreground(warningColor)
)
