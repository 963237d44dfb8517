package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
// Use these constants throughout the TUI to ensure visual consistency.
var (
	// Primary Colors - Core brand colors
	leafGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - primary accent
	limeYellow  = lipgloss.Color("#DCEDC1") // Pale lime - secondary accent
	berryRed    = lipgloss.Color("#FF8B94") // Soft berry red - errors and warnings
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
)

// Common Styles
// These are pre-configured styles for common UI elements.
// Use these as base styles and customize as needed.
var (
	// Text Styles
	titleStyle = lipgloss.NewStyle().
			Foreground(leafGreen).
			Bold(true)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			PaddingLeft(2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(leafGreen).
				Bold(true).
				PaddingLeft(0)

	promptStyle = lipgloss.NewStyle().
			Foreground(limeYellow)

	successStyle = lipgloss.NewStyle().
			Foreground(leafGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(berryRed)

	warnStyle = lipgloss.NewStyle().
			Foreground(berryRed).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(leafGreen)

	// Container Styles
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(leafGreen).
			Padding(0, 1)
)
