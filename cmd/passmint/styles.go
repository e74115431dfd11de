package main

import "github.com/charmbracelet/lipgloss"

// GitHub terminal light theme palette.
var (
	colorFg      = lipgloss.Color("#24292f") // primary foreground
	colorMuted   = lipgloss.Color("#656d76") // muted/dim text
	colorAccent  = lipgloss.Color("#0969da") // accent blue
	colorError   = lipgloss.Color("#cf222e") // error red
	colorSuccess = lipgloss.Color("#1a7f37") // success green
	colorWarning = lipgloss.Color("#9a6700") // warning amber
)

// Centralized style definitions for the TUI.
var (
	// Header styles.
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// Password display styles.
	passwordStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFg)
	passwordBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Entropy readout styles.
	entropyStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	weakStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	fairStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	strongStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	excellentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// Copy status styles.
	copiedStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	copyFailedStyle = lipgloss.NewStyle().Foreground(colorError)

	// General utility styles.
	dimStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
