package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/passmint/passmint/pkg/clip"
)

// statusBarModel renders the bottom rows: the transient clipboard status and
// the key hint line.
type statusBarModel struct {
	help help.Model
	keys keyMap
}

func newStatusBar(keys keyMap) statusBarModel {
	return statusBarModel{help: help.New(), keys: keys}
}

func (m *statusBarModel) setWidth(w int) {
	m.help.Width = w
}

func (m statusBarModel) View(status clip.Status) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		statusLine(status),
		m.help.View(m.keys),
	)
}

// statusLine renders the copy feedback. The line is reserved even when empty
// so the layout does not jump when the status expires.
func statusLine(status clip.Status) string {
	switch status {
	case clip.StatusCopied:
		return copiedStyle.Render("✓ copied")
	case clip.StatusFailed:
		return copyFailedStyle.Render("✗ copy failed")
	default:
		return " "
	}
}
