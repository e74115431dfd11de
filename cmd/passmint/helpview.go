package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the overlay shown when the user presses "?".
const helpMarkdown = `# passmint

A fresh password is generated every time an option changes.

## Keys

- ` + "`tab`, `shift+tab`" + `: move between fields
- type a number, or ` + "`↑`/`↓`, `+`/`-`" + `: adjust the length (6 to 100)
- ` + "`space`, `enter`" + `: toggle the focused character set
- ` + "`r`" + `: regenerate with the current options
- ` + "`c`" + `: copy the password to the clipboard
- ` + "`?`" + `: toggle this help, ` + "`esc`" + ` closes it
- ` + "`q`, `ctrl+c`" + `: quit

## Pool

Letters are always included. Digits add 0-9 and symbols add the 32 ASCII
punctuation characters. Each character is drawn uniformly with replacement,
so enabling a set offers its characters but does not force one into the
result.
`

// mdRenderer renders the help overlay. Rebuilt on resize so word wrap
// follows the window.
var mdRenderer *glamour.TermRenderer

func initMarkdownRenderer(width int) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return
	}
	mdRenderer = r
}

// renderHelp converts the help markdown to terminal-formatted output,
// falling back to the raw text if the renderer is unavailable.
func renderHelp() string {
	if mdRenderer == nil {
		return helpMarkdown
	}
	out, err := mdRenderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}
