package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/passmint/passmint/pkg/passgen"
)

var (
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	checkOnStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	checkOffStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// control identifies one focusable row of the widget.
type control int

const (
	controlLength control = iota
	controlDigits
	controlSymbols
	controlCount // number of focusable rows
)

// controlsModel renders the option rows and routes key input to whichever
// row holds focus. Every configuration change goes through the state's
// setters, so the password regenerates as soon as an option changes.
type controlsModel struct {
	focus  control
	length textinput.Model
	keys   keyMap
}

func newControls(keys keyMap, length int) controlsModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 3
	ti.Width = 4
	ti.SetValue(strconv.Itoa(length))
	ti.Focus()
	return controlsModel{length: ti, keys: keys}
}

// focusNext advances focus to the following row, wrapping around.
func (c controlsModel) focusNext(st *passgen.State) controlsModel {
	return c.setFocus((c.focus+1)%controlCount, st)
}

// focusPrev moves focus to the previous row, wrapping around.
func (c controlsModel) focusPrev(st *passgen.State) controlsModel {
	return c.setFocus((c.focus-1+controlCount)%controlCount, st)
}

func (c controlsModel) setFocus(f control, st *passgen.State) controlsModel {
	if c.focus == controlLength && f != controlLength {
		c.length.Blur()
		c.syncLength(st.Config().Length)
	}
	c.focus = f
	if f == controlLength {
		c.length.Focus()
	}
	return c
}

// syncLength makes the text field show the authoritative length again,
// discarding any in-progress edit.
func (c *controlsModel) syncLength(n int) {
	c.length.SetValue(strconv.Itoa(n))
	c.length.CursorEnd()
}

// Update handles one key press for the focused row. Focus traversal and the
// global shortcuts are handled by the parent model before it gets here.
func (c controlsModel) Update(msg tea.KeyMsg, st *passgen.State) (controlsModel, tea.Cmd) {
	if c.focus == controlLength {
		return c.handleLengthKey(msg, st)
	}
	return c.handleToggleKey(msg, st), nil
}

func (c controlsModel) handleLengthKey(msg tea.KeyMsg, st *passgen.State) (controlsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, c.keys.Increment):
		st.SetLength(st.Config().Length + 1)
		c.syncLength(st.Config().Length)
		return c, nil
	case key.Matches(msg, c.keys.Decrement):
		st.SetLength(st.Config().Length - 1)
		c.syncLength(st.Config().Length)
		return c, nil
	case msg.Type == tea.KeyEnter:
		c.syncLength(st.Config().Length)
		return c, nil
	}

	// Only digits may reach the text field.
	if msg.Type == tea.KeySpace || (msg.Type == tea.KeyRunes && !digitsOnly(msg.Runes)) {
		return c, nil
	}

	var cmd tea.Cmd
	c.length, cmd = c.length.Update(msg)

	// An empty field means the user is mid-edit; keep the last value until
	// something parseable shows up. Out-of-range values are clamped by the
	// setter, while the field keeps showing the raw digits until blur.
	if n, err := strconv.Atoi(c.length.Value()); err == nil {
		st.SetLength(n)
	}
	return c, cmd
}

func (c controlsModel) handleToggleKey(msg tea.KeyMsg, st *passgen.State) controlsModel {
	if !key.Matches(msg, c.keys.Toggle) {
		return c
	}
	if c.focus == controlDigits {
		st.ToggleDigits()
	} else {
		st.ToggleSymbols()
	}
	return c
}

// View renders the option rows. cfg is the authoritative config; the length
// field may show an in-progress edit until its row loses focus.
func (c controlsModel) View(cfg passgen.Config) string {
	var sb strings.Builder
	sb.WriteString(c.renderRow(controlLength, "Length  "+c.length.View()))
	sb.WriteString("\n")
	sb.WriteString(c.renderRow(controlDigits, checkbox(cfg.Digits)+" digits (0-9)"))
	sb.WriteString("\n")
	sb.WriteString(c.renderRow(controlSymbols, checkbox(cfg.Symbols)+` symbols (!"#$%&...)`))
	return sb.String()
}

func (c controlsModel) renderRow(ctl control, body string) string {
	if c.focus == ctl {
		return cursorStyle.Render("> ") + body
	}
	return "  " + body
}

func checkbox(on bool) string {
	if on {
		return checkOnStyle.Render("[x]")
	}
	return checkOffStyle.Render("[ ]")
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
