package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/passmint/passmint/pkg/clip"
	"github.com/passmint/passmint/pkg/passgen"
)

// appModel is the root bubbletea model. It owns the generator state and
// wires the clipboard, the option rows and the readout together.
type appModel struct {
	state     *passgen.State
	clipboard clip.Writer
	controls  controlsModel
	statusBar statusBarModel
	meter     progress.Model
	keys      keyMap

	copyStatus clip.Status
	statusGen  int
	showHelp   bool
	width      int
	height     int
}

func newAppModel(st *passgen.State, w clip.Writer) appModel {
	keys := defaultKeyMap()
	meter := progress.New(
		progress.WithGradient("#cf222e", "#1a7f37"),
		progress.WithoutPercentage(),
	)
	meter.Width = 32
	return appModel{
		state:     st,
		clipboard: w,
		controls:  newControls(keys, st.Config().Length),
		statusBar: newStatusBar(keys),
		meter:     meter,
		keys:      keys,
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case statusExpireMsg:
		// A later copy restarts the display window; its expiry carries a
		// newer gen, so stale timers fall through here.
		if msg.gen == m.statusGen {
			m.copyStatus = clip.StatusNone
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderHelp(),
			"",
			dimStyle.Render("esc closes help"),
		)
	}

	cfg := m.state.Config()
	bits := passgen.Entropy(cfg)
	label := passgen.StrengthLabel(bits)

	title := titleStyle.Render("passmint") + " " + subtitleStyle.Render("password generator")

	boxWidth := max(min(m.width-4, passgen.MaxLength+2), 16)
	pw := m.state.Password()
	if runewidth.StringWidth(pw) > boxWidth-2 {
		pw = runewidth.Truncate(pw, boxWidth-2, "…")
	}
	box := passwordBorder.Width(boxWidth).Render(passwordStyle.Render(pw))

	strength := entropyStyle.Render(fmt.Sprintf("%.1f bits", bits)) +
		dimStyle.Render(" · ") +
		strengthStyle(label).Render(label)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		box,
		strength,
		m.meter.ViewAs(passgen.StrengthFraction(bits)),
		"",
		m.controls.View(cfg),
		"",
		m.statusBar.View(m.copyStatus),
	)
}

func (m *appModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	m.meter.Width = max(min(m.width-4, 48), 10)
	m.statusBar.setWidth(m.width)
	initMarkdownRenderer(m.width - 4)
	return m, nil
}

func (m *appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Keys that work regardless of focus. The length field only accepts
	// digits, so none of these collide with typing a value.
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case msg.Type == tea.KeyEsc:
		m.showHelp = false
		return m, nil
	}

	if m.showHelp {
		// The overlay swallows everything else.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.controls = m.controls.focusNext(m.state)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.controls = m.controls.focusPrev(m.state)
		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		m.state.Regenerate()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.handleCopy()
	}

	var cmd tea.Cmd
	m.controls, cmd = m.controls.Update(msg, m.state)
	return m, cmd
}

// handleCopy writes the current password to the clipboard and shows the
// outcome until the display window elapses or another copy replaces it.
func (m *appModel) handleCopy() (tea.Model, tea.Cmd) {
	m.copyStatus = clip.Copy(m.clipboard, m.state.Password())
	m.statusGen++
	gen := m.statusGen
	return m, tea.Tick(clip.StatusTTL, func(time.Time) tea.Msg {
		return statusExpireMsg{gen: gen}
	})
}

// strengthStyle maps a strength label to its display style.
func strengthStyle(label string) lipgloss.Style {
	switch label {
	case "weak":
		return weakStyle
	case "fair":
		return fairStyle
	case "strong":
		return strongStyle
	default:
		return excellentStyle
	}
}
