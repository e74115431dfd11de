package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passmint/passmint/pkg/clip"
	"github.com/passmint/passmint/pkg/passgen"
)

// recordingWriter captures what was copied, optionally failing.
type recordingWriter struct {
	text string
	err  error
}

func (w *recordingWriter) Write(text string) error {
	w.text = text
	return w.err
}

func newTestModel(w clip.Writer) appModel {
	st := passgen.NewState(passgen.DefaultConfig())
	m := newAppModel(st, w)
	m.width = 80
	m.height = 24
	return m
}

// step runs one Update and unwraps the returned model.
func step(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	switch v := next.(type) {
	case appModel:
		return v, cmd
	case *appModel:
		return *v, cmd
	default:
		t.Fatalf("unexpected model type %T", next)
		return m, nil
	}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelFocusCycle(t *testing.T) {
	m := newTestModel(&recordingWriter{})
	assert.Equal(t, controlLength, m.controls.focus)

	m, _ = step(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, controlDigits, m.controls.focus)

	m, _ = step(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, controlSymbols, m.controls.focus)

	m, _ = step(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, controlLength, m.controls.focus)

	m, _ = step(t, m, keyPress(tea.KeyShiftTab))
	assert.Equal(t, controlSymbols, m.controls.focus)
}

func TestModelToggleRegenerates(t *testing.T) {
	m := newTestModel(&recordingWriter{})
	before := m.state.Password()

	m, _ = step(t, m, keyPress(tea.KeyTab)) // focus digits
	m, _ = step(t, m, keyPress(tea.KeySpace))

	assert.False(t, m.state.Config().Digits)
	assert.NotEqual(t, before, m.state.Password())

	m, _ = step(t, m, keyPress(tea.KeyTab)) // focus symbols
	m, _ = step(t, m, keyPress(tea.KeyEnter))
	assert.True(t, m.state.Config().Symbols)
}

func TestModelLengthStepping(t *testing.T) {
	m := newTestModel(&recordingWriter{})
	start := m.state.Config().Length

	m, _ = step(t, m, keyPress(tea.KeyUp))
	assert.Equal(t, start+1, m.state.Config().Length)
	assert.Len(t, m.state.Password(), start+1)

	m, _ = step(t, m, keyPress(tea.KeyDown))
	m, _ = step(t, m, keyPress(tea.KeyDown))
	assert.Equal(t, start-1, m.state.Config().Length)

	// k and j step as well.
	m, _ = step(t, m, keyRune('k'))
	assert.Equal(t, start, m.state.Config().Length)
	m, _ = step(t, m, keyRune('j'))
	assert.Equal(t, start-1, m.state.Config().Length)
}

func TestModelLengthSteppingStopsAtBounds(t *testing.T) {
	st := passgen.NewState(passgen.Config{Length: passgen.MaxLength, Digits: true})
	m := newAppModel(st, &recordingWriter{})
	m.width, m.height = 80, 24

	m, _ = step(t, m, keyPress(tea.KeyUp))
	assert.Equal(t, passgen.MaxLength, m.state.Config().Length)

	st.SetLength(passgen.MinLength)
	m.controls.syncLength(passgen.MinLength)
	m, _ = step(t, m, keyPress(tea.KeyDown))
	assert.Equal(t, passgen.MinLength, m.state.Config().Length)
}

func TestModelLengthTyping(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	// Clear the field, then type a new value. Intermediate states clamp
	// low, the final one sticks.
	m, _ = step(t, m, keyPress(tea.KeyBackspace))
	m, _ = step(t, m, keyPress(tea.KeyBackspace))
	m, _ = step(t, m, keyRune('2'))
	assert.Equal(t, passgen.MinLength, m.state.Config().Length)

	m, _ = step(t, m, keyRune('4'))
	assert.Equal(t, 24, m.state.Config().Length)
	assert.Len(t, m.state.Password(), 24)
}

func TestModelLengthTypingIgnoresNonDigits(t *testing.T) {
	m := newTestModel(&recordingWriter{})
	before := m.controls.length.Value()

	m, _ = step(t, m, keyRune('x'))
	assert.Equal(t, before, m.controls.length.Value())
}

func TestModelLengthDisplayNormalizesOnBlur(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	m, _ = step(t, m, keyRune('9')) // "12" becomes "129", clamped to 100
	assert.Equal(t, "129", m.controls.length.Value())
	assert.Equal(t, passgen.MaxLength, m.state.Config().Length)

	m, _ = step(t, m, keyPress(tea.KeyTab))
	assert.Equal(t, "100", m.controls.length.Value())
}

func TestModelRegenerate(t *testing.T) {
	m := newTestModel(&recordingWriter{})
	before := m.state.Password()
	cfg := m.state.Config()

	m, _ = step(t, m, keyRune('r'))

	assert.Equal(t, cfg, m.state.Config())
	assert.NotEqual(t, before, m.state.Password())
}

func TestModelCopyLifecycle(t *testing.T) {
	w := &recordingWriter{}
	m := newTestModel(w)

	m, cmd := step(t, m, keyRune('c'))
	require.NotNil(t, cmd)
	assert.Equal(t, clip.StatusCopied, m.copyStatus)
	assert.Equal(t, m.state.Password(), w.text)
	assert.Contains(t, m.View(), "copied")

	// The scheduled expiry clears the status.
	m, _ = step(t, m, statusExpireMsg{gen: m.statusGen})
	assert.Equal(t, clip.StatusNone, m.copyStatus)
}

func TestModelCopyAgainRestartsWindow(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	m, _ = step(t, m, keyRune('c'))
	firstGen := m.statusGen

	m, _ = step(t, m, keyRune('c'))

	// The first copy's timer fires and must not clear the newer status.
	m, _ = step(t, m, statusExpireMsg{gen: firstGen})
	assert.Equal(t, clip.StatusCopied, m.copyStatus)

	m, _ = step(t, m, statusExpireMsg{gen: m.statusGen})
	assert.Equal(t, clip.StatusNone, m.copyStatus)
}

func TestModelCopyFailure(t *testing.T) {
	w := &recordingWriter{err: errors.New("no display")}
	m := newTestModel(w)

	m, cmd := step(t, m, keyRune('c'))
	require.NotNil(t, cmd)
	assert.Equal(t, clip.StatusFailed, m.copyStatus)
	assert.Contains(t, m.View(), "copy failed")
}

func TestModelHelpOverlay(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	m, _ = step(t, m, keyRune('?'))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "passmint")

	// Keys other than ?/esc/quit are swallowed while the overlay is up.
	digitsBefore := m.state.Config().Digits
	m, _ = step(t, m, keyPress(tea.KeyTab))
	m, _ = step(t, m, keyPress(tea.KeySpace))
	assert.Equal(t, digitsBefore, m.state.Config().Digits)

	m, _ = step(t, m, keyPress(tea.KeyEsc))
	assert.False(t, m.showHelp)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	_, cmd := step(t, m, keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModelResizeAndView(t *testing.T) {
	m := newTestModel(&recordingWriter{})

	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.width)

	view := m.View()
	assert.Contains(t, view, "passmint")
	assert.Contains(t, view, "bits")
	assert.Contains(t, view, "digits (0-9)")
	assert.Contains(t, view, m.state.Password())
}

func TestModelViewBeforeFirstResize(t *testing.T) {
	st := passgen.NewState(passgen.DefaultConfig())
	m := newAppModel(st, &recordingWriter{})
	assert.Equal(t, "Loading...", m.View())
}

func TestStatusLine(t *testing.T) {
	assert.Contains(t, statusLine(clip.StatusCopied), "copied")
	assert.Contains(t, statusLine(clip.StatusFailed), "copy failed")
	assert.Equal(t, " ", statusLine(clip.StatusNone))
}

func TestStrengthStyleCoversLabels(t *testing.T) {
	for _, label := range []string{"weak", "fair", "strong", "excellent"} {
		style := strengthStyle(label)
		assert.NotEmpty(t, style.Render(label))
	}
}

func TestModelViewTruncatesLongPasswords(t *testing.T) {
	st := passgen.NewState(passgen.Config{Length: passgen.MaxLength, Digits: true})
	m := newAppModel(st, &recordingWriter{})
	m.width, m.height = 40, 24

	view := m.View()
	assert.NotContains(t, view, m.state.Password())
	assert.True(t, strings.Contains(view, "…"))
}
