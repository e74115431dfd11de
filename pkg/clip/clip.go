// Package clip wraps the system clipboard behind a small Writer interface and
// defines the transient copy status the UI reports: a copy either lands as
// "copied" or as "failed", and either way the status reverts to empty after
// StatusTTL. The timer lives in the UI layer; this package only fixes the
// status values and the delay.
package clip

import (
	"errors"
	"time"

	"github.com/atotto/clipboard"
)

// Status is the transient outcome of a copy attempt.
type Status string

const (
	StatusNone   Status = ""
	StatusCopied Status = "copied"
	StatusFailed Status = "failed"
)

// StatusTTL is how long a copy status stays visible before reverting to
// StatusNone. A later copy attempt restarts the clock.
const StatusTTL = 2 * time.Second

// ErrUnsupported is returned when the platform has no usable clipboard
// (e.g. a headless Linux session without xclip/xsel).
var ErrUnsupported = errors.New("clip: no clipboard on this platform")

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// WriterFunc adapts a plain function to the Writer interface.
type WriterFunc func(text string) error

// Write calls f(text).
func (f WriterFunc) Write(text string) error { return f(text) }

// System is the real clipboard, backed by github.com/atotto/clipboard.
var System Writer = systemWriter{}

type systemWriter struct{}

func (systemWriter) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Copy attempts to place text on w and reports the outcome. Failures are not
// retried; the caller surfaces the status and moves on.
func Copy(w Writer, text string) Status {
	if err := w.Write(text); err != nil {
		return StatusFailed
	}
	return StatusCopied
}
