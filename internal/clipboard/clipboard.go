// Package clipboard writes generated code to the user's clipboard.
//
// The system clipboard is tried first. When it is unavailable, which is the
// usual case over SSH or on a headless box, the text is sent to the terminal
// as an OSC 52 escape sequence so the local terminal emulator can set its
// clipboard instead.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/muurk/flochat/internal/logging"
)

// ErrUnavailable is returned when no clipboard mechanism accepted the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer is implemented by anything that can place text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes through the OS clipboard with an optional OSC 52 fallback.
type System struct {
	osc52    bool
	terminal io.Writer

	// overridable in tests
	systemUnsupported bool
	systemWrite       func(string) error
}

// Option configures a System.
type Option func(*System)

// WithOSC52 enables or disables the OSC 52 fallback.
func WithOSC52(enabled bool) Option {
	return func(s *System) { s.osc52 = enabled }
}

// WithTerminal sets where OSC 52 sequences are written. Defaults to stderr,
// which stays attached to the terminal when stdout is redirected.
func WithTerminal(w io.Writer) Option {
	return func(s *System) { s.terminal = w }
}

// New returns a System clipboard writer. OSC 52 fallback is on by default.
func New(opts ...Option) *System {
	s := &System{
		osc52:             true,
		terminal:          os.Stderr,
		systemUnsupported: sysclip.Unsupported,
		systemWrite:       sysclip.WriteAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteAll places text on the clipboard.
func (s *System) WriteAll(text string) error {
	var sysErr error
	if !s.systemUnsupported {
		sysErr = s.systemWrite(text)
		logging.LogClipboard("system", len(text), sysErr)
		if sysErr == nil {
			return nil
		}
	}

	if !s.osc52 || s.terminal == nil {
		if sysErr != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, sysErr)
		}
		return ErrUnavailable
	}

	seq := osc52.New(text)
	if os.Getenv("TMUX") != "" {
		seq = seq.Tmux()
	} else if os.Getenv("STY") != "" {
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(s.terminal)
	logging.LogClipboard("osc52", len(text), err)
	if err != nil {
		return fmt.Errorf("%w: osc52: %v", ErrUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard used by tests and the non-interactive CLI
// when --copy is not requested.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

// WriteAll records text, or returns m.Err if set.
func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
