// Package colorpicker asks the desktop for a colour through a native dialog.
//
// Native dialogs exist on Windows and macOS. On Linux and the BSDs they need
// zenity (or a compatible helper such as qarma or matedialog) on PATH and a
// graphical session. Availability is decided once, up front, so callers can
// hide the action when it cannot work.
package colorpicker

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/exec"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"
)

var (
	// ErrUnavailable is returned by Pick when no dialog backend exists.
	ErrUnavailable = errors.New("colour picker unavailable")
	// ErrCanceled is returned when the user dismisses the dialog.
	ErrCanceled = errors.New("colour picker canceled")
)

// Picker produces a colour chosen by the user as lowercase #rrggbb.
type Picker interface {
	Available() bool
	Pick(ctx context.Context, initial string) (string, error)
}

// Dialog is the zenity-backed Picker.
type Dialog struct {
	Title     string
	available bool
}

// NewDialog probes the environment and returns a Dialog.
func NewDialog() *Dialog {
	return &Dialog{
		Title:     "Pick a colour",
		available: detect(runtime.GOOS, os.Getenv, exec.LookPath),
	}
}

// Available reports whether Pick can open a dialog.
func (d *Dialog) Available() bool {
	return d.available
}

// Pick opens the native colour dialog pre-set to initial (a hex string; an
// invalid value is ignored) and blocks until the user answers or ctx ends.
func (d *Dialog) Pick(ctx context.Context, initial string) (string, error) {
	if !d.available {
		return "", ErrUnavailable
	}

	opts := []zenity.Option{zenity.Title(d.Title), zenity.Context(ctx)}
	if c, err := colorful.Hex(initial); err == nil {
		opts = append(opts, zenity.Color(c))
	}

	picked, err := zenity.SelectColor(opts...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCanceled
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("select colour: %w", err)
	}

	return ToHex(picked)
}

// ToHex converts any colour to lowercase #rrggbb, dropping alpha.
func ToHex(c color.Color) (string, error) {
	if c == nil {
		return "", errors.New("no colour returned")
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colours cannot be un-premultiplied.
		return "", errors.New("transparent colour returned")
	}
	return cf.Clamped().Hex(), nil
}

// linuxHelpers are the dialog programs zenity can drive on Unix desktops.
var linuxHelpers = []string{"zenity", "qarma", "matedialog"}

func detect(goos string, getenv func(string) string, lookPath func(string) (string, error)) bool {
	switch goos {
	case "windows", "darwin":
		return true
	case "android", "ios", "js", "wasip1", "plan9":
		return false
	}

	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	for _, helper := range linuxHelpers {
		if _, err := lookPath(helper); err == nil {
			return true
		}
	}
	return false
}

// Static is a Picker that returns a fixed answer. Used in tests and when
// scripting the wizard.
type Static struct {
	Hex         string
	Err         error
	Unavailable bool
	Calls       int
}

// Available reports !s.Unavailable.
func (s *Static) Available() bool { return !s.Unavailable }

// Pick returns s.Hex or s.Err.
func (s *Static) Pick(ctx context.Context, _ string) (string, error) {
	s.Calls++
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Hex, nil
}
