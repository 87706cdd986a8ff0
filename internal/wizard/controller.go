// Package wizard holds the state behind the configuration wizard.
//
// A Controller owns the one Config snapshot of a session. Panels and the
// preview server never edit the snapshot directly; they call the controller,
// which validates through the widget package, swaps the snapshot and tells
// subscribers.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/flochat/internal/clipboard"
	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/colorpicker"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/widget"
)

// CopiedDuration is how long the "Copied" indicator stays on after a copy.
const CopiedDuration = 2 * time.Second

// Controller coordinates edits, code generation, clipboard and colour picking.
// It is safe for concurrent use.
type Controller struct {
	// notifyMu serialises swap plus fan-out so subscribers see snapshots in
	// the order they were made. Lock order: notifyMu, then mu.
	notifyMu    sync.Mutex
	mu          sync.RWMutex
	cfg         widget.Config
	copied      bool
	copyToken   int
	subscribers []func(widget.Config)

	clip          clipboard.Writer
	picker        colorpicker.Picker
	pickAvailable bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClipboard sets the clipboard writer. Defaults to clipboard.New().
func WithClipboard(w clipboard.Writer) Option {
	return func(c *Controller) { c.clip = w }
}

// WithPicker sets the colour picker. Defaults to colorpicker.NewDialog().
func WithPicker(p colorpicker.Picker) Option {
	return func(c *Controller) { c.picker = p }
}

// WithConfig sets the initial snapshot. Defaults to widget.Default().
func WithConfig(cfg widget.Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// NewController creates a Controller. Picker availability is probed here,
// once, and cached for the session.
func NewController(opts ...Option) *Controller {
	c := &Controller{cfg: widget.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.clip == nil {
		c.clip = clipboard.New()
	}
	if c.picker == nil {
		c.picker = colorpicker.NewDialog()
	}
	c.pickAvailable = c.picker.Available()
	return c
}

// Config returns the current snapshot.
func (c *Controller) Config() widget.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// Subscribe registers fn to receive every new snapshot. fn runs on the
// goroutine that made the edit and must not call back into the controller's
// mutating methods.
func (c *Controller) Subscribe(fn func(widget.Config)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// apply runs op against the current snapshot and publishes the result.
func (c *Controller) apply(field string, value any, op func(widget.Config) (widget.Config, error)) error {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	next, err := op(c.cfg)
	if err != nil {
		c.mu.Unlock()
		logging.LogConfigRejected(field, value, err)
		return err
	}
	c.cfg = next
	subs := append([]func(widget.Config){}, c.subscribers...)
	c.mu.Unlock()

	logging.LogConfigChange(field, value)
	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Update replaces one top-level field.
func (c *Controller) Update(field widget.Field, value any) error {
	return c.apply(string(field), value, func(cfg widget.Config) (widget.Config, error) {
		return cfg.Update(field, value)
	})
}

// UpdateCustomColor replaces one custom colour.
func (c *Controller) UpdateCustomColor(key widget.ColorKey, value string) error {
	return c.apply("customColors."+string(key), value, func(cfg widget.Config) (widget.Config, error) {
		return cfg.UpdateCustomColor(key, value)
	})
}

// AddLink appends the default link.
func (c *Controller) AddLink() {
	_ = c.apply("socialLinks", "add", func(cfg widget.Config) (widget.Config, error) {
		return cfg.AddLink(), nil
	})
}

// RemoveLink removes the link at index. Out of range is a no-op.
func (c *Controller) RemoveLink(index int) {
	_ = c.apply("socialLinks", fmt.Sprintf("remove %d", index), func(cfg widget.Config) (widget.Config, error) {
		return cfg.RemoveLink(index), nil
	})
}

// UpdateLink replaces one attribute of the link at index.
func (c *Controller) UpdateLink(index int, field widget.LinkField, value string) error {
	name := fmt.Sprintf("socialLinks[%d].%s", index, field)
	return c.apply(name, value, func(cfg widget.Config) (widget.Config, error) {
		return cfg.UpdateLink(index, field, value)
	})
}

// MoveLink reorders the link list.
func (c *Controller) MoveLink(from, to int) {
	_ = c.apply("socialLinks", fmt.Sprintf("move %d→%d", from, to), func(cfg widget.Config) (widget.Config, error) {
		return cfg.MoveLink(from, to), nil
	})
}

// Code returns the generated code for the current snapshot.
func (c *Controller) Code() string {
	return codegen.Generate(c.Config())
}

// Copy writes Code() to the clipboard and turns the copied indicator on.
// The returned token identifies this copy for ExpireCopied.
func (c *Controller) Copy() (int, error) {
	if err := c.clip.WriteAll(c.Code()); err != nil {
		return 0, fmt.Errorf("copy code: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.copyToken++
	c.copied = true
	return c.copyToken, nil
}

// Copied reports whether the copied indicator is on.
func (c *Controller) Copied() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copied
}

// ExpireCopied turns the indicator off if token belongs to the latest copy.
// Expiries for superseded copies are ignored, so the indicator stays on for
// CopiedDuration after the most recent copy. Reports whether it turned off.
func (c *Controller) ExpireCopied(token int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.copyToken || !c.copied {
		return false
	}
	c.copied = false
	return true
}

// CopyInstallCommand writes the package install command to the clipboard.
func (c *Controller) CopyInstallCommand() error {
	if err := c.clip.WriteAll(codegen.InstallCommand); err != nil {
		return fmt.Errorf("copy install command: %w", err)
	}
	return nil
}

// PickColorAvailable reports whether a native colour dialog can be shown.
func (c *Controller) PickColorAvailable() bool {
	return c.pickAvailable
}

// PickColor opens the colour dialog. On success the theme switches to custom
// with the picked colour as primary and true is returned. Unavailability,
// cancellation and dialog failures are logged and reported as (false, nil);
// the snapshot is left unchanged. The error result is reserved for a picked
// colour the model rejects.
func (c *Controller) PickColor(ctx context.Context) (bool, error) {
	if !c.pickAvailable {
		logging.Debug("Colour picker unavailable")
		return false, nil
	}

	hex, err := c.picker.Pick(ctx, c.Config().CustomColors.Primary)
	switch {
	case errors.Is(err, colorpicker.ErrCanceled):
		logging.Debug("Colour picker canceled")
		return false, nil
	case err != nil:
		logging.Warn("Colour picker failed", zap.Error(err))
		return false, nil
	}

	err = c.apply("customColors.primary", hex, func(cfg widget.Config) (widget.Config, error) {
		next, err := cfg.UpdateCustomColor(widget.ColorPrimary, hex)
		if err != nil {
			return cfg, err
		}
		return next.Update(widget.FieldColor, widget.ColorCustom)
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// SubmitURL stores input as the preview URL after normalisation. Blank input
// is ignored and reported as false.
func (c *Controller) SubmitURL(input string) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	return c.Update(widget.FieldPreviewURL, NormalizeURL(trimmed)) == nil
}

// NormalizeURL prefixes https:// unless input already carries an http or
// https scheme (case-insensitive).
func NormalizeURL(input string) string {
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return input
	}
	return "https://" + input
}
