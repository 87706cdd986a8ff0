package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// CurrentVersion is the only registry layout this build reads and writes.
const CurrentVersion = 1

// Registry represents the entire user configuration file.
// It stores application preferences only; widget configurations are never
// persisted.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide user preferences.
// Command-line flags take precedence over every field.
type Preferences struct {
	PreviewHost   string `yaml:"preview_host" validate:"required"`                                     // Interface the browser preview binds to
	PreviewPort   int    `yaml:"preview_port" validate:"min=0,max=65535"`                              // 0 picks a free port
	AutoServe     bool   `yaml:"auto_serve"`                                                           // Start the browser preview with the wizard
	Advertise     bool   `yaml:"advertise"`                                                            // Announce the preview over mDNS
	ScanTimeout   int    `yaml:"scan_timeout" validate:"min=1,max=60"`                                 // mDNS scan timeout in seconds
	OSC52Fallback bool   `yaml:"osc52_fallback"`                                                       // Copy via terminal escape when no clipboard exists
	LogLevel      string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // Empty keeps logging off
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PreviewHost:   "127.0.0.1",
		PreviewPort:   4780,
		AutoServe:     false,
		Advertise:     false,
		ScanTimeout:   5,
		OSC52Fallback: true,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// ScanDuration returns ScanTimeout as a duration.
func (p *Preferences) ScanDuration() time.Duration {
	return time.Duration(p.ScanTimeout) * time.Second
}

var prefsValidator = validator.New()

// Validate checks every field and joins the violations into one error.
func (p *Preferences) Validate() error {
	err := prefsValidator.Struct(p)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validate preferences: %w", err)
	}

	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid preferences: %s", strings.Join(msgs, "; "))
}
