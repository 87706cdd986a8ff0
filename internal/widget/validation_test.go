package widget

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name:   "default is valid",
			mutate: func(*Config) {},
		},
		{
			name:   "empty link list is valid",
			mutate: func(c *Config) { c.SocialLinks = nil },
		},
		{
			name:       "bad size",
			mutate:     func(c *Config) { c.Size = "xxl" },
			wantFields: []string{"size"},
		},
		{
			name:       "bad colour",
			mutate:     func(c *Config) { c.Color = "plaid" },
			wantFields: []string{"color"},
		},
		{
			name:       "offset out of range",
			mutate:     func(c *Config) { c.BottomOffset = 5000 },
			wantFields: []string{"bottomOffset"},
		},
		{
			name:       "bad custom hex",
			mutate:     func(c *Config) { c.CustomColors.Hover = "blue" },
			wantFields: []string{"customColors.hover"},
		},
		{
			name:       "bad link platform",
			mutate:     func(c *Config) { c.SocialLinks[1].Platform = "myspace" },
			wantFields: []string{"socialLinks[1].platform"},
		},
		{
			name: "several violations",
			mutate: func(c *Config) {
				c.Position = "top-left"
				c.ToggleIcon = "heart"
				c.CopyType = "html"
			},
			wantFields: []string{"position", "toggleIcon", "copyType"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			errs := cfg.Validate()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, len(tt.wantFields))
			}
			for i, err := range errs {
				if !IsValidationError(err) {
					t.Errorf("error %d = %v, want validation error", i, err)
				}
				cfgErr := err.(*ConfigError)
				if cfgErr.Field != tt.wantFields[i] {
					t.Errorf("error %d field = %q, want %q", i, cfgErr.Field, tt.wantFields[i])
				}
			}
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#000000", "#000000", false},
		{"#ABCDEF", "#abcdef", false},
		{"#fff", "#ffffff", false},
		{"#F0a", "#ff00aa", false},
		{"", "", true},
		{"#", "", true},
		{"000000", "", true},
		{"#0000000", "", true},
		{"#ggg", "", true},
		{"rgb(0,0,0)", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode([]byte(`{"size":"xl","color":"custom","customColors":{"primary":"#F00","secondary":"#00ff00","hover":"#0000FF"},"socialLinks":[]}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg.Size != SizeXL {
		t.Errorf("Size = %v, want xl", cfg.Size)
	}
	if cfg.Position != PositionBottomRight {
		t.Errorf("Position = %v, want default bottom-right", cfg.Position)
	}
	if cfg.CustomColors.Primary != "#ff0000" || cfg.CustomColors.Hover != "#0000ff" {
		t.Errorf("CustomColors = %+v, want normalised", cfg.CustomColors)
	}
	if len(cfg.SocialLinks) != 0 {
		t.Errorf("SocialLinks = %v, want empty", cfg.SocialLinks)
	}

	if _, err := Decode([]byte(`{"size":`)); !IsParseError(err) {
		t.Errorf("Decode(truncated) error = %v, want parse error", err)
	}

	_, err = Decode([]byte(`{"animationStyle":"spiral"}`))
	if !IsValidationError(err) || !strings.Contains(err.Error(), "animationStyle") {
		t.Errorf("Decode(bad enum) error = %v, want validation error on animationStyle", err)
	}
}
