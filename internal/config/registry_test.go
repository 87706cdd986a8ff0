package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "flochat") {
		t.Errorf("GetConfigDir() = %v, should contain 'flochat'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDir_XDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(dir, "flochat"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	logPath, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() error = %v", err)
	}
	if filepath.Dir(logPath) != filepath.Dir(configPath) {
		t.Errorf("GetLogPath() = %v, want a file beside %v", logPath, configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != CurrentVersion {
		t.Errorf("NewRegistry().Version = %v, want %v", reg.Version, CurrentVersion)
	}

	if reg.Preferences == nil {
		t.Fatal("NewRegistry().Preferences should not be nil")
	}

	if err := reg.Preferences.Validate(); err != nil {
		t.Errorf("default preferences invalid: %v", err)
	}

	if got := reg.Preferences.ScanDuration(); got != 5*time.Second {
		t.Errorf("ScanDuration() = %v, want 5s", got)
	}
}

func TestPreferencesValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Preferences)
		wantErr string
	}{
		{"defaults", func(*Preferences) {}, ""},
		{"free port", func(p *Preferences) { p.PreviewPort = 0 }, ""},
		{"port too large", func(p *Preferences) { p.PreviewPort = 70000 }, "PreviewPort"},
		{"empty host", func(p *Preferences) { p.PreviewHost = "" }, "PreviewHost"},
		{"zero scan timeout", func(p *Preferences) { p.ScanTimeout = 0 }, "ScanTimeout"},
		{"log level", func(p *Preferences) { p.LogLevel = "debug" }, ""},
		{"bad log level", func(p *Preferences) { p.LogLevel = "verbose" }, "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPreferences()
			tt.modify(p)
			err := p.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	reg.Preferences.PreviewPort = 9000
	reg.Preferences.AutoServe = true
	reg.Preferences.Advertise = true
	reg.Preferences.LogLevel = "warn"

	if err := reg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind after save")
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat() error = %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("config file mode = %o, want 600", perm)
		}
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if *loaded.Preferences != *reg.Preferences {
		t.Errorf("loaded preferences = %+v, want %+v", *loaded.Preferences, *reg.Preferences)
	}
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, reg *Registry)
		wantErr string
	}{
		{
			name:    "partial preferences keep defaults",
			content: "version: 1\npreferences:\n  preview_port: 8123\n",
			check: func(t *testing.T, reg *Registry) {
				if reg.Preferences.PreviewPort != 8123 {
					t.Errorf("PreviewPort = %d, want 8123", reg.Preferences.PreviewPort)
				}
				if reg.Preferences.PreviewHost != "127.0.0.1" || reg.Preferences.ScanTimeout != 5 {
					t.Errorf("defaults lost: %+v", *reg.Preferences)
				}
			},
		},
		{
			name:    "no preferences section",
			content: "version: 1\n",
			check: func(t *testing.T, reg *Registry) {
				if *reg.Preferences != *DefaultPreferences() {
					t.Errorf("Preferences = %+v, want defaults", *reg.Preferences)
				}
			},
		},
		{name: "unknown version", content: "version: 2\n", wantErr: "unsupported config version"},
		{name: "missing version", content: "preferences: {}\n", wantErr: "unsupported config version"},
		{name: "bad yaml", content: "version: [1\n", wantErr: "failed to parse"},
		{name: "invalid values", content: "version: 1\npreferences:\n  scan_timeout: 0\n", wantErr: "ScanTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			reg, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.check(t, reg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	reg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if reg.Version != CurrentVersion || reg.Preferences == nil {
		t.Errorf("LoadFile() = %+v, want default registry", reg)
	}
}

func TestSaveFile_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	reg := NewRegistry()
	reg.Preferences.PreviewPort = -1

	if err := reg.SaveFile(path); err == nil {
		t.Fatal("SaveFile() = nil, want validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("invalid registry was written")
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Flochat wizard preferences") {
		t.Errorf("config file missing header:\n%s", data)
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("second CreateDefaultConfig(false) = nil, want already exists error")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(true) error = %v", err)
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
