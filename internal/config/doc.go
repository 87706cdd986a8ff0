// Package config manages the wizard's preferences file.
//
// Preferences are stored as YAML in a platform-appropriate location:
//   - Linux: $XDG_CONFIG_HOME/flochat/config.yaml or $HOME/.config/flochat/config.yaml
//   - macOS: $HOME/.config/flochat/config.yaml
//   - Windows: %LOCALAPPDATA%\flochat\config.yaml
//
// The file holds defaults for the command line (preview server address,
// mDNS behaviour, scan timeout, clipboard fallback, log level). Widget
// configurations are never written here; the wizard starts from defaults on
// every run.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	prefs := registry.Preferences
//	prefs.AutoServe = true
//	if err := registry.Save(); err != nil {
//	    return err
//	}
//
// Writes are atomic: the YAML is written to a temporary file that is then
// renamed over the original. Files declaring a version other than
// CurrentVersion are rejected.
package config
