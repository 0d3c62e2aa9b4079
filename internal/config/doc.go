// Package config provides user configuration management for plugscan.
//
// This package manages a YAML-based configuration file holding scan
// tunables (batch size, probe timeouts, candidate port overrides) and
// vendor matching options (extra OUI prefixes, optional IEEE database
// path). The configuration follows OS-specific conventions for storage
// location.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/plugscan/config.yaml or $HOME/.config/plugscan/config.yaml
//   - macOS: $HOME/.config/plugscan/config.yaml
//   - Windows: %LOCALAPPDATA%\plugscan\config.yaml
//
// # Usage Example
//
//	prefs, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	prefs.Scan.BatchSize = 40
//	if err := prefs.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// A missing file is not an error; Load returns defaults. Scan results are
// never written here - only preferences.
//
// # Thread Safety
//
// Loading uses sync.Once for safe initialization across goroutines. File
// operations are protected by a mutex and writes are atomic.
package config
