package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "plugscan") {
		t.Errorf("GetConfigDir() = %v, should contain 'plugscan'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
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
}

func TestNewPreferences(t *testing.T) {
	prefs := NewPreferences()

	if prefs.Version != 1 {
		t.Errorf("NewPreferences().Version = %v, want 1", prefs.Version)
	}
	if prefs.Scan == nil {
		t.Fatal("NewPreferences().Scan should not be nil")
	}
	if prefs.Scan.BatchSize != 20 {
		t.Errorf("NewPreferences().Scan.BatchSize = %v, want 20", prefs.Scan.BatchSize)
	}
	if prefs.Scan.PingTimeoutMs != 1000 {
		t.Errorf("NewPreferences().Scan.PingTimeoutMs = %v, want 1000", prefs.Scan.PingTimeoutMs)
	}
	if prefs.Scan.PortTimeoutMs != 500 {
		t.Errorf("NewPreferences().Scan.PortTimeoutMs = %v, want 500", prefs.Scan.PortTimeoutMs)
	}
	if prefs.Vendors == nil {
		t.Error("NewPreferences().Vendors should not be nil")
	}
}

func TestPreferencesNormalize(t *testing.T) {
	tests := []struct {
		name  string
		prefs *Preferences
	}{
		{
			name:  "nil sections",
			prefs: &Preferences{Version: 1},
		},
		{
			name: "zero and negative values",
			prefs: &Preferences{
				Version: 1,
				Scan:    &ScanPrefs{BatchSize: 0, PingTimeoutMs: -5, PortTimeoutMs: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prefs.normalize()

			if tt.prefs.Scan == nil || tt.prefs.Vendors == nil {
				t.Fatal("normalize() left nil sections")
			}
			if tt.prefs.Scan.BatchSize <= 0 {
				t.Errorf("normalize() BatchSize = %v, want positive", tt.prefs.Scan.BatchSize)
			}
			if tt.prefs.Scan.PingTimeoutMs <= 0 {
				t.Errorf("normalize() PingTimeoutMs = %v, want positive", tt.prefs.Scan.PingTimeoutMs)
			}
			if tt.prefs.Scan.PortTimeoutMs <= 0 {
				t.Errorf("normalize() PortTimeoutMs = %v, want positive", tt.prefs.Scan.PortTimeoutMs)
			}
		})
	}
}

func TestPreferencesSaveAndReload(t *testing.T) {
	tmp := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("LOCALAPPDATA", tmp)
	default:
		t.Setenv("HOME", tmp)
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	}

	prefs := NewPreferences()
	prefs.Scan.BatchSize = 40
	prefs.Scan.CandidatePorts = []int{6668}
	if err := prefs.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Save() did not create %v: %v", configPath, err)
	}

	loaded, err := Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if loaded.Scan.BatchSize != 40 {
		t.Errorf("Reload() BatchSize = %v, want 40", loaded.Scan.BatchSize)
	}
	if len(loaded.Scan.CandidatePorts) != 1 || loaded.Scan.CandidatePorts[0] != 6668 {
		t.Errorf("Reload() CandidatePorts = %v, want [6668]", loaded.Scan.CandidatePorts)
	}
	if loaded.Scan.PortTimeoutMs != 500 {
		t.Errorf("Reload() PortTimeoutMs = %v, want default 500", loaded.Scan.PortTimeoutMs)
	}
}

func TestPreferencesNormalize_KeepsUserValues(t *testing.T) {
	prefs := &Preferences{
		Version: 1,
		Scan: &ScanPrefs{
			BatchSize:      40,
			PingTimeoutMs:  2000,
			PortTimeoutMs:  250,
			CandidatePorts: []int{6668},
		},
	}

	prefs.normalize()

	if prefs.Scan.BatchSize != 40 {
		t.Errorf("normalize() overwrote BatchSize = %v, want 40", prefs.Scan.BatchSize)
	}
	if prefs.Scan.PingTimeoutMs != 2000 {
		t.Errorf("normalize() overwrote PingTimeoutMs = %v, want 2000", prefs.Scan.PingTimeoutMs)
	}
	if len(prefs.Scan.CandidatePorts) != 1 || prefs.Scan.CandidatePorts[0] != 6668 {
		t.Errorf("normalize() overwrote CandidatePorts = %v, want [6668]", prefs.Scan.CandidatePorts)
	}
}
