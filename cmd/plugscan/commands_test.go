package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/telden/plugscan/internal/discovery"
)

func TestRootSubcommands(t *testing.T) {
	for _, name := range []string{"scan", "candidates", "config", "version"} {
		if findCommand(t, rootCmd.Commands(), name) == nil {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestConfigSubcommands(t *testing.T) {
	cfg := findCommand(t, rootCmd.Commands(), "config")
	if cfg == nil {
		t.Fatal("config command not registered")
	}

	for _, name := range []string{"path", "init", "show"} {
		if findCommand(t, cfg.Commands(), name) == nil {
			t.Errorf("config command missing %q subcommand", name)
		}
	}
}

func findCommand(t *testing.T, cmds []*cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, c := range cmds {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		wantBase string
		wantErr  bool
	}{
		{
			name:     "standard private base",
			base:     "192.168.1.0",
			wantBase: "192.168.1.0",
		},
		{
			name:     "host address maps to its network base",
			base:     "10.0.0.42",
			wantBase: "10.0.0.0",
		},
		{
			name:    "octet out of range",
			base:    "192.168.300.0",
			wantErr: true,
		},
		{
			name:    "not dotted quad",
			base:    "plugs.local",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network, err := parseBase(tt.base)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBase(%q) error = %v, wantErr %v", tt.base, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if network.Base != tt.wantBase {
				t.Errorf("parseBase(%q) base = %v, want %v", tt.base, network.Base, tt.wantBase)
			}
			if network.PrefixLen != 24 {
				t.Errorf("parseBase(%q) prefix = %v, want 24", tt.base, network.PrefixLen)
			}
		})
	}
}

func TestFixedResolver(t *testing.T) {
	want := discovery.Network{Base: "192.168.4.0", PrefixLen: 24}
	got := fixedResolver{network: want}.Resolve()
	if got != want {
		t.Errorf("fixedResolver.Resolve() = %v, want %v", got, want)
	}
}
