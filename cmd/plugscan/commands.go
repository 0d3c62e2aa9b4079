package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/telden/plugscan/internal/config"
	"github.com/telden/plugscan/internal/discovery"
	"github.com/telden/plugscan/internal/logging"
	"github.com/telden/plugscan/internal/ui"
)

// Scan command flags
var (
	baseOverride string
	batchSize    int
	jsonOutput   bool
	plainOutput  bool
	mdnsHints    bool
	arpingProbe  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&baseOverride, "base", "", "Base network to scan (e.g. 192.168.1.0), skips interface detection")
	rootCmd.PersistentFlags().IntVar(&batchSize, "batch", 0, "Concurrent host pipelines per batch (default from config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Disable the interactive progress display")
	rootCmd.PersistentFlags().BoolVar(&mdnsHints, "mdns", false, "Collect mDNS hostname hints before scanning")
	rootCmd.PersistentFlags().BoolVar(&arpingProbe, "arping", false, "Use native ARP requests for reachability (needs privileges, unix only)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(candidatesCmd)

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// scanCmd sweeps the subnet and prints every discovered device
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the local subnet for smart plugs",
	Long: `Scan the 254 host addresses of the inferred private /24.

Each reachable host is probed on the device family's candidate ports
(6666, 6667, 6668) and correlated with the OS neighbor table. Devices
with a known vendor MAC prefix and an open control port are ranked first
as likely candidates.`,
	Example: `  # Full scan with interactive progress
  plugscan scan

  # Scan a specific base network, plain output
  plugscan scan --base 10.0.0.0 --plain

  # Machine-readable results
  plugscan scan --json`,
	RunE: runScan,
}

// candidatesCmd prints only likely candidates, one control address per line
var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List likely control-protocol candidates",
	Long: `Scan and print only the hosts judged likely to speak the control
protocol: known vendor MAC prefix plus open control port. Output is one
host:port per line, intended for piping into a protocol client.`,
	Example: `  plugscan candidates
  plugscan candidates --base 192.168.4.0`,
	RunE: runCandidates,
}

// configCmd groups maintenance of the preferences file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the plugscan configuration file",
	Long: `Inspect and maintain the YAML preferences file.

The file holds scan tunables (batch size, probe timeouts, candidate port
overrides) and vendor matching options. A missing file means defaults;
run "config init" to write it out for editing.`,
	Example: `  plugscan config path
  plugscan config init
  plugscan config show`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file with current settings",
	Long: `Write the configuration file, creating it with defaults when absent.

Existing settings are kept; the file is rewritten in canonical form with
a header comment describing each section.`,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	prefs, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := prefs.Save(); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	// Re-read from disk so edits made while the process was running show up
	prefs, err := config.Reload()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// buildScanner assembles a scanner from preferences and flags.
func buildScanner() (*discovery.Scanner, error) {
	prefs, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	scanner := discovery.NewScanner()
	scanner.BatchSize = prefs.Scan.BatchSize
	if batchSize > 0 {
		scanner.BatchSize = batchSize
	}

	if baseOverride != "" {
		network, err := parseBase(baseOverride)
		if err != nil {
			return nil, err
		}
		scanner.Resolver = fixedResolver{network: network}
	}

	ports := discovery.CandidatePorts
	if len(prefs.Scan.CandidatePorts) > 0 {
		ports = prefs.Scan.CandidatePorts
	}
	tcp := discovery.NewTCPProber(ports)
	tcp.Timeout = time.Duration(prefs.Scan.PortTimeoutMs) * time.Millisecond
	scanner.Ports = tcp

	if arpingProbe || prefs.Scan.UseArping {
		prober, err := discovery.NewArpingProber()
		if err != nil {
			return nil, fmt.Errorf("arping probe unavailable: %w", err)
		}
		prober.Timeout = time.Duration(prefs.Scan.PingTimeoutMs) * time.Millisecond
		scanner.Host = prober
	} else {
		ping := discovery.NewPingProber()
		ping.Timeout = time.Duration(prefs.Scan.PingTimeoutMs) * time.Millisecond
		scanner.Host = ping
	}

	scanner.Vendors = discovery.NewVendorMatcher(prefs.Vendors.ExtraOUIs)
	if prefs.Vendors.DatabasePath != "" {
		if err := scanner.Vendors.LoadDatabase(prefs.Vendors.DatabasePath); err != nil {
			// Informational enrichment only; the scan works without it
			logging.Warn(fmt.Sprintf("Ignoring OUI database: %v", err))
		}
	}

	if mdnsHints || prefs.Scan.MDNSHints {
		scanner.Hints = discovery.NewMDNSHints()
	}

	return scanner, nil
}

// fixedResolver bypasses interface detection when --base is given.
type fixedResolver struct {
	network discovery.Network
}

func (f fixedResolver) Resolve() discovery.Network {
	return f.network
}

// parseBase validates a dotted-quad base address like "192.168.1.0".
func parseBase(base string) (discovery.Network, error) {
	var a, b, c, d int
	if _, err := fmt.Sscanf(base, "%d.%d.%d.%d", &a, &b, &c, &d); err != nil {
		return discovery.Network{}, fmt.Errorf("invalid base network %q (want e.g. 192.168.1.0)", base)
	}
	for _, octet := range []int{a, b, c, d} {
		if octet < 0 || octet > 255 {
			return discovery.Network{}, fmt.Errorf("invalid base network %q (want e.g. 192.168.1.0)", base)
		}
	}
	return discovery.Network{
		Base:      fmt.Sprintf("%d.%d.%d.0", a, b, c),
		PrefixLen: 24,
	}, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner, err := buildScanner()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var devices []*discovery.Device
	if ui.IsTerminal() && !plainOutput && !jsonOutput {
		devices, err = ui.RunScan("Scanning local subnet for smart plugs...", func(onProgress func(int, int)) ([]*discovery.Device, error) {
			scanner.Progress = onProgress
			return scanner.Discover(ctx)
		})
	} else {
		devices, err = scanner.Discover(ctx)
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if jsonOutput {
		return printJSON(devices)
	}

	if ui.IsTerminal() && !plainOutput {
		fmt.Println(ui.RenderDevices(devices))
		return nil
	}

	if len(devices) == 0 {
		fmt.Println("No devices found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure devices are powered on and joined to this network")
		fmt.Println("  - Check that your computer is on the same subnet as the devices")
		fmt.Println("  - Use --base to scan a specific network if detection picked the wrong one")
		fmt.Println("  - Some networks block ICMP; try --arping (requires privileges)")
		return nil
	}

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, d := range devices {
		fmt.Printf("%d. %s\n", i+1, d)
	}
	return nil
}

func runCandidates(cmd *cobra.Command, args []string) error {
	scanner, err := buildScanner()
	if err != nil {
		return err
	}

	candidates, err := scanner.FindCandidates(context.Background())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if jsonOutput {
		return printJSON(candidates)
	}

	for _, d := range candidates {
		fmt.Println(d.ControlAddr())
	}
	return nil
}

// printJSON emits devices with stable lowercase keys for scripting.
func printJSON(devices []*discovery.Device) error {
	type deviceJSON struct {
		IP              string `json:"ip"`
		MAC             string `json:"mac,omitempty"`
		Vendor          string `json:"vendor,omitempty"`
		Hostname        string `json:"hostname,omitempty"`
		Ports           []int  `json:"ports"`
		LikelyCandidate bool   `json:"likely_candidate"`
	}

	out := make([]deviceJSON, 0, len(devices))
	for _, d := range devices {
		out = append(out, deviceJSON{
			IP:              d.IP,
			MAC:             d.MAC,
			Vendor:          d.Vendor,
			Hostname:        d.Hostname,
			Ports:           d.OpenPorts,
			LikelyCandidate: d.LikelyCandidate,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
