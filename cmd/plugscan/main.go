// Plugscan discovers Tuya-protocol smart plugs on the local network.
//
// It sweeps the operator's own subnet without credentials, combining ping
// and TCP port probes with the OS neighbor table to recognise vendor
// hardware addresses, and ranks the most likely control-protocol
// candidates first.
//
// Usage:
//
//	plugscan [command] [flags]
//
// Running without arguments performs a full scan.
// See 'plugscan --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telden/plugscan/internal/logging"
	"github.com/telden/plugscan/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "plugscan",
	Short: "Local-network smart plug discovery",
	Long: `Discover Tuya-protocol smart plugs on the local subnet.

plugscan probes the 254 host addresses of the inferred private /24 for
reachability and for the device family's control ports, correlates the
results with the OS neighbor (ARP) table, and ranks likely candidates
first. No credentials or cloud account are required.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless PLUGSCAN_LOG_LEVEL is set
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: full scan when no subcommand provided
		return runScan(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("plugscan %s\n", version.Full())
	},
}
