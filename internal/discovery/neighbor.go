package discovery

import (
	"context"
	"net"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/telden/plugscan/internal/logging"
)

// NeighborProvider supplies the OS neighbor (ARP) table as an IP→MAC map.
// Implementations are best effort: any failure yields an empty map, never
// an error. The map is rebuilt once per scan and read-only afterwards.
type NeighborProvider interface {
	Table(ctx context.Context) map[string]string
}

// neighborParser converts neighbor utility output into an IP→MAC map.
// Parsers are pure so they can be tested against captured output.
type neighborParser func(output string) map[string]string

// CommandNeighborProvider shells out to the platform's neighbor-table
// utility and parses its text output. The utility and parser are chosen
// once at construction from the host platform identifier.
type CommandNeighborProvider struct {
	goos string
}

// NewNeighborProvider returns a provider for the current platform.
func NewNeighborProvider() *CommandNeighborProvider {
	return &CommandNeighborProvider{goos: runtime.GOOS}
}

// Table dumps and parses the neighbor table. Unsupported platforms,
// missing utilities, and permission errors all produce an empty map.
func (p *CommandNeighborProvider) Table(ctx context.Context) map[string]string {
	name, args, parse := p.command()
	if parse == nil {
		logging.Debug("Neighbor table lookup not supported on this platform",
			zap.String("goos", p.goos))
		return map[string]string{}
	}

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		logging.Warn("Neighbor table lookup failed",
			zap.String("command", name),
			zap.Error(err),
		)
		return map[string]string{}
	}

	table := parse(string(out))
	logging.LogNeighborTable(len(table))
	return table
}

// command returns the utility, its arguments, and the matching parser for
// the provider's platform. The parser is nil when unsupported.
func (p *CommandNeighborProvider) command() (string, []string, neighborParser) {
	switch p.goos {
	case "darwin", "freebsd", "netbsd", "openbsd":
		return "arp", []string{"-an"}, parseARPAnOutput
	case "linux":
		return "ip", []string{"neigh", "show"}, parseIPNeighOutput
	case "windows":
		return "arp", []string{"-a"}, parseWindowsARPOutput
	default:
		return "", nil, nil
	}
}

// parseARPAnOutput handles BSD-style "arp -an" lines:
//
//	? (192.168.1.50) at 34:ea:34:aa:bb:cc on en0 ifscope [ethernet]
//
// Incomplete entries show "(incomplete)" in the MAC position and are
// dropped by the MAC validity check.
func parseARPAnOutput(output string) map[string]string {
	table := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 || fields[2] != "at" {
			continue
		}
		ip := strings.Trim(fields[1], "()")
		mac := strings.ToLower(fields[3])
		if net.ParseIP(ip) == nil || !validNeighborMAC(mac) {
			continue
		}
		table[ip] = mac
	}
	return table
}

// parseIPNeighOutput handles "ip neigh show" lines:
//
//	192.168.1.50 dev eth0 lladdr 34:ea:34:aa:bb:cc REACHABLE
//
// The MAC is located positionally as the 17-character colon-delimited
// token, so FAILED entries (which carry no lladdr) fall out naturally.
func parseIPNeighOutput(output string) map[string]string {
	table := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ip := fields[0]
		if net.ParseIP(ip) == nil {
			continue
		}
		for _, f := range fields[1:] {
			mac := strings.ToLower(f)
			if len(mac) == 17 && strings.Count(mac, ":") == 5 && validNeighborMAC(mac) {
				table[ip] = mac
				break
			}
		}
	}
	return table
}

// parseWindowsARPOutput handles "arp -a" table rows:
//
//	192.168.1.50          34-ea-34-aa-bb-cc     dynamic
//
// Dash-delimited MACs are normalized to colons.
func parseWindowsARPOutput(output string) map[string]string {
	table := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ip := fields[0]
		if net.ParseIP(ip) == nil {
			continue
		}
		mac := strings.ToLower(strings.ReplaceAll(fields[1], "-", ":"))
		if !validNeighborMAC(mac) {
			continue
		}
		table[ip] = mac
	}
	return table
}

// validNeighborMAC reports whether mac is a usable unicast hardware
// address. Broadcast, unresolved, and malformed entries are rejected.
func validNeighborMAC(mac string) bool {
	if len(mac) != 17 {
		return false
	}
	if mac == "ff:ff:ff:ff:ff:ff" || mac == "00:00:00:00:00:00" {
		return false
	}
	_, err := net.ParseMAC(mac)
	return err == nil
}
