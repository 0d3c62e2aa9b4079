package discovery

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ControlPort is the TCP port the device family's local control
	// protocol listens on. Its presence is the strongest single signal
	// that a host speaks the protocol.
	ControlPort = 6668

	// DefaultBatchSize bounds how many host pipelines run concurrently.
	DefaultBatchSize = 20
)

// CandidatePorts is the fixed set of TCP ports probed on every reachable
// host, in ascending order. All are associated with the device family;
// ControlPort is the canonical one.
var CandidatePorts = []int{6666, 6667, ControlPort}

// Device represents a host discovered during a subnet scan. Devices are
// produced fresh per scan and never persisted.
type Device struct {
	// IP is the dotted-quad IPv4 address
	IP string

	// MAC is the lowercase colon-separated hardware address, or empty
	// when the host was absent from the neighbor table
	MAC string

	// Vendor is the label matched from the MAC's OUI prefix, or empty
	Vendor string

	// Hostname is an optional mDNS-advertised name (hint only)
	Hostname string

	// OpenPorts is the non-empty, ascending subset of CandidatePorts
	// that accepted a TCP connection
	OpenPorts []int

	// LikelyCandidate is true when the vendor is on the known list AND
	// ControlPort is open. Derived, never set independently.
	LikelyCandidate bool

	// DiscoveredAt is when the host pipeline completed
	DiscoveredAt time.Time
}

// String returns a human-readable one-line summary of the device.
func (d *Device) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Device %s ports=%v", d.IP, d.OpenPorts)
	if d.MAC != "" {
		fmt.Fprintf(&b, " mac=%s", d.MAC)
	}
	if d.Vendor != "" {
		fmt.Fprintf(&b, " vendor=%s", d.Vendor)
	}
	if d.LikelyCandidate {
		b.WriteString(" (likely candidate)")
	}
	return b.String()
}

// ControlAddr returns the host:port address a protocol client should dial.
func (d *Device) ControlAddr() string {
	return fmt.Sprintf("%s:%d", d.IP, ControlPort)
}

// HasPort reports whether port is among the device's open ports.
func (d *Device) HasPort(port int) bool {
	for _, p := range d.OpenPorts {
		if p == port {
			return true
		}
	}
	return false
}
