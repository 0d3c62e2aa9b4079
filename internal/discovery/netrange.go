package discovery

import (
	"fmt"
	"net"
	"strings"

	"go.uber.org/zap"

	"github.com/telden/plugscan/internal/logging"
)

// DefaultBase is scanned when no private interface address can be found.
const DefaultBase = "192.168.1.0"

// Network describes the IPv4 range selected for a scan.
//
// PrefixLen records the range the interface address implies: /24 for
// 192.168.0.0/16 and 10.0.0.0/8 addresses, /16 for 172.16.0.0/12. Hosts()
// deliberately ignores the declared /16 and only enumerates the 254-address
// slice around the interface address; sweeping a full /16 would take two
// orders of magnitude longer and touch far more of the network than a
// device scan should.
type Network struct {
	Base      string
	PrefixLen int
}

// Hosts returns the 254 host addresses of the base /24 slice in ascending
// order (host octet 1 through 254).
func (n Network) Hosts() []string {
	prefix := strings.TrimSuffix(n.Base, ".0")
	hosts := make([]string, 0, 254)
	for i := 1; i <= 254; i++ {
		hosts = append(hosts, fmt.Sprintf("%s.%d", prefix, i))
	}
	return hosts
}

// RangeResolver selects the network range a scan will sweep.
type RangeResolver interface {
	Resolve() Network
}

// InterfaceResolver picks the first private (RFC 1918) IPv4 address among
// the host's non-loopback interfaces and maps it to a scan range. It
// performs no I/O beyond reading local interface configuration.
type InterfaceResolver struct{}

// Resolve returns the inferred network, falling back to DefaultBase when no
// private interface address exists.
func (InterfaceResolver) Resolve() Network {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		logging.Warn("Failed to enumerate interface addresses", zap.Error(err))
		return Network{Base: DefaultBase, PrefixLen: 24}
	}

	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		ip4 := ipnet.IP.To4()
		if ip4 == nil || !isPrivateIPv4(ip4) {
			continue
		}
		network := networkFor(ip4)
		logging.Debug("Resolved scan range",
			zap.String("interface_ip", ip4.String()),
			zap.String("base", network.Base),
			zap.Int("prefix_len", network.PrefixLen),
		)
		return network
	}

	logging.Warn("No private IPv4 interface address found, using default base",
		zap.String("base", DefaultBase))
	return Network{Base: DefaultBase, PrefixLen: 24}
}

// networkFor maps a private interface address to its scan range.
func networkFor(ip4 net.IP) Network {
	prefixLen := 24
	if ip4[0] == 172 {
		prefixLen = 16
	}
	return Network{
		Base:      fmt.Sprintf("%d.%d.%d.0", ip4[0], ip4[1], ip4[2]),
		PrefixLen: prefixLen,
	}
}

// isPrivateIPv4 reports whether ip4 is in RFC 1918 address space.
func isPrivateIPv4(ip4 net.IP) bool {
	return ip4[0] == 10 ||
		(ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31) ||
		(ip4[0] == 192 && ip4[1] == 168)
}
