package discovery

import (
	"context"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/telden/plugscan/internal/logging"
)

const (
	// mdnsService is browsed for hostname hints. Most smart-home gear
	// (and plenty of other LAN hosts) advertises plain HTTP.
	mdnsService = "_http._tcp"

	// mdnsDomain is the mDNS domain (always "local.").
	mdnsDomain = "local."

	// DefaultMDNSTimeout bounds the pre-scan browse window.
	DefaultMDNSTimeout = 3 * time.Second
)

// HostnameProvider supplies optional IP→hostname annotations gathered
// before a sweep. Best effort: failures yield an empty map.
type HostnameProvider interface {
	Hostnames(ctx context.Context) map[string]string
}

// MDNSHints browses mDNS service advertisements and records the hostname
// each responder advertises, keyed by its IPv4 address. The hints only
// annotate discovered devices; they never affect reachability, port, or
// candidate results.
type MDNSHints struct {
	Timeout time.Duration
	Service string
}

// NewMDNSHints returns a hint collector with default settings.
func NewMDNSHints() *MDNSHints {
	return &MDNSHints{
		Timeout: DefaultMDNSTimeout,
		Service: mdnsService,
	}
}

// Hostnames browses until the timeout elapses and returns whatever was
// heard. A resolver or browse failure is logged and yields an empty map.
func (m *MDNSHints) Hostnames(ctx context.Context) map[string]string {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		logging.Warn("Failed to create mDNS resolver", zap.Error(err))
		return map[string]string{}
	}

	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, m.Service, mdnsDomain, entries); err != nil {
		logging.Warn("mDNS browse failed", zap.Error(err))
		return map[string]string{}
	}

	// The resolver closes entries when the context expires, so draining
	// to completion also bounds the wait.
	hints := collectHints(entries)

	logging.Debug("mDNS hints collected", zap.Int("hosts", len(hints)))
	return hints
}

// collectHints drains service entries until the channel closes, keeping
// the advertised hostname for each IPv4 responder. Later advertisements
// for the same address win.
func collectHints(entries <-chan *zeroconf.ServiceEntry) map[string]string {
	hints := make(map[string]string)
	for entry := range entries {
		ip, host := hintFromEntry(entry)
		if ip != "" {
			hints[ip] = host
		}
	}
	return hints
}

// hintFromEntry extracts the IPv4 address and hostname (without trailing
// dot) from a service entry. Entries without an IPv4 address or hostname
// yield empty strings.
func hintFromEntry(entry *zeroconf.ServiceEntry) (ip, host string) {
	if entry.HostName == "" || len(entry.AddrIPv4) == 0 {
		return "", ""
	}
	return entry.AddrIPv4[0].String(), strings.TrimSuffix(entry.HostName, ".")
}
