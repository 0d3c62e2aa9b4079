//go:build linux || darwin || freebsd || netbsd || openbsd

package discovery

import (
	"context"
	"net"
	"time"

	"github.com/j-keck/arping"
)

// ArpingProber checks reachability with a native ARP request instead of
// shelling out to ping. ARP reaches hosts that filter ICMP, but raw socket
// access usually requires elevated privileges.
type ArpingProber struct {
	Timeout time.Duration
}

// NewArpingProber returns the native ARP prober. It never fails on the
// platforms this file builds for; privilege errors surface per probe as
// "not alive".
func NewArpingProber() (*ArpingProber, error) {
	return &ArpingProber{Timeout: DefaultPingTimeout}, nil
}

// Alive sends one ARP request to ip and waits for a reply. Non-IPv4
// addresses, errors, and timeouts all report unreachable.
func (a *ArpingProber) Alive(ctx context.Context, ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		return false
	}

	arping.SetTimeout(a.Timeout)

	// arping has no context support; run it aside so cancellation is
	// honored even if the reply never comes.
	done := make(chan error, 1)
	go func() {
		_, _, err := arping.Ping(parsed)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return false
	case err := <-done:
		return err == nil
	}
}
