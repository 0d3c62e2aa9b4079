//go:build windows

package discovery

import (
	"context"
	"errors"
	"time"
)

// ArpingProber is unavailable on Windows; callers fall back to PingProber.
type ArpingProber struct {
	Timeout time.Duration
}

// NewArpingProber always fails on Windows.
func NewArpingProber() (*ArpingProber, error) {
	return nil, errors.New("native ARP probe is not supported on windows")
}

// Alive always reports unreachable.
func (a *ArpingProber) Alive(ctx context.Context, ip string) bool {
	return false
}
