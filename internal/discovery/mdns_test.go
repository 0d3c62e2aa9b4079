package discovery

import (
	"net"
	"testing"

	"github.com/grandcat/zeroconf"
)

func TestHintFromEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantIP   string
		wantHost string
	}{
		{
			name: "IPv4 entry with trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "plug-kitchen.local.",
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
			},
			wantIP:   "192.168.1.50",
			wantHost: "plug-kitchen.local",
		},
		{
			name: "hostname without trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "plug-garage.local",
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantIP:   "10.0.0.5",
			wantHost: "plug-garage.local",
		},
		{
			name: "no IPv4 address",
			entry: &zeroconf.ServiceEntry{
				HostName: "plug.local.",
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			wantIP:   "",
			wantHost: "",
		},
		{
			name: "empty hostname",
			entry: &zeroconf.ServiceEntry{
				HostName: "",
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
			},
			wantIP:   "",
			wantHost: "",
		},
		{
			name: "multiple IPv4 addresses uses the first",
			entry: &zeroconf.ServiceEntry{
				HostName: "plug.local.",
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.60"), net.ParseIP("192.168.1.61")},
			},
			wantIP:   "192.168.1.60",
			wantHost: "plug.local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip, host := hintFromEntry(tt.entry)
			if ip != tt.wantIP {
				t.Errorf("hintFromEntry() ip = %v, want %v", ip, tt.wantIP)
			}
			if host != tt.wantHost {
				t.Errorf("hintFromEntry() host = %v, want %v", host, tt.wantHost)
			}
		})
	}
}

func TestCollectHints(t *testing.T) {
	entries := make(chan *zeroconf.ServiceEntry)
	go func() {
		defer close(entries)
		entries <- &zeroconf.ServiceEntry{
			HostName: "plug-kitchen.local.",
			AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
		}
		entries <- &zeroconf.ServiceEntry{
			HostName: "no-address.local.",
		}
		entries <- &zeroconf.ServiceEntry{
			HostName: "plug-garage.local.",
			AddrIPv4: []net.IP{net.ParseIP("192.168.1.60")},
		}
		entries <- &zeroconf.ServiceEntry{
			HostName: "plug-kitchen-renamed.local.",
			AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
		}
	}()

	hints := collectHints(entries)

	if len(hints) != 2 {
		t.Fatalf("collectHints() returned %d hints, want 2: %v", len(hints), hints)
	}
	if hints["192.168.1.50"] != "plug-kitchen-renamed.local" {
		t.Errorf("hints[192.168.1.50] = %v, want plug-kitchen-renamed.local", hints["192.168.1.50"])
	}
	if hints["192.168.1.60"] != "plug-garage.local" {
		t.Errorf("hints[192.168.1.60] = %v, want plug-garage.local", hints["192.168.1.60"])
	}
}

func TestCollectHints_Empty(t *testing.T) {
	entries := make(chan *zeroconf.ServiceEntry)
	close(entries)

	hints := collectHints(entries)
	if hints == nil || len(hints) != 0 {
		t.Errorf("collectHints() on closed channel = %v, want empty map", hints)
	}
}

func TestNewMDNSHints(t *testing.T) {
	hints := NewMDNSHints()

	if hints.Timeout != DefaultMDNSTimeout {
		t.Errorf("hints.Timeout = %v, want %v", hints.Timeout, DefaultMDNSTimeout)
	}
	if hints.Service != mdnsService {
		t.Errorf("hints.Service = %v, want %v", hints.Service, mdnsService)
	}
}
