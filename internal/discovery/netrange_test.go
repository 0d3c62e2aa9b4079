package discovery

import (
	"net"
	"testing"
)

func TestNetworkFor(t *testing.T) {
	tests := []struct {
		name          string
		ip            string
		wantBase      string
		wantPrefixLen int
	}{
		{
			name:          "192.168 address maps to its /24",
			ip:            "192.168.4.16",
			wantBase:      "192.168.4.0",
			wantPrefixLen: 24,
		},
		{
			name:          "10.x address maps to its /24",
			ip:            "10.1.2.3",
			wantBase:      "10.1.2.0",
			wantPrefixLen: 24,
		},
		{
			name:          "172.16-31 address declares a /16",
			ip:            "172.20.3.9",
			wantBase:      "172.20.3.0",
			wantPrefixLen: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := networkFor(net.ParseIP(tt.ip).To4())
			if got.Base != tt.wantBase {
				t.Errorf("networkFor(%s).Base = %v, want %v", tt.ip, got.Base, tt.wantBase)
			}
			if got.PrefixLen != tt.wantPrefixLen {
				t.Errorf("networkFor(%s).PrefixLen = %v, want %v", tt.ip, got.PrefixLen, tt.wantPrefixLen)
			}
		})
	}
}

func TestIsPrivateIPv4(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"192.168.1.1", true},
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"172.31.255.254", true},
		{"172.15.0.1", false},
		{"172.32.0.1", false},
		{"8.8.8.8", false},
		{"169.254.1.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := isPrivateIPv4(net.ParseIP(tt.ip).To4()); got != tt.want {
				t.Errorf("isPrivateIPv4(%s) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}

func TestNetwork_Hosts(t *testing.T) {
	network := Network{Base: "192.168.1.0", PrefixLen: 24}
	hosts := network.Hosts()

	if len(hosts) != 254 {
		t.Fatalf("Hosts() returned %d addresses, want 254", len(hosts))
	}
	if hosts[0] != "192.168.1.1" {
		t.Errorf("Hosts()[0] = %v, want 192.168.1.1", hosts[0])
	}
	if hosts[253] != "192.168.1.254" {
		t.Errorf("Hosts()[253] = %v, want 192.168.1.254", hosts[253])
	}

	// No duplicates, no gaps
	seen := make(map[string]bool, len(hosts))
	for _, h := range hosts {
		if seen[h] {
			t.Errorf("Hosts() contains duplicate address %s", h)
		}
		seen[h] = true
	}
}

func TestNetwork_Hosts_DeclaredSixteenStaysBounded(t *testing.T) {
	// A /16 declaration never widens the sweep; only the 254-address
	// slice around the interface address is enumerated.
	network := Network{Base: "172.20.3.0", PrefixLen: 16}
	hosts := network.Hosts()

	if len(hosts) != 254 {
		t.Fatalf("Hosts() returned %d addresses for declared /16, want 254", len(hosts))
	}
	if hosts[0] != "172.20.3.1" {
		t.Errorf("Hosts()[0] = %v, want 172.20.3.1", hosts[0])
	}
}
