package config

// Preferences represents the entire user configuration file.
// Every field has a sensible default; a missing file is not an error.
type Preferences struct {
	Version int          `yaml:"version"`
	Scan    *ScanPrefs   `yaml:"scan,omitempty"`
	Vendors *VendorPrefs `yaml:"vendors,omitempty"`
}

// ScanPrefs holds tunables for the subnet sweep.
type ScanPrefs struct {
	BatchSize      int   `yaml:"batch_size"`                // Concurrent host pipelines per batch
	PingTimeoutMs  int   `yaml:"ping_timeout_ms"`           // Reachability probe timeout
	PortTimeoutMs  int   `yaml:"port_timeout_ms"`           // Per-port TCP connect timeout
	CandidatePorts []int `yaml:"candidate_ports,omitempty"` // Override of the probed port set
	UseArping      bool  `yaml:"use_arping"`                // Native ARP probe instead of ping (unix only)
	MDNSHints      bool  `yaml:"mdns_hints"`                // Collect mDNS hostname hints before scanning
}

// VendorPrefs holds MAC vendor matching options.
type VendorPrefs struct {
	// ExtraOUIs adds user-defined OUI prefixes (e.g. "a0:92:08") to the
	// built-in candidate vendor list, mapped to display labels.
	ExtraOUIs map[string]string `yaml:"extra_ouis,omitempty"`

	// DatabasePath optionally points at an IEEE oui.txt database used to
	// label non-candidate hardware. Informational only.
	DatabasePath string `yaml:"database_path,omitempty"`
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version: 1,
		Scan: &ScanPrefs{
			BatchSize:     20,
			PingTimeoutMs: 1000,
			PortTimeoutMs: 500,
		},
		Vendors: &VendorPrefs{},
	}
}

// normalize fills in nil sections and out-of-range values after loading a
// user-edited file.
func (p *Preferences) normalize() {
	defaults := NewPreferences()
	if p.Scan == nil {
		p.Scan = defaults.Scan
	}
	if p.Vendors == nil {
		p.Vendors = defaults.Vendors
	}
	if p.Scan.BatchSize <= 0 {
		p.Scan.BatchSize = defaults.Scan.BatchSize
	}
	if p.Scan.PingTimeoutMs <= 0 {
		p.Scan.PingTimeoutMs = defaults.Scan.PingTimeoutMs
	}
	if p.Scan.PortTimeoutMs <= 0 {
		p.Scan.PortTimeoutMs = defaults.Scan.PortTimeoutMs
	}
}
