package discovery

import (
	"fmt"
	"strings"

	"github.com/klauspost/oui"
)

// knownOUIs maps the vendor-assigned first three MAC octets of the device
// family's WiFi modules to vendor labels. Tuya firmware ships on both
// Tuya's own modules and rebadged Espressif ones.
var knownOUIs = map[string]string{
	"34:ea:34": "Tuya",
	"68:57:2d": "Tuya",
	"10:d5:61": "Tuya",
	"d8:1f:12": "Tuya",
	"7c:f6:66": "Tuya",
	"24:62:ab": "Espressif",
	"84:f3:eb": "Espressif",
	"d8:f1:5b": "Espressif",
}

// VendorMatcher resolves MAC addresses to vendor labels. Matching against
// the known candidate list is a pure prefix comparison; an IEEE OUI
// database can optionally be attached for informational labels on
// non-candidate hardware.
type VendorMatcher struct {
	ouis map[string]string
	db   oui.OuiDB
}

// NewVendorMatcher builds a matcher over the known OUI list merged with
// extra (user-configured) prefixes. Extra keys are lowercased; on
// collision the extra label wins.
func NewVendorMatcher(extra map[string]string) *VendorMatcher {
	ouis := make(map[string]string, len(knownOUIs)+len(extra))
	for prefix, label := range knownOUIs {
		ouis[prefix] = label
	}
	for prefix, label := range extra {
		ouis[strings.ToLower(prefix)] = label
	}
	return &VendorMatcher{ouis: ouis}
}

// LoadDatabase attaches an IEEE OUI database file (oui.txt format). The
// database only labels MACs whose prefix is not on the candidate list; it
// never promotes a host to likely-candidate status.
func (m *VendorMatcher) LoadDatabase(path string) error {
	db, err := oui.OpenStaticFile(path)
	if err != nil {
		return fmt.Errorf("failed to load OUI database %s: %w", path, err)
	}
	m.db = db
	return nil
}

// Match returns the vendor label for mac and whether its prefix is on the
// known candidate list. Comparison is case-insensitive and uses the first
// three octets only. An empty label means the vendor is unknown.
func (m *VendorMatcher) Match(mac string) (label string, known bool) {
	mac = strings.ToLower(mac)
	if len(mac) < 8 {
		return "", false
	}
	if label, ok := m.ouis[mac[:8]]; ok {
		return label, true
	}
	if m.db != nil {
		if entry, err := m.db.Query(mac); err == nil && entry != nil {
			return entry.Manufacturer, false
		}
	}
	return "", false
}
