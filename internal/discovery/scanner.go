package discovery

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/telden/plugscan/internal/logging"
)

// Scanner orchestrates a full subnet sweep. The zero value is not usable;
// construct with NewScanner and override fields before the first scan.
// Every collaborator sits behind an interface so tests can substitute
// fakes for the network-touching parts.
type Scanner struct {
	Resolver  RangeResolver
	Neighbors NeighborProvider
	Host      HostProber
	Ports     PortProber
	Vendors   *VendorMatcher

	// Hints optionally supplies IP→hostname annotations gathered before
	// the sweep (see MDNSHints). Nil disables the lookup.
	Hints HostnameProvider

	// BatchSize bounds concurrent host pipelines. Addresses are processed
	// in batches of this size, strictly in ascending order; a batch fully
	// completes before the next starts.
	BatchSize int

	// Progress, when set, is invoked after each batch with the number of
	// addresses scanned so far and the total. Purely observational; the
	// default logs through the package logger.
	Progress func(scanned, total int)
}

// NewScanner wires the default platform implementations.
func NewScanner() *Scanner {
	return &Scanner{
		Resolver:  InterfaceResolver{},
		Neighbors: NewNeighborProvider(),
		Host:      NewPingProber(),
		Ports:     NewTCPProber(CandidatePorts),
		Vendors:   NewVendorMatcher(nil),
		BatchSize: DefaultBatchSize,
	}
}

// Discover sweeps the resolved subnet and returns the ranked device list.
// Unreachable hosts, closed ports, and a missing neighbor table are all
// normal conditions; an empty list is a normal outcome.
func (s *Scanner) Discover(ctx context.Context) ([]*Device, error) {
	network := s.Resolver.Resolve()
	hosts := network.Hosts()

	logging.Info("Starting device scan",
		zap.String("base", network.Base),
		zap.Int("hosts", len(hosts)),
	)

	// The neighbor table is built once per scan and read-only afterwards.
	neighbors := s.Neighbors.Table(ctx)

	var hints map[string]string
	if s.Hints != nil {
		hints = s.Hints.Hostnames(ctx)
	}

	batch := s.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	devices := make([]*Device, 0)
	for start := 0; start < len(hosts); start += batch {
		end := start + batch
		if end > len(hosts) {
			end = len(hosts)
		}

		// Slots keep batch output in ascending address order regardless
		// of pipeline completion order.
		found := make([]*Device, end-start)
		var wg sync.WaitGroup
		for i, ip := range hosts[start:end] {
			wg.Add(1)
			go func(i int, ip string) {
				defer wg.Done()
				found[i] = s.scanHost(ctx, ip, neighbors, hints)
			}(i, ip)
		}
		wg.Wait()

		for _, d := range found {
			if d != nil {
				devices = append(devices, d)
			}
		}

		if s.Progress != nil {
			s.Progress(end, len(hosts))
		} else {
			logging.LogScanProgress(end, len(hosts), len(devices))
		}
	}

	logging.Info("Device scan complete", zap.Int("devices", len(devices)))
	return Rank(devices), nil
}

// FindCandidates returns the subset of Discover results judged likely to
// speak the control protocol: known vendor plus open control port.
func (s *Scanner) FindCandidates(ctx context.Context) ([]*Device, error) {
	devices, err := s.Discover(ctx)
	if err != nil {
		return nil, err
	}
	var candidates []*Device
	for _, d := range devices {
		if d.LikelyCandidate {
			candidates = append(candidates, d)
		}
	}
	return candidates, nil
}

// scanHost runs one per-host pipeline: reachability probe, port probe,
// neighbor/vendor correlation. Returns nil when the host should be
// excluded from results.
func (s *Scanner) scanHost(ctx context.Context, ip string, neighbors, hints map[string]string) *Device {
	if !s.Host.Alive(ctx, ip) {
		return nil
	}

	open := s.Ports.OpenPorts(ctx, ip)
	if len(open) == 0 {
		logging.Debug("Host alive but no candidate port open", zap.String("ip", ip))
		return nil
	}

	d := &Device{
		IP:           ip,
		OpenPorts:    open,
		DiscoveredAt: time.Now(),
	}

	if mac, ok := neighbors[ip]; ok {
		d.MAC = strings.ToLower(mac)
		label, known := s.Vendors.Match(d.MAC)
		d.Vendor = label
		d.LikelyCandidate = known && d.HasPort(ControlPort)
	}

	if hints != nil {
		d.Hostname = hints[ip]
	}

	logging.LogDevice(d.IP, d.MAC, d.Vendor, d.OpenPorts, d.LikelyCandidate)
	return d
}

// Rank stably reorders devices so likely candidates precede the rest.
// Relative order inside each partition is discovery order (ascending
// address), never re-sorted by a secondary key.
func Rank(devices []*Device) []*Device {
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].LikelyCandidate && !devices[j].LikelyCandidate
	})
	return devices
}
