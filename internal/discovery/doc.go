// Package discovery locates Tuya-protocol smart plugs on the local subnet.
//
// Unlike cloud enumeration, this package needs no credentials: it sweeps the
// operator's own /24, probing each address for reachability and for the small
// set of TCP ports the device family listens on, then correlates results with
// the operating system's neighbor (ARP) table to recognise vendor hardware
// addresses.
//
// # Scan Pipeline
//
// A scan proceeds in bounded-concurrency batches over the 254 host addresses
// of the inferred base network:
//  1. Resolve the private IPv4 base network from local interface addresses
//  2. Read the OS neighbor table once (best effort, never fatal)
//  3. For each address: reachability probe, then concurrent TCP connects to
//     the candidate port set, then MAC/vendor correlation
//  4. Rank results so likely candidates come first
//
// # Usage Example
//
//	scanner := discovery.NewScanner()
//	devices, err := scanner.Discover(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range devices {
//	    fmt.Println(d)
//	}
//
// # Failure Semantics
//
// Ordinary network conditions (unreachable hosts, closed ports, a missing or
// unreadable neighbor table) never surface as errors. An empty result list is
// a normal outcome, not a failure.
//
// # Network Requirements
//
//   - The host must sit on the same L2 segment as the devices
//   - The ping utility must be on PATH (or use the native ARP prober)
//   - Reading the neighbor table may silently fail without privileges;
//     devices are then reported without MAC/vendor information
package discovery
