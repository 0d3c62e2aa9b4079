package discovery

import (
	"context"
	"net"
	"os/exec"
	"runtime"
	"strconv"
	"sync"
	"time"
)

const (
	// DefaultPingTimeout bounds a single reachability probe.
	DefaultPingTimeout = 1 * time.Second

	// DefaultPortTimeout bounds each TCP connect attempt.
	DefaultPortTimeout = 500 * time.Millisecond
)

// HostProber reports whether a host answers a cheap reachability probe.
// Probe errors and timeouts both mean "not alive"; they are never
// distinguished or propagated.
type HostProber interface {
	Alive(ctx context.Context, ip string) bool
}

// PortProber reports which candidate ports on a host accept a TCP
// connection. Timeouts and refusals both count as closed.
type PortProber interface {
	OpenPorts(ctx context.Context, ip string) []int
}

// PingProber shells out to the platform ping utility, sending a single
// echo request per probe.
type PingProber struct {
	Timeout time.Duration
	goos    string
}

// NewPingProber returns a prober for the current platform with the
// default timeout.
func NewPingProber() *PingProber {
	return &PingProber{Timeout: DefaultPingTimeout, goos: runtime.GOOS}
}

// Alive runs one ping against ip. A non-zero exit, missing utility, or
// timeout all report the host as unreachable.
func (p *PingProber) Alive(ctx context.Context, ip string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var cmd *exec.Cmd
	switch p.goos {
	case "windows":
		// -w takes milliseconds
		cmd = exec.CommandContext(ctx, "ping", "-n", "1", "-w",
			strconv.Itoa(int(p.Timeout.Milliseconds())), ip)
	case "darwin":
		// -W takes milliseconds on macOS
		cmd = exec.CommandContext(ctx, "ping", "-c", "1", "-W",
			strconv.Itoa(int(p.Timeout.Milliseconds())), ip)
	default:
		// -W takes whole seconds on Linux
		secs := int(p.Timeout.Seconds())
		if secs < 1 {
			secs = 1
		}
		cmd = exec.CommandContext(ctx, "ping", "-c", "1", "-W",
			strconv.Itoa(secs), ip)
	}

	return cmd.Run() == nil
}

// TCPProber attempts TCP connections to a fixed port set, each with an
// independent timeout. A successful connect is torn down immediately; the
// probe exchanges no payload.
type TCPProber struct {
	Ports   []int
	Timeout time.Duration
}

// NewTCPProber returns a prober over ports with the default per-port
// timeout. Ports should be in ascending order; OpenPorts preserves it.
func NewTCPProber(ports []int) *TCPProber {
	return &TCPProber{Ports: ports, Timeout: DefaultPortTimeout}
}

// OpenPorts dials every configured port concurrently and returns the open
// subset in configuration order.
func (p *TCPProber) OpenPorts(ctx context.Context, ip string) []int {
	results := make([]bool, len(p.Ports))
	var wg sync.WaitGroup
	for i, port := range p.Ports {
		wg.Add(1)
		go func(i, port int) {
			defer wg.Done()
			results[i] = p.dial(ctx, ip, port)
		}(i, port)
	}
	wg.Wait()

	var open []int
	for i, ok := range results {
		if ok {
			open = append(open, p.Ports[i])
		}
	}
	return open
}

func (p *TCPProber) dial(ctx context.Context, ip string, port int) bool {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(ip, strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
