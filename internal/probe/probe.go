// Package probe implements a single bounded TCP reachability check used as a
// proxy signal for outbound internet connectivity.
package probe

import (
	"context"
	"net"
	"net/netip"
	"strconv"
	"time"
)

// Result classifies the outcome of one reachability probe.
type Result string

const (
	// Reachable means the TCP connection attempt completed within the timeout.
	Reachable Result = "reachable"
	// Unreachable means the connection attempt failed or timed out.
	Unreachable Result = "unreachable"
	// Indeterminate means the probe itself could not be set up, as distinct
	// from a definitive negative result.
	Indeterminate Result = "indeterminate"
)

// Available reports how the result renders at the reporting boundary, where
// the tri-state collapses to a boolean. Only Reachable renders as available.
func (r Result) Available() bool {
	return r == Reachable
}

// Default probe endpoint and timeout. Port 53 on a public resolver is
// near-universally reachable and low-latency; no DNS exchange takes place.
const (
	DefaultTarget  = "8.8.8.8"
	DefaultPort    = 53
	DefaultTimeout = 2 * time.Second
)

// Prober performs a single TCP connection attempt against a fixed endpoint.
// It carries no payload, makes exactly one attempt, and never retries.
type Prober struct {
	target  string
	port    int
	timeout time.Duration
}

// New returns a Prober for the given IPv4 target and port. A non-positive
// timeout falls back to DefaultTimeout.
func New(target string, port int, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Prober{
		target:  target,
		port:    port,
		timeout: timeout,
	}
}

// Probe dials the configured endpoint once, bounded by the prober's timeout
// and the context. Setup failures (a target that is not a valid IPv4
// address, or an out-of-range port) yield Indeterminate; a refused,
// unroutable, or timed-out connection yields Unreachable. A successfully
// established connection is closed immediately and yields Reachable.
//
// The dial is bounded internally, so Probe never blocks past the timeout
// even when the caller has stopped waiting for the result.
func (p *Prober) Probe(ctx context.Context) Result {
	addr, err := netip.ParseAddr(p.target)
	if err != nil || !addr.Is4() {
		return Indeterminate
	}

	if p.port <= 0 || p.port > 65535 {
		return Indeterminate
	}

	dialer := net.Dialer{Timeout: p.timeout}

	conn, err := dialer.DialContext(ctx, "tcp4", net.JoinHostPort(p.target, strconv.Itoa(p.port)))
	if err != nil {
		return Unreachable
	}
	_ = conn.Close()

	return Reachable
}
