// Package report coordinates interface enumeration with the concurrent
// reachability probe and renders the combined snapshot.
package report

import (
	"context"
	"io"
	"time"

	"github.com/fzdarsky/netreport/internal/hostinfo"
	"github.com/fzdarsky/netreport/internal/logging"
	"github.com/fzdarsky/netreport/internal/netinfo"
	"github.com/fzdarsky/netreport/internal/probe"
)

// DefaultDeadline bounds how long a report waits for the probe result
// after the interface listing has been rendered.
const DefaultDeadline = 2 * time.Second

// Report is the combined snapshot produced by one run.
type Report struct {
	TakenAt    time.Time        `json:"taken_at"`
	Host       hostinfo.Summary `json:"host"`
	Interfaces []netinfo.Record `json:"interfaces"`
	Internet   probe.Result     `json:"internet"`
	Available  bool             `json:"available"`
}

// EnumerateFunc supplies the interface records for a report.
type EnumerateFunc func() ([]netinfo.Record, error)

// ProbeFunc supplies the reachability result for a report.
type ProbeFunc func(ctx context.Context) probe.Result

// HostFunc supplies the host summary for a report.
type HostFunc func() hostinfo.Summary

// Runner produces one report per Run call. The probe runs in its own
// goroutine and hands its result over a single-slot channel; the runner
// waits for it at most Deadline and otherwise falls back to Unreachable.
type Runner struct {
	Enumerate EnumerateFunc
	Probe     ProbeFunc
	Host      HostFunc
	Deadline  time.Duration
	Logger    *logging.Logger
	JSON      bool
}

// Run renders one snapshot to w. The probe is launched first so its latency
// overlaps enumeration; the interface listing is written as soon as
// enumeration completes, before the probe is awaited. Sub-failures are
// absorbed into the report as data: a failed enumeration renders an empty
// listing, a failed or late probe renders as unavailable. Run never returns
// an error.
func (r *Runner) Run(ctx context.Context, w io.Writer) {
	deadline := r.Deadline
	if deadline <= 0 {
		deadline = DefaultDeadline
	}

	// Buffered so a result arriving after the deadline is parked here and
	// the probe goroutine never leaks.
	results := make(chan probe.Result, 1)
	go func() {
		results <- r.Probe(ctx)
	}()

	host := r.Host()

	records, err := r.Enumerate()
	if err != nil {
		r.Logger.Error("interface enumeration failed", map[string]any{
			"error": err.Error(),
		})
	}

	if r.JSON {
		result := r.awaitProbe(results, deadline)
		writeJSON(w, Report{
			TakenAt:    time.Now().UTC(),
			Host:       host,
			Interfaces: records,
			Internet:   result,
			Available:  result.Available(),
		})
		return
	}

	writeText(w, host, records)

	result := r.awaitProbe(results, deadline)
	if result == probe.Indeterminate {
		r.Logger.Warn("reachability probe could not run; reporting unavailable")
	}
	writeReachability(w, result)
}

// awaitProbe blocks until the probe delivers its result or the deadline
// elapses, whichever comes first. A missed deadline yields Unreachable, so
// a slow probe degrades the reachability line but never stalls the report.
func (r *Runner) awaitProbe(results <-chan probe.Result, deadline time.Duration) probe.Result {
	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case result := <-results:
		return result
	case <-timer.C:
		r.Logger.Debug("probe missed report deadline", map[string]any{
			"deadline": deadline.String(),
		})
		return probe.Unreachable
	}
}
