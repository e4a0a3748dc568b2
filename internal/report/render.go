package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fzdarsky/netreport/internal/hostinfo"
	"github.com/fzdarsky/netreport/internal/netinfo"
	"github.com/fzdarsky/netreport/internal/probe"
)

// writeText renders the host header and the per-interface blocks. The final
// reachability line is written separately once the probe has been awaited.
func writeText(w io.Writer, host hostinfo.Summary, records []netinfo.Record) {
	fmt.Fprintf(w, "Host: %s (%s, %s)\n\n", host.Hostname, host.OS, host.Architecture)

	fmt.Fprintln(w, "Network Interfaces:")
	for _, rec := range records {
		fmt.Fprintf(w, "Interface: %s\n", rec.Name)
		fmt.Fprintf(w, "  IPv4:    %s\n", rec.IPv4)
		fmt.Fprintf(w, "  MAC:     %s\n", rec.MAC)
		fmt.Fprintln(w, "  --------")
	}
}

// writeReachability renders the trailing reachability line. The tri-state
// probe result collapses to a boolean here.
func writeReachability(w io.Writer, result probe.Result) {
	state := "Unavailable"
	if result.Available() {
		state = "Available"
	}
	fmt.Fprintf(w, "\nInternet Access: %s\n", state)
}

// writeJSON renders the whole report as one indented JSON document.
func writeJSON(w io.Writer, rep Report) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(rep)
}
