// Package hostinfo gathers a short description of the local host for the
// report header.
package hostinfo

import (
	"os"
)

// Summary describes the host a snapshot was taken on. Every field degrades
// to "Unknown" rather than failing; a report is never aborted because host
// details are unavailable.
type Summary struct {
	Hostname     string `json:"hostname"`
	OS           string `json:"os"`
	Architecture string `json:"architecture"`
}

// Collect gathers the host summary.
func Collect() Summary {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "Unknown"
	}

	osName, err := ReadOSRelease(osReleasePath)
	if err != nil {
		osName = "Unknown"
	}

	return Summary{
		Hostname:     hostname,
		OS:           osName,
		Architecture: Architecture(),
	}
}
