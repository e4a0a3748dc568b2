package hostinfo

import (
	"runtime"
)

// Architecture reports the CPU architecture, mapping Go's GOARCH values to
// the names commonly reported by uname.
func Architecture() string {
	arch := runtime.GOARCH

	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "arm":
		arch = "armv7l"
	}

	return arch
}
