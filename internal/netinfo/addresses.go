package netinfo

import (
	"net"
)

// firstIPv4 extracts the dotted-decimal form of the first IPv4 address
// assigned to an interface, or "" if it has none. Interfaces with multiple
// IPv4 assignments keep only the first encountered. The untyped net.Addr
// representation never leaks past this function.
func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}

		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return ""
}

// formatHardwareAddr renders a link-layer address as six lowercase
// colon-separated hex octets. Interfaces without a 6-byte address
// (tunnels, some virtual devices) yield "".
func formatHardwareAddr(hw net.HardwareAddr) string {
	if len(hw) != 6 {
		return ""
	}
	return hw.String()
}
