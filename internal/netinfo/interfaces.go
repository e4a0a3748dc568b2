// Package netinfo provides enumeration of the host's active network interfaces.
package netinfo

import (
	"fmt"
	"net"
)

// Record describes one qualifying network interface at snapshot time.
// A Record is only produced when both the IPv4 address and the hardware
// address are known; incomplete interfaces are filtered out.
type Record struct {
	Name string `json:"name"`
	IPv4 string `json:"ipv4"`
	MAC  string `json:"mac"`
}

// Enumerator takes one-shot snapshots of the operating system's interface
// table. Records are built fresh on every call and never cached.
type Enumerator struct {
	interfaces func() ([]net.Interface, error)
	addresses  func(net.Interface) ([]net.Addr, error)
}

// New returns an Enumerator backed by the operating system's interface table.
func New() *Enumerator {
	return NewFromSources(
		net.Interfaces,
		func(iface net.Interface) ([]net.Addr, error) { return iface.Addrs() },
	)
}

// NewFromSources returns an Enumerator reading from the given interface and
// address sources. Used by tests to run against a synthetic interface table.
func NewFromSources(interfaces func() ([]net.Interface, error), addresses func(net.Interface) ([]net.Addr, error)) *Enumerator {
	return &Enumerator{
		interfaces: interfaces,
		addresses:  addresses,
	}
}

// Enumerate returns one Record per non-loopback interface that has both an
// IPv4 address and a 6-byte hardware address, in OS enumeration order.
// If the interface table itself cannot be read, Enumerate returns an empty
// slice together with the error; callers treat that as a degraded snapshot,
// not a fatal condition. Per-interface address lookup failures silently drop
// the affected interface.
func (e *Enumerator) Enumerate() ([]Record, error) {
	ifaces, err := e.interfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate network interfaces: %w", err)
	}

	records := make([]Record, 0, len(ifaces))

	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := e.addresses(iface)
		if err != nil {
			continue
		}

		rec := Record{
			Name: iface.Name,
			IPv4: firstIPv4(addrs),
			MAC:  formatHardwareAddr(iface.HardwareAddr),
		}

		// Completeness filter: both addresses must have resolved.
		if rec.IPv4 == "" || rec.MAC == "" {
			continue
		}

		records = append(records, rec)
	}

	return records, nil
}
