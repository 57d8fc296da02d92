package wifi

import "net"

// NetworkInfo describes a joined network session. It is produced by the
// connection layer when a network is hosted or joined and is read-only here;
// its fields seed the per-network CCMP key derivation.
type NetworkInfo struct {
	HostMAC    net.HardwareAddr
	WlanCommID uint32
	ID         uint16
	NetworkID  uint16
}
