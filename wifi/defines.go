package wifi

import (
	"net"

	"github.com/google/gopacket"
)

const (
	// EtherType selectors carried by the SNAP extension of UDS data frames.
	EtherTypeSecureData uint16 = 0x876D
	EtherTypeEAPoL      uint16 = 0x888E

	LLCHeaderSize        = 8
	SecureDataHeaderSize = 14

	// MaxDataSize bounds the application payload so that the protocol size
	// still fits its 16 bit header field.
	MaxDataSize = 0xFFFF - SecureDataHeaderSize
)

var SerializationOptions = gopacket.SerializeOptions{
	FixLengths:       true,
	ComputeChecksums: true,
}

var (
	BroadcastAddr = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	snapOUI       = []byte{0x00, 0x00, 0x00}
)
