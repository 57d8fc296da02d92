package wifi

import (
	"encoding/binary"
	"fmt"
)

// SecureDataHeader is the sub-header that follows the LLC header in every
// data frame. The two bytes after ProtocolSize are reserved and always zero;
// the first 4 bytes of the structure seem to belong to an outer container
// protocol, which is why SecureDataSize does not count them.
type SecureDataHeader struct {
	ProtocolSize   uint16
	SecureDataSize uint16
	IsManagement   uint8
	DataChannel    uint8
	SequenceNumber uint16
	DestNodeID     uint16
	SrcNodeID      uint16
}

// ActualDataSize returns the number of application payload bytes following
// the header.
func (h *SecureDataHeader) ActualDataSize() int {
	return int(h.ProtocolSize) - SecureDataHeaderSize
}

// BuildSecureDataHeader returns the header bytes for a data frame carrying
// dataSize bytes of application payload on the given channel. The sequence
// number must be unique per (sender, destination, channel) for the lifetime
// of the network key, which is the caller's contract.
func BuildSecureDataHeader(dataSize int, channel uint8, destNode, srcNode, seq uint16) (error, []byte) {
	if dataSize < 0 || dataSize > MaxDataSize {
		return fmt.Errorf("data size %d exceeds the %d bytes a secure data frame can carry", dataSize, MaxDataSize), nil
	}

	protoSize := uint16(dataSize + SecureDataHeaderSize)

	hdr := make([]byte, SecureDataHeaderSize)
	binary.BigEndian.PutUint16(hdr[0:2], protoSize)
	// hdr[2:4] reserved, left zero
	binary.BigEndian.PutUint16(hdr[4:6], protoSize-4)
	hdr[6] = 0 // application frames are never management frames
	hdr[7] = channel
	binary.BigEndian.PutUint16(hdr[8:10], seq)
	binary.BigEndian.PutUint16(hdr[10:12], destNode)
	binary.BigEndian.PutUint16(hdr[12:14], srcNode)

	return nil, hdr
}

// ParseSecureDataHeader decodes the header of a received data frame.
func ParseSecureDataHeader(buf []byte) (error, *SecureDataHeader) {
	if len(buf) < SecureDataHeaderSize {
		return fmt.Errorf("%d bytes are too short for a secure data header", len(buf)), nil
	}

	return nil, &SecureDataHeader{
		ProtocolSize:   binary.BigEndian.Uint16(buf[0:2]),
		SecureDataSize: binary.BigEndian.Uint16(buf[4:6]),
		IsManagement:   buf[6],
		DataChannel:    buf[7],
		SequenceNumber: binary.BigEndian.Uint16(buf[8:10]),
		DestNodeID:     binary.BigEndian.Uint16(buf[10:12]),
		SrcNodeID:      binary.BigEndian.Uint16(buf[12:14]),
	}
}
