package wifi

import (
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// AssemblePayload builds the cleartext body of a data frame: LLC header,
// secure data header and the application payload, in that order and with no
// padding in between.
func AssemblePayload(data []byte, channel uint8, destNode, srcNode, seq uint16) (error, []byte) {
	err, llc := BuildLLCHeader(EtherTypeSecureData)
	if err != nil {
		return err, nil
	}

	err, header := BuildSecureDataHeader(len(data), channel, destNode, srcNode, seq)
	if err != nil {
		return err, nil
	}

	payload := make([]byte, 0, len(llc)+len(header)+len(data))
	payload = append(payload, llc...)
	payload = append(payload, header...)
	payload = append(payload, data...)

	return nil, payload
}

// ParsePayload is the receive side of AssemblePayload: it strips the LLC and
// secure data headers off a decrypted frame body and returns the header
// fields together with the application payload.
func ParsePayload(buf []byte) (error, *SecureDataHeader, []byte) {
	pkt := gopacket.NewPacket(buf, layers.LayerTypeLLC, gopacket.Lazy)

	if pkt.Layer(layers.LayerTypeLLC) == nil {
		return fmt.Errorf("frame of %d bytes does not start with an LLC header", len(buf)), nil, nil
	}

	snap, ok := pkt.Layer(layers.LayerTypeSNAP).(*layers.SNAP)
	if !ok {
		return fmt.Errorf("LLC header carries no SNAP extension"), nil, nil
	} else if uint16(snap.Type) != EtherTypeSecureData {
		return fmt.Errorf("unexpected ethertype 0x%04x", uint16(snap.Type)), nil, nil
	}

	err, header := ParseSecureDataHeader(snap.Payload)
	if err != nil {
		return err, nil, nil
	}

	data := snap.Payload[SecureDataHeaderSize:]
	if want := header.ActualDataSize(); want != len(data) {
		return fmt.Errorf("secure data header announces %d payload bytes, frame carries %d", want, len(data)), nil, nil
	}

	return nil, header, data
}
