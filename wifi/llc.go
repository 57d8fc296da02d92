package wifi

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

func Serialize(stack ...gopacket.SerializableLayer) (error, []byte) {
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, SerializationOptions, stack...); err != nil {
		return err, nil
	}
	return nil, buf.Bytes()
}

// BuildLLCHeader returns the SNAP enabled 802.2 LLC header for the specified
// protocol selector, 8 bytes total.
func BuildLLCHeader(protocol uint16) (error, []byte) {
	return Serialize(
		&layers.LLC{
			DSAP:    0xaa,
			SSAP:    0xaa,
			Control: 0x03,
		},
		&layers.SNAP{
			OrganizationalCode: snapOUI,
			Type:               layers.EthernetType(protocol),
		})
}
