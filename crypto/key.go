package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/udslab/udswire/wifi"
)

// DataCryptoKeySlot is the hardware AES keyslot reserved for data frame
// crypto.
const DataCryptoKeySlot = 0x2d

// NormalKeyProvider returns the 16 byte normal key stored in a hardware AES
// keyslot. It is injected by the embedder; a lookup failure means no valid
// CCMP key can ever be derived for this feature.
type NormalKeyProvider func(slot int) ([]byte, error)

// dataCryptoCTR computes the initial counter block for the CCMP key
// derivation: the MD5 of the session identifiers packed without padding.
// The layout is part of the over-the-air compatible format and must not
// change.
func dataCryptoCTR(info wifi.NetworkInfo) [md5.Size]byte {
	var packed [14]byte

	copy(packed[0:6], info.HostMAC)
	binary.LittleEndian.PutUint32(packed[6:10], info.WlanCommID)
	binary.LittleEndian.PutUint16(packed[10:12], info.ID)
	binary.LittleEndian.PutUint16(packed[12:14], info.NetworkID)

	return md5.Sum(packed[:])
}

// DeriveCCMPKey derives the per-network key that protects data frames: the
// MD5 of the passphrase encrypted with AES-CTR, keyed with the hardware slot
// key and seeded with the session hash. Deterministic in all of its inputs.
func DeriveCCMPKey(passphrase []byte, info wifi.NetworkInfo, getKey NormalKeyProvider) ([]byte, error) {
	hwKey, err := getKey(DataCryptoKeySlot)
	if err != nil {
		return nil, fmt.Errorf("could not read keyslot 0x%02x: %v", DataCryptoKeySlot, err)
	}

	block, err := aes.NewCipher(hwKey)
	if err != nil {
		return nil, fmt.Errorf("could not use the slot key: %v", err)
	}

	passHash := md5.Sum(passphrase)
	ctr := dataCryptoCTR(info)

	ccmpKey := make([]byte, len(passHash))
	cipher.NewCTR(block, ctr[:]).XORKeyStream(ccmpKey, passHash[:])

	return ccmpKey, nil
}
