package crypto

import (
	"crypto/aes"
	"encoding/binary"
	"errors"
	"fmt"
	"net"

	"github.com/evilsocket/islazy/log"
	"github.com/pion/dtls/v2/pkg/crypto/ccm"
)

const (
	// TagSize is the length of the CCM authentication tag appended to every
	// encrypted frame body.
	TagSize = 8
	// NonceSize is the length of the per-frame CCM nonce.
	NonceSize = 13
	// AADSize is the length of the authenticated 802.11 header fields.
	AADSize = 22

	// Data | Protected | ToDS. The variable frame control bits are masked to
	// zero so that retransmissions still authenticate.
	frameControl = 0x0841
)

// ErrDecryptFailed marks frames whose authentication tag did not verify or
// that were too short to carry one.
var ErrDecryptFailed = errors.New("data frame decryption failed")

// BuildAAD returns the additional authenticated data for an encrypted data
// frame, 22 bytes covering the immutable 802.11 header fields.
func BuildAAD(sender, receiver net.HardwareAddr) []byte {
	aad := make([]byte, AADSize)

	binary.BigEndian.PutUint16(aad[0:2], frameControl)
	copy(aad[2:8], receiver)
	copy(aad[8:14], sender)
	copy(aad[14:20], receiver) // destination, same as the receiver here
	// sequence control stays masked to zero

	return aad
}

// BuildNonce returns the 13 byte CCM nonce for a data frame: a zero priority
// byte, the sender address and a 48 bit packet number of which only the low
// 16 bits carry the sequence number.
func BuildNonce(sender net.HardwareAddr, seq uint16) []byte {
	nonce := make([]byte, NonceSize)

	copy(nonce[1:7], sender)
	binary.BigEndian.PutUint16(nonce[11:13], seq)

	return nonce
}

func newCCM(key []byte) (ccm.CCM, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("could not use the CCMP key: %v", err)
	}

	aead, err := ccm.NewCCM(block, TagSize, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("could not setup CCM: %v", err)
	}

	return aead, nil
}

// Encrypt seals the body of an outgoing data frame, returning the ciphertext
// with the 8 byte authentication tag appended.
func Encrypt(payload, key []byte, sender, receiver net.HardwareAddr, seq uint16) ([]byte, error) {
	aead, err := newCCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload) > aead.MaxLength() {
		return nil, fmt.Errorf("payload of %d bytes exceeds what a single frame can carry", len(payload))
	}

	return aead.Seal(nil, BuildNonce(sender, seq), payload, BuildAAD(sender, receiver)), nil
}

// Decrypt opens the body of a received data frame. The returned error is the
// only failure signal: a zero length plaintext with a nil error is a valid
// empty frame, not a failure.
func Decrypt(encrypted, key []byte, sender, receiver net.HardwareAddr, seq uint16) ([]byte, error) {
	if len(encrypted) < TagSize {
		return nil, fmt.Errorf("%w: %d bytes are too short to carry a tag", ErrDecryptFailed, len(encrypted))
	}

	aead, err := newCCM(key)
	if err != nil {
		return nil, err
	}

	plain, err := aead.Open(nil, BuildNonce(sender, seq), encrypted, BuildAAD(sender, receiver))
	if err != nil {
		log.Debug("failed to decrypt frame from %s (seq %d): %v", sender, seq, err)
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	} else if plain == nil {
		plain = []byte{}
	}

	return plain, nil
}
