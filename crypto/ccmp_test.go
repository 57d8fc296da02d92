package crypto

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testKey      = []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	testSender   = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	testReceiver = net.HardwareAddr{0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb}
)

func TestBuildAAD(t *testing.T) {
	aad := BuildAAD(testSender, testReceiver)

	require.Len(t, aad, AADSize)
	require.Equal(t, []byte{
		0x08, 0x41, // frame control: Data | Protected | ToDS
		0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, // receiver
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, // transmitter
		0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, // destination
		0x00, 0x00, // sequence control
	}, aad)

	// pure function, identical inputs produce identical bytes
	require.Equal(t, aad, BuildAAD(testSender, testReceiver))
}

func TestBuildNonce(t *testing.T) {
	nonce := BuildNonce(testSender, 0xbeef)

	require.Len(t, nonce, NonceSize)
	require.Equal(t, []byte{
		0x00,                               // priority
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, // sender
		0x00, 0x00, 0x00, 0x00, 0xbe, 0xef, // packet number
	}, nonce)

	require.Equal(t, nonce, BuildNonce(testSender, 0xbeef))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{name: "empty", size: 0},
		{name: "single byte", size: 1},
		{name: "one block", size: 16},
		{name: "unaligned", size: 45},
		{name: "large", size: 1372},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := bytes.Repeat([]byte{0x5a}, tt.size)

			sealed, err := Encrypt(payload, testKey, testSender, testReceiver, 100)
			require.NoError(t, err)
			require.Len(t, sealed, tt.size+TagSize)

			plain, err := Decrypt(sealed, testKey, testSender, testReceiver, 100)
			require.NoError(t, err)
			require.NotNil(t, plain)
			require.Equal(t, payload, plain)
		})
	}
}

func TestDecryptTamper(t *testing.T) {
	payload := []byte("secret frame body")

	sealed, err := Encrypt(payload, testKey, testSender, testReceiver, 1)
	require.NoError(t, err)

	for i := 0; i < len(sealed)*8; i++ {
		tampered := make([]byte, len(sealed))
		copy(tampered, sealed)
		tampered[i/8] ^= 1 << (i % 8)

		plain, err := Decrypt(tampered, testKey, testSender, testReceiver, 1)
		require.Error(t, err, "bit %d", i)
		require.True(t, errors.Is(err, ErrDecryptFailed), "bit %d", i)
		require.Nil(t, plain, "bit %d", i)
	}
}

func TestDecryptWrongContext(t *testing.T) {
	payload := []byte("secret frame body")

	sealed, err := Encrypt(payload, testKey, testSender, testReceiver, 1)
	require.NoError(t, err)

	otherKey := bytes.Repeat([]byte{0xff}, 16)
	otherMAC := net.HardwareAddr{0x0c, 0x0a, 0x0f, 0x0f, 0x0e, 0x0e}

	tests := []struct {
		name     string
		key      []byte
		sender   net.HardwareAddr
		receiver net.HardwareAddr
		seq      uint16
	}{
		{name: "wrong key", key: otherKey, sender: testSender, receiver: testReceiver, seq: 1},
		{name: "wrong sender", key: testKey, sender: otherMAC, receiver: testReceiver, seq: 1},
		{name: "wrong receiver", key: testKey, sender: testSender, receiver: otherMAC, seq: 1},
		{name: "wrong sequence number", key: testKey, sender: testSender, receiver: testReceiver, seq: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, err := Decrypt(sealed, tt.key, tt.sender, tt.receiver, tt.seq)
			require.True(t, errors.Is(err, ErrDecryptFailed))
			require.Nil(t, plain)
		})
	}
}

func TestDecryptShortInput(t *testing.T) {
	for size := 0; size < TagSize; size++ {
		plain, err := Decrypt(make([]byte, size), testKey, testSender, testReceiver, 0)
		require.True(t, errors.Is(err, ErrDecryptFailed), "size %d", size)
		require.Nil(t, plain, "size %d", size)
	}
}

func TestEncryptEmptyPayload(t *testing.T) {
	sealed, err := Encrypt(nil, testKey, testSender, testReceiver, 0)
	require.NoError(t, err)
	require.Len(t, sealed, TagSize)

	// an empty frame decrypts to an empty payload with no error, which is
	// the only way to tell it apart from a failed decryption
	plain, err := Decrypt(sealed, testKey, testSender, testReceiver, 0)
	require.NoError(t, err)
	require.NotNil(t, plain)
	require.Empty(t, plain)
}
