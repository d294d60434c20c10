package keys

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// compressedTrailer is appended to the scalar inside the checksum envelope
// to signal that the derived public key should be compressed. Its presence
// is recovered from the payload length on decode.
const compressedTrailer = 0x01

// encodeWIF wraps an already-validated scalar in a base58check envelope.
// The version byte carries the network; a 33-byte payload ending in the
// trailer carries compression.
func encodeWIF(scalar []byte, network Network, compressed bool) *PrivateKeyInfo {
	payload := make([]byte, 0, rawKeyLen+1)
	payload = append(payload, scalar...)
	if compressed {
		payload = append(payload, compressedTrailer)
	}
	return &PrivateKeyInfo{
		WIF:        base58.CheckEncode(payload, network.wifVersion()),
		KeyBytes:   scalar,
		KeyHex:     hexUpper(scalar),
		Network:    network,
		Compressed: compressed,
	}
}

// DecodeWIF parses a wallet import format string back into the scalar and
// the network/compression metadata it carries. The recovered scalar is not
// range-checked: an issued WIF is taken at its word.
func DecodeWIF(wif string) (*PrivateKeyInfo, error) {
	// base58.Decode collapses a bad character and a truncated string into
	// the same failure, so scan the alphabet up front to keep them apart.
	for i := 0; i < len(wif); i++ {
		if strings.IndexByte(Base58Alphabet, wif[i]) < 0 {
			return nil, ErrBase58Character
		}
	}

	payload, version, err := base58.CheckDecode(wif)
	if err != nil {
		if errors.Is(err, base58.ErrInvalidFormat) {
			// Too short to hold a version byte and checksum.
			return nil, ErrWIFPayloadLength
		}
		return nil, ErrChecksum
	}

	var network Network
	switch version {
	case mainNetWIFID:
		network = Mainnet
	case testNetWIFID:
		network = Testnet
	default:
		return nil, ErrWIFVersion
	}

	compressed := false
	switch {
	case len(payload) == rawKeyLen:
	case len(payload) == rawKeyLen+1 && payload[rawKeyLen] == compressedTrailer:
		compressed = true
		payload = payload[:rawKeyLen]
	default:
		return nil, ErrWIFPayloadLength
	}

	scalar := make([]byte, rawKeyLen)
	copy(scalar, payload)

	return &PrivateKeyInfo{
		WIF:        wif,
		KeyBytes:   scalar,
		KeyHex:     hexUpper(scalar),
		Network:    network,
		Compressed: compressed,
	}, nil
}
