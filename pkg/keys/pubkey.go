package keys

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// DerivePubKey multiplies the scalar onto the secp256k1 generator and
// serializes the resulting point. Compressed output is 33 bytes (parity
// tag 0x02/0x03 plus x); uncompressed is 65 bytes (0x04 plus x plus y).
func DerivePubKey(scalar []byte, compressed bool) (*PublicKeyInfo, error) {
	if len(scalar) != rawKeyLen {
		return nil, ErrPubKeyScalarLength
	}

	_, pubKey := btcec.PrivKeyFromBytes(scalar)

	var serialized []byte
	if compressed {
		serialized = pubKey.SerializeCompressed()
	} else {
		serialized = pubKey.SerializeUncompressed()
	}

	return &PublicKeyInfo{
		Bytes: serialized,
		Hex:   hexUpper(serialized),
	}, nil
}
