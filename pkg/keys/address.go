package keys

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// DeriveAddress hashes a serialized public key into an account address.
// The address type set is closed; anything outside it fails before any
// hashing happens.
func DeriveAddress(pubKey []byte, network Network, addrType AddressType) (*AddressInfo, error) {
	switch addrType {
	case P2PKH:
	default:
		return nil, ErrUnknownAddressType
	}

	return &AddressInfo{
		Address: base58.CheckEncode(hash160(pubKey), network.p2pkhVersion()),
		Type:    addrType,
	}, nil
}

// hash160 computes RIPEMD160(SHA256(data))
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return ripe.Sum(nil)
}
