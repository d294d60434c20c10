package keys

// keys.go - Shared definitions for the key conversion pipeline
// This file defines the enumerations, option set, and result types used
// across the package

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network identifies the chain a key or address belongs to
type Network string

// Supported networks
const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// HexCase controls which character case is accepted for hex-encoded
// private key input
type HexCase string

// Supported case policies; MixedCase accepts anything
const (
	MixedCase HexCase = "mixed"
	UpperCase HexCase = "upper"
	LowerCase HexCase = "lower"
)

// AddressType selects the address encoding derived from a public key
type AddressType string

// Supported address types
const (
	P2PKH AddressType = "p2pkh"
)

// Base58Alphabet defines the standard Base58 alphabet used by most cryptocurrencies
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Version bytes come from the btcd chain parameters so they stay in step
// with the networks they name.
var (
	mainNetWIFID  = chaincfg.MainNetParams.PrivateKeyID
	testNetWIFID  = chaincfg.TestNet3Params.PrivateKeyID
	mainNetAddrID = chaincfg.MainNetParams.PubKeyHashAddrID
	testNetAddrID = chaincfg.TestNet3Params.PubKeyHashAddrID
)

// wifVersion returns the WIF envelope version byte for the network
func (n Network) wifVersion() byte {
	if n == Testnet {
		return testNetWIFID
	}
	return mainNetWIFID
}

// p2pkhVersion returns the pay-to-pubkey-hash version byte for the network
func (n Network) p2pkhVersion() byte {
	if n == Testnet {
		return testNetAddrID
	}
	return mainNetAddrID
}

// Options carries the knobs recognized by the conversion operations.
// Network, Compressed, and Case apply on the encode path only; decoding a
// WIF recovers network and compression from the string itself.
type Options struct {
	Network     Network
	Compressed  bool
	Case        HexCase
	AddressType AddressType
}

// DefaultOptions returns the option set used when the caller passes nil:
// mainnet, compressed keys, any hex case, p2pkh addresses
func DefaultOptions() *Options {
	return &Options{
		Network:     Mainnet,
		Compressed:  true,
		Case:        MixedCase,
		AddressType: P2PKH,
	}
}

// PrivateKeyInfo is the result of encoding or decoding a private key
type PrivateKeyInfo struct {
	WIF        string  // wallet import format string
	KeyBytes   []byte  // 32-byte scalar
	KeyHex     string  // uppercase hex of KeyBytes
	Network    Network // network signaled by the WIF version byte
	Compressed bool    // whether the derived public key is compressed
}

// PublicKeyInfo is a serialized elliptic-curve point
type PublicKeyInfo struct {
	Bytes []byte // 33 bytes compressed, 65 bytes uncompressed
	Hex   string // uppercase hex of Bytes
}

// AddressInfo is a derived account address
type AddressInfo struct {
	Address string
	Type    AddressType
}

// ParseHexCase converts a user-supplied string into a HexCase value
func ParseHexCase(s string) (HexCase, error) {
	switch HexCase(s) {
	case MixedCase, UpperCase, LowerCase:
		return HexCase(s), nil
	default:
		return "", fmt.Errorf("unknown hex case %q (want mixed, upper, or lower)", s)
	}
}
