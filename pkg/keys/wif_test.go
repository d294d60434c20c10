package keys

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	keyHexA = "0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF0123456789ABCDEF"
	keyHexB = "C0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DEC0DE"
)

func TestPrivKeyToWIFVectors(t *testing.T) {
	tests := []struct {
		name       string
		keyHex     string
		network    Network
		compressed bool
		wantWIF    string
	}{
		{"mainnet_compressed", keyHexA, Mainnet, true,
			"KwFvTne98E1t3mTNAr8pKx67eUzFJWdSNPqPSfxMEtrueW7PcQzL"},
		{"mainnet_uncompressed", keyHexA, Mainnet, false,
			"5HpneLQNKrcznVCQpzodYwAmZ4AoHeyjuRf9iAHAa498rP5kuWb"},
		{"testnet_compressed", keyHexA, Testnet, true,
			"cMcuvhdzZHi9DCvdZFwwhGbBGiHexxj8SRyrZ6Qrk1WuuFC5NyCf"},
		{"testnet_uncompressed", keyHexA, Testnet, false,
			"91bRE5Duv5h8kYhhTLhYRXijCiXWSpWwFNX6nndfuntBdPV2idD"},
		{"second_key_mainnet_compressed", keyHexB, Mainnet, true,
			"L3gdDTy5H5izJvmwjX1C1St7CJ79eWSpAe8sC48XTjkouGwAVmpW"},
		{"second_key_testnet_uncompressed", keyHexB, Testnet, false,
			"933rmigQVomTqo3mS8fMvsPF1M2iJfQuPapeuSjbtAqSdxQcMw1"},
		{"largest_valid_scalar", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD036413F",
			Mainnet, true, "L5oLkpV3aqBjhki6LmvChTCV6odsp4SXM6FfU2Gppt5kEqeonMfk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &Options{Network: tt.network, Compressed: tt.compressed, Case: MixedCase}
			info, err := PrivKeyToWIF([]byte(tt.keyHex), opts)
			require.NoError(t, err)
			require.Equal(t, tt.wantWIF, info.WIF)
			require.Equal(t, tt.keyHex, info.KeyHex)
			require.Equal(t, tt.network, info.Network)
			require.Equal(t, tt.compressed, info.Compressed)
		})
	}
}

func TestWIFCompressedIsOneCharLonger(t *testing.T) {
	for _, network := range []Network{Mainnet, Testnet} {
		comp, err := PrivKeyToWIF([]byte(keyHexA), &Options{Network: network, Compressed: true, Case: MixedCase})
		require.NoError(t, err)
		unc, err := PrivKeyToWIF([]byte(keyHexA), &Options{Network: network, Compressed: false, Case: MixedCase})
		require.NoError(t, err)

		require.Len(t, comp.WIF, 52)
		require.Len(t, unc.WIF, 51)
	}
}

func TestWIFRoundTrip(t *testing.T) {
	scalars := []string{
		keyHexA,
		keyHexB,
		"0000000000000000000000000000000000000000000000000000000000000001",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD036413F",
	}

	for _, keyHex := range scalars {
		for _, network := range []Network{Mainnet, Testnet} {
			for _, compressed := range []bool{true, false} {
				opts := &Options{Network: network, Compressed: compressed, Case: MixedCase}
				encoded, err := PrivKeyToWIF([]byte(keyHex), opts)
				require.NoError(t, err)

				decoded, err := DecodeWIF(encoded.WIF)
				require.NoError(t, err)
				require.Equal(t, keyHex, decoded.KeyHex)
				require.Equal(t, network, decoded.Network)
				require.Equal(t, compressed, decoded.Compressed)
				require.True(t, bytes.Equal(encoded.KeyBytes, decoded.KeyBytes))
			}
		}
	}
}

func TestPrivKeyToWIFRangeCheck(t *testing.T) {
	tests := []struct {
		name   string
		keyHex string
	}{
		{"zero", strings.Repeat("00", 32)},
		{"order_minus_one", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364140"},
		{"order", "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"},
		{"all_ones", strings.Repeat("FF", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, network := range []Network{Mainnet, Testnet} {
				for _, compressed := range []bool{true, false} {
					opts := &Options{Network: network, Compressed: compressed, Case: MixedCase}
					_, err := PrivKeyToWIF([]byte(tt.keyHex), opts)
					require.ErrorIs(t, err, ErrScalarOutOfRange)
				}
			}
		})
	}
}

func TestDecodeWIFErrors(t *testing.T) {
	tests := []struct {
		name    string
		wif     string
		wantErr error
	}{
		// Characters outside the base58 alphabet.
		{"disallowed_characters", "10Ol0Ol0Ol0Ol0Ol0Ol0OOlIIIIIII0OlI", ErrBase58Character},
		{"whitespace", "KwFvTne98E1t3mTNAr8pKx67 eUzFJWdSNPqPSfxMEtrueW7PcQzL", ErrBase58Character},
		// Last character flipped on an otherwise valid WIF.
		{"bad_checksum", "KwFvTne98E1t3mTNAr8pKx67eUzFJWdSNPqPSfxMEtrueW7PcQz2", ErrChecksum},
		// A p2pkh address: valid checksum, version byte 0x00.
		{"address_not_wif", "1CLrrRUwXswyF2EVAtuXyqdk4qb8DSUHCX", ErrWIFVersion},
		// Valid envelope, 31-byte payload.
		{"short_payload", "yNhhdZwDt7oArSF1TEjig1QEcA1yLUosr624tVatSdjXWRRMe", ErrWIFPayloadLength},
		// Valid envelope, 33-byte payload whose trailer is 0x02.
		{"wrong_trailer", "KwFvTne98E1t3mTNAr8pKx67eUzFJWdSNPqPSfxMEtrueWG5b2HF", ErrWIFPayloadLength},
		// Valid envelope, 34-byte payload.
		{"long_payload", "2SaUryESvrtStKDDNSTsVte9aLSXg8HmpyRna4JwJLKuHNXUQEh1Je", ErrWIFPayloadLength},
		{"empty", "", ErrWIFPayloadLength},
		{"too_short_for_checksum", "11", ErrWIFPayloadLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWIF(tt.wif)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeWIFDoesNotRangeCheck(t *testing.T) {
	// A WIF wrapping the order-minus-one scalar decodes fine even though
	// the encode path would reject that scalar.
	rejected := "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364140"
	_, err := PrivKeyToWIF([]byte(rejected), nil)
	require.ErrorIs(t, err, ErrScalarOutOfRange)

	wif := encodeWIF(mustHex(t, rejected), Mainnet, true).WIF
	decoded, err := DecodeWIF(wif)
	require.NoError(t, err)
	require.Equal(t, rejected, decoded.KeyHex)
}
