package keys

import (
	"encoding/hex"
	"strings"
)

const (
	rawKeyLen = 32
	hexKeyLen = 64
)

// normalizePrivKey accepts private key input as either a raw 32-byte
// scalar or 64 hex characters and returns the scalar. Hex input is
// case-checked against the requested policy before it is decoded.
func normalizePrivKey(input []byte, hexCase HexCase) ([]byte, error) {
	switch {
	case len(input) == rawKeyLen:
		scalar := make([]byte, rawKeyLen)
		copy(scalar, input)
		return scalar, nil
	case len(input) == hexKeyLen && isHexKey(input):
		if err := checkHexCase(input, hexCase); err != nil {
			return nil, err
		}
		scalar := make([]byte, rawKeyLen)
		if _, err := hex.Decode(scalar, input); err != nil {
			return nil, ErrPrivKeyLength
		}
		return scalar, nil
	default:
		return nil, ErrPrivKeyLength
	}
}

// isHexKey returns true if every byte is a hexadecimal digit
func isHexKey(input []byte) bool {
	for _, c := range input {
		if !strings.ContainsRune("0123456789abcdefABCDEF", rune(c)) {
			return false
		}
	}
	return true
}

// checkHexCase enforces the requested letter case on already-validated hex
// input. Decimal digits satisfy any policy.
func checkHexCase(input []byte, hexCase HexCase) error {
	for _, c := range input {
		switch {
		case hexCase == UpperCase && c >= 'a' && c <= 'f':
			return ErrHexCase
		case hexCase == LowerCase && c >= 'A' && c <= 'F':
			return ErrHexCase
		}
	}
	return nil
}

// hexUpper renders bytes as the uppercase hex form used everywhere in
// results
func hexUpper(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
