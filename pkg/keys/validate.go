package keys

import "math/big"

// Upper bound for a usable scalar: the secp256k1 group order minus one.
// Both bounds are themselves rejected, so the valid domain is
// 0 < scalar < n-1.
var scalarUpperBound, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364140", 16)

// validateScalar range-checks a 32-byte scalar against the curve bounds.
// It runs on the encode path only; decoding an already-issued WIF does not
// re-check the recovered scalar.
func validateScalar(scalar []byte) error {
	v := new(big.Int).SetBytes(scalar)
	if v.Sign() == 0 || v.Cmp(scalarUpperBound) >= 0 {
		return ErrScalarOutOfRange
	}
	return nil
}
