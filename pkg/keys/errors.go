package keys

import "errors"

// Every failure in the pipeline is a deterministic validation error and is
// reported through one of these sentinels. Composed operations return the
// sentinel from the failing stage unchanged, so callers can branch with
// errors.Is no matter how deep the failure happened.
var (
	// ErrPrivKeyLength is returned when private key input is neither 32
	// raw bytes nor 64 hex characters.
	ErrPrivKeyLength = errors.New("private key must be 32 bytes or 64 hex characters")

	// ErrHexCase is returned when hex input is valid but violates the
	// requested character case.
	ErrHexCase = errors.New("hex private key does not match requested character case")

	// ErrScalarOutOfRange is returned when a scalar falls outside the
	// valid secp256k1 key range.
	ErrScalarOutOfRange = errors.New("private key scalar out of curve range")

	// ErrBase58Character is returned when a WIF string contains a
	// character outside the base58 alphabet.
	ErrBase58Character = errors.New("invalid base58 character")

	// ErrChecksum is returned when the base58check checksum does not
	// match the decoded payload.
	ErrChecksum = errors.New("WIF checksum mismatch")

	// ErrWIFVersion is returned when a base58check string decodes
	// cleanly but its version byte is not a WIF variant.
	ErrWIFVersion = errors.New("version byte is not a WIF prefix")

	// ErrWIFPayloadLength is returned when a decoded WIF payload is
	// neither a bare 32-byte key nor a 33-byte key with the compression
	// trailer.
	ErrWIFPayloadLength = errors.New("unexpected WIF payload length")

	// ErrPubKeyScalarLength is returned when public key derivation is
	// handed a scalar that is not exactly 32 bytes.
	ErrPubKeyScalarLength = errors.New("scalar for public key derivation must be 32 bytes")

	// ErrUnknownAddressType is returned when an address type outside the
	// supported set is requested.
	ErrUnknownAddressType = errors.New("unknown address type")
)
