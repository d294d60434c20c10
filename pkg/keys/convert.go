package keys

// convert.go - End-to-end conversions composed from the pipeline stages.
// Each operation stops at the first failing stage and returns that stage's
// sentinel unchanged.

// PrivKeyToWIF turns raw or hex private key input into a WIF string. The
// range check always runs before the envelope is built, so an out-of-range
// scalar fails the same way whatever the other options say. A nil opts
// means DefaultOptions.
func PrivKeyToWIF(key []byte, opts *Options) (*PrivateKeyInfo, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	scalar, err := normalizePrivKey(key, opts.Case)
	if err != nil {
		return nil, err
	}
	if err := validateScalar(scalar); err != nil {
		return nil, err
	}
	return encodeWIF(scalar, opts.Network, opts.Compressed), nil
}

// WIFToPrivKey recovers the scalar and its metadata from a WIF string
func WIFToPrivKey(wif string) (*PrivateKeyInfo, error) {
	return DecodeWIF(wif)
}

// WIFToPubKey decodes a WIF and derives its public key. The compression
// mode comes from the WIF itself; callers cannot override it.
func WIFToPubKey(wif string) (*PublicKeyInfo, error) {
	info, err := DecodeWIF(wif)
	if err != nil {
		return nil, err
	}
	return DerivePubKey(info.KeyBytes, info.Compressed)
}

// WIFToAddress decodes a WIF, derives its public key, and hashes it into
// an address on the network the WIF was issued for.
func WIFToAddress(wif string, opts *Options) (*AddressInfo, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	info, err := DecodeWIF(wif)
	if err != nil {
		return nil, err
	}
	pubKey, err := DerivePubKey(info.KeyBytes, info.Compressed)
	if err != nil {
		return nil, err
	}
	return DeriveAddress(pubKey.Bytes, info.Network, opts.AddressType)
}
