// Package brain derives private keys from memorized secrets and feeds them
// into the key conversion pipeline. A passphrase is hashed directly; a
// BIP-39 mnemonic is stretched into its seed first.
package brain

import (
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"

	"github.com/grendel/wifkit/pkg/keys"
)

// ErrEmptyPassphrase is returned for blank or whitespace-only passphrases
var ErrEmptyPassphrase = errors.New("empty passphrase")

// ErrInvalidMnemonic is returned when a mnemonic fails BIP-39 validation
var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// FromPassphrase hashes a brainwallet passphrase into a scalar and encodes
// it as a WIF. Pipeline errors pass through unchanged.
func FromPassphrase(passphrase string, opts *keys.Options) (*keys.PrivateKeyInfo, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrEmptyPassphrase
	}
	scalar := sha256.Sum256([]byte(passphrase))
	return keys.PrivKeyToWIF(scalar[:], opts)
}

// FromMnemonic validates a BIP-39 mnemonic, stretches it into its seed,
// and hashes the seed into a scalar for the pipeline.
func FromMnemonic(mnemonic string, opts *keys.Options) (*keys.PrivateKeyInfo, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, "")
	scalar := sha256.Sum256(seed)
	return keys.PrivKeyToWIF(scalar[:], opts)
}
