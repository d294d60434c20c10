package cli

import (
	"fmt"

	"github.com/grendel/wifkit/pkg/ui"
)

// DisplayHelp shows usage information for the application
func DisplayHelp(cs *ui.ColorScheme) {
	ui.PrintHeader(cs, "wifkit - secp256k1 private key conversion")

	ui.PrintSectionHeader(cs, "USAGE:")
	cs.Normal.Println("  wifkit [options]")
	fmt.Println()

	ui.PrintSectionHeader(cs, "OPTIONS:")
	ui.PrintOption(cs, "-key          ", "Private key as 64 hex characters; prints WIF, public key, and address")
	ui.PrintOption(cs, "-wif          ", "WIF string to decode; prints key, public key, and address")
	ui.PrintOption(cs, "-phrase       ", "Brainwallet passphrase to hash into a key")
	ui.PrintOption(cs, "-mnemonic     ", "BIP-39 mnemonic to stretch into a key")
	ui.PrintOption(cs, "-testnet      ", "Encode for testnet instead of mainnet")
	ui.PrintOption(cs, "-uncompressed ", "Encode with an uncompressed public key")
	ui.PrintOption(cs, "-case         ", "Hex case policy: mixed, upper, or lower (default: mixed)")
	ui.PrintOption(cs, "-help         ", "Display help information")
	fmt.Println()

	ui.PrintSectionHeader(cs, "EXAMPLES:")
	ui.PrintExample(cs, "wifkit -key 0123...cdef          ", "Encode a hex key as a mainnet WIF")
	ui.PrintExample(cs, "wifkit -key 0123...cdef -testnet ", "Encode for testnet")
	ui.PrintExample(cs, "wifkit -wif KwFvT...cQzL         ", "Decode a WIF back to its key")
	ui.PrintExample(cs, "wifkit -phrase 'secret words'    ", "Derive a brainwallet key")
	fmt.Println()

	ui.PrintSectionHeader(cs, "DESCRIPTION:")
	cs.Normal.Println("")
	cs.Normal.Println("  wifkit converts between representations of a secp256k1 private key:")
	cs.Normal.Println("")
	cs.Normal.Println("  • raw scalar bytes and uppercase hex")
	cs.Normal.Println("  • checksummed wallet import format (WIF) strings")
	cs.Normal.Println("  • compressed and uncompressed public key encodings")
	cs.Normal.Println("  • pay-to-pubkey-hash addresses")
	fmt.Println()
	cs.Normal.Println("  Network and compression travel inside the WIF itself, so decoding")
	cs.Normal.Println("  recovers them without extra flags.")
	cs.Normal.Println("")
}
