package main

import (
	"flag"
	"log"
	"os"

	"github.com/grendel/wifkit/internal/cli"
	"github.com/grendel/wifkit/pkg/brain"
	"github.com/grendel/wifkit/pkg/keys"
	"github.com/grendel/wifkit/pkg/ui"
)

func main() {
	// Define command line flags
	keyHex := flag.String("key", "", "Private key as 64 hex characters")
	wif := flag.String("wif", "", "WIF string to decode")
	phrase := flag.String("phrase", "", "Brainwallet passphrase")
	mnemonic := flag.String("mnemonic", "", "BIP-39 mnemonic phrase")
	testnet := flag.Bool("testnet", false, "Encode for testnet instead of mainnet")
	uncompressed := flag.Bool("uncompressed", false, "Encode with an uncompressed public key")
	hexCase := flag.String("case", "mixed", "Hex case policy: mixed, upper, or lower")
	help := flag.Bool("help", false, "Display help information")

	// Parse the flags
	flag.Parse()

	// Initialize color scheme for consistent formatting
	cs := ui.DefaultColorScheme()

	// Check if no arguments or help flag is provided
	if len(os.Args) == 1 || *help {
		cli.DisplayHelp(cs)
		return
	}

	inputs := 0
	for _, s := range []string{*keyHex, *wif, *phrase, *mnemonic} {
		if s != "" {
			inputs++
		}
	}
	if inputs != 1 {
		log.Fatalf("Exactly one of -key, -wif, -phrase, or -mnemonic is required")
	}

	opts := keys.DefaultOptions()
	if *testnet {
		opts.Network = keys.Testnet
	}
	opts.Compressed = !*uncompressed

	parsedCase, err := keys.ParseHexCase(*hexCase)
	if err != nil {
		log.Fatalf("Bad -case value: %v", err)
	}
	opts.Case = parsedCase

	// Print application header
	ui.PrintHeader(cs, "wifkit - secp256k1 private key conversion")

	// Resolve the input into a private key
	var info *keys.PrivateKeyInfo
	switch {
	case *wif != "":
		info, err = keys.WIFToPrivKey(*wif)
	case *phrase != "":
		info, err = brain.FromPassphrase(*phrase, opts)
	case *mnemonic != "":
		info, err = brain.FromMnemonic(*mnemonic, opts)
	default:
		info, err = keys.PrivKeyToWIF([]byte(*keyHex), opts)
	}
	if err != nil {
		cs.Error.Printf("Conversion failed: %v\n", err)
		os.Exit(1)
	}

	// Derive the public side with the compression mode the key carries
	pubKey, err := keys.DerivePubKey(info.KeyBytes, info.Compressed)
	if err != nil {
		log.Fatalf("Public key derivation failed: %v", err)
	}
	addr, err := keys.DeriveAddress(pubKey.Bytes, info.Network, opts.AddressType)
	if err != nil {
		log.Fatalf("Address derivation failed: %v", err)
	}

	ui.PrintField(cs, "WIF:", info.WIF)
	ui.PrintField(cs, "Private key:", info.KeyHex)
	ui.PrintField(cs, "Network:", string(info.Network))
	compressed := "compressed"
	if !info.Compressed {
		compressed = "uncompressed"
	}
	ui.PrintField(cs, "Public key:", pubKey.Hex+" ("+compressed+")")
	ui.PrintField(cs, "Address:", addr.Address)

	ui.PrintFooter(cs, "Conversion complete")
}
