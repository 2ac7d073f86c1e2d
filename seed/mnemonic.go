// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package seed derives an Account's key material from a BIP-39 mnemonic
// or raw seed bytes, walking a BIP-32 path to a BIP-84 (or BIP-44)
// account leaf.
package seed

import (
	"github.com/tyler-smith/go-bip39"
)

// ValidMnemonic reports whether s conforms to BIP-39: a word count of
// 12, 15, 18, 21 or 24, every word present in the English wordlist, and a
// correct checksum. It never returns an error; malformed input simply
// yields false.
func ValidMnemonic(s string) bool {
	return bip39.IsMnemonicValid(s)
}

// RandomMnemonic returns a fresh 12-word BIP-39 mnemonic sampled from a
// cryptographically secure entropy source (crypto/rand, via bip39.NewEntropy).
func RandomMnemonic() (string, error) {
	// 128 bits of entropy yields a 12-word mnemonic.
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// MnemonicToSeed derives the 64-byte seed from a mnemonic and optional
// passphrase via PBKDF2-HMAC-SHA512 with 2048 iterations and salt
// "mnemonic"||passphrase, per BIP-39. The mnemonic is not validated here;
// callers that need to reject malformed mnemonics should call
// ValidMnemonic first.
func MnemonicToSeed(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}
