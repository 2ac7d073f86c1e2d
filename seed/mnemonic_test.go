// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/seed"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestValidMnemonic(t *testing.T) {
	require.True(t, seed.ValidMnemonic(testMnemonic))
	require.False(t, seed.ValidMnemonic("not a real mnemonic at all"))
	require.False(t, seed.ValidMnemonic(""))

	// Same words, mangled checksum word.
	words := strings.Fields(testMnemonic)
	words[len(words)-1] = "zoo"
	require.False(t, seed.ValidMnemonic(strings.Join(words, " ")))
}

func TestRandomMnemonicIsValid(t *testing.T) {
	m, err := seed.RandomMnemonic()
	require.NoError(t, err)
	require.True(t, seed.ValidMnemonic(m))
	require.Len(t, strings.Fields(m), 12)
}

func TestRandomMnemonicIsRandom(t *testing.T) {
	a, err := seed.RandomMnemonic()
	require.NoError(t, err)
	b, err := seed.RandomMnemonic()
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestMnemonicToSeedVector(t *testing.T) {
	// Seed of the "abandon...about" BIP-39 mnemonic with an empty
	// passphrase.
	want := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc" +
		"19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

	got := seed.MnemonicToSeed(testMnemonic, "")
	require.Equal(t, want, hex.EncodeToString(got))
	require.Len(t, got, 64)
}

func TestMnemonicToSeedWithPassphrase(t *testing.T) {
	withPassphrase := seed.MnemonicToSeed(testMnemonic, "TREZOR")
	withoutPassphrase := seed.MnemonicToSeed(testMnemonic, "")
	require.NotEqual(t, withPassphrase, withoutPassphrase)
}
