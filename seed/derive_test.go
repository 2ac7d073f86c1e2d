// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/seed"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

func TestDeriveAccountZeroAddress(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")

	key, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.MainNetParams)
	require.NoError(t, err)
	defer key.Zero()

	addr, err := waddress.FromPublicKey(key.PublicKey[:], &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
}

func TestDeriveIndexTracksPathTail(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")

	key, err := seed.Derive(s, seed.BuildAccountPath(84, "0'/0/1"), &chaincfg.MainNetParams)
	require.NoError(t, err)
	defer key.Zero()

	require.Equal(t, uint32(1), key.Index)
}

func TestDeriveIsDeterministic(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")

	a, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.MainNetParams)
	require.NoError(t, err)
	defer a.Zero()

	b, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.MainNetParams)
	require.NoError(t, err)
	defer b.Zero()

	require.Equal(t, a.PrivateKey, b.PrivateKey)
	require.Equal(t, a.PublicKey, b.PublicKey)
}

func TestDeriveRejectsMalformedPath(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")

	_, err := seed.Derive(s, "not-a-path", &chaincfg.MainNetParams)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrInvalidPath))
}

func TestZeroWipesPrivateMaterial(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")

	key, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.MainNetParams)
	require.NoError(t, err)

	key.Zero()

	var zero [32]byte
	require.Equal(t, zero, key.PrivateKey)
	require.Equal(t, zero, key.ChainCode)
}
