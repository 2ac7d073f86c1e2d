// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package waddress_test

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/seed"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestFromPublicKeyMainnet(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")
	key, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.MainNetParams)
	require.NoError(t, err)
	defer key.Zero()

	addr, err := waddress.FromPublicKey(key.PublicKey[:], &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
}

func TestFromPublicKeyTestnetPrefix(t *testing.T) {
	s := seed.MnemonicToSeed(testMnemonic, "")
	key, err := seed.Derive(s, seed.DefaultAccountPath(84, 0), &chaincfg.TestNet3Params)
	require.NoError(t, err)
	defer key.Zero()

	addr, err := waddress.FromPublicKey(key.PublicKey[:], &chaincfg.TestNet3Params)
	require.NoError(t, err)
	require.Contains(t, addr, "tb1q")
}

func TestOutputScriptRoundTrip(t *testing.T) {
	const addr = "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"

	script, err := waddress.OutputScript(addr, &chaincfg.MainNetParams)
	require.NoError(t, err)
	require.Len(t, script, 22)
	require.Equal(t, byte(0x00), script[0])
	require.Equal(t, byte(0x14), script[1])

	decoded, ok := waddress.DecodeScript(script, &chaincfg.MainNetParams)
	require.True(t, ok)
	require.Equal(t, addr, decoded)
}

func TestOutputScriptRejectsWrongNetwork(t *testing.T) {
	const addr = "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"

	_, err := waddress.OutputScript(addr, &chaincfg.TestNet3Params)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrInvalidRecipient))
}

func TestOutputScriptRejectsGarbage(t *testing.T) {
	_, err := waddress.OutputScript("not-an-address", &chaincfg.MainNetParams)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrInvalidRecipient))
}

func TestDecodeScriptNeverErrors(t *testing.T) {
	_, ok := waddress.DecodeScript([]byte{0x6a, 0x00}, &chaincfg.MainNetParams)
	require.False(t, ok)
}

func TestIsOwnAddress(t *testing.T) {
	const addr = "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu"
	script, err := waddress.OutputScript(addr, &chaincfg.MainNetParams)
	require.NoError(t, err)

	require.True(t, waddress.IsOwnAddress(script, addr, &chaincfg.MainNetParams))
	require.False(t, waddress.IsOwnAddress(script, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", &chaincfg.MainNetParams))
}
