// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/wallet"
	"github.com/btcsuite/electrumwallet/walleterr"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func newTestManager(t *testing.T) *wallet.Manager {
	t.Helper()
	client := &electrum.Mock{}
	m, err := wallet.NewManagerFromMnemonic(testMnemonic, "", wallet.DefaultConfig(), client)
	require.NoError(t, err)
	return m
}

func TestNewManagerFromMnemonicRejectsInvalid(t *testing.T) {
	client := &electrum.Mock{}
	_, err := wallet.NewManagerFromMnemonic("definitely not a mnemonic", "", wallet.DefaultConfig(), client)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrInvalidMnemonic))
}

func TestNewManagerRejectsUnsupportedBip(t *testing.T) {
	client := &electrum.Mock{}
	cfg := wallet.DefaultConfig()
	cfg.Bip = 49
	_, err := wallet.NewManagerFromMnemonic(testMnemonic, "", cfg, client)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrUnsupportedBip))
}

func TestGetAccountAddress(t *testing.T) {
	m := newTestManager(t)
	acct, err := m.GetAccount(0)
	require.NoError(t, err)

	addr, err := acct.GetAddress()
	require.NoError(t, err)
	require.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
	require.Equal(t, "m/84'/0'/0'/0/0", acct.Path())
}

func TestGetAccountCachesByPath(t *testing.T) {
	m := newTestManager(t)
	a, err := m.GetAccount(3)
	require.NoError(t, err)
	b, err := m.GetAccount(3)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestGetAccountByPathAbsolute(t *testing.T) {
	m := newTestManager(t)
	acct, err := m.GetAccountByPath("m/84'/0'/0'/0/0")
	require.NoError(t, err)
	addr, err := acct.GetAddress()
	require.NoError(t, err)
	require.Equal(t, "bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu", addr)
}

func TestSeedPhraseAccessor(t *testing.T) {
	m := newTestManager(t)
	require.Equal(t, testMnemonic, m.SeedPhrase())

	fromSeed, err := wallet.NewManagerFromSeed([]byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcd"),
		wallet.DefaultConfig(), &electrum.Mock{})
	require.NoError(t, err)
	require.Empty(t, fromSeed.SeedPhrase())
}

func TestDisposeCascadesToAccounts(t *testing.T) {
	m := newTestManager(t)
	acct, err := m.GetAccount(0)
	require.NoError(t, err)

	m.Dispose()

	_, err = acct.GetAddress()
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrDisposedAccount))
}

func TestDisposeIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	m.Dispose()
	m.Dispose()

	_, err := m.GetAccount(0)
	require.Error(t, err)
	require.True(t, walleterr.Is(err, walleterr.ErrDisposedWallet))
}
