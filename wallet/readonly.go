// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/transfers"
	"github.com/btcsuite/electrumwallet/txbuilder"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// ReadOnlyAccount tracks a single address with no key material, per
// spec.md §6.1. It exposes only the operations that need no signing
// capability; SendTransaction and Sign are not defined on this type at
// all, so misuse is a compile error rather than a runtime one.
type ReadOnlyAccount struct {
	address  string
	params   *chaincfg.Params
	client   electrum.Client
	disposed bool
}

// NewReadOnlyAccount constructs a watch-only account for address.
func NewReadOnlyAccount(address string, params *chaincfg.Params, client electrum.Client) *ReadOnlyAccount {
	return &ReadOnlyAccount{address: address, params: params, client: client}
}

// GetAddress returns the watched address.
func (a *ReadOnlyAccount) GetAddress() string { return a.address }

// GetBalance returns the confirmed balance of the watched address.
func (a *ReadOnlyAccount) GetBalance(ctx context.Context) (int64, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	bal, err := a.client.GetBalance(ctx, a.address)
	if err != nil {
		return 0, walleterr.NetworkFailure(err)
	}
	return bal.ConfirmedSats, nil
}

// GetTransfers reconstructs the watched address's transfer history.
func (a *ReadOnlyAccount) GetTransfers(ctx context.Context, q transfers.Query) ([]transfers.Record, error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	return transfers.GetTransfers(ctx, a.client, a.params, a.address, q)
}

// QuoteSendTransaction estimates the fee a signed spend from this
// address would incur, without possessing the key material to build
// one. It sizes the transaction with a worst-case P2WPKH witness
// estimate rather than a real signature, priced against this address's
// own UTXO set.
func (a *ReadOnlyAccount) QuoteSendTransaction(ctx context.Context, to string, valueSats int64) (int64, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	script, err := waddress.OutputScript(to, a.params)
	if err != nil {
		return 0, err
	}
	return txbuilder.QuoteUnsigned(ctx, a.client, a.address, len(script), valueSats)
}

// Dispose marks the account disposed, after which GetBalance,
// GetTransfers and QuoteSendTransaction fail with ErrDisposedAccount.
// Idempotent.
func (a *ReadOnlyAccount) Dispose() {
	a.disposed = true
}

func (a *ReadOnlyAccount) checkLive() error {
	if a.disposed {
		return walleterr.New(walleterr.ErrDisposedAccount, "account has been disposed")
	}
	return nil
}
