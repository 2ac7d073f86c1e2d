// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package electrum defines the narrow interface the wallet engine
// consumes from an Electrum-protocol server. The wire-protocol client
// (JSON line framing, subscriptions, reconnection) is an external
// collaborator; this package only names the semantic contract, per
// spec.md §4.3/§6.2.
package electrum

import "context"

// Balance reports the confirmed and unconfirmed satoshi totals for an
// address, as returned by blockchain.scripthash.get_balance.
type Balance struct {
	ConfirmedSats   int64
	UnconfirmedSats int64
}

// UTXO describes one unspent output as reported by
// blockchain.scripthash.listunspent.
type UTXO struct {
	TxID  string // big-endian hex
	Vout  uint32
	Value int64 // satoshis
}

// HistoryEntry describes one transaction touching an address, as
// reported by blockchain.scripthash.get_history. Height is 0 for
// mempool entries.
type HistoryEntry struct {
	TxID   string
	Height int32
}

// Client is the interface the wallet engine's transaction builder and
// transfer-history engine consume. Implementations own connection
// lifecycle, retries and script-hash mapping (address -> reversed-hex
// SHA-256 of the output script); the core never sees any of that.
//
// Every method may fail with a transport-level error; the core wraps it
// with walleterr.NetworkFailure and performs no retries itself. The one
// exception is the transfer-history engine, which treats a failed
// GetTransaction as an unavailable transaction instead of an error.
type Client interface {
	// GetBalance returns the confirmed/unconfirmed balance of address.
	GetBalance(ctx context.Context, address string) (Balance, error)

	// ListUnspent returns the unspent outputs of address in
	// server-defined order.
	ListUnspent(ctx context.Context, address string) ([]UTXO, error)

	// GetHistory returns the history of address ordered by chain height
	// ascending, with mempool entries (height 0) last.
	GetHistory(ctx context.Context, address string) ([]HistoryEntry, error)

	// GetTransaction returns the full consensus-serialized transaction
	// bytes for txid.
	GetTransaction(ctx context.Context, txid string) ([]byte, error)

	// EstimateFee returns a fee rate, in satoshis per vbyte, that should
	// confirm within targetBlocks. Implementations translating from a
	// server-reported BTC/kvB rate perform that conversion internally;
	// the wallet engine clamps the result to a minimum of 1 sat/vB.
	EstimateFee(ctx context.Context, targetBlocks int) (float64, error)

	// Broadcast submits rawTxHex to the network and returns its txid.
	Broadcast(ctx context.Context, rawTxHex string) (string, error)
}
