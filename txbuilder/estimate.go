// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"context"
	"math"

	"github.com/btcsuite/btcd/wire"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// Worst-case P2WPKH input/output sizes, adapted from the teacher's
// wallet/txsizes package and narrowed to the single script type this
// core ever spends or pays change to.
const (
	// p2wpkhOutputSize is 8 bytes value + 1 byte varint + 22-byte script.
	p2wpkhOutputSize = 8 + 1 + 22

	// p2wpkhInputBaseSize is 32 bytes prevout hash + 4 bytes index +
	// 1 byte empty sigscript length + 4 bytes sequence.
	p2wpkhInputBaseSize = 32 + 4 + 1 + 4

	// p2wpkhInputWitnessWeight is 1 wu item count + 1+72+1 wu signature
	// (including sighash byte) + 1+33 wu compressed pubkey.
	p2wpkhInputWitnessWeight = 1 + 1 + 72 + 1 + 1 + 33
)

// EstimateVirtualSize returns a worst-case virtual size, in vbytes, for a
// transaction spending numInputs P2WPKH outputs and paying the given
// output scripts, optionally adding one more P2WPKH change output. It
// lets a watch-only account price a transaction it has no key material
// to actually build, per spec.md §6.1's quote_send_transaction.
func EstimateVirtualSize(numInputs int, outputScriptSizes []int, addChange bool) int64 {
	outputCount := len(outputScriptSizes)
	outputBytes := 0
	for _, size := range outputScriptSizes {
		outputBytes += 8 + wire.VarIntSerializeSize(uint64(size)) + size
	}

	changeBytes := 0
	if addChange {
		changeBytes = p2wpkhOutputSize
		outputCount++
	}

	baseSize := 8 +
		wire.VarIntSerializeSize(uint64(numInputs)) +
		wire.VarIntSerializeSize(uint64(outputCount)) +
		numInputs*p2wpkhInputBaseSize +
		outputBytes + changeBytes

	witnessWeight := 0
	if numInputs > 0 {
		witnessWeight = 2 + wire.VarIntSerializeSize(uint64(numInputs)) +
			numInputs*p2wpkhInputWitnessWeight
	}

	return int64(baseSize) + int64(witnessWeight+3)/4
}

// QuoteUnsigned prices a spend from ownAddress without possessing the
// key material to actually sign it, for use by a watch-only account's
// quote_send_transaction. It follows the same UTXO-gathering and
// fee-rate steps as buildSignedTx (spec.md §4.4 steps 1-4) but sizes the
// transaction with EstimateVirtualSize's worst-case P2WPKH witness size
// instead of a real signature.
func QuoteUnsigned(ctx context.Context, client electrum.Client, ownAddress string,
	recipientScriptLen int, valueSats int64) (int64, error) {

	if valueSats <= DustLimit {
		return 0, walleterr.New(walleterr.ErrBelowDustLimit,
			"value does not exceed the dust limit")
	}

	rawRate, err := client.EstimateFee(ctx, 1)
	if err != nil {
		return 0, walleterr.NetworkFailure(err)
	}
	rate := rawRate
	if rate < 1 {
		rate = 1
	}

	utxos, err := client.ListUnspent(ctx, ownAddress)
	if err != nil {
		return 0, walleterr.NetworkFailure(err)
	}
	if len(utxos) == 0 {
		return 0, walleterr.New(walleterr.ErrNoUnspentOutputs,
			"no unspent outputs for the account address")
	}

	var sum int64
	numInputs := 0
	fee := int64(MinFeeSats)
	for i, u := range utxos {
		sum += u.Value
		numInputs = i + 1

		vsize := EstimateVirtualSize(numInputs, []int{recipientScriptLen}, sum-valueSats > DustLimit)
		fee = int64(math.Ceil(float64(vsize) * rate))
		if fee < MinFeeSats {
			fee = MinFeeSats
		}

		if sum >= valueSats+fee {
			return fee, nil
		}
	}

	return 0, walleterr.New(walleterr.ErrInsufficientBalance,
		"unspent outputs cannot cover the requested value plus fee")
}
