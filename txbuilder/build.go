// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txbuilder constructs, sizes and signs P2WPKH transactions
// against UTXOs reported by an electrum.Client, following the iterative
// fee/size loop described in spec.md §4.4. It is grounded on the
// teacher's wallet/txauthor (input selection, change) and
// wallet/txsizes (virtual size) packages, adapted to build and sign
// against live UTXOs rather than a wtxmgr credit set.
package txbuilder

import (
	"bytes"
	"context"
	"encoding/hex"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// DustLimit is the minimum spendable output value, per spec.md §3.
const DustLimit = 546

// MinFeeSats is the fee floor that protects against absurdly small
// vsize estimates, per spec.md §4.4 step 4.
const MinFeeSats = 141

// Signer supplies the key material and identity the builder signs and
// funds change with. wallet.Account fills one in from its own key
// material, so this package does not import the wallet package.
type Signer struct {
	OwnAddress string
	OwnScript  []byte // P2WPKH output script for OwnAddress
	PrivKey    *btcec.PrivateKey
	PubKey     []byte // 33-byte compressed
}

// Result is the outcome of a successful build (and, for Send, broadcast).
type Result struct {
	RawTxHex string
	TxID     string // big-endian hex, byte-reversed from internal order
	FeeSats  int64
}

// selected pairs a UTXO with its previous output's script and value, as
// fetched from the parent transaction (spec.md §4.4 step 3).
type selected struct {
	txid   string
	vout   uint32
	value  int64
	script []byte
}

// Quote performs steps 1-6 of spec.md §4.4 (everything short of
// broadcast) and returns the resulting fee.
func Quote(ctx context.Context, client electrum.Client, params *chaincfg.Params,
	signer Signer, to string, valueSats int64) (int64, error) {

	_, fee, err := buildSignedTx(ctx, client, params, signer, to, valueSats)
	return fee, err
}

// Send performs the full contract of spec.md §4.4: build, sign and
// broadcast a transaction paying valueSats to to.
func Send(ctx context.Context, client electrum.Client, params *chaincfg.Params,
	signer Signer, to string, valueSats int64) (Result, error) {

	tx, fee, err := buildSignedTx(ctx, client, params, signer, to, valueSats)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return Result{}, walleterr.Wrap(walleterr.ErrNetworkFailure,
			"failed to serialize signed transaction", err)
	}
	rawHex := hex.EncodeToString(buf.Bytes())

	// The txid is double-SHA256 of the non-witness serialization,
	// computed locally; Broadcast's only job is to surface failures.
	txid := tx.TxHash().String()

	if _, err := client.Broadcast(ctx, rawHex); err != nil {
		return Result{}, walleterr.NetworkFailure(err)
	}

	return Result{
		RawTxHex: rawHex,
		TxID:     txid,
		FeeSats:  fee,
	}, nil
}

// buildSignedTx implements spec.md §4.4 steps 1-6.
func buildSignedTx(ctx context.Context, client electrum.Client, params *chaincfg.Params,
	signer Signer, to string, valueSats int64) (*wire.MsgTx, int64, error) {

	// Step 1: preconditions.
	if valueSats <= DustLimit {
		return nil, 0, walleterr.New(walleterr.ErrBelowDustLimit,
			"value does not exceed the dust limit")
	}
	recipientScript, err := waddress.OutputScript(to, params)
	if err != nil {
		return nil, 0, err
	}

	// Step 2: fee rate.
	rawRate, err := client.EstimateFee(ctx, 1)
	if err != nil {
		return nil, 0, walleterr.NetworkFailure(err)
	}
	rate := rawRate
	if rate < 1 {
		rate = 1
	}

	// Step 3: UTXO gathering (first-fit, server order).
	utxos, err := client.ListUnspent(ctx, signer.OwnAddress)
	if err != nil {
		return nil, 0, walleterr.NetworkFailure(err)
	}
	if len(utxos) == 0 {
		return nil, 0, walleterr.New(walleterr.ErrNoUnspentOutputs,
			"no unspent outputs for the account address")
	}

	txCache := make(map[string][]byte)
	fetchTx := func(txid string) (*wire.MsgTx, error) {
		raw, ok := txCache[txid]
		if !ok {
			var err error
			raw, err = client.GetTransaction(ctx, txid)
			if err != nil {
				return nil, walleterr.NetworkFailure(err)
			}
			txCache[txid] = raw
		}
		parsed := &wire.MsgTx{}
		if err := parsed.Deserialize(bytes.NewReader(raw)); err != nil {
			return nil, walleterr.Wrap(walleterr.ErrNetworkFailure,
				"failed to parse fetched transaction", err)
		}
		return parsed, nil
	}

	resolve := func(u electrum.UTXO) (selected, error) {
		parent, err := fetchTx(u.TxID)
		if err != nil {
			return selected{}, err
		}
		if int(u.Vout) >= len(parent.TxOut) {
			return selected{}, walleterr.New(walleterr.ErrNetworkFailure,
				"unspent output index out of range in fetched transaction")
		}
		return selected{
			txid:   u.TxID,
			vout:   u.Vout,
			value:  parent.TxOut[u.Vout].Value,
			script: parent.TxOut[u.Vout].PkScript,
		}, nil
	}

	var chosen []selected
	var sum int64
	nextIdx := 0
	addNext := func() (bool, error) {
		if nextIdx >= len(utxos) {
			return false, nil
		}
		s, err := resolve(utxos[nextIdx])
		if err != nil {
			return false, err
		}
		chosen = append(chosen, s)
		sum += s.value
		nextIdx++
		return true, nil
	}

	// Accumulate the minimal prefix covering value_sats.
	for sum < valueSats {
		ok, err := addNext()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, walleterr.New(walleterr.ErrInsufficientBalance,
				"unspent outputs cannot cover the requested value")
		}
	}

	// Step 4: iterative fee/size sizing.
	var (
		tx  *wire.MsgTx
		fee int64
	)
	for {
		tx, err = assembleAndSign(chosen, recipientScript, signer, valueSats, 0)
		if err != nil {
			return nil, 0, err
		}
		vsize := VirtualSize(tx)
		fee = int64(math.Ceil(float64(vsize) * rate))
		if fee < MinFeeSats {
			fee = MinFeeSats
		}

		if sum >= valueSats+fee {
			break
		}

		ok, err := addNext()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			return nil, 0, walleterr.New(walleterr.ErrInsufficientBalance,
				"unspent outputs cannot cover the requested value plus fee")
		}
	}

	// Rebuild once more with the final fee so the change output (if any)
	// reflects it, then sign for real.
	tx, err = assembleAndSign(chosen, recipientScript, signer, valueSats, fee)
	if err != nil {
		return nil, 0, err
	}

	return tx, fee, nil
}

// assembleAndSign builds the unsigned transaction (recipient output
// first, change output second per spec.md §4.4 step 5) and signs every
// input per step 6.
func assembleAndSign(chosen []selected, recipientScript []byte, signer Signer,
	valueSats, fee int64) (*wire.MsgTx, error) {

	tx := wire.NewMsgTx(wire.TxVersion)

	prevOutFetcher := txscript.NewMultiPrevOutFetcher(nil)
	for _, s := range chosen {
		hash, err := chainhashFromHex(s.txid)
		if err != nil {
			return nil, err
		}
		op := wire.OutPoint{Hash: *hash, Index: s.vout}
		tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
		prevOutFetcher.AddPrevOut(op, &wire.TxOut{
			Value:    s.value,
			PkScript: s.script,
		})
	}

	tx.AddTxOut(wire.NewTxOut(valueSats, recipientScript))

	var sum int64
	for _, s := range chosen {
		sum += s.value
	}
	change := sum - valueSats - fee
	if change > DustLimit {
		tx.AddTxOut(wire.NewTxOut(change, signer.OwnScript))
	}

	hashCache := txscript.NewTxSigHashes(tx, prevOutFetcher)
	for i, s := range chosen {
		witness, err := txscript.WitnessSignature(
			tx, hashCache, i, s.value, signer.OwnScript,
			txscript.SigHashAll, signer.PrivKey, true,
		)
		if err != nil {
			return nil, walleterr.Wrap(walleterr.ErrNetworkFailure,
				"failed to sign input", err)
		}
		tx.TxIn[i].Witness = witness
	}

	return tx, nil
}
