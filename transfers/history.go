// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transfers reconstructs an account's transfer history from raw
// transactions reported by an electrum.Client, classifying each vout as
// incoming, outgoing or change per spec.md §4.5. It has no persistence
// of its own: every call walks the server's history fresh, caching
// parent transactions only for the duration of that call.
package transfers

import (
	"bytes"
	"context"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// Direction classifies a Record relative to the owning account.
type Direction string

const (
	Incoming Direction = "incoming"
	Outgoing Direction = "outgoing"
	All      Direction = "all"
)

// Record is one relevant vout of one historical transaction, per
// spec.md §3.
type Record struct {
	TxID          string
	Vout          uint32
	Height        int32 // 0 = mempool
	ValueSats     int64
	Direction     Direction
	FeeSats       *int64 // nil when any parent tx could not be fetched
	ToAddress     string // empty if undecodable
	OwningAddress string
}

// Query parameterizes GetTransfers, per spec.md §4.5. Limit is a pointer
// so that an unset Limit (nil) can be told apart from an explicit
// Limit=0: the former defaults to 10, the latter yields no records.
type Query struct {
	Direction Direction
	Limit     *int
	Skip      int
}

// DefaultQuery mirrors the public surface's defaults (§6.1).
func DefaultQuery() Query {
	limit := 10
	return Query{Direction: All, Limit: &limit, Skip: 0}
}

// GetTransfers implements the algorithm of spec.md §4.5: history is
// fetched once, skip discards whole transactions (not individual
// records), and the walk stops as soon as limit records have been
// produced.
func GetTransfers(ctx context.Context, client electrum.Client, params *chaincfg.Params,
	ownAddress string, q Query) ([]Record, error) {

	limit := 10
	if q.Limit != nil {
		limit = *q.Limit
	}
	if q.Direction == "" {
		q.Direction = All
	}
	if limit <= 0 {
		return nil, nil
	}

	history, err := client.GetHistory(ctx, ownAddress)
	if err != nil {
		return nil, walleterr.NetworkFailure(err)
	}
	if q.Skip > 0 {
		if q.Skip >= len(history) {
			return nil, nil
		}
		history = history[q.Skip:]
	}

	txCache := make(map[string]*wire.MsgTx)
	fetch := func(txid string) (*wire.MsgTx, error) {
		if tx, ok := txCache[txid]; ok {
			return tx, nil
		}
		raw, err := client.GetTransaction(ctx, txid)
		if err != nil {
			return nil, err
		}
		tx := &wire.MsgTx{}
		if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
			return nil, err
		}
		txCache[txid] = tx
		return tx, nil
	}

	var records []Record
	for _, entry := range history {
		if len(records) >= limit {
			break
		}

		tx, err := fetch(entry.TxID)
		if err != nil {
			// The entry itself is unfetchable: nothing about it can be
			// classified, so it contributes no records.
			continue
		}

		var (
			totalInput   int64
			isOutgoingTx bool
			feeUnknown   bool
		)
		for _, in := range tx.TxIn {
			prevTx, err := fetch(in.PreviousOutPoint.Hash.String())
			if err != nil {
				feeUnknown = true
				continue
			}
			idx := in.PreviousOutPoint.Index
			if int(idx) >= len(prevTx.TxOut) {
				feeUnknown = true
				continue
			}
			prevOut := prevTx.TxOut[idx]
			totalInput += prevOut.Value
			if waddress.IsOwnAddress(prevOut.PkScript, ownAddress, params) {
				isOutgoingTx = true
			}
		}

		var totalOutput int64
		for _, out := range tx.TxOut {
			totalOutput += out.Value
		}

		var fee *int64
		if totalInput > 0 && !feeUnknown {
			f := totalInput - totalOutput
			fee = &f
		}

		for v, out := range tx.TxOut {
			if len(records) >= limit {
				break
			}

			toAddress, _ := waddress.DecodeScript(out.PkScript, params)
			toSelf := toAddress != "" && toAddress == ownAddress

			var direction Direction
			switch {
			case toSelf && !isOutgoingTx:
				direction = Incoming
			case !toSelf && isOutgoingTx:
				direction = Outgoing
			default:
				// to_self && is_outgoing_tx: change, dropped.
				// !to_self && !is_outgoing_tx: unrelated, dropped.
				continue
			}

			if q.Direction != All && q.Direction != direction {
				continue
			}

			records = append(records, Record{
				TxID:          entry.TxID,
				Vout:          uint32(v),
				Height:        entry.Height,
				ValueSats:     out.Value,
				Direction:     direction,
				FeeSats:       fee,
				ToAddress:     toAddress,
				OwningAddress: ownAddress,
			})
		}
	}

	return records, nil
}
