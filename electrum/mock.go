// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package electrum

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock is a testify mock implementation of Client, shared by every
// package's test suite so each does not need to hand-roll its own fake
// Electrum server.
type Mock struct {
	mock.Mock
}

var _ Client = (*Mock)(nil)

func (m *Mock) GetBalance(ctx context.Context, address string) (Balance, error) {
	args := m.Called(ctx, address)
	bal, _ := args.Get(0).(Balance)
	return bal, args.Error(1)
}

func (m *Mock) ListUnspent(ctx context.Context, address string) ([]UTXO, error) {
	args := m.Called(ctx, address)
	utxos, _ := args.Get(0).([]UTXO)
	return utxos, args.Error(1)
}

func (m *Mock) GetHistory(ctx context.Context, address string) ([]HistoryEntry, error) {
	args := m.Called(ctx, address)
	hist, _ := args.Get(0).([]HistoryEntry)
	return hist, args.Error(1)
}

func (m *Mock) GetTransaction(ctx context.Context, txid string) ([]byte, error) {
	args := m.Called(ctx, txid)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (m *Mock) EstimateFee(ctx context.Context, targetBlocks int) (float64, error) {
	args := m.Called(ctx, targetBlocks)
	rate, _ := args.Get(0).(float64)
	return rate, args.Error(1)
}

func (m *Mock) Broadcast(ctx context.Context, rawTxHex string) (string, error) {
	args := m.Called(ctx, rawTxHex)
	txid, _ := args.Get(0).(string)
	return txid, args.Error(1)
}
