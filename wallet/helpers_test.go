// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/waddress"
)

// fundingTxBytes serializes a single-output transaction paying value
// sats to addr, for use as a mocked Electrum GetTransaction response.
func fundingTxBytes(t *testing.T, addr string, value int64) []byte {
	t.Helper()
	script, err := waddress.OutputScript(addr, &chaincfg.MainNetParams)
	require.NoError(t, err)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{}, nil, nil))
	tx.AddTxOut(wire.NewTxOut(value, script))

	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	return buf.Bytes()
}
