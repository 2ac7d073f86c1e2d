// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/btcsuite/electrumwallet/walleterr"
)

// chainhashFromHex parses a big-endian display-order txid hex string into
// a chainhash.Hash, which chainhash.NewHashFromStr already byte-reverses
// into internal order.
func chainhashFromHex(txid string) (*chainhash.Hash, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, walleterr.Wrap(walleterr.ErrNetworkFailure,
			"failed to parse txid \""+txid+"\"", err)
	}
	return hash, nil
}
