// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/btcsuite/electrumwallet/walleterr"
)

// parsePubKey parses a 33-byte compressed public key.
func parsePubKey(compressed []byte) (*btcec.PublicKey, error) {
	pub, err := btcec.ParsePubKey(compressed)
	if err != nil {
		return nil, walleterr.Wrap(walleterr.ErrMalformedSignature,
			"failed to parse public key", err)
	}
	return pub, nil
}
