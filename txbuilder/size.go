// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import "github.com/btcsuite/btcd/wire"

// VirtualSize returns ceil((base*3 + total) / 4), the standard
// witness-discounted virtual size of a signed transaction, per
// spec.md §4.4. base excludes the witness, total includes it.
func VirtualSize(tx *wire.MsgTx) int64 {
	base := int64(tx.SerializeSizeStripped())
	total := int64(tx.SerializeSize())
	return (base*3 + total + 3) / 4
}
