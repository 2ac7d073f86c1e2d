// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netparams groups the chain parameters this wallet engine
// understands, keyed by the network name accepted in wallet.Config.
package netparams

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Params groups the chain parameters used by the wallet engine for a
// particular Bitcoin network. The Electrum server host defaults are
// informative only; callers may point Config at any compatible server.
type Params struct {
	*chaincfg.Params

	// DefaultElectrumHost is the well-known public Electrum server used
	// when a caller does not supply one.
	DefaultElectrumHost string
	DefaultElectrumPort int
}

// MainNetParams contains parameters for the Bitcoin main network.
var MainNetParams = Params{
	Params:              &chaincfg.MainNetParams,
	DefaultElectrumHost: "electrum.blockstream.info",
	DefaultElectrumPort: 50001,
}

// TestNet3Params contains parameters for the Bitcoin test network
// (version 3).
var TestNet3Params = Params{
	Params:              &chaincfg.TestNet3Params,
	DefaultElectrumHost: "electrum.blockstream.info",
	DefaultElectrumPort: 60001,
}

// RegressionNetParams contains parameters for a local regtest network.
var RegressionNetParams = Params{
	Params:              &chaincfg.RegressionNetParams,
	DefaultElectrumHost: "127.0.0.1",
	DefaultElectrumPort: 60401,
}

// ByName resolves the network name accepted by wallet.Config ("bitcoin",
// "testnet", "regtest") to its Params. It mirrors the network switch in
// the teacher's rpc handlers, but at the library boundary instead of an
// RPC dispatch table.
func ByName(name string) (Params, error) {
	switch name {
	case "", "bitcoin", "mainnet":
		return MainNetParams, nil
	case "testnet", "testnet3":
		return TestNet3Params, nil
	case "regtest", "regression":
		return RegressionNetParams, nil
	default:
		return Params{}, fmt.Errorf("unknown network %q", name)
	}
}
