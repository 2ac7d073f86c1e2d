// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package waddress converts between compressed public keys, P2WPKH
// output scripts and their bech32 address encoding, for the three
// networks the wallet engine understands.
package waddress

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/btcsuite/electrumwallet/walleterr"
)

// FromPublicKey derives the bech32 P2WPKH address for a 33-byte
// compressed public key: bech32(hrp, witver=0, hash160(pubkey)).
func FromPublicKey(pubKey []byte, params *chaincfg.Params) (string, error) {
	program := btcutil.Hash160(pubKey)
	addr, err := btcutil.NewAddressWitnessPubKeyHash(program, params)
	if err != nil {
		return "", walleterr.Wrap(walleterr.ErrInvalidRecipient,
			"failed to encode witness address", err)
	}
	return addr.EncodeAddress(), nil
}

// OutputScript returns the 22-byte P2WPKH output script (OP_0 <push 20>
// <program>) for a bech32 address, validated against params. It fails
// with ErrInvalidRecipient for anything that does not decode to a
// witness-v0 program of the correct length on the given network.
func OutputScript(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, walleterr.Wrap(walleterr.ErrInvalidRecipient,
			"failed to decode address", err)
	}
	wpkh, ok := addr.(*btcutil.AddressWitnessPubKeyHash)
	if !ok {
		return nil, walleterr.New(walleterr.ErrInvalidRecipient,
			"address is not a P2WPKH witness address")
	}
	if !addr.IsForNet(params) {
		return nil, walleterr.New(walleterr.ErrInvalidRecipient,
			"address is not valid for the configured network")
	}
	return txscript.PayToAddrScript(wpkh)
}

// Program extracts the 20-byte witness program from a bech32 address.
func Program(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, walleterr.Wrap(walleterr.ErrInvalidRecipient,
			"failed to decode address", err)
	}
	wpkh, ok := addr.(*btcutil.AddressWitnessPubKeyHash)
	if !ok {
		return nil, walleterr.New(walleterr.ErrInvalidRecipient,
			"address is not a P2WPKH witness address")
	}
	return wpkh.WitnessProgram(), nil
}

// DecodeScript classifies an arbitrary output script and, when possible,
// extracts the address it pays to. Per spec.md §4.2 classification never
// fails: unrecognized or malformed scripts simply yield ("", false).
//
// A 22-byte script beginning 0x00 0x14 is decoded directly as P2WPKH;
// everything else falls back to txscript's standard templates
// (P2PKH, P2SH, P2WSH, P2TR) purely for best-effort recipient display in
// transfer history — the wallet engine never spends non-P2WPKH outputs.
func DecodeScript(script []byte, params *chaincfg.Params) (address string, ok bool) {
	if len(script) == 22 && script[0] == 0x00 && script[1] == 0x14 {
		addr, err := btcutil.NewAddressWitnessPubKeyHash(script[2:], params)
		if err != nil {
			return "", false
		}
		return addr.EncodeAddress(), true
	}

	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil || len(addrs) != 1 {
		return "", false
	}
	return addrs[0].EncodeAddress(), true
}

// IsOwnAddress reports whether script pays to ownAddress, used by the
// transfer-history engine to recognize that a spent previous output
// belonged to the account (spec.md §4.5).
func IsOwnAddress(script []byte, ownAddress string, params *chaincfg.Params) bool {
	addr, ok := DecodeScript(script, params)
	return ok && addr == ownAddress
}
