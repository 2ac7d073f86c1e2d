// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/electrumwallet/internal/zero"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// ChildKey is the result of walking a BIP-32 path from a seed's master
// key down to a leaf. PrivateKey, PublicKey and ChainCode are owned
// exclusively by the caller; Zero must be invoked when the key material
// is no longer needed.
type ChildKey struct {
	PrivateKey [32]byte
	PublicKey  [33]byte // compressed
	ChainCode  [32]byte

	ParentFingerprint uint32
	Depth             uint8
	Index             uint32
}

// Zero wipes the private key material held by the ChildKey: both the
// private scalar and the chain code are zeroed. PublicKey is left intact.
func (k *ChildKey) Zero() {
	zero.Bytea32(&k.PrivateKey)
	zero.Bytea32(&k.ChainCode)
}

// Derive walks path (as produced by ParsePath) from the master key
// derived from seed via HMAC-SHA512("Bitcoin seed", seed), performing
// private-parent-to-private-child derivation at every step.
//
// Derive fails with ErrInvalidPath if path cannot be parsed, or with
// ErrDerivationOutOfRange in the statistically negligible case a derived
// scalar is zero or exceeds the curve order.
func Derive(seedBytes []byte, path string, params *chaincfg.Params) (*ChildKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	master, err := hdkeychain.NewMaster(seedBytes, params)
	if err != nil {
		if errors.Is(err, hdkeychain.ErrInvalidSeedLen) {
			return nil, walleterr.Wrap(walleterr.ErrDerivationOutOfRange,
				"invalid seed length", err)
		}
		return nil, walleterr.Wrap(walleterr.ErrDerivationOutOfRange,
			"failed to derive master key", err)
	}
	defer master.Zero()

	key := master
	for _, idx := range indices {
		child, err := key.Derive(idx)
		if err != nil {
			if errors.Is(err, hdkeychain.ErrInvalidChild) {
				return nil, walleterr.Wrap(walleterr.ErrDerivationOutOfRange,
					"derived child key out of range", err)
			}
			return nil, walleterr.Wrap(walleterr.ErrDerivationOutOfRange,
				"failed to derive child key", err)
		}
		if key != master {
			key.Zero()
		}
		key = child
	}
	defer key.Zero()

	return extendedKeyToChildKey(key, indices)
}

// extendedKeyToChildKey copies the private scalar, compressed public key
// and chain code out of an *hdkeychain.ExtendedKey into an owned
// ChildKey, so the caller no longer depends on the hdkeychain buffers.
func extendedKeyToChildKey(key *hdkeychain.ExtendedKey, indices []uint32) (*ChildKey, error) {
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, walleterr.Wrap(walleterr.ErrDerivationOutOfRange,
			"failed to materialize private key", err)
	}
	defer priv.Zero()

	pub := priv.PubKey()

	out := &ChildKey{
		Depth: key.Depth(),
	}
	if len(indices) > 0 {
		out.Index = indices[len(indices)-1]
	}
	out.ParentFingerprint = key.ParentFingerprint()

	privBytes := priv.Serialize()
	copy(out.PrivateKey[:], privBytes)
	zero.Bytes(privBytes)

	copy(out.PublicKey[:], pub.SerializeCompressed())
	copy(out.ChainCode[:], key.ChainCode())

	return out, nil
}

// PrivKey materializes the ChildKey's private scalar as a *btcec.PrivateKey
// for use by the signer. Callers must call Zero on the returned key when
// finished with it.
func (k *ChildKey) PrivKey() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(k.PrivateKey[:])
	return priv
}
