// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/seed"
	"github.com/btcsuite/electrumwallet/transfers"
	"github.com/btcsuite/electrumwallet/txbuilder"
	"github.com/btcsuite/electrumwallet/waddress"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// KeyPair is the public surface's plain-data view of an Account's key
// material (spec.md §6.1). It does not own zeroization; the Account it
// was read from does.
type KeyPair struct {
	PublicKey  [33]byte
	PrivateKey [32]byte
}

// Account is a single derived key, its memoized address, and the
// Electrum handle it spends and queries through. It is not safe for
// concurrent use by multiple goroutines (spec.md §5): drive one Account
// per execution context.
type Account struct {
	index  uint32
	path   string
	key    *seed.ChildKey
	params *chaincfg.Params
	client electrum.Client

	addrOnce sync.Once
	address  string
	addrErr  error

	disposed bool
}

func newAccount(index uint32, path string, key *seed.ChildKey, params *chaincfg.Params,
	client electrum.Client) *Account {

	return &Account{
		index:  index,
		path:   path,
		key:    key,
		params: params,
		client: client,
	}
}

// Index returns the last index of the account's derivation path, with
// the hardened bit cleared.
func (a *Account) Index() uint32 { return a.index }

// Path returns the account's absolute derivation path.
func (a *Account) Path() string { return a.path }

// KeyPair returns the account's public and private key material.
func (a *Account) KeyPair() (KeyPair, error) {
	if err := a.checkLive(); err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PublicKey: a.key.PublicKey, PrivateKey: a.key.PrivateKey}, nil
}

// GetAddress returns the account's bech32 address, computing and
// memoizing it on first call.
func (a *Account) GetAddress() (string, error) {
	if err := a.checkLive(); err != nil {
		return "", err
	}
	a.addrOnce.Do(func() {
		a.address, a.addrErr = waddress.FromPublicKey(a.key.PublicKey[:], a.params)
	})
	return a.address, a.addrErr
}

// Sign signs SHA-256(message) with the account's private key using
// deterministic, low-S ECDSA, and returns the DER signature base64
// encoded, per spec.md §4.6.
func (a *Account) Sign(message string) (string, error) {
	if err := a.checkLive(); err != nil {
		return "", err
	}
	priv := a.key.PrivKey()
	defer priv.Zero()

	digest := sha256.Sum256([]byte(message))
	sig := ecdsa.Sign(priv, digest[:])
	return base64.StdEncoding.EncodeToString(sig.Serialize()), nil
}

// Verify reports whether sig (base64 DER) is a valid signature over
// SHA-256(message) for this account's public key. A well-formed but
// mismatching signature returns false, nil; a signature that cannot be
// parsed as DER returns MalformedSignature.
func (a *Account) Verify(message, sig string) (bool, error) {
	if err := a.checkLive(); err != nil {
		return false, err
	}
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false, walleterr.Wrap(walleterr.ErrMalformedSignature,
			"signature is not valid base64", err)
	}
	parsed, err := ecdsa.ParseDERSignature(raw)
	if err != nil {
		return false, walleterr.Wrap(walleterr.ErrMalformedSignature,
			"signature is not valid DER", err)
	}

	pub, err := parsePubKey(a.key.PublicKey[:])
	if err != nil {
		return false, err
	}

	digest := sha256.Sum256([]byte(message))
	return parsed.Verify(digest[:], pub), nil
}

// GetBalance returns the account's confirmed balance in satoshis.
func (a *Account) GetBalance(ctx context.Context) (int64, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	address, err := a.GetAddress()
	if err != nil {
		return 0, err
	}
	bal, err := a.client.GetBalance(ctx, address)
	if err != nil {
		return 0, walleterr.NetworkFailure(err)
	}
	return bal.ConfirmedSats, nil
}

// GetTokenBalance never succeeds: this core has no token support.
func (a *Account) GetTokenBalance(ctx context.Context, contract string) (int64, error) {
	return 0, walleterr.UnsupportedOperation("getTokenBalance")
}

// Transfer never succeeds: non-native-asset transfers have no meaning
// for a Bitcoin account.
func (a *Account) Transfer(ctx context.Context, args any) error {
	return walleterr.UnsupportedOperation("transfer")
}

// SendResult is the outcome of SendTransaction, per spec.md §6.1.
type SendResult struct {
	Hash    string
	FeeSats int64
}

// SendTransaction builds, signs and broadcasts a transaction paying
// valueSats to the address to, per spec.md §4.4.
func (a *Account) SendTransaction(ctx context.Context, to string, valueSats int64) (SendResult, error) {
	if err := a.checkLive(); err != nil {
		return SendResult{}, err
	}
	signer, err := a.signer()
	if err != nil {
		return SendResult{}, err
	}
	defer signer.PrivKey.Zero()

	result, err := txbuilder.Send(ctx, a.client, a.params, signer, to, valueSats)
	if err != nil {
		return SendResult{}, err
	}
	log.Infof("broadcast %s paying %d sats to %s, fee %d sats", result.TxID, valueSats, to, result.FeeSats)
	return SendResult{Hash: result.TxID, FeeSats: result.FeeSats}, nil
}

// QuoteTransaction estimates the fee, in satoshis, that SendTransaction
// would pay for the same (to, valueSats) pair, without broadcasting.
func (a *Account) QuoteTransaction(ctx context.Context, to string, valueSats int64) (int64, error) {
	if err := a.checkLive(); err != nil {
		return 0, err
	}
	signer, err := a.signer()
	if err != nil {
		return 0, err
	}
	defer signer.PrivKey.Zero()

	return txbuilder.Quote(ctx, a.client, a.params, signer, to, valueSats)
}

// GetTransfers reconstructs the account's transfer history, per
// spec.md §4.5.
func (a *Account) GetTransfers(ctx context.Context, q transfers.Query) ([]transfers.Record, error) {
	if err := a.checkLive(); err != nil {
		return nil, err
	}
	address, err := a.GetAddress()
	if err != nil {
		return nil, err
	}
	return transfers.GetTransfers(ctx, a.client, a.params, address, q)
}

// Dispose zeroizes the account's key material and marks it disposed.
// Idempotent: a second call is a no-op.
func (a *Account) Dispose() {
	if a.disposed {
		return
	}
	a.key.Zero()
	a.disposed = true
}

func (a *Account) checkLive() error {
	if a.disposed {
		return walleterr.New(walleterr.ErrDisposedAccount, "account has been disposed")
	}
	return nil
}

func (a *Account) signer() (txbuilder.Signer, error) {
	address, err := a.GetAddress()
	if err != nil {
		return txbuilder.Signer{}, err
	}
	script, err := waddress.OutputScript(address, a.params)
	if err != nil {
		return txbuilder.Signer{}, err
	}
	return txbuilder.Signer{
		OwnAddress: address,
		OwnScript:  script,
		PrivKey:    a.key.PrivKey(),
		PubKey:     a.key.PublicKey[:],
	}, nil
}
