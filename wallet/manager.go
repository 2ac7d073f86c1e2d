// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btcsuite/electrumwallet/electrum"
	"github.com/btcsuite/electrumwallet/internal/zero"
	"github.com/btcsuite/electrumwallet/netparams"
	"github.com/btcsuite/electrumwallet/seed"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// FeeRates is the sats/vB view returned by GetFeeRates, mapped from a
// block-explorer's hourFee/fastestFee fields per spec.md §4.7.
type FeeRates struct {
	Normal int
	Fast   int
}

// feeEstimateEndpoint is the external fee-estimation service consulted
// by GetFeeRates. It is a plain convenience, not part of the Electrum
// contract: its failures are returned to the caller as ErrNetworkFailure.
const feeEstimateEndpoint = "https://mempool.space/api/v1/fees/recommended"

// Manager caches every Account it has handed out, keyed by absolute
// derivation path, and owns their shared seed and Electrum client, per
// spec.md §4.7. A Manager is safe for the same single-execution-context
// usage pattern as Account (spec.md §5); its path->Account map is the
// only piece of state written on every access.
type Manager struct {
	seedBytes  []byte
	mnemonic   string // empty unless constructed from a mnemonic
	config     Config
	params     netparams.Params
	client     electrum.Client
	httpClient *http.Client

	mu       sync.Mutex
	accounts map[string]*Account

	disposed bool
}

// NewManagerFromMnemonic constructs a Manager whose seed is derived from
// a BIP-39 mnemonic and optional passphrase.
func NewManagerFromMnemonic(mnemonic, passphrase string, cfg Config, client electrum.Client) (*Manager, error) {
	if !seed.ValidMnemonic(mnemonic) {
		return nil, walleterr.New(walleterr.ErrInvalidMnemonic, "mnemonic failed BIP-39 checksum validation")
	}
	m, err := newManager(seed.MnemonicToSeed(mnemonic, passphrase), cfg, client)
	if err != nil {
		return nil, err
	}
	m.mnemonic = mnemonic
	return m, nil
}

// NewManagerFromSeed constructs a Manager from caller-supplied seed
// bytes, bypassing mnemonic validation entirely. The Manager keeps
// seedBytes without copying it, so Dispose zeroes the caller's slice.
func NewManagerFromSeed(seedBytes []byte, cfg Config, client electrum.Client) (*Manager, error) {
	return newManager(seedBytes, cfg, client)
}

func newManager(seedBytes []byte, cfg Config, client electrum.Client) (*Manager, error) {
	normalized, params, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	return &Manager{
		seedBytes:  seedBytes,
		config:     normalized,
		params:     params,
		client:     client,
		httpClient: &http.Client{},
		accounts:   make(map[string]*Account),
	}, nil
}

// SeedPhrase returns the mnemonic the Manager was constructed from. It
// is only meaningful when NewManagerFromMnemonic was used; callers that
// used NewManagerFromSeed get back an empty string.
func (m *Manager) SeedPhrase() string { return m.mnemonic }

// GetAccount returns the Account at the default path for index, per
// spec.md §4.7, creating and caching it on first request.
func (m *Manager) GetAccount(index uint32) (*Account, error) {
	return m.GetAccountByPath(fmt.Sprintf("0'/0/%d", index))
}

// GetAccountByPath returns the Account at base path + tail, per
// spec.md §4.7. A leading "/" is stripped; an absolute path beginning
// "m/" is used verbatim.
func (m *Manager) GetAccountByPath(tail string) (*Account, error) {
	if err := m.checkLive(); err != nil {
		return nil, err
	}

	path := seed.BuildAccountPath(m.config.Bip, tail)

	m.mu.Lock()
	defer m.mu.Unlock()

	if acct, ok := m.accounts[path]; ok {
		return acct, nil
	}

	key, err := seed.Derive(m.seedBytes, path, m.params.Params)
	if err != nil {
		return nil, err
	}

	index := key.Index &^ 0x80000000
	acct := newAccount(index, path, key, m.params.Params, m.client)
	m.accounts[path] = acct

	log.Debugf("derived account at path %s", path)
	return acct, nil
}

// GetFeeRates queries the configured fee-estimation endpoint and maps
// its hourFee/fastestFee fields to {normal, fast}, per spec.md §4.7.
// Request and decoding errors are wrapped as ErrNetworkFailure.
func (m *Manager) GetFeeRates(ctx context.Context) (FeeRates, error) {
	if err := m.checkLive(); err != nil {
		return FeeRates{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feeEstimateEndpoint, nil)
	if err != nil {
		return FeeRates{}, walleterr.NetworkFailure(err)
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return FeeRates{}, walleterr.NetworkFailure(err)
	}
	defer resp.Body.Close()

	var payload struct {
		HourFee    int `json:"hourFee"`
		FastestFee int `json:"fastestFee"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return FeeRates{}, walleterr.NetworkFailure(err)
	}

	return FeeRates{Normal: payload.HourFee, Fast: payload.FastestFee}, nil
}

// Dispose disposes every Account this Manager has handed out, zeroizes
// the root seed and marks the Manager itself disposed. Idempotent.
func (m *Manager) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.disposed {
		return
	}
	for _, acct := range m.accounts {
		acct.Dispose()
	}
	zero.Bytes(m.seedBytes)
	m.disposed = true
	log.Debugf("disposed wallet manager and %d cached accounts", len(m.accounts))
}

func (m *Manager) checkLive() error {
	if m.disposed {
		return walleterr.New(walleterr.ErrDisposedWallet, "wallet manager has been disposed")
	}
	return nil
}

// NetworkParams exposes the resolved chain parameters, primarily so
// callers can construct a ReadOnlyAccount on the same network.
func (m *Manager) NetworkParams() *chaincfg.Params { return m.params.Params }
