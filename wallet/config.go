// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/btcsuite/electrumwallet/netparams"
	"github.com/btcsuite/electrumwallet/walleterr"
)

// Config selects the Electrum endpoint, network and derivation purpose a
// WalletManager operates against, per spec.md §6.1.
type Config struct {
	Host     string
	Port     int
	Protocol string // "tcp" or "ssl"
	Network  string // "bitcoin", "testnet" or "regtest"
	Bip      uint32 // 44 or 84
}

// DefaultConfig returns the public surface's documented defaults.
func DefaultConfig() Config {
	return Config{
		Protocol: "tcp",
		Network:  "bitcoin",
		Bip:      84,
	}
}

// normalize fills unset fields with their defaults and validates bip,
// resolving the requested network's chain parameters.
func (c Config) normalize() (Config, netparams.Params, error) {
	if c.Protocol == "" {
		c.Protocol = "tcp"
	}
	if c.Bip == 0 {
		c.Bip = 84
	}
	if c.Bip != 44 && c.Bip != 84 {
		return c, netparams.Params{}, walleterr.New(walleterr.ErrUnsupportedBip,
			"bip must be 44 or 84")
	}

	params, err := netparams.ByName(c.Network)
	if err != nil {
		return c, netparams.Params{}, walleterr.Wrap(walleterr.ErrInvalidConfig,
			"unknown network", err)
	}
	if c.Network == "" {
		c.Network = "bitcoin"
	}
	if c.Host == "" {
		c.Host = params.DefaultElectrumHost
	}
	if c.Port == 0 {
		c.Port = params.DefaultElectrumPort
	}

	return c, params, nil
}
