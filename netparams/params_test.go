// Copyright (c) 2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netparams_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btcsuite/electrumwallet/netparams"
)

func TestByNameDefaults(t *testing.T) {
	p, err := netparams.ByName("")
	require.NoError(t, err)
	require.Equal(t, netparams.MainNetParams.Name, p.Name)
}

func TestByNameKnownNetworks(t *testing.T) {
	cases := map[string]string{
		"bitcoin":    netparams.MainNetParams.Name,
		"mainnet":    netparams.MainNetParams.Name,
		"testnet":    netparams.TestNet3Params.Name,
		"testnet3":   netparams.TestNet3Params.Name,
		"regtest":    netparams.RegressionNetParams.Name,
		"regression": netparams.RegressionNetParams.Name,
	}
	for input, want := range cases {
		p, err := netparams.ByName(input)
		require.NoError(t, err)
		require.Equal(t, want, p.Name)
	}
}

func TestByNameRejectsUnknown(t *testing.T) {
	_, err := netparams.ByName("moonnet")
	require.Error(t, err)
}
