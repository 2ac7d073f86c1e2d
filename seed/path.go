// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package seed

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	"github.com/btcsuite/electrumwallet/walleterr"
)

// BuildAccountPath assembles the absolute derivation path for an account,
// combining the base path m/<bip>'/0' with the caller-supplied tail. A
// tail beginning with "m/" is used verbatim (absolute); a tail beginning
// with "/" is appended to the base with the slash stripped; any other
// tail is appended directly, per spec.md §4.1.
func BuildAccountPath(bip uint32, tail string) string {
	if strings.HasPrefix(tail, "m/") || tail == "m" {
		return tail
	}
	base := "m/" + strconv.FormatUint(uint64(bip), 10) + "'/0'"
	tail = strings.TrimPrefix(tail, "/")
	if tail == "" {
		return base
	}
	return base + "/" + tail
}

// DefaultAccountPath builds the standard account path m/<bip>'/0'/0'/0/<index>.
func DefaultAccountPath(bip uint32, index uint32) string {
	return BuildAccountPath(bip, "0'/0/"+strconv.FormatUint(uint64(index), 10))
}

// ParsePath splits an absolute derivation path ("m/84'/0'/0'/0/0") into
// its ordered list of BIP-32 child indices, with the hardened bit
// (hdkeychain.HardenedKeyStart) applied to segments carrying a trailing
// apostrophe. It fails with ErrInvalidPath when the path does not start
// with "m", or any segment is not a plain non-negative integer optionally
// followed by "'".
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, walleterr.New(walleterr.ErrInvalidPath,
			"derivation path must start with \"m\"")
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := strings.HasSuffix(seg, "'")
		numPart := strings.TrimSuffix(seg, "'")

		n, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, walleterr.Wrap(walleterr.ErrInvalidPath,
				"invalid path segment \""+seg+"\"", err)
		}
		if n >= hdkeychain.HardenedKeyStart {
			return nil, walleterr.New(walleterr.ErrInvalidPath,
				"path segment \""+seg+"\" out of range")
		}
		if hardened {
			n += hdkeychain.HardenedKeyStart
		}
		indices = append(indices, uint32(n))
	}
	return indices, nil
}
