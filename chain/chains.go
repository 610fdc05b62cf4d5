// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Donation = "donation"
	Testing  = "testing"
	Local    = "local"
)

// DefaultProgramId - Base58 program id used to derive addresses
// unless a configuration overrides it
const DefaultProgramId = "42bUpNbzyBA4wPz3eFTRkhXq7odYdt9wv8jKeucS869p"

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Donation, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - chains where test only operations (e.g. airdrop) are allowed
func IsTesting(name string) bool {
	switch name {
	case Testing, Local:
		return true
	default:
		return false
	}
}
