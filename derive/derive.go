// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derive - program derived addresses
//
// A program derived address is a deterministic 32 byte storage address
// computed from a list of seeds and the program id.  Only hashes that
// are not valid ed25519 points are accepted, so nobody can hold a
// private key for such an address and only the program can write to it.
package derive

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/fault"
)

// limits on seeds
const (
	MaximumSeeds      = 16
	MaximumSeedLength = 32
)

// appended to every hash so that a derived address cannot be
// confused with any other digest of the same data
var marker = []byte("ProgramDerivedAddress")

// ProgramAddress - hash the seeds into an address
//
// fails if the seeds are out of range or if the result lies on the
// curve; callers normally use FindProgramAddress instead
func ProgramAddress(seeds [][]byte, programId account.PublicKey) (account.PublicKey, error) {
	return programAddress(seeds, programId, IsOnCurve)
}

// FindProgramAddress - search for a bump seed that moves the address
// off the curve
//
// the bump is appended to the seeds and tried from 255 down to 0; the
// first viable address and its bump are returned
func FindProgramAddress(seeds [][]byte, programId account.PublicKey) (account.PublicKey, byte, error) {
	return findProgramAddress(seeds, programId, IsOnCurve)
}

// IsOnCurve - true if the bytes decode to an ed25519 point
func IsOnCurve(b []byte) bool {
	if account.PublicKeySize != len(b) {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

func programAddress(seeds [][]byte, programId account.PublicKey, onCurve func([]byte) bool) (account.PublicKey, error) {
	if len(seeds) > MaximumSeeds {
		return account.PublicKey{}, fault.ErrInvalidSeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaximumSeedLength {
			return account.PublicKey{}, fault.ErrInvalidSeeds
		}
		h.Write(seed)
	}
	h.Write(programId[:])
	h.Write(marker)

	digest := h.Sum(nil)
	if onCurve(digest) {
		return account.PublicKey{}, fault.ErrAddressOnCurve
	}
	return account.PublicKeyFromBytes(digest)
}

func findProgramAddress(seeds [][]byte, programId account.PublicKey, onCurve func([]byte) bool) (account.PublicKey, byte, error) {
	if len(seeds) >= MaximumSeeds {
		return account.PublicKey{}, 0, fault.ErrInvalidSeeds
	}

	bumped := make([][]byte, len(seeds)+1)
	copy(bumped, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		bumped[len(seeds)] = []byte{byte(bump)}

		address, err := programAddress(bumped, programId, onCurve)
		switch err {
		case nil:
			return address, byte(bump), nil
		case fault.ErrAddressOnCurve:
			continue
		default:
			return account.PublicKey{}, 0, err
		}
	}
	return account.PublicKey{}, 0, fault.ErrAddressDerivation
}
