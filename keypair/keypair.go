// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/fault"
)

// RawKeyPair - text version of seed and keys
type RawKeyPair struct {
	Seed       string            `json:"seed"`
	Account    account.PublicKey `json:"account"`
	PrivateKey string            `json:"private_key"`
}

// NewSeed - create a new seed from secure random data
func NewSeed(test bool) (string, error) {
	return newSeedFrom(rand.Reader, test)
}

func newSeedFrom(entropy io.Reader, test bool) (string, error) {
	seedCore := make([]byte, account.SecretKeyLength)
	n, err := io.ReadFull(entropy, seedCore)
	if nil != err {
		return "", err
	}
	if account.SecretKeyLength != n {
		return "", fault.ErrInvalidSeedLength
	}

	net := byte(0x00)
	if test {
		net = 0x01
	}
	packedSeed := append([]byte{}, account.SeedHeader...)
	packedSeed = append(packedSeed, net)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:account.SeedChecksumLength]...)

	return base58.Encode(packedSeed), nil
}

// MakeRawKeyPair - create new seed and generate public/private keys from it
func MakeRawKeyPair(test bool) (*RawKeyPair, *account.PrivateKey, error) {
	seed, err := NewSeed(test)
	if nil != err {
		return nil, nil, err
	}
	return MakeRawKeyPairFromSeed(seed)
}

// MakeRawKeyPairFromSeed - generate public/private keys from existing seed
func MakeRawKeyPairFromSeed(seed string) (*RawKeyPair, *account.PrivateKey, error) {

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	rawKeyPair := RawKeyPair{
		Seed:       seed,
		Account:    privateKey.Account(),
		PrivateKey: base58.Encode(privateKey.Bytes()),
	}

	return &rawKeyPair, privateKey, nil
}
