// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/donationd/fault"
)

// seed parameters
var (
	SeedHeader = []byte{0x5a, 0xfe, 0x01}

	seedNonce = [24]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	authSeedIndex = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

// seed layout: header ++ network ++ secret key ++ checksum
const (
	SecretKeyLength    = 32
	SeedChecksumLength = 4

	seedPrefixLength = 1
	seedLength       = 3 + seedPrefixLength + SecretKeyLength + SeedChecksumLength
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	Test bool
	key  ed25519.PrivateKey
}

// PrivateKeyFromBase58Seed - decode a Base58 seed and expand it
// into a signing key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || 0 == len(seed) {
		return nil, fault.ErrCannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}

	if !bytes.Equal(SeedHeader, seed[:len(SeedHeader)]) {
		return nil, fault.ErrInvalidSeedHeader
	}

	checksumStart := len(seed) - SeedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:SeedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	// first byte after the header is test/live indication
	isTest := 0x01 == seed[len(SeedHeader)]

	var secretKey [SecretKeyLength]byte
	copy(secretKey[:], seed[len(SeedHeader)+seedPrefixLength:checksumStart])

	encrypted := secretbox.Seal([]byte{}, authSeedIndex[:], &seedNonce, &secretKey)

	return &PrivateKey{
		Test: isTest,
		key:  ed25519.NewKeyFromSeed(encrypted[:ed25519.SeedSize]),
	}, nil
}

// PrivateKeyFromBytes - wrap a 64 byte ed25519 private key
func PrivateKeyFromBytes(buffer []byte, test bool) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	key := make([]byte, ed25519.PrivateKeySize)
	copy(key, buffer)
	return &PrivateKey{
		Test: test,
		key:  key,
	}, nil
}

// Account - the public key belonging to this private key
func (privateKey *PrivateKey) Account() PublicKey {
	k := PublicKey{}
	copy(k[:], privateKey.key[ed25519.PrivateKeySize-PublicKeySize:])
	return k
}

// Bytes - raw private key bytes
func (privateKey *PrivateKey) Bytes() []byte {
	b := make([]byte, len(privateKey.key))
	copy(b, privateKey.key)
	return b
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}

// Authorise - sign an instruction message as an authority
func (privateKey *PrivateKey) Authorise(message []byte) Authority {
	return Authority{
		Account:   privateKey.Account(),
		Signature: privateKey.Sign(message),
	}
}

// GoString - never show the key material with %#v
func (privateKey *PrivateKey) GoString() string {
	return "<private-key:" + privateKey.Account().String() + ">"
}
