// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/donationd/fault"
)

// PublicKeySize - number of bytes in a public key or address
const PublicKeySize = ed25519.PublicKeySize

// PublicKey - an account identity or a storage address
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes - copy a byte slice into a public key
func PublicKeyFromBytes(buffer []byte) (PublicKey, error) {
	k := PublicKey{}
	if PublicKeySize != len(buffer) {
		return k, fault.ErrInvalidKeyLength
	}
	copy(k[:], buffer)
	return k, nil
}

// PublicKeyFromBase58 - decode a Base58 string into a public key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	buffer, err := base58.Decode(s)
	if nil != err || 0 == len(buffer) {
		return PublicKey{}, fault.ErrCannotDecodeAccount
	}
	return PublicKeyFromBytes(buffer)
}

// Bytes - byte slice copy of the key
func (k PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, k[:])
	return b
}

// IsZero - true for the all zero key
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

// String - Base58 form for the fmt package (%s, %v)
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// GoString - for the fmt package (%#v)
func (k PublicKey) GoString() string {
	return "<account:" + k.String() + ">"
}

// MarshalText - convert a key to its Base58 JSON form
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText - convert Base58 JSON text to a key
func (k *PublicKey) UnmarshalText(s []byte) error {
	a, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*k = a
	return nil
}

// CheckSignature - verify an ed25519 signature made by this key
func (k PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(k[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
