// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/donationd/fault"
)

// Signature - the type for a signature
type Signature []byte

// String - Base58 form for the fmt package (%s)
func (signature Signature) String() string {
	return base58.Encode(signature)
}

// GoString - for the fmt package (%#v)
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	sig, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*signature = sig
	return nil
}

// Authority - a key holder's approval of one instruction
//
// the signature covers the canonical instruction message built by
// the ledger for the operation being authorised
type Authority struct {
	Account   PublicKey `json:"account"`
	Signature Signature `json:"signature"`
}

// Verify - check that the authority signed the message
func (authority Authority) Verify(message []byte) error {
	return authority.Account.CheckSignature(message, authority.Signature)
}
