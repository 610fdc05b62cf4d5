// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/donationd/account"
)

// instruction tags
const (
	initializeTag = "initialize"
	donateTag     = "donate"
	withdrawTag   = "withdraw"
)

// message layout: program id ++ tag ++ 0x00 ++ fields ++ nonce
//
// nonce is the signer's current host nonce, so each signed message
// is accepted once
func message(programId account.PublicKey, tag string, nonce uint64, fields ...[]byte) []byte {
	buffer := append([]byte{}, programId[:]...)
	buffer = append(buffer, tag...)
	buffer = append(buffer, 0x00)
	for _, f := range fields {
		buffer = append(buffer, f...)
	}
	return append(buffer, uint64Bytes(nonce)...)
}

func uint64Bytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, n)
	return b
}

// InitializeMessage - what the payer signs to create a bank for owner
func InitializeMessage(programId account.PublicKey, owner account.PublicKey, payer account.PublicKey, nonce uint64) []byte {
	return message(programId, initializeTag, nonce, owner[:], payer[:])
}

// DonateMessage - what a donor signs to give amount to a bank
func DonateMessage(programId account.PublicKey, bank account.PublicKey, donator account.PublicKey, amount uint64, nonce uint64) []byte {
	return message(programId, donateTag, nonce, bank[:], donator[:], uint64Bytes(amount))
}

// WithdrawMessage - what the bank owner signs to drain a bank
func WithdrawMessage(programId account.PublicKey, bank account.PublicKey, destination account.PublicKey, owner account.PublicKey, nonce uint64) []byte {
	return message(programId, withdrawTag, nonce, bank[:], destination[:], owner[:])
}
