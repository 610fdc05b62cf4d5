// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/storage"
)

// Host - services the ledger needs from its environment
//
// a nil transaction reads committed state
type Host interface {
	Begin() (storage.Transaction, error)

	Transfer(storage.Transaction, account.PublicKey, account.PublicKey, uint64) error
	Balance(storage.Transaction, account.PublicKey) uint64
	SetBalance(storage.Transaction, account.PublicKey, uint64) error
	MinimumReserve(int) uint64

	CreateStorage(storage.Transaction, account.PublicKey, int, account.PublicKey) error
	Data(storage.Transaction, account.PublicKey) []byte
	Store(storage.Transaction, account.PublicKey, []byte) error
	Scan(func(account.PublicKey, []byte) error) error

	Authorize(account.Authority, account.PublicKey, []byte) bool
	Nonce(storage.Transaction, account.PublicKey) uint64
	SetNonce(storage.Transaction, account.PublicKey, uint64) error
}
