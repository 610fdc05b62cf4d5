// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/storage"
)

// Runtime - Host backed by the storage pools
type Runtime struct {
	log      *logger.L
	chain    string
	rent     Rent
	accounts storage.Handle
	lamports storage.Handle
	nonces   storage.Handle
}

// New - create a runtime over the account data, balance and nonce pools
func New(log *logger.L, chainName string, rent Rent, accounts storage.Handle, lamports storage.Handle, nonces storage.Handle) *Runtime {
	return &Runtime{
		log:      log,
		chain:    chainName,
		rent:     rent,
		accounts: accounts,
		lamports: lamports,
		nonces:   nonces,
	}
}

// Begin - start the storage transaction
func (r *Runtime) Begin() (storage.Transaction, error) {
	return storage.NewDBTransaction()
}

// Balance - lamports held by an account, zero if never funded
func (r *Runtime) Balance(trx storage.Transaction, acct account.PublicKey) uint64 {
	var n uint64
	if nil == trx {
		n, _ = r.lamports.GetN(acct[:])
	} else {
		n, _ = trx.GetN(r.lamports, acct[:])
	}
	return n
}

// SetBalance - overwrite the lamports held by an account
func (r *Runtime) SetBalance(trx storage.Transaction, acct account.PublicKey, amount uint64) error {
	if nil == trx {
		return fault.ErrTransactionNotStarted
	}
	trx.PutN(r.lamports, acct[:], amount)
	return nil
}

// Transfer - move lamports between two accounts
func (r *Runtime) Transfer(trx storage.Transaction, from account.PublicKey, to account.PublicKey, amount uint64) error {
	if nil == trx {
		return fault.ErrTransactionNotStarted
	}

	fromBalance := r.Balance(trx, from)
	if fromBalance < amount {
		r.log.Debugf("transfer: %s has: %d  needs: %d", from, fromBalance, amount)
		return fault.ErrInsufficientFunds
	}
	if from == to {
		return nil
	}

	toBalance := r.Balance(trx, to)
	if toBalance+amount < toBalance {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(r.lamports, from[:], fromBalance-amount)
	trx.PutN(r.lamports, to[:], toBalance+amount)
	return nil
}

// MinimumReserve - rent exempt balance for size bytes of data
func (r *Runtime) MinimumReserve(size int) uint64 {
	return r.rent.MinimumBalance(size)
}

// CreateStorage - allocate a zeroed storage slot funded by the payer
//
// the payer transfers the minimum reserve for size bytes to the new
// address
func (r *Runtime) CreateStorage(trx storage.Transaction, address account.PublicKey, size int, payer account.PublicKey) error {
	if nil == trx {
		return fault.ErrTransactionNotStarted
	}
	if trx.Has(r.accounts, address[:]) {
		return fault.ErrAccountAlreadyExists
	}

	err := r.Transfer(trx, payer, address, r.MinimumReserve(size))
	if nil != err {
		return err
	}

	trx.Put(r.accounts, address[:], make([]byte, size))
	r.log.Debugf("create storage: %s  size: %d  payer: %s", address, size, payer)
	return nil
}

// Data - copy of the bytes in a storage slot, nil if not allocated
func (r *Runtime) Data(trx storage.Transaction, address account.PublicKey) []byte {
	var data []byte
	if nil == trx {
		data = r.accounts.Get(address[:])
	} else {
		data = trx.Get(r.accounts, address[:])
	}
	if nil == data {
		return nil
	}
	b := make([]byte, len(data))
	copy(b, data)
	return b
}

// Store - overwrite the start of an allocated slot
//
// the slot keeps its allocated size
func (r *Runtime) Store(trx storage.Transaction, address account.PublicKey, data []byte) error {
	if nil == trx {
		return fault.ErrTransactionNotStarted
	}

	current := trx.Get(r.accounts, address[:])
	if nil == current {
		return fault.ErrAccountNotFound
	}
	if len(data) > len(current) {
		return fault.ErrDataTooLarge
	}

	buffer := make([]byte, len(current))
	copy(buffer, data)
	trx.Put(r.accounts, address[:], buffer)
	return nil
}

// Scan - call f for every committed storage slot
func (r *Runtime) Scan(f func(account.PublicKey, []byte) error) error {
	return r.accounts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		address, err := account.PublicKeyFromBytes(key)
		if nil != err {
			r.log.Errorf("scan: invalid address: %x", key)
			return err
		}
		return f(address, value)
	})
}

// Authorize - true if the signer is the required key and signed the message
func (r *Runtime) Authorize(signer account.Authority, required account.PublicKey, message []byte) bool {
	if signer.Account != required {
		return false
	}
	err := signer.Verify(message)
	if nil != err {
		r.log.Debugf("authorize: %s: %s", signer.Account, err)
		return false
	}
	return true
}

// Nonce - the nonce the signer's next instruction must carry
func (r *Runtime) Nonce(trx storage.Transaction, signer account.PublicKey) uint64 {
	var n uint64
	if nil == trx {
		n, _ = r.nonces.GetN(signer[:])
	} else {
		n, _ = trx.GetN(r.nonces, signer[:])
	}
	return n
}

// SetNonce - record the signer's next nonce
func (r *Runtime) SetNonce(trx storage.Transaction, signer account.PublicKey, nonce uint64) error {
	if nil == trx {
		return fault.ErrTransactionNotStarted
	}
	trx.PutN(r.nonces, signer[:], nonce)
	return nil
}

// Airdrop - credit lamports from nowhere
//
// only possible on test chains
func (r *Runtime) Airdrop(acct account.PublicKey, amount uint64) (uint64, error) {
	if !chain.IsTesting(r.chain) {
		return 0, fault.ErrAirdropDisabled
	}
	if 0 == amount {
		return 0, fault.ErrInvalidAmount
	}

	trx, err := r.Begin()
	if nil != err {
		return 0, err
	}

	balance := r.Balance(trx, acct)
	if balance+amount < balance {
		trx.Abort()
		return 0, fault.ErrBalanceOverflow
	}
	balance += amount
	trx.PutN(r.lamports, acct[:], balance)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}

	r.log.Infof("airdrop: %d to: %s  balance: %d", amount, acct, balance)
	return balance, nil
}
