// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/derive"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/host"
	"github.com/bitmark-inc/donationd/storage"
)

// Operations - everything the ledger offers to its clients
type Operations interface {
	ProgramId() account.PublicKey
	Address(account.PublicKey) (account.PublicKey, error)
	Initialize(account.PublicKey, account.Authority) (account.PublicKey, *BaseAccount, error)
	Donate(account.Authority, account.PublicKey, uint64) (*event.Donation, error)
	Withdraw(account.PublicKey, account.PublicKey, account.Authority) (*event.Withdrawal, error)
	Bank(account.PublicKey) (*BaseAccount, error)
	BankFor(account.PublicKey) (account.PublicKey, *BaseAccount, error)
	Donation(account.PublicKey) (*DonationData, error)
	DonationsFor(account.PublicKey) ([]DonationData, uint64, error)
	Available(account.PublicKey) (uint64, uint64, uint64, error)
}

// Ledger - the donation program
type Ledger struct {
	sync.Mutex
	log       *logger.L
	host      host.Host
	programId account.PublicKey
	emitter   event.Emitter
}

// New - create a ledger on a host
func New(log *logger.L, h host.Host, programId account.PublicKey, emitter event.Emitter) *Ledger {
	return &Ledger{
		log:       log,
		host:      h,
		programId: programId,
		emitter:   emitter,
	}
}

var _ Operations = (*Ledger)(nil)

// ProgramId - the id all addresses are derived with
func (l *Ledger) ProgramId() account.PublicKey {
	return l.programId
}

// Address - program address of the record belonging to a key
//
// banks are found from the owner key, donor totals from the donor key
func (l *Ledger) Address(key account.PublicKey) (account.PublicKey, error) {
	address, _, err := derive.FindProgramAddress([][]byte{key[:]}, l.programId)
	return address, err
}

// run f in a transaction, committing only if it succeeds
func (l *Ledger) transaction(f func(storage.Transaction) error) error {
	trx, err := l.host.Begin()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// authorise - signer must be required and have signed the message
// built for its current nonce; the nonce is consumed in trx
func (l *Ledger) authorise(trx storage.Transaction, signer account.Authority, required account.PublicKey, message func(nonce uint64) []byte) error {
	nonce := l.host.Nonce(trx, signer.Account)
	if !l.host.Authorize(signer, required, message(nonce)) {
		return fault.ErrAuthorisationFailure
	}
	return l.host.SetNonce(trx, signer.Account, nonce+1)
}

func (l *Ledger) emit(item event.Record) {
	if nil == l.emitter {
		return
	}
	l.emitter.Emit(item)
}
