// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/storage"
)

// Initialize - create the bank of owner, the payer funds its reserve
//
// fails if the owner already has a bank
func (l *Ledger) Initialize(owner account.PublicKey, payer account.Authority) (account.PublicKey, *BaseAccount, error) {
	l.Lock()
	defer l.Unlock()

	address, err := l.Address(owner)
	if nil != err {
		return account.PublicKey{}, nil, err
	}

	bank := &BaseAccount{
		Owner: owner,
	}

	err = l.transaction(func(trx storage.Transaction) error {
		err := l.authorise(trx, payer, payer.Account, func(nonce uint64) []byte {
			return InitializeMessage(l.programId, owner, payer.Account, nonce)
		})
		if nil != err {
			return err
		}

		if existing := l.host.Data(trx, address); nil != existing {
			if baseAccountRecord == kindOf(existing) {
				return fault.ErrAccountAlreadyExists
			}
			return fault.ErrAddressCollision
		}

		err = l.host.CreateStorage(trx, address, BaseAccountSize, payer.Account)
		if nil != err {
			return err
		}
		return l.host.Store(trx, address, bank.Pack())
	})
	if nil != err {
		l.log.Warnf("initialize: owner: %s  payer: %s  error: %s", owner, payer.Account, err)
		return account.PublicKey{}, nil, err
	}

	l.log.Infof("initialize: bank: %s  owner: %s  payer: %s", address, owner, payer.Account)
	return address, bank, nil
}
