// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/storage"
)

// Withdraw - pay everything above the reserve of a bank to destination
//
// afterwards the bank holds exactly the amount withdrawn and the
// reserve is not restored
func (l *Ledger) Withdraw(bank account.PublicKey, destination account.PublicKey, owner account.Authority) (*event.Withdrawal, error) {
	l.Lock()
	defer l.Unlock()

	var withdrawable uint64
	err := l.transaction(func(trx storage.Transaction) error {
		record, err := unpackBaseAccount(l.host.Data(trx, bank))
		if nil != err {
			return err
		}

		err = l.authorise(trx, owner, record.Owner, func(nonce uint64) []byte {
			return WithdrawMessage(l.programId, bank, destination, owner.Account, nonce)
		})
		if nil != err {
			return err
		}

		_, err = unpackBaseAccount(l.host.Data(trx, destination))
		if nil != err {
			return err
		}

		reserve := l.host.MinimumReserve(BaseAccountSize)
		withdrawable = saturatingSub(l.host.Balance(trx, bank), reserve)
		if 0 == withdrawable {
			return fault.ErrNoFundsForWithdrawal
		}

		destinationBalance := l.host.Balance(trx, destination)
		if destinationBalance+withdrawable < destinationBalance {
			return fault.ErrBalanceOverflow
		}

		err = l.host.SetBalance(trx, destination, destinationBalance+withdrawable)
		if nil != err {
			return err
		}
		return l.host.SetBalance(trx, bank, withdrawable)
	})
	if nil != err {
		l.log.Warnf("withdraw: bank: %s  destination: %s  signer: %s  error: %s", bank, destination, owner.Account, err)
		return nil, err
	}

	l.log.Infof("withdraw: bank: %s  destination: %s  amount: %d", bank, destination, withdrawable)

	e := &event.Withdrawal{
		DonationBank: bank,
		Destination:  destination,
		Amount:       withdrawable,
	}
	l.emit(e)
	return e, nil
}
