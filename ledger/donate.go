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

// Donate - move amount from the donor to a bank and add it to the
// donor total
//
// the first donation binds the donor record to that bank, later
// donations to other banks still add to the same record
func (l *Ledger) Donate(donator account.Authority, bank account.PublicKey, amount uint64) (*event.Donation, error) {
	if 0 == amount {
		return nil, fault.ErrInvalidAmount
	}

	l.Lock()
	defer l.Unlock()

	address, err := l.Address(donator.Account)
	if nil != err {
		return nil, err
	}

	var total uint64
	err = l.transaction(func(trx storage.Transaction) error {
		err := l.authorise(trx, donator, donator.Account, func(nonce uint64) []byte {
			return DonateMessage(l.programId, bank, donator.Account, amount, nonce)
		})
		if nil != err {
			return err
		}

		_, err = unpackBaseAccount(l.host.Data(trx, bank))
		if nil != err {
			return err
		}

		err = l.host.Transfer(trx, donator.Account, bank, amount)
		if nil != err {
			return err
		}

		record, err := l.donationData(trx, address, donator.Account)
		if nil != err {
			return err
		}

		if 0 == record.Amount {
			record.DonationBank = bank
			record.Donator = donator.Account
		}
		record.Amount = saturatingAdd(record.Amount, amount)
		total = record.Amount

		return l.host.Store(trx, address, record.Pack())
	})
	if nil != err {
		l.log.Warnf("donate: donator: %s  bank: %s  amount: %d  error: %s", donator.Account, bank, amount, err)
		return nil, err
	}

	l.log.Infof("donate: donator: %s  bank: %s  amount: %d  total: %d", donator.Account, bank, amount, total)

	e := &event.Donation{
		DonationBank: bank,
		Donator:      donator.Account,
		Amount:       amount,
	}
	l.emit(e)
	return e, nil
}

// load the donor record, allocating it at the donor's expense when absent
func (l *Ledger) donationData(trx storage.Transaction, address account.PublicKey, donator account.PublicKey) (*DonationData, error) {
	data := l.host.Data(trx, address)
	if nil == data {
		err := l.host.CreateStorage(trx, address, DonationDataSize, donator)
		if nil != err {
			return nil, err
		}
		return &DonationData{}, nil
	}

	if donationDataRecord != kindOf(data) {
		return nil, fault.ErrAddressCollision
	}
	return unpackDonationData(data)
}
