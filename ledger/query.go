// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/donationd/account"
)

// Bank - committed bank record at an address
func (l *Ledger) Bank(address account.PublicKey) (*BaseAccount, error) {
	return unpackBaseAccount(l.host.Data(nil, address))
}

// BankFor - address and record of the bank belonging to owner
func (l *Ledger) BankFor(owner account.PublicKey) (account.PublicKey, *BaseAccount, error) {
	address, err := l.Address(owner)
	if nil != err {
		return account.PublicKey{}, nil, err
	}
	bank, err := l.Bank(address)
	if nil != err {
		return account.PublicKey{}, nil, err
	}
	return address, bank, nil
}

// Donation - committed total of a donor
func (l *Ledger) Donation(donator account.PublicKey) (*DonationData, error) {
	address, err := l.Address(donator)
	if nil != err {
		return nil, err
	}
	return unpackDonationData(l.host.Data(nil, address))
}

// DonationsFor - every donor record bound to a bank and their sum
func (l *Ledger) DonationsFor(bank account.PublicKey) ([]DonationData, uint64, error) {
	donations := []DonationData{}
	total := uint64(0)

	err := l.host.Scan(func(_ account.PublicKey, data []byte) error {
		if donationDataRecord != kindOf(data) {
			return nil
		}
		d, err := unpackDonationData(data)
		if nil != err {
			return err
		}
		if d.DonationBank == bank {
			donations = append(donations, *d)
			total = saturatingAdd(total, d.Amount)
		}
		return nil
	})
	if nil != err {
		return nil, 0, err
	}
	return donations, total, nil
}

// Available - balance, reserve and withdrawable amount of a bank
func (l *Ledger) Available(bank account.PublicKey) (uint64, uint64, uint64, error) {
	_, err := l.Bank(bank)
	if nil != err {
		return 0, 0, 0, err
	}
	balance := l.host.Balance(nil, bank)
	reserve := l.host.MinimumReserve(BaseAccountSize)
	return balance, reserve, saturatingSub(balance, reserve), nil
}
