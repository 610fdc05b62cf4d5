// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package donation_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/donation"
	"github.com/bitmark-inc/donationd/rpc/fixtures"
	"github.com/bitmark-inc/donationd/rpc/mocks"
)

func TestDonationDonate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockOperations(ctl)
	d := donation.New(logger.New(fixtures.LogCategory), l)

	arg := donation.DonateArguments{
		Donator: account.Authority{
			Account:   fixtures.Key(5),
			Signature: account.Signature{1, 2, 3, 4},
		},
		Bank:   fixtures.Key(2),
		Amount: 100,
	}
	e := &event.Donation{
		DonationBank: arg.Bank,
		Donator:      arg.Donator.Account,
		Amount:       arg.Amount,
	}

	l.EXPECT().Donate(arg.Donator, arg.Bank, arg.Amount).Return(e, nil).Times(1)

	var reply donation.DonateReply
	err := d.Donate(&arg, &reply)
	assert.Nil(t, err, "wrong Donate")
	assert.Equal(t, e, reply.Donation, "wrong donation")
}

func TestDonationDonateErrors(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockOperations(ctl)
	d := donation.New(logger.New(fixtures.LogCategory), l)

	var reply donation.DonateReply
	err := d.Donate(&donation.DonateArguments{Bank: fixtures.Key(2), Amount: 1}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "missing donator accepted")

	arg := donation.DonateArguments{
		Donator: account.Authority{Account: fixtures.Key(5)},
		Bank:    fixtures.Key(2),
		Amount:  0,
	}
	l.EXPECT().Donate(arg.Donator, arg.Bank, uint64(0)).Return(nil, fault.ErrInvalidAmount).Times(1)

	err = d.Donate(&arg, &reply)
	assert.Equal(t, fault.ErrInvalidAmount, err, "wrong error")
	assert.Nil(t, reply.Donation, "reply filled on error")
}

func TestDonationGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockOperations(ctl)
	d := donation.New(logger.New(fixtures.LogCategory), l)

	donator := fixtures.Key(5)
	address := fixtures.Key(7)
	record := &ledger.DonationData{
		DonationBank: fixtures.Key(2),
		Donator:      donator,
		Amount:       350,
	}

	l.EXPECT().Address(donator).Return(address, nil).Times(1)
	l.EXPECT().Donation(donator).Return(record, nil).Times(1)

	var reply donation.GetReply
	err := d.Get(&donation.GetArguments{Donator: donator}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, address, reply.Address, "wrong address")
	assert.Equal(t, record.DonationBank, reply.DonationBank, "wrong bank")
	assert.Equal(t, donator, reply.Donator, "wrong donator")
	assert.Equal(t, uint64(350), reply.Amount, "wrong amount")

	l.EXPECT().Address(donator).Return(address, nil).Times(1)
	l.EXPECT().Donation(donator).Return(nil, fault.ErrAccountNotFound).Times(1)

	err = d.Get(&donation.GetArguments{Donator: donator}, &donation.GetReply{})
	assert.Equal(t, fault.ErrAccountNotFound, err, "wrong error")
}
