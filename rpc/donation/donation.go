// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package donation

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/ratelimit"
)

const (
	rateLimitDonation = 200
	rateBurstDonation = 100
)

// Donation - type for the RPC
type Donation struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Operations
}

// New - create the donation service
func New(log *logger.L, l ledger.Operations) *Donation {
	return &Donation{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitDonation, rateBurstDonation),
		Ledger:  l,
	}
}

// DonateArguments - arguments for RPC
type DonateArguments struct {
	Donator account.Authority `json:"donator"`
	Bank    account.PublicKey `json:"bank"`
	Amount  uint64            `json:"amount,string"`
}

// DonateReply - the emitted donation
type DonateReply struct {
	Donation *event.Donation `json:"donation"`
}

// Donate - transfer value from the donator to a bank
func (donation *Donation) Donate(arguments *DonateArguments, reply *DonateReply) error {

	if err := ratelimit.Limit(donation.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Donator.Account.IsZero() || arguments.Bank.IsZero() {
		return fault.ErrMissingParameters
	}

	log := donation.Log
	log.Infof("Donation.Donate: donator: %s  bank: %s  amount: %d", arguments.Donator.Account, arguments.Bank, arguments.Amount)

	d, err := donation.Ledger.Donate(arguments.Donator, arguments.Bank, arguments.Amount)
	if nil != err {
		log.Debugf("Donation.Donate: error: %s", err)
		return err
	}

	reply.Donation = d
	return nil
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Donator account.PublicKey `json:"donator"`
}

// GetReply - the donor total and where it is stored
type GetReply struct {
	Address      account.PublicKey `json:"address"`
	DonationBank account.PublicKey `json:"donationBank"`
	Donator      account.PublicKey `json:"donator"`
	Amount       uint64            `json:"amount,string"`
}

// Get - read the cumulative total of a donator
func (donation *Donation) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(donation.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	address, err := donation.Ledger.Address(arguments.Donator)
	if nil != err {
		return err
	}

	record, err := donation.Ledger.Donation(arguments.Donator)
	if nil != err {
		return err
	}

	reply.Address = address
	reply.DonationBank = record.DonationBank
	reply.Donator = record.Donator
	reply.Amount = record.Amount
	return nil
}
