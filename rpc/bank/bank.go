// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bank

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/ratelimit"
)

// Bank
// ----

const (
	rateLimitBank = 200
	rateBurstBank = 100
)

// Bank - type for the RPC
type Bank struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Operations
}

// New - create the bank service
func New(log *logger.L, l ledger.Operations) *Bank {
	return &Bank{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBank, rateBurstBank),
		Ledger:  l,
	}
}

// Bank initialize
// ---------------

// InitializeArguments - arguments for RPC
type InitializeArguments struct {
	Owner account.PublicKey `json:"owner"`
	Payer account.Authority `json:"payer"`
}

// InitializeReply - result of initialize RPC
type InitializeReply struct {
	Address account.PublicKey `json:"address"`
	Owner   account.PublicKey `json:"owner"`
}

// Initialize - create the bank belonging to an owner
func (bank *Bank) Initialize(arguments *InitializeArguments, reply *InitializeReply) error {

	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.IsZero() || arguments.Payer.Account.IsZero() {
		return fault.ErrMissingParameters
	}

	log := bank.Log
	log.Infof("Bank.Initialize: owner: %s  payer: %s", arguments.Owner, arguments.Payer.Account)

	address, record, err := bank.Ledger.Initialize(arguments.Owner, arguments.Payer)
	if nil != err {
		log.Debugf("Bank.Initialize: error: %s", err)
		return err
	}

	reply.Address = address
	reply.Owner = record.Owner
	return nil
}

// Bank get / find
// ---------------

// GetArguments - bank by its address
type GetArguments struct {
	Address account.PublicKey `json:"address"`
}

// FindArguments - bank by its owner
type FindArguments struct {
	Owner account.PublicKey `json:"owner"`
}

// Reply - state of one bank
type Reply struct {
	Address      account.PublicKey `json:"address"`
	Owner        account.PublicKey `json:"owner"`
	Balance      uint64            `json:"balance,string"`
	Reserve      uint64            `json:"reserve,string"`
	Withdrawable uint64            `json:"withdrawable,string"`
}

// Get - read a bank and its balances
func (bank *Bank) Get(arguments *GetArguments, reply *Reply) error {

	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return bank.fill(arguments.Address, reply)
}

// Find - read the bank derived from an owner
func (bank *Bank) Find(arguments *FindArguments, reply *Reply) error {

	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	address, _, err := bank.Ledger.BankFor(arguments.Owner)
	if nil != err {
		return err
	}
	return bank.fill(address, reply)
}

func (bank *Bank) fill(address account.PublicKey, reply *Reply) error {
	record, err := bank.Ledger.Bank(address)
	if nil != err {
		return err
	}
	balance, reserve, withdrawable, err := bank.Ledger.Available(address)
	if nil != err {
		return err
	}

	reply.Address = address
	reply.Owner = record.Owner
	reply.Balance = balance
	reply.Reserve = reserve
	reply.Withdrawable = withdrawable
	return nil
}

// Bank withdraw
// -------------

// WithdrawArguments - arguments for RPC
type WithdrawArguments struct {
	Bank        account.PublicKey `json:"bank"`
	Destination account.PublicKey `json:"destination"`
	Owner       account.Authority `json:"owner"`
}

// WithdrawReply - the emitted withdrawal
type WithdrawReply struct {
	Withdrawal *event.Withdrawal `json:"withdrawal"`
}

// Withdraw - move everything above the reserve to the destination
func (bank *Bank) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Owner.Account.IsZero() {
		return fault.ErrMissingParameters
	}

	log := bank.Log
	log.Infof("Bank.Withdraw: bank: %s  destination: %s", arguments.Bank, arguments.Destination)

	w, err := bank.Ledger.Withdraw(arguments.Bank, arguments.Destination, arguments.Owner)
	if nil != err {
		log.Debugf("Bank.Withdraw: error: %s", err)
		return err
	}

	reply.Withdrawal = w
	return nil
}

// Bank donations
// --------------

// DonationsArguments - arguments for RPC
type DonationsArguments struct {
	Bank account.PublicKey `json:"bank"`
}

// DonationsReply - every donor total bound to the bank
type DonationsReply struct {
	Donations []ledger.DonationData `json:"donations"`
	Total     uint64                `json:"total,string"`
}

// Donations - list the donor totals of a bank
func (bank *Bank) Donations(arguments *DonationsArguments, reply *DonationsReply) error {

	if err := ratelimit.Limit(bank.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	donations, total, err := bank.Ledger.DonationsFor(arguments.Bank)
	if nil != err {
		return err
	}

	reply.Donations = donations
	reply.Total = total
	return nil
}
