// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/bank"
)

// Initialize - create the bank of owner, paid for and signed by payer
func (client *Client) Initialize(owner account.PublicKey, payer *account.PrivateKey) (*bank.InitializeReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	nonce, err := client.Nonce(payer.Account())
	if nil != err {
		return nil, err
	}

	message := ledger.InitializeMessage(programId, owner, payer.Account(), nonce)
	arguments := bank.InitializeArguments{
		Owner: owner,
		Payer: payer.Authorise(message),
	}

	var reply bank.InitializeReply
	if err := client.call("Bank.Initialize", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Bank - read a bank by its address
func (client *Client) Bank(address account.PublicKey) (*bank.Reply, error) {
	var reply bank.Reply
	if err := client.call("Bank.Get", &bank.GetArguments{Address: address}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// FindBank - read the bank belonging to an owner
func (client *Client) FindBank(owner account.PublicKey) (*bank.Reply, error) {
	var reply bank.Reply
	if err := client.call("Bank.Find", &bank.FindArguments{Owner: owner}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Withdraw - move the withdrawable amount of a bank to destination
func (client *Client) Withdraw(address account.PublicKey, destination account.PublicKey, owner *account.PrivateKey) (*bank.WithdrawReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	nonce, err := client.Nonce(owner.Account())
	if nil != err {
		return nil, err
	}

	message := ledger.WithdrawMessage(programId, address, destination, owner.Account(), nonce)
	arguments := bank.WithdrawArguments{
		Bank:        address,
		Destination: destination,
		Owner:       owner.Authorise(message),
	}

	var reply bank.WithdrawReply
	if err := client.call("Bank.Withdraw", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Donations - donor totals bound to a bank
func (client *Client) Donations(address account.PublicKey) (*bank.DonationsReply, error) {
	var reply bank.DonationsReply
	if err := client.call("Bank.Donations", &bank.DonationsArguments{Bank: address}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
