// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/rpc/node"
)

// Info - request status from donationd
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	if nil == client.programId {
		id := reply.ProgramId
		client.programId = &id
	}
	return &reply, nil
}

// ProgramId - the id the node derives addresses with, fetched once
func (client *Client) ProgramId() (account.PublicKey, error) {
	if nil != client.programId {
		return *client.programId, nil
	}
	info, err := client.Info()
	if nil != err {
		return account.PublicKey{}, err
	}
	return info.ProgramId, nil
}

// Events - read a page of the event log
func (client *Client) Events(start uint64, count int) (*node.EventsReply, error) {
	arguments := node.EventsArguments{
		Start: start,
		Count: count,
	}
	var reply node.EventsReply
	if err := client.call("Node.Events", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - lamports held by an account
func (client *Client) Balance(acct account.PublicKey) (*node.BalanceReply, error) {
	var reply node.BalanceReply
	if err := client.call("Node.Balance", &node.BalanceArguments{Account: acct}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Nonce - the nonce to sign the account's next instruction with
func (client *Client) Nonce(acct account.PublicKey) (uint64, error) {
	var reply node.NonceReply
	if err := client.call("Node.Nonce", &node.NonceArguments{Account: acct}, &reply); nil != err {
		return 0, err
	}
	return reply.Nonce, nil
}

// Airdrop - credit an account on a test chain
func (client *Client) Airdrop(acct account.PublicKey, amount uint64) (*node.BalanceReply, error) {
	arguments := node.AirdropArguments{
		Account: acct,
		Amount:  amount,
	}
	var reply node.BalanceReply
	if err := client.call("Node.Airdrop", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
