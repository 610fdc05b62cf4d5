// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/donation"
)

// Donate - transfer amount from the donator to a bank
func (client *Client) Donate(donator *account.PrivateKey, address account.PublicKey, amount uint64) (*donation.DonateReply, error) {
	programId, err := client.ProgramId()
	if nil != err {
		return nil, err
	}

	nonce, err := client.Nonce(donator.Account())
	if nil != err {
		return nil, err
	}

	message := ledger.DonateMessage(programId, address, donator.Account(), amount, nonce)
	arguments := donation.DonateArguments{
		Donator: donator.Authorise(message),
		Bank:    address,
		Amount:  amount,
	}

	var reply donation.DonateReply
	if err := client.call("Donation.Donate", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Donation - the cumulative total of a donator
func (client *Client) Donation(donator account.PublicKey) (*donation.GetReply, error) {
	var reply donation.GetReply
	if err := client.call("Donation.Get", &donation.GetArguments{Donator: donator}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
