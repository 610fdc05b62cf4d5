// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/donationd/command/donation-cli/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acct, err := m.checkAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Balance(acct)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runAirdrop(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acct, err := m.checkAccount("account", c.String("account"))
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Airdrop(acct, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
