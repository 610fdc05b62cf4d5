// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/donationd/command/donation-cli/rpccalls"
)

func runDonate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	donator, err := m.signingKey()
	if nil != err {
		return err
	}

	bank, err := checkRequiredAccount("bank", c.String("bank"))
	if nil != err {
		return err
	}

	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "donator: %s\n", donator.Account())
		fmt.Fprintf(m.e, "bank: %s\n", bank)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Donate(donator, bank, amount)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runDonation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	donator, err := m.checkAccount("donator", c.String("donator"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Donation(donator)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
