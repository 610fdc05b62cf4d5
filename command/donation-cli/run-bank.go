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

func runInitialize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := m.signingKey()
	if nil != err {
		return err
	}

	owner, err := m.checkAccount("owner", c.String("owner"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "payer: %s\n", payer.Account())
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Initialize(owner, payer)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runWithdraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.signingKey()
	if nil != err {
		return err
	}

	destination, err := m.checkAccount("destination", c.String("destination"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	address := c.String("bank")
	if "" == address {
		bank, err := client.FindBank(owner.Account())
		if nil != err {
			return err
		}
		address = bank.Address.String()
	}
	bank, err := checkRequiredAccount("bank", address)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bank: %s\n", bank)
		fmt.Fprintf(m.e, "destination: %s\n", destination)
	}

	response, err := client.Withdraw(bank, destination, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runBank(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address := c.String("address")
	ownerText := c.String("owner")
	if "" != address && "" != ownerText {
		return fmt.Errorf("only one of address or owner may be given")
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	if "" != address {
		bank, err := checkRequiredAccount("address", address)
		if nil != err {
			return err
		}
		response, err := client.Bank(bank)
		if nil != err {
			return err
		}
		return printJson(m.w, response)
	}

	owner, err := m.checkAccount("owner", ownerText)
	if nil != err {
		return err
	}
	response, err := client.FindBank(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, response)
}

func runDonations(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	bank, err := checkRequiredAccount("bank", c.String("bank"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Donations(bank)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
