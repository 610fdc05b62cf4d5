// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/donationd/command/donation-cli/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.plain, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Events(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}
