// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/donationd/account"
	donationVersion "github.com/bitmark-inc/donationd/version"
)

type metadata struct {
	connect  string
	plain    bool
	testnet  bool
	verbose  bool
	seed     string
	identity string
	key      *account.PrivateKey // loaded on demand
	e        io.Writer
	w        io.Writer
}

var version = donationVersion.Version

func main() {

	app := cli.NewApp()
	app.Name = "donation-cli"
	app.Usage = "client for the donationd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " donationd host/IP and port, `HOST:PORT`",
			EnvVar: "DONATION_CONNECT",
		},
		cli.BoolFlag{
			Name:  "plain, P",
			Usage: " connect without TLS",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " generate test network seeds",
		},
		cli.StringFlag{
			Name:   "seed, s",
			Value:  "",
			Usage:  " signing key `SEED`",
			EnvVar: "DONATION_SEED",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " read the seed from identity `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store it",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display donationd status",
			Action: runInfo,
		},
		{
			Name:      "initialize",
			Usage:     "create a bank, the signing key pays the rent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is the signing key",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "donate",
			Usage:     "donate lamports from the signing key to a bank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bank, b",
					Value: "",
					Usage: "*bank `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*lamports to donate `NUMBER`",
				},
			},
			Action: runDonate,
		},
		{
			Name:      "withdraw",
			Usage:     "withdraw everything above the reserve of the signing key's bank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "destination, d",
					Value: "",
					Usage: " receiving `ACCOUNT` default is the signing key",
				},
				cli.StringFlag{
					Name:  "bank, b",
					Value: "",
					Usage: " bank `ADDRESS` default is derived from the signing key",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "bank",
			Usage:     "display a bank",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+bank `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "+owner `ACCOUNT` default is the signing key",
				},
			},
			Action: runBank,
		},
		{
			Name:      "donations",
			Usage:     "list the donors of a bank",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "bank, b",
					Value: "",
					Usage: "*bank `ADDRESS`",
				},
			},
			Action: runDonations,
		},
		{
			Name:      "donation",
			Usage:     "display the total given by a donator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "donator, d",
					Value: "",
					Usage: " donator `ACCOUNT` default is the signing key",
				},
			},
			Action: runDonation,
		},
		{
			Name:      "balance",
			Usage:     "display lamports held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " `ACCOUNT` default is the signing key",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "credit an account, test chains only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " `ACCOUNT` default is the signing key",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*lamports to credit `NUMBER`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "events",
			Usage:     "display the event log",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first event `SEQUENCE`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runEvents,
		},
		{
			Name:  "version",
			Usage: "display donation-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("connect: cannot be blank")
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
		}

		c.App.Metadata["config"] = &metadata{
			connect:  connect,
			plain:    c.GlobalBool("plain"),
			testnet:  c.GlobalBool("testnet"),
			verbose:  verbose,
			seed:     c.GlobalString("seed"),
			identity: c.GlobalString("identity"),
			e:        e,
			w:        w,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
