// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/host"
	"github.com/bitmark-inc/donationd/keypair"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/certificate"
	"github.com/bitmark-inc/donationd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	identityFilename = "identity.json"

	maximumEventDump = 1000
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "generate-identity", "identity":
		identityFile := getFilenameWithDirectory(arguments, identityFilename)
		test := len(arguments) >= 2 && chain.IsTesting(arguments[1])

		if err := makeIdentity(test, identityFile); nil != err {
			fmt.Printf("generate identity: %q error: %s\n", identityFile, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated identity: %q\n", identityFile)

	case "start", "run":
		return false // continue processing

	case "events", "e", "bank", "b", "airdrop":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [--set=NAME=VALUE...] [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  generate-identity [DIR [CHAIN]]     - create a seed and account in: %q\n", "DIR/"+identityFilename)
		fmt.Printf("                             (identity)\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  events [START [COUNT]]     (e)      - dump stored events as JSON to stdout\n")
		fmt.Printf("\n")

		fmt.Printf("  bank OWNER                 (b)      - show the bank derived from an owner\n")
		fmt.Printf("\n")

		fmt.Printf("  airdrop ACCOUNT AMOUNT              - credit an account (test chains only)\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are open so these commands can read and, for
// airdrop, change the database
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger, runtime *host.Runtime, events *event.Log) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "events", "e":
		start := uint64(1)
		count := maximumEventDump
		var err error
		if len(arguments) > 0 {
			start, err = strconv.ParseUint(arguments[0], 10, 64)
			if nil != err {
				exitwithstatus.Message("error in start sequence: %s", err)
			}
		}
		if len(arguments) > 1 {
			count, err = strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error in count: %s", err)
			}
		}
		entries, _, err := events.Fetch(start, count)
		if nil != err {
			exitwithstatus.Message("fetch events error: %s", err)
		}
		printJSON(entries)

	case "bank", "b":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing owner argument")
		}
		owner, err := account.PublicKeyFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in owner: %s", err)
		}
		address, bank, err := l.BankFor(owner)
		if nil != err {
			exitwithstatus.Message("bank error: %s", err)
		}
		balance, reserve, withdrawable, err := l.Available(address)
		if nil != err {
			exitwithstatus.Message("bank error: %s", err)
		}
		donations, total, err := l.DonationsFor(address)
		if nil != err {
			exitwithstatus.Message("donations error: %s", err)
		}
		printJSON(struct {
			Address      account.PublicKey     `json:"address"`
			Owner        account.PublicKey     `json:"owner"`
			Balance      uint64                `json:"balance"`
			Reserve      uint64                `json:"reserve"`
			Withdrawable uint64                `json:"withdrawable"`
			Donations    []ledger.DonationData `json:"donations"`
			Total        uint64                `json:"total"`
		}{
			Address:      address,
			Owner:        bank.Owner,
			Balance:      balance,
			Reserve:      reserve,
			Withdrawable: withdrawable,
			Donations:    donations,
			Total:        total,
		})

	case "airdrop":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing account and amount arguments")
		}
		acct, err := account.PublicKeyFromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in account: %s", err)
		}
		amount, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in amount: %s", err)
		}
		balance, err := runtime.Airdrop(acct, amount)
		if nil != err {
			exitwithstatus.Message("airdrop error: %s", err)
		}
		log.Infof("airdrop: %s  amount: %d  balance: %d", acct, amount, balance)
		fmt.Printf("balance: %d\n", balance)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

// write a new seed and its account as JSON
func makeIdentity(test bool, fileName string) error {
	if util.FileExists(fileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	raw, _, err := keypair.MakeRawKeyPair(test)
	if nil != err {
		return err
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(fileName, append(data, '\n'), 0600); nil != err {
		return fmt.Errorf("error writing identity file error: %s", err)
	}

	return nil
}

func printJSON(item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("JSON error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
