// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/counter"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/rpc/bank"
	"github.com/bitmark-inc/donationd/rpc/donation"
	"github.com/bitmark-inc/donationd/rpc/node"
)

// Services - what the RPC services operate on
type Services struct {
	Chain    string
	Ledger   ledger.Operations
	Events   node.Events
	Accounts node.Accounts
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(bank.New(log, services.Ledger))
	_ = server.Register(donation.New(log, services.Ledger))
	_ = server.Register(node.New(log, services.Chain, programId(services.Ledger), start, version, rpcCount, services.Events, services.Accounts))

	return server
}

func programId(l ledger.Operations) account.PublicKey {
	if nil == l {
		return account.PublicKey{}
	}
	return l.ProgramId()
}
