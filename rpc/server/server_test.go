// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"fmt"
	"math/rand"
	"net"
	"net/rpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/counter"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/rpc/bank"
	"github.com/bitmark-inc/donationd/rpc/donation"
	"github.com/bitmark-inc/donationd/rpc/fixtures"
	"github.com/bitmark-inc/donationd/rpc/node"
	"github.com/bitmark-inc/donationd/rpc/server"
)

var port string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	port = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000) // 30,000 - 60,000
	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", &c, server.Services{
		Chain: chain.Testing,
	})
	l, err := net.Listen("tcp", port)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}

	go r.Accept(l)

	rc := m.Run()

	_ = l.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// each call fails before reaching the missing collaborators, which
// shows that the method is registered under the expected name

func call(t *testing.T, method string, arg interface{}, reply interface{}) error {
	conn, err := net.Dial("tcp", port)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := rpc.NewClient(conn)
	defer client.Close()

	return client.Call(method, arg, reply)
}

func TestBankInitialize(t *testing.T) {
	err := call(t, "Bank.Initialize", &bank.InitializeArguments{}, &bank.InitializeReply{})
	assert.NotNil(t, err, "wrong Bank.Initialize")
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "wrong reply")
}

func TestBankWithdraw(t *testing.T) {
	err := call(t, "Bank.Withdraw", &bank.WithdrawArguments{}, &bank.WithdrawReply{})
	assert.NotNil(t, err, "wrong Bank.Withdraw")
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "wrong reply")
}

func TestDonationDonate(t *testing.T) {
	err := call(t, "Donation.Donate", &donation.DonateArguments{}, &donation.DonateReply{})
	assert.NotNil(t, err, "wrong Donation.Donate")
	assert.Equal(t, fault.ErrMissingParameters.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	err := call(t, "Node.Info", &node.InfoArguments{}, &node.InfoReply{})
	assert.NotNil(t, err, "wrong Node.Info")
	assert.Equal(t, fault.ErrNotInitialised.Error(), err.Error(), "wrong reply")
}

func TestNodeEvents(t *testing.T) {
	err := call(t, "Node.Events", &node.EventsArguments{Count: 0}, &node.EventsReply{})
	assert.NotNil(t, err, "wrong Node.Events")
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "wrong reply")
}

func TestNodeBalance(t *testing.T) {
	err := call(t, "Node.Balance", &node.BalanceArguments{}, &node.BalanceReply{})
	assert.NotNil(t, err, "wrong Node.Balance")
	assert.Equal(t, fault.ErrNotInitialised.Error(), err.Error(), "wrong reply")
}

func TestNodeNonce(t *testing.T) {
	err := call(t, "Node.Nonce", &node.NonceArguments{}, &node.NonceReply{})
	assert.NotNil(t, err, "wrong Node.Nonce")
	assert.Equal(t, fault.ErrNotInitialised.Error(), err.Error(), "wrong reply")
}
