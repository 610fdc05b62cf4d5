// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"math/rand"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/rpc"
	"github.com/bitmark-inc/donationd/rpc/fixtures"
	"github.com/bitmark-inc/donationd/rpc/listeners"
	"github.com/bitmark-inc/donationd/rpc/mocks"
	"github.com/bitmark-inc/donationd/rpc/node"
	"github.com/bitmark-inc/donationd/rpc/server"
)

func TestInitialiseAndFinalise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockOperations(ctl)
	e := mocks.NewMockEvents(ctl)
	a := mocks.NewMockAccounts(ctl)

	l.EXPECT().ProgramId().Return(fixtures.ProgramId()).Times(1)
	e.EXPECT().Last().Return(uint64(7)).Times(1)

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Listen:             []string{listen},
	}
	services := server.Services{
		Chain:    chain.Local,
		Ledger:   l,
		Events:   e,
		Accounts: a,
	}

	err := rpc.Initialise(&configuration, services, "0.1")
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&configuration, services, "0.1")
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second Initialise")

	conn, err := net.Dial("tcp", listen)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	var reply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, fixtures.ProgramId(), reply.ProgramId, "wrong program id")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
	assert.Equal(t, uint64(7), reply.LastEvent, "wrong last event")
	assert.Equal(t, "0.1", reply.Version, "wrong version")
	client.Close()

	err = rpc.Finalise()
	assert.Nil(t, err, "wrong Finalise")

	err = rpc.Finalise()
	assert.Equal(t, fault.ErrNotInitialised, err, "second Finalise")
}
