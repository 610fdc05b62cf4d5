// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/counter"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/rpc/ratelimit"
	"github.com/bitmark-inc/donationd/storage"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	rateLimitAirdrop = 5
	rateBurstAirdrop = 5
)

// limit for count
const maximumEventList = 100

// Events - read access to the event log
type Events interface {
	Fetch(uint64, int) ([]event.Entry, uint64, error)
	Last() uint64
}

// Accounts - lamport balances and signer nonces of the host
type Accounts interface {
	Balance(storage.Transaction, account.PublicKey) uint64
	Airdrop(account.PublicKey, uint64) (uint64, error)
	Nonce(storage.Transaction, account.PublicKey) uint64
}

// Node - type for RPC calls
type Node struct {
	Log            *logger.L
	Limiter        *rate.Limiter
	AirdropLimiter *rate.Limiter
	Start          time.Time
	Version        string
	Chain          string
	ProgramId      account.PublicKey
	EventLog       Events
	Accounts       Accounts
	counter        *counter.Counter
}

// New - create the node service
func New(log *logger.L, chainName string, programId account.PublicKey, start time.Time, version string, counter *counter.Counter, events Events, accounts Accounts) *Node {
	return &Node{
		Log:            log,
		Limiter:        rate.NewLimiter(rateLimitNode, rateBurstNode),
		AirdropLimiter: rate.NewLimiter(rateLimitAirdrop, rateBurstAirdrop),
		Start:          start,
		Version:        version,
		Chain:          chainName,
		ProgramId:      programId,
		EventLog:       events,
		Accounts:       accounts,
		counter:        counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string            `json:"chain"`
	ProgramId account.PublicKey `json:"programId"`
	RPCs      uint64            `json:"rpcs"`
	LastEvent uint64            `json:"lastEvent,string"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
}

// Info - return some information about this node
// enough for clients to build instruction messages
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.EventLog {
		return fault.ErrNotInitialised
	}

	reply.Chain = node.Chain
	reply.ProgramId = node.ProgramId
	reply.RPCs = node.counter.Uint64()
	reply.LastEvent = node.EventLog.Last()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// EventsArguments - arguments for RPC
type EventsArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// EventsReply - result from RPC
type EventsReply struct {
	Events    []event.Entry `json:"events"`
	NextStart uint64        `json:"nextStart,string"`
}

// Events - read a page of the event log
func (node *Node) Events(arguments *EventsArguments, reply *EventsReply) error {

	if err := ratelimit.LimitN(node.Limiter, arguments.Count, maximumEventList); nil != err {
		return err
	}

	if nil == node.EventLog {
		return fault.ErrNotInitialised
	}

	entries, nextStart, err := node.EventLog.Fetch(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Events = entries
	reply.NextStart = nextStart

	return nil
}

// ---

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Account account.PublicKey `json:"account"`
}

// BalanceReply - result from RPC
type BalanceReply struct {
	Account account.PublicKey `json:"account"`
	Balance uint64            `json:"balance,string"`
}

// Balance - committed lamport balance of any account
func (node *Node) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Accounts {
		return fault.ErrNotInitialised
	}

	reply.Account = arguments.Account
	reply.Balance = node.Accounts.Balance(nil, arguments.Account)
	return nil
}

// ---

// NonceArguments - arguments for RPC
type NonceArguments struct {
	Account account.PublicKey `json:"account"`
}

// NonceReply - result from RPC
type NonceReply struct {
	Account account.PublicKey `json:"account"`
	Nonce   uint64            `json:"nonce,string"`
}

// Nonce - the nonce the account's next signed instruction must carry
func (node *Node) Nonce(arguments *NonceArguments, reply *NonceReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Accounts {
		return fault.ErrNotInitialised
	}
	if arguments.Account.IsZero() {
		return fault.ErrMissingParameters
	}

	reply.Account = arguments.Account
	reply.Nonce = node.Accounts.Nonce(nil, arguments.Account)
	return nil
}

// ---

// AirdropArguments - arguments for RPC
type AirdropArguments struct {
	Account account.PublicKey `json:"account"`
	Amount  uint64            `json:"amount,string"`
}

// Airdrop - credit an account on a test chain
func (node *Node) Airdrop(arguments *AirdropArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(node.AirdropLimiter); nil != err {
		return err
	}

	if nil == node.Accounts {
		return fault.ErrNotInitialised
	}
	if arguments.Account.IsZero() {
		return fault.ErrMissingParameters
	}

	node.Log.Infof("Node.Airdrop: account: %s  amount: %d", arguments.Account, arguments.Amount)

	balance, err := node.Accounts.Airdrop(arguments.Account, arguments.Amount)
	if nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = balance
	return nil
}
