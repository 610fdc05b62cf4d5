// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/host"
	"github.com/bitmark-inc/donationd/keypair"
	"github.com/bitmark-inc/donationd/ledger"
	"github.com/bitmark-inc/donationd/storage"
)

const (
	testingDirName = "testing"
)

func setupLogger() {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

func teardownLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

func programId(t *testing.T) account.PublicKey {
	id, err := account.PublicKeyFromBase58(chain.DefaultProgramId)
	if nil != err {
		t.Fatalf("program id: %s", err)
	}
	return id
}

// a ledger on real storage
type fixture struct {
	t       *testing.T
	runtime *host.Runtime
	events  *event.Log
	ledger  *ledger.Ledger
}

func setup(t *testing.T) *fixture {
	setupLogger()

	err := storage.Initialise(filepath.Join(testingDirName, "ledger.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	r := host.New(logger.New("host"), chain.Testing, host.DefaultRent, storage.Pool.Accounts, storage.Pool.Lamports, storage.Pool.Nonces)
	events := event.New(logger.New("event"), storage.Pool.Events)

	return &fixture{
		t:       t,
		runtime: r,
		events:  events,
		ledger:  ledger.New(logger.New("ledger"), r, programId(t), events),
	}
}

func teardown() {
	storage.Finalise()
	teardownLogger()
}

// a new key holding some lamports
func (f *fixture) funded(amount uint64) *account.PrivateKey {
	_, p, err := keypair.MakeRawKeyPair(true)
	if nil != err {
		f.t.Fatalf("make key: %s", err)
	}
	if amount > 0 {
		_, err = f.runtime.Airdrop(p.Account(), amount)
		if nil != err {
			f.t.Fatalf("airdrop: %s", err)
		}
	}
	return p
}

func (f *fixture) balance(k account.PublicKey) uint64 {
	return f.runtime.Balance(nil, k)
}

func (f *fixture) reserve(size int) uint64 {
	return f.runtime.MinimumReserve(size)
}

// the nonce the next instruction of signer must be signed with
func (f *fixture) nonce(signer *account.PrivateKey) uint64 {
	return f.runtime.Nonce(nil, signer.Account())
}

// create a bank for owner paid by payer
func (f *fixture) initialize(owner *account.PrivateKey, payer *account.PrivateKey) account.PublicKey {
	message := ledger.InitializeMessage(f.ledger.ProgramId(), owner.Account(), payer.Account(), f.nonce(payer))
	address, _, err := f.ledger.Initialize(owner.Account(), payer.Authorise(message))
	if nil != err {
		f.t.Fatalf("initialize: %s", err)
	}
	return address
}

func (f *fixture) donate(donator *account.PrivateKey, bank account.PublicKey, amount uint64) (*event.Donation, error) {
	message := ledger.DonateMessage(f.ledger.ProgramId(), bank, donator.Account(), amount, f.nonce(donator))
	return f.ledger.Donate(donator.Authorise(message), bank, amount)
}

func (f *fixture) withdraw(bank account.PublicKey, destination account.PublicKey, signer *account.PrivateKey) (*event.Withdrawal, error) {
	message := ledger.WithdrawMessage(f.ledger.ProgramId(), bank, destination, signer.Account(), f.nonce(signer))
	return f.ledger.Withdraw(bank, destination, signer.Authorise(message))
}
