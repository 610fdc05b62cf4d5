// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/host"
	"github.com/bitmark-inc/donationd/storage"
)

const (
	testingDirName = "testing"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setupRuntime(t *testing.T, chainName string) *host.Runtime {
	removeFiles()
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

	err := storage.Initialise(filepath.Join(testingDirName, "host.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	return host.New(logger.New("host"), chainName, host.DefaultRent, storage.Pool.Accounts, storage.Pool.Lamports, storage.Pool.Nonces)
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func key(b byte) account.PublicKey {
	k := account.PublicKey{}
	for i := range k {
		k[i] = b
	}
	return k
}

// set balances in a committed transaction
func fund(t *testing.T, r *host.Runtime, balances map[account.PublicKey]uint64) {
	trx, err := r.Begin()
	if nil != err {
		t.Fatalf("begin: %s", err)
	}
	for k, n := range balances {
		if err := r.SetBalance(trx, k, n); nil != err {
			t.Fatalf("set balance: %s", err)
		}
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit: %s", err)
	}
}
