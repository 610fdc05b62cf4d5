// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

var databaseFileName = filepath.Join(testingDirName, "test.leveldb")

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
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

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReopenKeepsData(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.PutN(storage.Pool.Lamports, []byte("someone"), 1234)
	assert.Nil(t, trx.Commit(), "commit")

	storage.Finalise()

	err = storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.Nil(t, err, "read-only reopen")

	n, found := storage.Pool.Lamports.GetN([]byte("someone"))
	assert.True(t, found, "value lost")
	assert.Equal(t, uint64(1234), n, "wrong value")
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err, "transaction before initialise")
}
