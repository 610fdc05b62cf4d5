// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the rpc service tests
package fixtures

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/chain"
)

const (
	testingDirName = "testing"
	LogCategory    = "testing"
)

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
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

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// Key - a public key filled with one byte value
func Key(b byte) account.PublicKey {
	k := account.PublicKey{}
	for i := range k {
		k[i] = b
	}
	return k
}

// ProgramId - the default program id
func ProgramId() account.PublicKey {
	id, err := account.PublicKeyFromBase58(chain.DefaultProgramId)
	if nil != err {
		panic(err)
	}
	return id
}
