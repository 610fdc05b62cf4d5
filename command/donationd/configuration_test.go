// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/chain"
	"github.com/bitmark-inc/donationd/host"
)

const testingDirName = "testing"

func writeConfiguration(t *testing.T, text string) string {
	_ = os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0700); nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
	fileName := filepath.Join(testingDirName, "test.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestSampleConfiguration(t *testing.T) {
	sample, err := ioutil.ReadFile("donationd.conf.sample")
	if nil != err {
		t.Fatalf("read sample error: %s", err)
	}
	fileName := writeConfiguration(t, string(sample))
	defer os.RemoveAll(testingDirName)

	options, err := getConfiguration(fileName, map[string]string{"chain": chain.Local})
	assert.Nil(t, err, "sample configuration")

	dir, _ := filepath.Abs(testingDirName)
	assert.Equal(t, chain.Local, options.Chain, "variable not applied")
	assert.Equal(t, chain.DefaultProgramId, options.ProgramId, "wrong program id")
	assert.Equal(t, host.DefaultRent, options.Rent, "wrong rent")
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(50), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, 2, len(options.ClientRPC.Listen), "wrong listen")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "wrong log level")

	info, err := os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestDefaultDatabaseFollowsChain(t *testing.T) {
	fileName := writeConfiguration(t, `return { data_directory = ".", chain = "testing" }`)
	defer os.RemoveAll(testingDirName)

	options, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "configuration")
	assert.Equal(t, defaultTestingDatabase, filepath.Base(options.Database.Name), "wrong database")
}

func TestInvalidConfigurations(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	invalid := []string{
		`return { data_directory = "", chain = "testing" }`,
		`return { data_directory = ".", chain = "bitcoin" }`,
		`return { data_directory = ".", program_id = "not-base58-0OIl" }`,
		`return { data_directory = ".", rent = { lamports_per_byte_year = 0, exemption_threshold = 2 } }`,
		`return { data_directory = ".", database = { name = "sub/dir.leveldb" } }`,
		`return 42`,
	}

	for i, text := range invalid {
		fileName := writeConfiguration(t, text)
		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, "%d: accepted: %s", i, text)
	}
}
