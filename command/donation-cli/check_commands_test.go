// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/keypair"
)

func TestSigningKeyFromSeed(t *testing.T) {
	raw, _, err := keypair.MakeRawKeyPair(true)
	assert.Nil(t, err, "key pair")

	m := &metadata{seed: raw.Seed}
	key, err := m.signingKey()
	assert.Nil(t, err, "signing key")
	assert.Equal(t, raw.Account, key.Account(), "wrong account")

	acct, err := m.checkAccount("owner", "")
	assert.Nil(t, err, "default account")
	assert.Equal(t, raw.Account, acct, "blank should select the signing key")
}

func TestSigningKeyFromIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "donation-cli")
	if nil != err {
		t.Fatalf("temp dir: %s", err)
	}
	defer os.RemoveAll(dir)

	raw, _, err := keypair.MakeRawKeyPair(true)
	assert.Nil(t, err, "key pair")
	b, _ := json.Marshal(raw)
	file := filepath.Join(dir, "identity.json")
	err = ioutil.WriteFile(file, b, 0600)
	assert.Nil(t, err, "write identity")

	m := &metadata{identity: file}
	key, err := m.signingKey()
	assert.Nil(t, err, "signing key")
	assert.Equal(t, raw.Account, key.Account(), "wrong account")
}

func TestNoSigningKey(t *testing.T) {
	m := &metadata{}
	_, err := m.signingKey()
	assert.NotNil(t, err, "missing key accepted")

	_, err = m.checkAccount("owner", "")
	assert.NotNil(t, err, "blank account without key accepted")
}

func TestCheckRequiredAccount(t *testing.T) {
	_, err := checkRequiredAccount("bank", "")
	assert.NotNil(t, err, "blank bank accepted")

	_, err = checkRequiredAccount("bank", "0OIl")
	assert.NotNil(t, err, "invalid bank accepted")

	acct, err := checkRequiredAccount("bank", "11111111111111111111111111111111")
	assert.Nil(t, err, "valid bank")
	assert.True(t, acct.IsZero(), "wrong decode")

	_, err = checkAmount(0)
	assert.NotNil(t, err, "zero amount accepted")
}
