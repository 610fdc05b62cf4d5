// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/keypair"
)

// signingKey - the key from --seed, else from the --identity file
func (m *metadata) signingKey() (*account.PrivateKey, error) {
	if nil != m.key {
		return m.key, nil
	}

	seed := m.seed
	if "" == seed && "" != m.identity {
		b, err := ioutil.ReadFile(m.identity)
		if nil != err {
			return nil, err
		}
		var raw keypair.RawKeyPair
		if err := json.Unmarshal(b, &raw); nil != err {
			return nil, fmt.Errorf("identity: %q: %s", m.identity, err)
		}
		seed = raw.Seed
	}
	if "" == seed {
		return nil, fmt.Errorf("no signing key: set --seed or --identity")
	}

	key, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, err
	}
	m.key = key
	return key, nil
}

// checkAccount - decode an account, blank selects the signing key
func (m *metadata) checkAccount(name string, text string) (account.PublicKey, error) {
	if "" == text {
		key, err := m.signingKey()
		if nil != err {
			return account.PublicKey{}, fmt.Errorf("%s: %s", name, err)
		}
		return key.Account(), nil
	}
	return checkRequiredAccount(name, text)
}

// checkRequiredAccount - decode an account that must be given
func checkRequiredAccount(name string, text string) (account.PublicKey, error) {
	if "" == text {
		return account.PublicKey{}, fmt.Errorf("%s is required", name)
	}
	acct, err := account.PublicKeyFromBase58(text)
	if nil != err {
		return account.PublicKey{}, fmt.Errorf("%s: %q: %s", name, text, err)
	}
	return acct, nil
}

func checkAmount(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}
