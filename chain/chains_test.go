// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/chain"
)

func TestNames(t *testing.T) {
	names := []struct {
		name    string
		valid   bool
		testing bool
	}{
		{chain.Donation, true, false},
		{chain.Testing, true, true},
		{chain.Local, true, true},
		{"bitcoin", false, false},
		{"", false, false},
	}
	for _, n := range names {
		if chain.Valid(n.name) != n.valid {
			t.Errorf("%q: valid: expected: %v", n.name, n.valid)
		}
		if chain.IsTesting(n.name) != n.testing {
			t.Errorf("%q: testing: expected: %v", n.name, n.testing)
		}
	}
}

func TestDefaultProgramId(t *testing.T) {
	if _, err := account.PublicKeyFromBase58(chain.DefaultProgramId); nil != err {
		t.Errorf("default program id is not a valid key: %s", err)
	}
}
