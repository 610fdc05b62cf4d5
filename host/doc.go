// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - the execution environment seen by the ledger
//
// The host owns lamport balances, program storage slots, the rent
// schedule and signature checks.  The ledger only reaches them through
// the Host interface, and every mutation happens inside a storage
// transaction passed in by the caller.
package host
