// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - donation banks and per donor totals
//
// A bank owner is given a BaseAccount at the program address derived
// from the owner key.  Donors move lamports into the bank and the
// running total of each donor is kept in a DonationData record at the
// address derived from the donor key.  The owner may withdraw any
// balance above the rent reserve of the bank.
//
// Each operation is a single storage transaction: either every balance
// and record change is committed or none is.  Events are emitted only
// after the commit.
//
// Known behaviour carried over from the deployed program:
//
//   - DonationData is keyed by donor only, so a donor stays bound to the
//     first bank they gave to even when later donating elsewhere.
//   - Withdraw sets the bank balance to the amount withdrawn, it does
//     not restore the reserve.
package ledger
