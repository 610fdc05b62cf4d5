// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities for the donation ledger
//
// An account is a 32 byte ed25519 public key.  The same type is used
// for program derived addresses, which are 32 byte values known not to
// be valid curve points, so every storage slot is addressed by an
// account.  The text form of keys and signatures is Base58.
package account
