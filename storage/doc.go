// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte public key or program derived address
// 4. sequence = big endian uint64 (8 bytes)
// 5. lamports = big endian uint64 (8 bytes)
// 6. nonce    = big endian uint64 (8 bytes)
//
// Accounts:
//
//   A ++ address    - program owned storage
//                     data: discriminator ++ record fields
//
// Balances:
//
//   L ++ address    - lamport balance of any account
//                     data: lamports
//
// Events:
//
//   E ++ sequence   - emitted ledger event
//                     data: discriminator ++ event fields
//
// Nonces:
//
//   N ++ account    - next instruction nonce of a signer
//                     data: nonce
//
// Writes to the Accounts, Balances and Nonces pools go through the single
// global transaction; see NewDBTransaction.
package storage
