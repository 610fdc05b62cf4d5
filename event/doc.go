// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - observable records of ledger state changes
//
// Events are written after the ledger commits, so a failure to record
// or broadcast one never undoes the state change it describes.
//
// packed layout:
//
//   discriminator (8) ++ bank (32) ++ donator or destination (32) ++ amount (u64 LE)
package event
