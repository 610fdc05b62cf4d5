// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process broadcast of ledger events to any
// number of listeners
//
// Senders never block: each listener has its own buffered channel and
// a listener that falls behind misses messages.
package messagebus
