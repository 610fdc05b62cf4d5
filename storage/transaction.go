// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/donationd/fault"
)

// Transaction - atomic group of pool writes
//
// reads inside the transaction see its own uncommitted writes
type Transaction interface {
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
}

// TransactionData - the single global transaction
type TransactionData struct {
	sync.Mutex         // held from Begin until Commit or Abort
	state      sync.Mutex // protects inUse
	inUse      bool
	dataAccess Access
}

func newTransaction(access Access) *TransactionData {
	return &TransactionData{
		inUse:      false,
		dataAccess: access,
	}
}

// Begin - wait for exclusive use of the transaction
func (d *TransactionData) Begin() error {
	d.Lock()

	d.state.Lock()
	d.inUse = true
	d.state.Unlock()

	return nil
}

// Put - write bytes
func (d *TransactionData) Put(handle Handle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - write a big endian uint64
func (d *TransactionData) PutN(handle Handle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - remove a key
func (d *TransactionData) Delete(handle Handle, key []byte) {
	handle.remove(key)
}

// Get - read bytes, nil if not found
func (d *TransactionData) Get(handle Handle, key []byte) []byte {
	return handle.get(key)
}

// GetN - read a big endian uint64
func (d *TransactionData) GetN(handle Handle, key []byte) (uint64, bool) {
	return handle.getN(key)
}

// Has - check for a key
func (d *TransactionData) Has(handle Handle, key []byte) bool {
	return handle.has(key)
}

// Commit - write all changes and release the transaction
func (d *TransactionData) Commit() error {
	if !d.end() {
		return fault.ErrTransactionNotStarted
	}
	defer d.Unlock()

	return d.dataAccess.Commit()
}

// Abort - discard all changes and release the transaction
func (d *TransactionData) Abort() {
	if !d.end() {
		return
	}
	defer d.Unlock()

	d.dataAccess.Abort()
}

func (d *TransactionData) end() bool {
	d.state.Lock()
	defer d.state.Unlock()

	if !d.inUse {
		return false
	}
	d.inUse = false
	return true
}
