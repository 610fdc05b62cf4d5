// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - database operations beneath the pools
//
// Put and Delete are batched until Commit; Get and Has see the batch
// while Committed only sees what is on disk
type Access interface {
	Abort()
	Commit() error
	Committed([]byte) ([]byte, error)
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte)
	Write([]byte, []byte) error
}

// AccessData - leveldb with a write batch and a read cache
type AccessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, batch *leveldb.Batch, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: batch,
		cache: cache,
	}
}

// Put - add to the batch
func (d *AccessData) Put(key []byte, value []byte) {
	d.cache.Put(key, value)
	d.batch.Put(key, value)
}

// Delete - add a delete to the batch
func (d *AccessData) Delete(key []byte) {
	d.cache.Delete(key)
	d.batch.Delete(key)
}

// Write - store directly, bypassing the batch
func (d *AccessData) Write(key []byte, value []byte) error {
	return d.db.Put(key, value, nil)
}

// Commit - write the batch atomically
func (d *AccessData) Commit() error {
	err := d.db.Write(d.batch, nil)
	d.batch.Reset()
	d.cache.Clear()
	return err
}

// Abort - discard the batch
func (d *AccessData) Abort() {
	d.batch.Reset()
	d.cache.Clear()
}

// Get - read through the batch
func (d *AccessData) Get(key []byte) ([]byte, error) {
	switch val, state := d.cache.Lookup(key); state {
	case pendingDelete:
		return nil, leveldb.ErrNotFound
	case pendingPut:
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Committed - read only the on-disk value
func (d *AccessData) Committed(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

// Has - check through the batch
func (d *AccessData) Has(key []byte) (bool, error) {
	switch _, state := d.cache.Lookup(key); state {
	case pendingDelete:
		return false, nil
	case pendingPut:
		return true, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - iterate the on-disk values
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
