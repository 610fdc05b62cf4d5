// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// state of a key in the pending write set
type pendingState int

const (
	notPending pendingState = iota
	pendingPut
	pendingDelete
)

// Cache - the writes of the open transaction, so that reads inside
// the transaction see them before they reach leveldb
type Cache interface {
	Put(key []byte, value []byte)
	Delete(key []byte)
	Lookup(key []byte) ([]byte, pendingState)
	Clear()
}

type pendingWrites struct {
	items *cache.Cache
}

type pendingItem struct {
	state pendingState
	value []byte
}

func newCache() Cache {
	return &pendingWrites{
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (p *pendingWrites) Put(key []byte, value []byte) {
	p.items.Set(string(key), pendingItem{state: pendingPut, value: value}, cache.NoExpiration)
}

func (p *pendingWrites) Delete(key []byte) {
	p.items.Set(string(key), pendingItem{state: pendingDelete}, cache.NoExpiration)
}

// Lookup - notPending means the caller must read leveldb
func (p *pendingWrites) Lookup(key []byte) ([]byte, pendingState) {
	obj, found := p.items.Get(string(key))
	if !found {
		return nil, notPending
	}
	item := obj.(pendingItem)
	return item.value, item.state
}

func (p *pendingWrites) Clear() {
	p.items.Flush()
}
