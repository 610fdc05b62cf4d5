// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/fault"
	"github.com/bitmark-inc/donationd/messagebus"
	"github.com/bitmark-inc/donationd/storage"
)

// Emitter - receives events after a successful ledger commit
type Emitter interface {
	Emit(Record)
}

// Entry - an event with its position in the log
type Entry struct {
	Sequence uint64 `json:"sequence"`
	Name     string `json:"name"`
	Event    Record `json:"event"`
}

// Log - append only event store that also broadcasts each event
type Log struct {
	sync.Mutex
	log  *logger.L
	pool storage.Handle
	last uint64
}

// New - open the log, continuing after the highest stored sequence
func New(log *logger.L, pool storage.Handle) *Log {
	last := uint64(0)
	if e, found := pool.LastElement(); found {
		last = binary.BigEndian.Uint64(e.Key)
	}
	log.Infof("event log: last sequence: %d", last)

	return &Log{
		log:  log,
		pool: pool,
		last: last,
	}
}

// Emit - store and broadcast an event
//
// failures are only logged
func (l *Log) Emit(item Record) {
	if nil == item {
		return
	}

	l.Lock()
	defer l.Unlock()

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, l.last+1)
	packed := item.Pack()

	err := l.pool.Put(key, packed)
	if nil != err {
		l.log.Errorf("emit: %s  sequence: %d  error: %s", item.Name(), l.last+1, err)
		return
	}
	l.last += 1

	l.log.Infof("emit: %d: %s: %+v", l.last, item.Name(), item)
	messagebus.Bus.Events.Send(item.Name(), key, packed)
}

// Last - sequence number of the latest event, zero if none
func (l *Log) Last() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.last
}

// Fetch - read up to count events starting at sequence start
//
// returns the events and the sequence to continue from
func (l *Log) Fetch(start uint64, count int) ([]Entry, uint64, error) {
	if count <= 0 {
		return nil, start, fault.ErrInvalidCount
	}
	if 0 == start {
		start = 1
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, start)

	elements, err := l.pool.NewFetchCursor().Seek(key).Fetch(count)
	if nil != err {
		return nil, start, err
	}

	entries := make([]Entry, 0, len(elements))
	next := start
	for _, e := range elements {
		sequence := binary.BigEndian.Uint64(e.Key)
		item, err := Unpack(e.Value)
		if nil != err {
			l.log.Errorf("fetch: sequence: %d  error: %s", sequence, err)
			return nil, start, err
		}
		entries = append(entries, Entry{
			Sequence: sequence,
			Name:     item.Name(),
			Event:    item,
		})
		next = sequence + 1
	}
	return entries, next, nil
}

// FromMessage - decode a message from the event bus
func FromMessage(m messagebus.Message) (*Entry, error) {
	if 2 != len(m.Parameters) || 8 != len(m.Parameters[0]) {
		return nil, fault.ErrInvalidEventRecord
	}
	item, err := Unpack(m.Parameters[1])
	if nil != err {
		return nil, err
	}
	return &Entry{
		Sequence: binary.BigEndian.Uint64(m.Parameters[0]),
		Name:     item.Name(),
		Event:    item,
	}, nil
}
