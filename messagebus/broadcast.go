// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// internal constants
const (
	queueSize    = 1000
	listenerSize = 100
)

// Message - a command with binary parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// BroadcastQueue - fan out every message to all listeners
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
	queue     chan Message
}

type busses struct {
	Events *BroadcastQueue
}

// Bus - all available queues
var Bus = busses{
	Events: newBroadcastQueue(),
}

func newBroadcastQueue() *BroadcastQueue {
	q := &BroadcastQueue{
		queue: make(chan Message, queueSize),
	}
	go q.distribute()
	return q
}

// Send - queue a message for all current listeners
//
// the message is dropped if the queue is full
func (q *BroadcastQueue) Send(command string, parameters ...[]byte) {
	select {
	case q.queue <- Message{
		Command:    command,
		Parameters: parameters,
	}:
	default:
	}
}

// Chan - register a new listener
//
// size is the channel buffer, zero or less selects a default
func (q *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = listenerSize
	}
	c := make(chan Message, size)

	q.Lock()
	q.listeners = append(q.listeners, c)
	q.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (q *BroadcastQueue) Release(c <-chan Message) {
	q.Lock()
	defer q.Unlock()

	for i, l := range q.listeners {
		if (<-chan Message)(l) == c {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			close(l)
			return
		}
	}
}

// Listeners - number of registered listeners
func (q *BroadcastQueue) Listeners() int {
	q.RLock()
	defer q.RUnlock()
	return len(q.listeners)
}

func (q *BroadcastQueue) distribute() {
	for item := range q.queue {
		q.RLock()
		for _, l := range q.listeners {
			select {
			case l <- item:
			default: // listener is full
			}
		}
		q.RUnlock()
	}
}
