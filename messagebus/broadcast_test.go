// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/messagebus"
)

func receive(t *testing.T, queue <-chan messagebus.Message) messagebus.Message {
	select {
	case m := <-queue:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("nothing received")
	}
	return messagebus.Message{}
}

func TestBroadcast(t *testing.T) {

	commands := []string{"c1", "c2", "c3"}

	// nothing listening so these messages should be dropped
	for _, command := range commands {
		messagebus.Bus.Events.Send("ignored:" + command)
	}

	// allow background to run
	time.Sleep(20 * time.Millisecond)

	const listeners = 5
	queues := make([]<-chan messagebus.Message, listeners)
	for i := range queues {
		queues[i] = messagebus.Bus.Events.Chan(10)
	}
	defer func() {
		for _, q := range queues {
			messagebus.Bus.Events.Release(q)
		}
	}()

	for _, command := range commands {
		messagebus.Bus.Events.Send(command, []byte(command))
	}

	var wg sync.WaitGroup
	for i, queue := range queues {
		wg.Add(1)
		go func(n int, queue <-chan messagebus.Message) {
			defer wg.Done()
			for _, command := range commands {
				received := receive(t, queue)
				assert.Equal(t, command, received.Command, "listener[%d] wrong command", n)
				assert.Equal(t, [][]byte{[]byte(command)}, received.Parameters, "listener[%d] wrong parameters", n)
			}
		}(i, queue)
	}
	wg.Wait()
}

func TestFullListenerDoesNotBlock(t *testing.T) {
	slow := messagebus.Bus.Events.Chan(1)
	defer messagebus.Bus.Events.Release(slow)

	fast := messagebus.Bus.Events.Chan(10)
	defer messagebus.Bus.Events.Release(fast)

	for _, command := range []string{"a", "b", "c"} {
		messagebus.Bus.Events.Send(command)
	}

	for _, command := range []string{"a", "b", "c"} {
		assert.Equal(t, command, receive(t, fast).Command, "fast listener")
	}

	assert.Equal(t, "a", receive(t, slow).Command, "slow listener first message")
	select {
	case m := <-slow:
		t.Errorf("slow listener received extra message: %q", m.Command)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestRelease(t *testing.T) {
	before := messagebus.Bus.Events.Listeners()

	queue := messagebus.Bus.Events.Chan(0)
	assert.Equal(t, before+1, messagebus.Bus.Events.Listeners(), "listener not added")

	messagebus.Bus.Events.Release(queue)
	assert.Equal(t, before, messagebus.Bus.Events.Listeners(), "listener not removed")

	_, ok := <-queue
	assert.False(t, ok, "released channel still open")
}
