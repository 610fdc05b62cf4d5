// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/messagebus"
)

const observerQueueSize = 1000

// observer - log every event broadcast by the ledger
type observer struct {
	log   *logger.L
	queue <-chan messagebus.Message
}

func newObserver() *observer {
	return &observer{
		log:   logger.New("observer"),
		queue: messagebus.Bus.Events.Chan(observerQueueSize),
	}
}

// Run - background process loop
func (o *observer) Run(args interface{}, shutdown <-chan struct{}) {

	log := o.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-o.queue:
			entry, err := event.FromMessage(item)
			if nil != err {
				log.Errorf("command: %q  error: %s", item.Command, err)
				continue loop
			}
			switch e := entry.Event.(type) {
			case *event.Donation:
				log.Infof("%d: donation: bank: %s  donator: %s  amount: %d", entry.Sequence, e.DonationBank, e.Donator, e.Amount)
			case *event.Withdrawal:
				log.Infof("%d: withdrawal: bank: %s  destination: %s  amount: %d", entry.Sequence, e.DonationBank, e.Destination, e.Amount)
			default:
				log.Warnf("%d: unexpected event: %q", entry.Sequence, entry.Name)
			}
		}
	}

	messagebus.Bus.Events.Release(o.queue)
	log.Info("shutting down…")
	log.Flush()
}
