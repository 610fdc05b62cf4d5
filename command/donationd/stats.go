// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/donationd/messagebus"
	"github.com/bitmark-inc/donationd/rpc"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use together with the daemon's load
func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M  goroutines: %d", a, t, s, runtime.NumGoroutine())
		log.Infof("rpc connections: %d  event listeners: %d", rpc.Connections(), messagebus.Bus.Events.Listeners())

		time.Sleep(statsDelay)
	}
}
