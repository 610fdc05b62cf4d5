// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/donationd/fault"
)

// Limit - wait for a single token, fails if the limiter can never
// supply one
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - rate limit a request for count items
//
// an out of range count still costs one token so that repeated bad
// requests are throttled the same as good ones
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {

	if count <= 0 || count > maximumCount {
		r := limiter.Reserve()
		if r.OK() {
			time.Sleep(r.Delay())
		}
		return fault.ErrInvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
