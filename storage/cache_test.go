// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingWrites(t *testing.T) {
	c := newCache()

	_, state := c.Lookup([]byte("k"))
	assert.Equal(t, notPending, state, "empty cache")

	c.Put([]byte("k"), []byte("v1"))
	value, state := c.Lookup([]byte("k"))
	assert.Equal(t, pendingPut, state, "after put")
	assert.Equal(t, []byte("v1"), value, "wrong value")

	c.Delete([]byte("k"))
	value, state = c.Lookup([]byte("k"))
	assert.Equal(t, pendingDelete, state, "after delete")
	assert.Nil(t, value, "deleted value")

	c.Put([]byte("k"), []byte("v2"))
	c.Clear()
	_, state = c.Lookup([]byte("k"))
	assert.Equal(t, notPending, state, "after clear")
}
