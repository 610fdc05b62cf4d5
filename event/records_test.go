// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	"github.com/bitmark-inc/donationd/fault"
)

func key(b byte) account.PublicKey {
	k := account.PublicKey{}
	for i := range k {
		k[i] = b
	}
	return k
}

func TestPackedLayout(t *testing.T) {
	d := &event.Donation{
		DonationBank: key(1),
		Donator:      key(2),
		Amount:       0x0102,
	}
	packed := d.Pack()
	assert.Equal(t, 80, len(packed), "packed length")
	assert.Equal(t, key(1).Bytes(), packed[8:40], "bank field")
	assert.Equal(t, key(2).Bytes(), packed[40:72], "donator field")
	assert.Equal(t, []byte{0x02, 0x01, 0, 0, 0, 0, 0, 0}, packed[72:], "amount is little endian")

	w := &event.Withdrawal{
		DonationBank: key(1),
		Destination:  key(2),
		Amount:       0x0102,
	}
	assert.NotEqual(t, packed[:8], w.Pack()[:8], "discriminators must differ")
	assert.Equal(t, packed[8:], w.Pack()[8:], "same field layout")
}

func TestUnpack(t *testing.T) {
	items := []event.Record{
		&event.Donation{DonationBank: key(3), Donator: key(4), Amount: 77},
		&event.Withdrawal{DonationBank: key(3), Destination: key(5), Amount: 950},
	}
	for i, item := range items {
		back, err := event.Unpack(item.Pack())
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, item, back, "%d: unpack mismatch", i)
	}
}

func TestUnpackInvalid(t *testing.T) {
	_, err := event.Unpack([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidEventRecord, err, "short record")

	_, err = event.Unpack(make([]byte, 80))
	assert.Equal(t, fault.ErrInvalidEventRecord, err, "unknown discriminator")
}
