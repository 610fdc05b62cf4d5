// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/fault"
)

// event names
const (
	DonationEvent   = "donation"
	WithdrawalEvent = "withdrawal"
)

// lengths
const (
	discriminatorLength = 8
	recordSize          = discriminatorLength + 2*account.PublicKeySize + 8
)

var (
	donationDiscriminator   = discriminator("event:DonationEvent")
	withdrawalDiscriminator = discriminator("event:WithdrawalEvent")
)

func discriminator(name string) []byte {
	h := sha3.Sum256([]byte(name))
	return h[:discriminatorLength]
}

// Record - any event that can be stored and broadcast
type Record interface {
	Name() string
	Pack() []byte
}

// Donation - value was donated to a bank
type Donation struct {
	DonationBank account.PublicKey `json:"donationBank"`
	Donator      account.PublicKey `json:"donator"`
	Amount       uint64            `json:"amount"`
}

// Withdrawal - value was withdrawn from a bank
type Withdrawal struct {
	DonationBank account.PublicKey `json:"donationBank"`
	Destination  account.PublicKey `json:"destination"`
	Amount       uint64            `json:"amount"`
}

// Name - event name
func (d *Donation) Name() string {
	return DonationEvent
}

// Pack - binary form of the event
func (d *Donation) Pack() []byte {
	return pack(donationDiscriminator, d.DonationBank, d.Donator, d.Amount)
}

// Name - event name
func (w *Withdrawal) Name() string {
	return WithdrawalEvent
}

// Pack - binary form of the event
func (w *Withdrawal) Pack() []byte {
	return pack(withdrawalDiscriminator, w.DonationBank, w.Destination, w.Amount)
}

func pack(d []byte, a account.PublicKey, b account.PublicKey, amount uint64) []byte {
	buffer := make([]byte, 0, recordSize)
	buffer = append(buffer, d...)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, b[:]...)
	n := make([]byte, 8)
	binary.LittleEndian.PutUint64(n, amount)
	return append(buffer, n...)
}

// Unpack - turn a packed event back into a record
func Unpack(record []byte) (Record, error) {
	if recordSize != len(record) {
		return nil, fault.ErrInvalidEventRecord
	}

	d := record[:discriminatorLength]
	n := discriminatorLength

	a := account.PublicKey{}
	n += copy(a[:], record[n:])
	b := account.PublicKey{}
	n += copy(b[:], record[n:])
	amount := binary.LittleEndian.Uint64(record[n:])

	switch {
	case bytes.Equal(donationDiscriminator, d):
		return &Donation{
			DonationBank: a,
			Donator:      b,
			Amount:       amount,
		}, nil

	case bytes.Equal(withdrawalDiscriminator, d):
		return &Withdrawal{
			DonationBank: a,
			Destination:  b,
			Amount:       amount,
		}, nil

	default:
		return nil, fault.ErrInvalidEventRecord
	}
}
