// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/fault"
)

// storage sizes
const (
	discriminatorLength = 8

	// discriminator ++ owner
	BaseAccountSize = discriminatorLength + account.PublicKeySize

	// bank ++ donator plus spare space
	DonationDataSize = 64 + 1024

	donationDataLength = discriminatorLength + 2*account.PublicKeySize + 8
)

type recordKind int

const (
	unknownRecord recordKind = iota
	baseAccountRecord
	donationDataRecord
)

var (
	baseAccountDiscriminator  = discriminator("account:BaseAccount")
	donationDataDiscriminator = discriminator("account:DonationData")
)

func discriminator(name string) []byte {
	h := sha3.Sum256([]byte(name))
	return h[:discriminatorLength]
}

// BaseAccount - a donation bank and its owner
type BaseAccount struct {
	Owner account.PublicKey `json:"owner"`
}

// DonationData - the cumulative total of one donor
type DonationData struct {
	DonationBank account.PublicKey `json:"donationBank"`
	Donator      account.PublicKey `json:"donator"`
	Amount       uint64            `json:"amount"`
}

// Pack - binary form of a bank
func (b *BaseAccount) Pack() []byte {
	buffer := make([]byte, 0, BaseAccountSize)
	buffer = append(buffer, baseAccountDiscriminator...)
	return append(buffer, b.Owner[:]...)
}

// Pack - binary form of a donor total
func (d *DonationData) Pack() []byte {
	buffer := make([]byte, 0, donationDataLength)
	buffer = append(buffer, donationDataDiscriminator...)
	buffer = append(buffer, d.DonationBank[:]...)
	buffer = append(buffer, d.Donator[:]...)
	n := make([]byte, 8)
	binary.LittleEndian.PutUint64(n, d.Amount)
	return append(buffer, n...)
}

// determine which record, if any, occupies a storage slot
func kindOf(data []byte) recordKind {
	if len(data) < discriminatorLength {
		return unknownRecord
	}
	d := data[:discriminatorLength]
	switch {
	case bytes.Equal(baseAccountDiscriminator, d) && len(data) >= BaseAccountSize:
		return baseAccountRecord
	case bytes.Equal(donationDataDiscriminator, d) && len(data) >= donationDataLength:
		return donationDataRecord
	default:
		return unknownRecord
	}
}

func unpackBaseAccount(data []byte) (*BaseAccount, error) {
	if nil == data {
		return nil, fault.ErrAccountNotFound
	}
	if baseAccountRecord != kindOf(data) {
		return nil, fault.ErrInvalidAccountData
	}
	b := &BaseAccount{}
	copy(b.Owner[:], data[discriminatorLength:])
	return b, nil
}

func unpackDonationData(data []byte) (*DonationData, error) {
	if nil == data {
		return nil, fault.ErrAccountNotFound
	}
	if donationDataRecord != kindOf(data) {
		return nil, fault.ErrInvalidAccountData
	}
	n := discriminatorLength
	d := &DonationData{}
	n += copy(d.DonationBank[:], data[n:])
	n += copy(d.Donator[:], data[n:])
	d.Amount = binary.LittleEndian.Uint64(data[n:])
	return d, nil
}

// add without wrapping
func saturatingAdd(a uint64, b uint64) uint64 {
	if a+b < a {
		return ^uint64(0)
	}
	return a + b
}

// subtract without wrapping
func saturatingSub(a uint64, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
