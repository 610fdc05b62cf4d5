// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

// bytes charged for every account in addition to its data
const accountStorageOverhead = 128

// Rent - parameters of the storage reserve
type Rent struct {
	LamportsPerByteYear uint64 `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  uint64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
}

// DefaultRent - the schedule used when none is configured
var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionThreshold:  2,
}

// MinimumBalance - lamports an account of size bytes must keep
func (r Rent) MinimumBalance(size int) uint64 {
	if size < 0 {
		size = 0
	}
	return (accountStorageOverhead + uint64(size)) * r.LamportsPerByteYear * r.ExemptionThreshold
}
