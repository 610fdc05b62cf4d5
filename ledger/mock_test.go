// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/donationd/account"
	"github.com/bitmark-inc/donationd/event"
	eventmocks "github.com/bitmark-inc/donationd/event/mocks"
	"github.com/bitmark-inc/donationd/fault"
	hostmocks "github.com/bitmark-inc/donationd/host/mocks"
	"github.com/bitmark-inc/donationd/ledger"
	storagemocks "github.com/bitmark-inc/donationd/storage/mocks"
)

func key(b byte) account.PublicKey {
	k := account.PublicKey{}
	for i := range k {
		k[i] = b
	}
	return k
}

func authority(k account.PublicKey) account.Authority {
	return account.Authority{
		Account:   k,
		Signature: account.Signature{0x01, 0x02},
	}
}

type mocked struct {
	host    *hostmocks.MockHost
	trx     *storagemocks.MockTransaction
	emitter *eventmocks.MockEmitter
	ledger  *ledger.Ledger
}

func newMocked(t *testing.T, ctl *gomock.Controller) *mocked {
	setupLogger()

	m := &mocked{
		host:    hostmocks.NewMockHost(ctl),
		trx:     storagemocks.NewMockTransaction(ctl),
		emitter: eventmocks.NewMockEmitter(ctl),
	}
	m.ledger = ledger.New(logger.New("ledger"), m.host, programId(t), m.emitter)
	return m
}

func address(t *testing.T, l *ledger.Ledger, k account.PublicKey) account.PublicKey {
	a, err := l.Address(k)
	if nil != err {
		t.Fatalf("address: %s", err)
	}
	return a
}

// Initialize(A, P) -> Donate(D, bank, 1000) -> Withdraw(bank, X, A) with reserve 50
func TestScenarioMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)

	a := key(0xa1)
	p := key(0xb2)
	d := key(0xd3)
	x := key(0xe4)

	bank := address(t, m.ledger, a)
	donation := address(t, m.ledger, d)
	pAuth := authority(p)
	dAuth := authority(d)
	aAuth := authority(a)

	baseRecord := (&ledger.BaseAccount{Owner: a}).Pack()

	gomock.InOrder(
		// initialize
		m.host.EXPECT().Begin().Return(m.trx, nil),
		m.host.EXPECT().Nonce(m.trx, p).Return(uint64(0)),
		m.host.EXPECT().Authorize(pAuth, p, ledger.InitializeMessage(programId(t), a, p, 0)).Return(true),
		m.host.EXPECT().SetNonce(m.trx, p, uint64(1)).Return(nil),
		m.host.EXPECT().Data(m.trx, bank).Return(nil),
		m.host.EXPECT().CreateStorage(m.trx, bank, ledger.BaseAccountSize, p).Return(nil),
		m.host.EXPECT().Store(m.trx, bank, baseRecord).Return(nil),
		m.trx.EXPECT().Commit().Return(nil),

		// donate
		m.host.EXPECT().Begin().Return(m.trx, nil),
		m.host.EXPECT().Nonce(m.trx, d).Return(uint64(5)),
		m.host.EXPECT().Authorize(dAuth, d, ledger.DonateMessage(programId(t), bank, d, 1000, 5)).Return(true),
		m.host.EXPECT().SetNonce(m.trx, d, uint64(6)).Return(nil),
		m.host.EXPECT().Data(m.trx, bank).Return(baseRecord),
		m.host.EXPECT().Transfer(m.trx, d, bank, uint64(1000)).Return(nil),
		m.host.EXPECT().Data(m.trx, donation).Return(nil),
		m.host.EXPECT().CreateStorage(m.trx, donation, ledger.DonationDataSize, d).Return(nil),
		m.host.EXPECT().Store(m.trx, donation, (&ledger.DonationData{DonationBank: bank, Donator: d, Amount: 1000}).Pack()).Return(nil),
		m.trx.EXPECT().Commit().Return(nil),
		m.emitter.EXPECT().Emit(&event.Donation{DonationBank: bank, Donator: d, Amount: 1000}),

		// withdraw
		m.host.EXPECT().Begin().Return(m.trx, nil),
		m.host.EXPECT().Data(m.trx, bank).Return(baseRecord),
		m.host.EXPECT().Nonce(m.trx, a).Return(uint64(0)),
		m.host.EXPECT().Authorize(aAuth, a, ledger.WithdrawMessage(programId(t), bank, x, a, 0)).Return(true),
		m.host.EXPECT().SetNonce(m.trx, a, uint64(1)).Return(nil),
		m.host.EXPECT().Data(m.trx, x).Return((&ledger.BaseAccount{Owner: x}).Pack()),
		m.host.EXPECT().MinimumReserve(ledger.BaseAccountSize).Return(uint64(50)),
		m.host.EXPECT().Balance(m.trx, bank).Return(uint64(1000)),
		m.host.EXPECT().Balance(m.trx, x).Return(uint64(0)),
		m.host.EXPECT().SetBalance(m.trx, x, uint64(950)).Return(nil),
		m.host.EXPECT().SetBalance(m.trx, bank, uint64(950)).Return(nil),
		m.trx.EXPECT().Commit().Return(nil),
		m.emitter.EXPECT().Emit(&event.Withdrawal{DonationBank: bank, Destination: x, Amount: 950}),
	)

	addr, base, err := m.ledger.Initialize(a, pAuth)
	assert.Nil(t, err, "initialize")
	assert.Equal(t, bank, addr, "bank address")
	assert.Equal(t, a, base.Owner, "bank owner")

	donated, err := m.ledger.Donate(dAuth, bank, 1000)
	assert.Nil(t, err, "donate")
	assert.Equal(t, uint64(1000), donated.Amount, "donation amount")

	withdrawn, err := m.ledger.Withdraw(bank, x, aAuth)
	assert.Nil(t, err, "withdraw")
	assert.Equal(t, uint64(950), withdrawn.Amount, "withdrawn amount")
}

func TestDonateZeroMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no host call is expected at all
	m := newMocked(t, ctl)

	_, err := m.ledger.Donate(authority(key(1)), key(2), 0)
	assert.Equal(t, fault.ErrInvalidAmount, err, "zero donation")
	assert.Equal(t, "amount should be more than zero", err.Error(), "message")
}

func TestDonateTransferFailureAborts(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	d := key(3)
	bank := key(4)

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Nonce(m.trx, d).Return(uint64(0))
	m.host.EXPECT().Authorize(gomock.Any(), d, gomock.Any()).Return(true)
	m.host.EXPECT().SetNonce(m.trx, d, uint64(1)).Return(nil)
	m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: key(5)}).Pack())
	m.host.EXPECT().Transfer(m.trx, d, bank, uint64(10)).Return(fault.ErrInsufficientFunds)
	m.trx.EXPECT().Abort()

	_, err := m.ledger.Donate(authority(d), bank, 10)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "transfer failure")
}

func TestDonateSaturatesMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	d := key(3)
	bank := key(4)
	donation := address(t, m.ledger, d)
	max := ^uint64(0)

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Nonce(m.trx, d).Return(uint64(0))
	m.host.EXPECT().Authorize(gomock.Any(), d, gomock.Any()).Return(true)
	m.host.EXPECT().SetNonce(m.trx, d, uint64(1)).Return(nil)
	m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: key(5)}).Pack())
	m.host.EXPECT().Transfer(m.trx, d, bank, uint64(100)).Return(nil)
	m.host.EXPECT().Data(m.trx, donation).Return((&ledger.DonationData{DonationBank: bank, Donator: d, Amount: max - 10}).Pack())
	m.host.EXPECT().Store(m.trx, donation, (&ledger.DonationData{DonationBank: bank, Donator: d, Amount: max}).Pack()).Return(nil)
	m.trx.EXPECT().Commit().Return(nil)
	m.emitter.EXPECT().Emit(&event.Donation{DonationBank: bank, Donator: d, Amount: 100})

	e, err := m.ledger.Donate(authority(d), bank, 100)
	assert.Nil(t, err, "donate")
	assert.Equal(t, uint64(100), e.Amount, "event carries this donation only")
}

func TestCommitFailureSuppressesEvent(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	d := key(3)
	bank := key(4)
	donation := address(t, m.ledger, d)
	diskFull := errors.New("disk full")

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Nonce(m.trx, d).Return(uint64(0))
	m.host.EXPECT().Authorize(gomock.Any(), d, gomock.Any()).Return(true)
	m.host.EXPECT().SetNonce(m.trx, d, uint64(1)).Return(nil)
	m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: key(5)}).Pack())
	m.host.EXPECT().Transfer(m.trx, d, bank, uint64(1)).Return(nil)
	m.host.EXPECT().Data(m.trx, donation).Return(nil)
	m.host.EXPECT().CreateStorage(m.trx, donation, ledger.DonationDataSize, d).Return(nil)
	m.host.EXPECT().Store(m.trx, donation, gomock.Any()).Return(nil)
	m.trx.EXPECT().Commit().Return(diskFull)

	_, err := m.ledger.Donate(authority(d), bank, 1)
	assert.Equal(t, diskFull, err, "commit error")
}

func TestUnauthorisedMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	a := key(1)
	bank := address(t, m.ledger, a)
	x := key(7)
	intruder := authority(key(9))

	// the nonce is read but never advanced
	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Nonce(m.trx, intruder.Account).Return(uint64(0))
	m.host.EXPECT().Authorize(intruder, intruder.Account, gomock.Any()).Return(false)
	m.trx.EXPECT().Abort()
	_, _, err := m.ledger.Initialize(a, intruder)
	assert.Equal(t, fault.ErrAuthorisationFailure, err, "initialize")

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Nonce(m.trx, intruder.Account).Return(uint64(0))
	m.host.EXPECT().Authorize(intruder, intruder.Account, gomock.Any()).Return(false)
	m.trx.EXPECT().Abort()
	_, err = m.ledger.Donate(intruder, bank, 5)
	assert.Equal(t, fault.ErrAuthorisationFailure, err, "donate")

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: a}).Pack())
	m.host.EXPECT().Nonce(m.trx, intruder.Account).Return(uint64(0))
	m.host.EXPECT().Authorize(intruder, a, gomock.Any()).Return(false)
	m.trx.EXPECT().Abort()
	_, err = m.ledger.Withdraw(bank, x, intruder)
	assert.Equal(t, fault.ErrAuthorisationFailure, err, "withdraw")
	assert.True(t, fault.IsErrAuthorisation(err), "error class")
}

// the destination is only looked at once the owner has signed
func TestWithdrawUnauthorisedMissingDestination(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	a := key(1)
	bank := key(2)
	missing := key(3)
	intruder := authority(key(9))

	m.host.EXPECT().Begin().Return(m.trx, nil)
	m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: a}).Pack())
	m.host.EXPECT().Nonce(m.trx, intruder.Account).Return(uint64(0))
	m.host.EXPECT().Authorize(intruder, a, gomock.Any()).Return(false)
	m.host.EXPECT().Data(m.trx, missing).Times(0)
	m.trx.EXPECT().Abort()

	_, err := m.ledger.Withdraw(bank, missing, intruder)
	assert.Equal(t, fault.ErrAuthorisationFailure, err, "unauthorised signer")
}

// a signature accepted once does not verify against the advanced nonce
func TestReplayMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	d := key(3)
	bank := key(4)
	donation := address(t, m.ledger, d)
	dAuth := authority(d)

	gomock.InOrder(
		m.host.EXPECT().Begin().Return(m.trx, nil),
		m.host.EXPECT().Nonce(m.trx, d).Return(uint64(0)),
		m.host.EXPECT().Authorize(dAuth, d, ledger.DonateMessage(programId(t), bank, d, 10, 0)).Return(true),
		m.host.EXPECT().SetNonce(m.trx, d, uint64(1)).Return(nil),
		m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: key(5)}).Pack()),
		m.host.EXPECT().Transfer(m.trx, d, bank, uint64(10)).Return(nil),
		m.host.EXPECT().Data(m.trx, donation).Return(nil),
		m.host.EXPECT().CreateStorage(m.trx, donation, ledger.DonationDataSize, d).Return(nil),
		m.host.EXPECT().Store(m.trx, donation, gomock.Any()).Return(nil),
		m.trx.EXPECT().Commit().Return(nil),
		m.emitter.EXPECT().Emit(gomock.Any()),

		m.host.EXPECT().Begin().Return(m.trx, nil),
		m.host.EXPECT().Nonce(m.trx, d).Return(uint64(1)),
		m.host.EXPECT().Authorize(dAuth, d, ledger.DonateMessage(programId(t), bank, d, 10, 1)).Return(false),
		m.trx.EXPECT().Abort(),
	)

	_, err := m.ledger.Donate(dAuth, bank, 10)
	assert.Nil(t, err, "first donation")

	_, err = m.ledger.Donate(dAuth, bank, 10)
	assert.Equal(t, fault.ErrAuthorisationFailure, err, "replay")
}

func TestWithdrawNoFundsMocked(t *testing.T) {
	defer teardownLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := newMocked(t, ctl)
	a := key(1)
	bank := key(2)
	x := key(3)

	for _, balance := range []uint64{0, 49, 50} {
		m.host.EXPECT().Begin().Return(m.trx, nil)
		m.host.EXPECT().Data(m.trx, bank).Return((&ledger.BaseAccount{Owner: a}).Pack())
		m.host.EXPECT().Nonce(m.trx, a).Return(uint64(0))
		m.host.EXPECT().Authorize(gomock.Any(), a, gomock.Any()).Return(true)
		m.host.EXPECT().SetNonce(m.trx, a, uint64(1)).Return(nil)
		m.host.EXPECT().Data(m.trx, x).Return((&ledger.BaseAccount{Owner: x}).Pack())
		m.host.EXPECT().MinimumReserve(ledger.BaseAccountSize).Return(uint64(50))
		m.host.EXPECT().Balance(m.trx, bank).Return(balance)
		m.trx.EXPECT().Abort()

		_, err := m.ledger.Withdraw(bank, x, authority(a))
		assert.Equal(t, fault.ErrNoFundsForWithdrawal, err, "balance: %d", balance)
	}
}
