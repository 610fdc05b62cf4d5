// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

import (
	account "github.com/bitmark-inc/donationd/account"
	storage "github.com/bitmark-inc/donationd/storage"
	gomock "github.com/golang/mock/gomock"
	reflect "reflect"
)

// MockAccounts is a mock of Accounts interface
type MockAccounts struct {
	ctrl     *gomock.Controller
	recorder *MockAccountsMockRecorder
}

// MockAccountsMockRecorder is the mock recorder for MockAccounts
type MockAccountsMockRecorder struct {
	mock *MockAccounts
}

// NewMockAccounts creates a new mock instance
func NewMockAccounts(ctrl *gomock.Controller) *MockAccounts {
	mock := &MockAccounts{ctrl: ctrl}
	mock.recorder = &MockAccountsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockAccounts) EXPECT() *MockAccountsMockRecorder {
	return m.recorder
}

// Airdrop mocks base method
func (m *MockAccounts) Airdrop(arg0 account.PublicKey, arg1 uint64) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Airdrop", arg0, arg1)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Airdrop indicates an expected call of Airdrop
func (mr *MockAccountsMockRecorder) Airdrop(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Airdrop", reflect.TypeOf((*MockAccounts)(nil).Airdrop), arg0, arg1)
}

// Balance mocks base method
func (m *MockAccounts) Balance(arg0 storage.Transaction, arg1 account.PublicKey) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", arg0, arg1)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Balance indicates an expected call of Balance
func (mr *MockAccountsMockRecorder) Balance(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockAccounts)(nil).Balance), arg0, arg1)
}

// Nonce mocks base method
func (m *MockAccounts) Nonce(arg0 storage.Transaction, arg1 account.PublicKey) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", arg0, arg1)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Nonce indicates an expected call of Nonce
func (mr *MockAccountsMockRecorder) Nonce(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockAccounts)(nil).Nonce), arg0, arg1)
}
