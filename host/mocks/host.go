// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock double of host.Host
package mocks

import (
	account "github.com/bitmark-inc/donationd/account"
	storage "github.com/bitmark-inc/donationd/storage"
	gomock "github.com/golang/mock/gomock"
	reflect "reflect"
)

// MockHost is a mock of Host interface
type MockHost struct {
	ctrl     *gomock.Controller
	recorder *MockHostMockRecorder
}

// MockHostMockRecorder is the mock recorder for MockHost
type MockHostMockRecorder struct {
	mock *MockHost
}

// NewMockHost creates a new mock instance
func NewMockHost(ctrl *gomock.Controller) *MockHost {
	mock := &MockHost{ctrl: ctrl}
	mock.recorder = &MockHostMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockHost) EXPECT() *MockHostMockRecorder {
	return m.recorder
}

// Authorize mocks base method
func (m *MockHost) Authorize(arg0 account.Authority, arg1 account.PublicKey, arg2 []byte) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Authorize", arg0, arg1, arg2)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Authorize indicates an expected call of Authorize
func (mr *MockHostMockRecorder) Authorize(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Authorize", reflect.TypeOf((*MockHost)(nil).Authorize), arg0, arg1, arg2)
}

// Balance mocks base method
func (m *MockHost) Balance(arg0 storage.Transaction, arg1 account.PublicKey) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Balance", arg0, arg1)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Balance indicates an expected call of Balance
func (mr *MockHostMockRecorder) Balance(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Balance", reflect.TypeOf((*MockHost)(nil).Balance), arg0, arg1)
}

// Begin mocks base method
func (m *MockHost) Begin() (storage.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin")
	ret0, _ := ret[0].(storage.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin
func (mr *MockHostMockRecorder) Begin() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockHost)(nil).Begin))
}

// CreateStorage mocks base method
func (m *MockHost) CreateStorage(arg0 storage.Transaction, arg1 account.PublicKey, arg2 int, arg3 account.PublicKey) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateStorage", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateStorage indicates an expected call of CreateStorage
func (mr *MockHostMockRecorder) CreateStorage(arg0, arg1, arg2, arg3 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateStorage", reflect.TypeOf((*MockHost)(nil).CreateStorage), arg0, arg1, arg2, arg3)
}

// Data mocks base method
func (m *MockHost) Data(arg0 storage.Transaction, arg1 account.PublicKey) []byte {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Data", arg0, arg1)
	ret0, _ := ret[0].([]byte)
	return ret0
}

// Data indicates an expected call of Data
func (mr *MockHostMockRecorder) Data(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Data", reflect.TypeOf((*MockHost)(nil).Data), arg0, arg1)
}

// MinimumReserve mocks base method
func (m *MockHost) MinimumReserve(arg0 int) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MinimumReserve", arg0)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// MinimumReserve indicates an expected call of MinimumReserve
func (mr *MockHostMockRecorder) MinimumReserve(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MinimumReserve", reflect.TypeOf((*MockHost)(nil).MinimumReserve), arg0)
}

// Nonce mocks base method
func (m *MockHost) Nonce(arg0 storage.Transaction, arg1 account.PublicKey) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Nonce", arg0, arg1)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Nonce indicates an expected call of Nonce
func (mr *MockHostMockRecorder) Nonce(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Nonce", reflect.TypeOf((*MockHost)(nil).Nonce), arg0, arg1)
}

// Scan mocks base method
func (m *MockHost) Scan(arg0 func(account.PublicKey, []byte) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Scan", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// Scan indicates an expected call of Scan
func (mr *MockHostMockRecorder) Scan(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Scan", reflect.TypeOf((*MockHost)(nil).Scan), arg0)
}

// SetBalance mocks base method
func (m *MockHost) SetBalance(arg0 storage.Transaction, arg1 account.PublicKey, arg2 uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBalance", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBalance indicates an expected call of SetBalance
func (mr *MockHostMockRecorder) SetBalance(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBalance", reflect.TypeOf((*MockHost)(nil).SetBalance), arg0, arg1, arg2)
}

// SetNonce mocks base method
func (m *MockHost) SetNonce(arg0 storage.Transaction, arg1 account.PublicKey, arg2 uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetNonce", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetNonce indicates an expected call of SetNonce
func (mr *MockHostMockRecorder) SetNonce(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetNonce", reflect.TypeOf((*MockHost)(nil).SetNonce), arg0, arg1, arg2)
}

// Store mocks base method
func (m *MockHost) Store(arg0 storage.Transaction, arg1 account.PublicKey, arg2 []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Store", arg0, arg1, arg2)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store
func (mr *MockHostMockRecorder) Store(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockHost)(nil).Store), arg0, arg1, arg2)
}

// Transfer mocks base method
func (m *MockHost) Transfer(arg0 storage.Transaction, arg1, arg2 account.PublicKey, arg3 uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transfer indicates an expected call of Transfer
func (mr *MockHostMockRecorder) Transfer(arg0, arg1, arg2, arg3 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockHost)(nil).Transfer), arg0, arg1, arg2, arg3)
}
