// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mocks - gomock doubles of the interfaces the rpc services call
package mocks

import (
	account "github.com/bitmark-inc/donationd/account"
	event "github.com/bitmark-inc/donationd/event"
	ledger "github.com/bitmark-inc/donationd/ledger"
	gomock "github.com/golang/mock/gomock"
	reflect "reflect"
)

// MockOperations is a mock of Operations interface
type MockOperations struct {
	ctrl     *gomock.Controller
	recorder *MockOperationsMockRecorder
}

// MockOperationsMockRecorder is the mock recorder for MockOperations
type MockOperationsMockRecorder struct {
	mock *MockOperations
}

// NewMockOperations creates a new mock instance
func NewMockOperations(ctrl *gomock.Controller) *MockOperations {
	mock := &MockOperations{ctrl: ctrl}
	mock.recorder = &MockOperationsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockOperations) EXPECT() *MockOperationsMockRecorder {
	return m.recorder
}

// Address mocks base method
func (m *MockOperations) Address(arg0 account.PublicKey) (account.PublicKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Address", arg0)
	ret0, _ := ret[0].(account.PublicKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Address indicates an expected call of Address
func (mr *MockOperationsMockRecorder) Address(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Address", reflect.TypeOf((*MockOperations)(nil).Address), arg0)
}

// Available mocks base method
func (m *MockOperations) Available(arg0 account.PublicKey) (uint64, uint64, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Available", arg0)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(uint64)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// Available indicates an expected call of Available
func (mr *MockOperationsMockRecorder) Available(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Available", reflect.TypeOf((*MockOperations)(nil).Available), arg0)
}

// Bank mocks base method
func (m *MockOperations) Bank(arg0 account.PublicKey) (*ledger.BaseAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bank", arg0)
	ret0, _ := ret[0].(*ledger.BaseAccount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Bank indicates an expected call of Bank
func (mr *MockOperationsMockRecorder) Bank(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bank", reflect.TypeOf((*MockOperations)(nil).Bank), arg0)
}

// BankFor mocks base method
func (m *MockOperations) BankFor(arg0 account.PublicKey) (account.PublicKey, *ledger.BaseAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BankFor", arg0)
	ret0, _ := ret[0].(account.PublicKey)
	ret1, _ := ret[1].(*ledger.BaseAccount)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// BankFor indicates an expected call of BankFor
func (mr *MockOperationsMockRecorder) BankFor(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BankFor", reflect.TypeOf((*MockOperations)(nil).BankFor), arg0)
}

// Donate mocks base method
func (m *MockOperations) Donate(arg0 account.Authority, arg1 account.PublicKey, arg2 uint64) (*event.Donation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Donate", arg0, arg1, arg2)
	ret0, _ := ret[0].(*event.Donation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Donate indicates an expected call of Donate
func (mr *MockOperationsMockRecorder) Donate(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Donate", reflect.TypeOf((*MockOperations)(nil).Donate), arg0, arg1, arg2)
}

// Donation mocks base method
func (m *MockOperations) Donation(arg0 account.PublicKey) (*ledger.DonationData, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Donation", arg0)
	ret0, _ := ret[0].(*ledger.DonationData)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Donation indicates an expected call of Donation
func (mr *MockOperationsMockRecorder) Donation(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Donation", reflect.TypeOf((*MockOperations)(nil).Donation), arg0)
}

// DonationsFor mocks base method
func (m *MockOperations) DonationsFor(arg0 account.PublicKey) ([]ledger.DonationData, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DonationsFor", arg0)
	ret0, _ := ret[0].([]ledger.DonationData)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// DonationsFor indicates an expected call of DonationsFor
func (mr *MockOperationsMockRecorder) DonationsFor(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DonationsFor", reflect.TypeOf((*MockOperations)(nil).DonationsFor), arg0)
}

// Initialize mocks base method
func (m *MockOperations) Initialize(arg0 account.PublicKey, arg1 account.Authority) (account.PublicKey, *ledger.BaseAccount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Initialize", arg0, arg1)
	ret0, _ := ret[0].(account.PublicKey)
	ret1, _ := ret[1].(*ledger.BaseAccount)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Initialize indicates an expected call of Initialize
func (mr *MockOperationsMockRecorder) Initialize(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Initialize", reflect.TypeOf((*MockOperations)(nil).Initialize), arg0, arg1)
}

// ProgramId mocks base method
func (m *MockOperations) ProgramId() account.PublicKey {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProgramId")
	ret0, _ := ret[0].(account.PublicKey)
	return ret0
}

// ProgramId indicates an expected call of ProgramId
func (mr *MockOperationsMockRecorder) ProgramId() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProgramId", reflect.TypeOf((*MockOperations)(nil).ProgramId))
}

// Withdraw mocks base method
func (m *MockOperations) Withdraw(arg0, arg1 account.PublicKey, arg2 account.Authority) (*event.Withdrawal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Withdraw", arg0, arg1, arg2)
	ret0, _ := ret[0].(*event.Withdrawal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Withdraw indicates an expected call of Withdraw
func (mr *MockOperationsMockRecorder) Withdraw(arg0, arg1, arg2 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Withdraw", reflect.TypeOf((*MockOperations)(nil).Withdraw), arg0, arg1, arg2)
}
