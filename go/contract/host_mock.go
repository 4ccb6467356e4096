// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package contract is a generated GoMock package.
package contract

import (
	reflect "reflect"

	tosca "github.com/Fantom-foundation/fortune/go/tosca"
	gomock "go.uber.org/mock/gomock"
)

// MockStorage is a mock of Storage interface.
type MockStorage struct {
	ctrl     *gomock.Controller
	recorder *MockStorageMockRecorder
}

// MockStorageMockRecorder is the mock recorder for MockStorage.
type MockStorageMockRecorder struct {
	mock *MockStorage
}

// NewMockStorage creates a new mock instance.
func NewMockStorage(ctrl *gomock.Controller) *MockStorage {
	mock := &MockStorage{ctrl: ctrl}
	mock.recorder = &MockStorageMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorage) EXPECT() *MockStorageMockRecorder {
	return m.recorder
}

// GetStorage mocks base method.
func (m *MockStorage) GetStorage(arg0 tosca.Key) tosca.Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStorage", arg0)
	ret0, _ := ret[0].(tosca.Word)
	return ret0
}

// GetStorage indicates an expected call of GetStorage.
func (mr *MockStorageMockRecorder) GetStorage(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStorage", reflect.TypeOf((*MockStorage)(nil).GetStorage), arg0)
}

// SetStorage mocks base method.
func (m *MockStorage) SetStorage(arg0 tosca.Key, arg1 tosca.Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetStorage", arg0, arg1)
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockStorageMockRecorder) SetStorage(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockStorage)(nil).SetStorage), arg0, arg1)
}

// MockTransientStore is a mock of TransientStore interface.
type MockTransientStore struct {
	ctrl     *gomock.Controller
	recorder *MockTransientStoreMockRecorder
}

// MockTransientStoreMockRecorder is the mock recorder for MockTransientStore.
type MockTransientStoreMockRecorder struct {
	mock *MockTransientStore
}

// NewMockTransientStore creates a new mock instance.
func NewMockTransientStore(ctrl *gomock.Controller) *MockTransientStore {
	mock := &MockTransientStore{ctrl: ctrl}
	mock.recorder = &MockTransientStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTransientStore) EXPECT() *MockTransientStoreMockRecorder {
	return m.recorder
}

// Load mocks base method.
func (m *MockTransientStore) Load(arg0 tosca.Key) tosca.Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Load", arg0)
	ret0, _ := ret[0].(tosca.Word)
	return ret0
}

// Load indicates an expected call of Load.
func (mr *MockTransientStoreMockRecorder) Load(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Load", reflect.TypeOf((*MockTransientStore)(nil).Load), arg0)
}

// Store mocks base method.
func (m *MockTransientStore) Store(arg0 tosca.Key, arg1 tosca.Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Store", arg0, arg1)
}

// Store indicates an expected call of Store.
func (mr *MockTransientStoreMockRecorder) Store(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockTransientStore)(nil).Store), arg0, arg1)
}

// MockHost is a mock of Host interface.
type MockHost struct {
	ctrl     *gomock.Controller
	recorder *MockHostMockRecorder
}

// MockHostMockRecorder is the mock recorder for MockHost.
type MockHostMockRecorder struct {
	mock *MockHost
}

// NewMockHost creates a new mock instance.
func NewMockHost(ctrl *gomock.Controller) *MockHost {
	mock := &MockHost{ctrl: ctrl}
	mock.recorder = &MockHostMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHost) EXPECT() *MockHostMockRecorder {
	return m.recorder
}

// BlockTimestamp mocks base method.
func (m *MockHost) BlockTimestamp() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockTimestamp")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// BlockTimestamp indicates an expected call of BlockTimestamp.
func (mr *MockHostMockRecorder) BlockTimestamp() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockTimestamp", reflect.TypeOf((*MockHost)(nil).BlockTimestamp))
}

// Caller mocks base method.
func (m *MockHost) Caller() tosca.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Caller")
	ret0, _ := ret[0].(tosca.Address)
	return ret0
}

// Caller indicates an expected call of Caller.
func (mr *MockHostMockRecorder) Caller() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Caller", reflect.TypeOf((*MockHost)(nil).Caller))
}

// ContractAddress mocks base method.
func (m *MockHost) ContractAddress() tosca.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ContractAddress")
	ret0, _ := ret[0].(tosca.Address)
	return ret0
}

// ContractAddress indicates an expected call of ContractAddress.
func (mr *MockHostMockRecorder) ContractAddress() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ContractAddress", reflect.TypeOf((*MockHost)(nil).ContractAddress))
}

// GetStorage mocks base method.
func (m *MockHost) GetStorage(arg0 tosca.Key) tosca.Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStorage", arg0)
	ret0, _ := ret[0].(tosca.Word)
	return ret0
}

// GetStorage indicates an expected call of GetStorage.
func (mr *MockHostMockRecorder) GetStorage(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStorage", reflect.TypeOf((*MockHost)(nil).GetStorage), arg0)
}

// Load mocks base method.
func (m *MockHost) Load(arg0 tosca.Key) tosca.Word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Load", arg0)
	ret0, _ := ret[0].(tosca.Word)
	return ret0
}

// Load indicates an expected call of Load.
func (mr *MockHostMockRecorder) Load(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Load", reflect.TypeOf((*MockHost)(nil).Load), arg0)
}

// SetStorage mocks base method.
func (m *MockHost) SetStorage(arg0 tosca.Key, arg1 tosca.Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetStorage", arg0, arg1)
}

// SetStorage indicates an expected call of SetStorage.
func (mr *MockHostMockRecorder) SetStorage(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStorage", reflect.TypeOf((*MockHost)(nil).SetStorage), arg0, arg1)
}

// StaticCall mocks base method.
func (m *MockHost) StaticCall(arg0 tosca.Address, arg1 tosca.Data) (tosca.Data, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StaticCall", arg0, arg1)
	ret0, _ := ret[0].(tosca.Data)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StaticCall indicates an expected call of StaticCall.
func (mr *MockHostMockRecorder) StaticCall(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StaticCall", reflect.TypeOf((*MockHost)(nil).StaticCall), arg0, arg1)
}

// Store mocks base method.
func (m *MockHost) Store(arg0 tosca.Key, arg1 tosca.Word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Store", arg0, arg1)
}

// Store indicates an expected call of Store.
func (mr *MockHostMockRecorder) Store(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockHost)(nil).Store), arg0, arg1)
}
