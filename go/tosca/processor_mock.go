// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package tosca is a generated GoMock package.
package tosca

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockProcessor is a mock of Processor interface.
type MockProcessor struct {
	ctrl     *gomock.Controller
	recorder *MockProcessorMockRecorder
}

// MockProcessorMockRecorder is the mock recorder for MockProcessor.
type MockProcessorMockRecorder struct {
	mock *MockProcessor
}

// NewMockProcessor creates a new mock instance.
func NewMockProcessor(ctrl *gomock.Controller) *MockProcessor {
	mock := &MockProcessor{ctrl: ctrl}
	mock.recorder = &MockProcessorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProcessor) EXPECT() *MockProcessorMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockProcessor) Run(arg0 BlockParameters, arg1 Transaction, arg2 TransactionContext) (Receipt, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", arg0, arg1, arg2)
	ret0, _ := ret[0].(Receipt)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Run indicates an expected call of Run.
func (mr *MockProcessorMockRecorder) Run(arg0, arg1, arg2 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockProcessor)(nil).Run), arg0, arg1, arg2)
}

// MockDeployments is a mock of Deployments interface.
type MockDeployments struct {
	ctrl     *gomock.Controller
	recorder *MockDeploymentsMockRecorder
}

// MockDeploymentsMockRecorder is the mock recorder for MockDeployments.
type MockDeploymentsMockRecorder struct {
	mock *MockDeployments
}

// NewMockDeployments creates a new mock instance.
func NewMockDeployments(ctrl *gomock.Controller) *MockDeployments {
	mock := &MockDeployments{ctrl: ctrl}
	mock.recorder = &MockDeploymentsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDeployments) EXPECT() *MockDeploymentsMockRecorder {
	return m.recorder
}

// GetContract mocks base method.
func (m *MockDeployments) GetContract(arg0 Address) Contract {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetContract", arg0)
	ret0, _ := ret[0].(Contract)
	return ret0
}

// GetContract indicates an expected call of GetContract.
func (mr *MockDeploymentsMockRecorder) GetContract(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetContract", reflect.TypeOf((*MockDeployments)(nil).GetContract), arg0)
}
