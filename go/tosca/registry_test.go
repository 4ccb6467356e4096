// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

import (
	"slices"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestRegistry_ContractFactoryCanBeRegisteredAndUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	contract := NewMockContract(ctrl)

	var gotConfig any
	err := RegisterContractFactory("Test-Registry-Contract", func(config any) (Contract, error) {
		gotConfig = config
		return contract, nil
	})
	if err != nil {
		t.Fatalf("failed to register factory: %v", err)
	}

	res, err := NewContract("test-registry-contract", 12)
	if err != nil {
		t.Fatalf("failed to create contract: %v", err)
	}
	if res != contract {
		t.Errorf("unexpected contract instance")
	}
	if gotConfig != 12 {
		t.Errorf("configuration not forwarded, got %v", gotConfig)
	}
	if !slices.Contains(GetAllRegisteredContracts(), "test-registry-contract") {
		t.Errorf("registered contract is not listed")
	}
}

func TestRegistry_ContractFactoryCannotBeRegisteredTwice(t *testing.T) {
	factory := func(any) (Contract, error) { return nil, nil }
	if err := RegisterContractFactory("test-twice", factory); err != nil {
		t.Fatalf("failed to register factory: %v", err)
	}
	if err := RegisterContractFactory("Test-Twice", factory); err == nil {
		t.Errorf("expected registration under same name to fail")
	}
}

func TestRegistry_NilContractFactoryIsRejected(t *testing.T) {
	if err := RegisterContractFactory("test-nil", nil); err == nil {
		t.Errorf("expected nil factory to be rejected")
	}
}

func TestRegistry_UnknownContractProducesError(t *testing.T) {
	if _, err := NewContract("unknown-contract"); err == nil {
		t.Errorf("expected lookup of unknown contract to fail")
	}
	if _, err := NewContract("unknown-contract", 1, 2); err == nil {
		t.Errorf("expected too many configurations to fail")
	}
}

func TestRegistry_ProcessorFactoryPanicsOnDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := NewMockProcessor(ctrl)
	RegisterProcessorFactory("test-processor", func(Deployments) Processor { return processor })

	if got := GetProcessor("Test-Processor", nil); got != processor {
		t.Errorf("unexpected processor instance")
	}
	if GetProcessor("unknown-processor", nil) != nil {
		t.Errorf("unknown processor must be nil")
	}
	if _, found := GetAllRegisteredProcessorFactories()["test-processor"]; !found {
		t.Errorf("registered processor is not listed")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected duplicate registration to panic")
		}
	}()
	RegisterProcessorFactory("test-processor", func(Deployments) Processor { return processor })
}
