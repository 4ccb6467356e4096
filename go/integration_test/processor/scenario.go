// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Fantom-foundation/fortune/go/state"
	"github.com/Fantom-foundation/fortune/go/tosca"
)

// Scenario represents a test scenario for a transaction processor. A scenario
// consists of a world state before and after the operation, the contracts
// deployed, a transaction to be executed, block parameters, and the expected
// receipt. The output of reverted transactions is not compared. Aborted
// scenarios expect the processor to fail the transaction with an error, in
// which case the receipt is ignored.
type Scenario struct {
	Before      state.WorldState
	After       state.WorldState
	Contracts   map[tosca.Address]Contract
	Parameters  tosca.BlockParameters
	Transaction tosca.Transaction
	Receipt     tosca.Receipt
	Aborted     bool
}

// Contract names a registered contract implementation and its configuration.
type Contract struct {
	Name   string
	Config any
}

func (s *Scenario) Run(t *testing.T, processorName string) {
	t.Helper()
	deployments := tosca.DeploymentMap{}
	for address, contract := range s.Contracts {
		instance, err := tosca.NewContract(contract.Name, contract.Config)
		if err != nil {
			t.Fatalf("failed to create contract %s: %v", contract.Name, err)
		}
		deployments[address] = instance
	}
	processor := tosca.GetProcessor(processorName, deployments)
	if processor == nil {
		t.Fatalf("unknown processor %s", processorName)
	}

	current := s.Before.Clone()
	if current == nil {
		current = state.WorldState{}
	}
	context := state.NewContext(current)
	receipt, err := processor.Run(s.Parameters, s.Transaction, context)
	if want, got := s.Aborted, err != nil; want != got {
		t.Fatalf("unexpected abort, want %v, got %v (%v)", want, got, err)
	}
	if err == nil && receipt.Success && !s.Transaction.Static {
		if err := context.Commit(); err != nil {
			t.Fatalf("failed to commit transaction: %v", err)
		}
	} else {
		context.Discard()
	}
	if want, got := state.TransientCleared, context.TransientPhase(); want != got {
		t.Errorf("unexpected transient storage phase, want %v, got %v", want, got)
	}

	// check the world state after the operation
	if want, got := s.After, current; !want.Equal(got) {
		diff := strings.Join(got.Diff(want), "\n\t")
		t.Fatalf("unexpected world state after the operation: \n\t%v", diff)
	}

	if s.Aborted {
		return
	}

	// check the receipt
	if want, got := s.Receipt.Success, receipt.Success; want != got {
		t.Errorf("unexpected success, want %v, got %v", want, got)
	}
	if !s.Receipt.Success {
		return
	}
	if want, got := s.Receipt.Output, receipt.Output; !bytes.Equal(want, got) {
		t.Errorf("unexpected output, want %x, got %x", want, got)
	}
}

func (s *Scenario) Clone() Scenario {
	contracts := make(map[tosca.Address]Contract, len(s.Contracts))
	for address, contract := range s.Contracts {
		contracts[address] = contract
	}
	return Scenario{
		Before:      s.Before.Clone(),
		After:       s.After.Clone(),
		Contracts:   contracts,
		Parameters:  s.Parameters,
		Transaction: s.Transaction,
		Receipt:     s.Receipt,
		Aborted:     s.Aborted,
	}
}
