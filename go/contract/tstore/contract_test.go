// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tstore

import (
	"testing"

	"github.com/Fantom-foundation/fortune/go/contract"
	_ "github.com/Fantom-foundation/fortune/go/processor/floria"
	"github.com/Fantom-foundation/fortune/go/state"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"golang.org/x/exp/slices"
)

func runTransaction(t *testing.T, config Config, method string, context tosca.TransactionContext) tosca.Receipt {
	t.Helper()
	pad, err := New(config)
	if err != nil {
		t.Fatalf("failed to create contract: %v", err)
	}
	input, err := pad.Pack(method)
	if err != nil {
		t.Fatalf("failed to pack %s: %v", method, err)
	}
	processor := tosca.GetProcessor("floria", tosca.DeploymentMap{self: pad})
	receipt, err := processor.Run(tosca.BlockParameters{}, tosca.Transaction{
		Sender:    tosca.Address{1},
		Recipient: self,
		Input:     input,
	}, context)
	if err != nil {
		t.Fatalf("failed to run %s: %v", method, err)
	}
	return receipt
}

func TestContract_ReentrantReturnsPublishedValue(t *testing.T) {
	context := state.NewContext(state.WorldState{})
	receipt := runTransaction(t, DefaultConfig(), "reentrant", context)
	if !receipt.Success {
		t.Fatalf("reentrant() reverted")
	}
	if want, got := tosca.NewWord(456), tosca.Word(receipt.Output); want != got {
		t.Errorf("unexpected output, wanted %v, got %v", want, got)
	}
	if got := context.GetTransientStorage(self, SentinelKey); got != SentinelValue {
		t.Errorf("sentinel not visible for the rest of the transaction: %v", got)
	}
	if pending := context.Pending(); len(pending) != 0 {
		t.Errorf("transient values leaked into persistent storage: %v", pending)
	}
}

func TestContract_HelloWithoutPublishReturnsZero(t *testing.T) {
	receipt := runTransaction(t, DefaultConfig(), "hello", state.NewContext(state.WorldState{}))
	if !receipt.Success {
		t.Fatalf("hello() reverted")
	}
	if got := tosca.Word(receipt.Output); !got.IsZero() {
		t.Errorf("unexpected output, wanted zero, got %v", got)
	}
}

func TestContract_ReentrantFailsWithoutHello(t *testing.T) {
	context := state.NewContext(state.WorldState{})
	receipt := runTransaction(t, Config{Reentrant: true}, "reentrant", context)
	if receipt.Success {
		t.Fatalf("reentrant() succeeded without hello()")
	}
	reason, err := contract.DecodeRevert(receipt.Output)
	if err != nil {
		t.Fatalf("failed to decode revert reason: %v", err)
	}
	if reason == "" {
		t.Errorf("missing revert reason")
	}
	if got := context.GetTransientStorage(self, SentinelKey); !got.IsZero() {
		t.Errorf("reverted transient write is still visible: %v", got)
	}
}

func TestContract_ConfigSelectsEntryPoints(t *testing.T) {
	tests := map[string]struct {
		config any
		want   []string
	}{
		"default":        {config: nil, want: []string{"hello", "reentrant"}},
		"both":           {config: Config{Hello: true, Reentrant: true}, want: []string{"hello", "reentrant"}},
		"hello only":     {config: Config{Hello: true}, want: []string{"hello"}},
		"reentrant only": {config: &Config{Reentrant: true}, want: []string{"reentrant"}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			instance, err := tosca.NewContract(Name, test.config)
			if err != nil {
				t.Fatalf("failed to create contract: %v", err)
			}
			if got := instance.(*contract.Dispatcher).Methods(); !slices.Equal(test.want, got) {
				t.Errorf("unexpected entry points, wanted %v, got %v", test.want, got)
			}
		})
	}
}

func TestContract_InvalidConfigIsRejected(t *testing.T) {
	tests := map[string]any{
		"no entry point": Config{},
		"wrong type":     "hello",
	}
	for name, config := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tosca.NewContract(Name, config); err == nil {
				t.Errorf("expected configuration %v to be rejected", config)
			}
		})
	}
}
