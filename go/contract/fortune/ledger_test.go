// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fortune

import (
	"errors"
	"math"
	"testing"

	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"golang.org/x/exp/maps"
	"pgregory.net/rand"
)

// memoryStorage is a minimal contract.Storage keeping slots in a map.
type memoryStorage map[tosca.Key]tosca.Word

func (s memoryStorage) GetStorage(key tosca.Key) tosca.Word {
	return s[key]
}

func (s memoryStorage) SetStorage(key tosca.Key, value tosca.Word) {
	if value.IsZero() {
		delete(s, key)
		return
	}
	s[key] = value
}

var (
	alice = tosca.Address{0xa1, 0x1c, 0xe0}
	bob   = tosca.Address{0xb0, 0xb0}
	carol = tosca.Address{0xca, 0x01}
)

func TestLedger_EmptyLedger(t *testing.T) {
	ledger := NewLedger(memoryStorage{})
	if got := ledger.Total(); got != 0 {
		t.Errorf("unexpected total, wanted 0, got %d", got)
	}
	for _, index := range []uint64{0, 1, math.MaxUint64} {
		if got := ledger.Get(index); got != 0 {
			t.Errorf("unexpected record at %d, wanted 0, got %d", index, got)
		}
		if got := ledger.OwnerOf(index); got != (tosca.Address{}) {
			t.Errorf("unexpected owner at %d, wanted zero address, got %v", index, got)
		}
	}
	if got := ledger.BalanceOf(alice); got != 0 {
		t.Errorf("unexpected balance, wanted 0, got %d", got)
	}
}

func TestLedger_MintAppendsRecords(t *testing.T) {
	ledger := NewLedger(memoryStorage{})
	if err := ledger.Mint(42, alice); err != nil {
		t.Fatalf("failed to mint: %v", err)
	}
	if err := ledger.Mint(7, bob); err != nil {
		t.Fatalf("failed to mint: %v", err)
	}

	if got := ledger.Total(); got != 2 {
		t.Errorf("unexpected total, wanted 2, got %d", got)
	}
	tests := map[string]struct {
		index uint64
		value uint32
		owner tosca.Address
	}{
		"first":        {index: 0, value: 42, owner: alice},
		"second":       {index: 1, value: 7, owner: bob},
		"out of range": {index: 2, value: 0, owner: tosca.Address{}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ledger.Get(test.index); got != test.value {
				t.Errorf("unexpected record, wanted %d, got %d", test.value, got)
			}
			if got := ledger.OwnerOf(test.index); got != test.owner {
				t.Errorf("unexpected owner, wanted %v, got %v", test.owner, got)
			}
		})
	}
}

func TestLedger_RandomMintSequencesKeepBalancesConsistent(t *testing.T) {
	rnd := rand.New(0)
	accounts := []tosca.Address{alice, bob, carol}
	for round := 0; round < 10; round++ {
		ledger := NewLedger(memoryStorage{})
		n := rnd.Intn(100)
		values := make([]uint32, 0, n)
		owners := make([]tosca.Address, 0, n)
		for i := 0; i < n; i++ {
			value := rnd.Uint32()
			owner := accounts[rnd.Intn(len(accounts))]
			if err := ledger.Mint(value, owner); err != nil {
				t.Fatalf("failed to mint: %v", err)
			}
			values = append(values, value)
			owners = append(owners, owner)
		}

		if got := ledger.Total(); got != uint64(n) {
			t.Fatalf("unexpected total, wanted %d, got %d", n, got)
		}
		for i := range values {
			if got := ledger.Get(uint64(i)); got != values[i] {
				t.Errorf("unexpected record at %d, wanted %d, got %d", i, values[i], got)
			}
			if got := ledger.OwnerOf(uint64(i)); got != owners[i] {
				t.Errorf("unexpected owner at %d, wanted %v, got %v", i, owners[i], got)
			}
		}
		for i := 0; i < 10; i++ {
			index := uint64(n) + rnd.Uint64n(math.MaxUint64-uint64(n))
			if got := ledger.Get(index); got != 0 {
				t.Errorf("unexpected record at %d beyond the end, got %d", index, got)
			}
		}

		sum := uint64(0)
		for _, account := range accounts {
			sum += ledger.BalanceOf(account)
		}
		if sum != ledger.Total() {
			t.Errorf("sum of balances %d does not match total %d", sum, ledger.Total())
		}
	}
}

func TestLedger_UsesSolidityStorageLayout(t *testing.T) {
	storage := memoryStorage{}
	ledger := NewLedger(storage)
	if err := ledger.Mint(42, alice); err != nil {
		t.Fatalf("failed to mint: %v", err)
	}

	recordKey, _ := contract.ArrayElementKey(recordsSlot, 0, recordSize)
	want := memoryStorage{}
	want[contract.FieldKey(0)] = tosca.NewWord(1)
	want[contract.FieldKey(1)] = tosca.NewWord(1)
	want[recordKey] = tosca.NewWord(42)
	want[contract.MappingKey(2, tosca.NewWord(0))] = tosca.AddressToWord(alice)
	want[contract.MappingKey(3, tosca.AddressToWord(alice))] = tosca.NewWord(1)
	if !maps.Equal(want, storage) {
		t.Errorf("unexpected storage content\nwanted %v\n   got %v", want, storage)
	}
}

func TestLedger_EightRecordsShareOneWord(t *testing.T) {
	storage := memoryStorage{}
	ledger := NewLedger(storage)
	for i := uint32(1); i <= 9; i++ {
		if err := ledger.Mint(i, alice); err != nil {
			t.Fatalf("failed to mint: %v", err)
		}
	}

	first, _ := contract.ArrayElementKey(recordsSlot, 0, recordSize)
	second, _ := contract.ArrayElementKey(recordsSlot, 8, recordSize)
	var want tosca.Word
	for i := 0; i < 8; i++ {
		want[31-4*i] = byte(i + 1)
	}
	if got := storage[first]; got != want {
		t.Errorf("unexpected first record word, wanted %v, got %v", want, got)
	}
	if want, got := tosca.NewWord(9), storage[second]; got != want {
		t.Errorf("unexpected second record word, wanted %v, got %v", want, got)
	}
}

func TestLedger_OverflowLeavesStorageUntouched(t *testing.T) {
	tests := map[string]func(memoryStorage){
		"total": func(s memoryStorage) {
			s[contract.FieldKey(totalSlot)] = tosca.NewWord(math.MaxUint64)
		},
		"balance": func(s memoryStorage) {
			s[contract.MappingKey(balanceSlot, tosca.AddressToWord(alice))] = tosca.NewWord(math.MaxUint64)
		},
	}
	for name, setup := range tests {
		t.Run(name, func(t *testing.T) {
			storage := memoryStorage{}
			setup(storage)
			before := maps.Clone(storage)

			if err := NewLedger(storage).Mint(1, alice); !errors.Is(err, ErrOverflow) {
				t.Fatalf("expected overflow error, got %v", err)
			}
			if !maps.Equal(before, storage) {
				t.Errorf("storage was modified by failed mint\nbefore %v\n after %v", before, storage)
			}
		})
	}
}
