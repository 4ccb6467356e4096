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

	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/tosca"
)

// Storage slots of the ledger fields.
const (
	totalSlot   = 0
	recordsSlot = 1
	ownersSlot  = 2
	balanceSlot = 3
)

const recordSize = 4

var ErrOverflow = errors.New("arithmetic overflow")

// Ledger is an append-only list of minted fortunes plus the owner of every
// record and the number of records minted per account. It keeps no state of
// its own; all fields live in the provided storage.
type Ledger struct {
	storage contract.Storage
}

func NewLedger(storage contract.Storage) Ledger {
	return Ledger{storage: storage}
}

// Mint appends value to the ledger on behalf of caller. All values are read
// and checked before the first write, so a failing mint leaves the storage
// untouched.
func (l Ledger) Mint(value uint32, caller tosca.Address) error {
	total := l.Total()
	if total == math.MaxUint64 {
		return ErrOverflow
	}
	balanceKey := contract.MappingKey(balanceSlot, tosca.AddressToWord(caller))
	balance := l.storage.GetStorage(balanceKey).Uint64()
	if balance == math.MaxUint64 {
		return ErrOverflow
	}
	recordKey, offset := contract.ArrayElementKey(recordsSlot, total, recordSize)
	record := contract.SetUint32(l.storage.GetStorage(recordKey), offset, value)
	ownerKey := contract.MappingKey(ownersSlot, tosca.NewWord(total))

	l.storage.SetStorage(recordKey, record)
	l.storage.SetStorage(contract.FieldKey(recordsSlot), tosca.NewWord(total+1))
	l.storage.SetStorage(ownerKey, tosca.AddressToWord(caller))
	l.storage.SetStorage(contract.FieldKey(totalSlot), tosca.NewWord(total+1))
	l.storage.SetStorage(balanceKey, tosca.NewWord(balance+1))
	return nil
}

// Get returns the record at the given index, or 0 if there is none.
func (l Ledger) Get(index uint64) uint32 {
	if index >= l.Total() {
		return 0
	}
	key, offset := contract.ArrayElementKey(recordsSlot, index, recordSize)
	return contract.GetUint32(l.storage.GetStorage(key), offset)
}

func (l Ledger) Total() uint64 {
	return l.storage.GetStorage(contract.FieldKey(totalSlot)).Uint64()
}

func (l Ledger) BalanceOf(account tosca.Address) uint64 {
	return l.storage.GetStorage(contract.MappingKey(balanceSlot, tosca.AddressToWord(account))).Uint64()
}

// OwnerOf returns the account that minted the record at the given index, or
// the zero address if there is none.
func (l Ledger) OwnerOf(index uint64) tosca.Address {
	if index >= l.Total() {
		return tosca.Address{}
	}
	return tosca.WordToAddress(l.storage.GetStorage(contract.MappingKey(ownersSlot, tosca.NewWord(index))))
}
