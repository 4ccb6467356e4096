// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"fmt"

	"github.com/Fantom-foundation/fortune/go/tosca"
)

// TransientPhase enumerates the life-cycle states of a transient storage.
type TransientPhase int

const (
	TransientUninitialized TransientPhase = iota // before the transaction started
	TransientActive                              // while the transaction is running
	TransientCleared                             // after the transaction ended
)

func (p TransientPhase) String() string {
	switch p {
	case TransientUninitialized:
		return "uninitialized"
	case TransientActive:
		return "active"
	case TransientCleared:
		return "cleared"
	}
	return fmt.Sprintf("TransientPhase(%d)", p)
}

// TransientStorage holds the transient slots of all accounts for the duration
// of a single transaction. Every nested call of the transaction observes the
// same instance. The storage becomes active on first access (or on Begin)
// and is wiped by Clear when the transaction ends, whatever its outcome. A
// cleared storage must not be used again; a new transaction starts with a new
// instance.
type TransientStorage struct {
	phase TransientPhase
	slots map[Slot]tosca.Word
}

// Begin marks the start of the transaction owning this storage.
func (t *TransientStorage) Begin() {
	t.activate()
}

func (t *TransientStorage) Get(address tosca.Address, key tosca.Key) tosca.Word {
	t.activate()
	return t.slots[Slot{address, key}]
}

func (t *TransientStorage) Set(address tosca.Address, key tosca.Key, value tosca.Word) {
	t.activate()
	slot := Slot{address, key}
	if value.IsZero() {
		delete(t.slots, slot)
		return
	}
	if t.slots == nil {
		t.slots = make(map[Slot]tosca.Word)
	}
	t.slots[slot] = value
}

// Clear discards all slots and ends the life of the storage. Clearing is
// idempotent.
func (t *TransientStorage) Clear() {
	t.slots = nil
	t.phase = TransientCleared
}

func (t *TransientStorage) Phase() TransientPhase {
	return t.phase
}

// Len returns the number of non-zero slots.
func (t *TransientStorage) Len() int {
	return len(t.slots)
}

func (t *TransientStorage) activate() {
	switch t.phase {
	case TransientUninitialized:
		t.phase = TransientActive
	case TransientCleared:
		panic("transient storage accessed after the end of its transaction")
	}
}
