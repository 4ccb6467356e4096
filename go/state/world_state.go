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
	"maps"

	"github.com/Fantom-foundation/fortune/go/tosca"
)

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package state

// Backend is the durable source of committed storage slots. Reads are served
// slot by slot while a transaction runs; all writes of a transaction reach the
// backend through a single Commit call.
type Backend interface {
	GetStorage(tosca.Address, tosca.Key) (tosca.Word, error)
	// Commit applies all slot updates atomically. A zero word deletes a slot.
	Commit(Update) error
	Close() error
}

// Slot addresses a single storage slot of an account.
type Slot struct {
	Address tosca.Address
	Key     tosca.Key
}

func (s Slot) String() string {
	return fmt.Sprintf("%v/%v", s.Address, s.Key)
}

// Update is the set of slot values written by a transaction.
type Update map[Slot]tosca.Word

// ----------------------------------------------------------------------------
// WorldState
// ----------------------------------------------------------------------------

// WorldState is an in-memory Backend, mapping accounts to their storage. It is
// mainly intended for tests and for describing pre/post states of scenarios.
type WorldState map[tosca.Address]Storage

func (s WorldState) GetStorage(address tosca.Address, key tosca.Key) (tosca.Word, error) {
	return s[address][key], nil
}

func (s WorldState) Commit(update Update) error {
	for slot, value := range update {
		storage := s[slot.Address]
		if value.IsZero() {
			delete(storage, slot.Key)
			if len(storage) == 0 {
				delete(s, slot.Address)
			}
			continue
		}
		if storage == nil {
			storage = Storage{}
			s[slot.Address] = storage
		}
		storage[slot.Key] = value
	}
	return nil
}

func (s WorldState) Close() error {
	return nil
}

func (s WorldState) Equal(other WorldState) bool {
	return equalMapsIgnoringZero(s, other, func(a, b Storage) bool {
		return a.Equal(b)
	})
}

func (s WorldState) Clone() WorldState {
	if s == nil {
		return nil
	}
	res := make(WorldState, len(s))
	for k, v := range s {
		res[k] = v.Clone()
	}
	return res
}

func (s WorldState) Diff(other WorldState) []string {
	return diffMaps("", s, other, func(address tosca.Address, a, b Storage) []string {
		return a.Diff(fmt.Sprintf("%v/", address), b)
	})
}

// ----------------------------------------------------------------------------
// Storage
// ----------------------------------------------------------------------------

// Storage represents the storage of an account in the world state. Zero-valued
// entries are ignored in the storage.
type Storage map[tosca.Key]tosca.Word

func (s Storage) Equal(other Storage) bool {
	return equalMapsIgnoringZero(s, other, func(a, b tosca.Word) bool {
		return a == b
	})
}

func (s Storage) Clone() Storage {
	return maps.Clone(s)
}

func (s Storage) Diff(prefix string, other Storage) []string {
	return diffMaps(prefix, s, other, func(k tosca.Key, a, b tosca.Word) []string {
		if a == b {
			return nil
		}
		return []string{
			fmt.Sprintf("different value for key %v: %v != %v", k, a, b),
		}
	})
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// equalMapsIgnoringZero compares two maps, ignoring zero-valued entries.
func equalMapsIgnoringZero[K comparable, V any](a, b map[K]V, equal func(V, V) bool) bool {
	for k, v := range a {
		if !equal(v, b[k]) {
			return false
		}
	}
	for k, v := range b {
		if !equal(v, a[k]) {
			return false
		}
	}
	return true
}

// diffMaps compares two maps and returns a list of differences.
func diffMaps[K comparable, V any](prefix string, a, b map[K]V, diff func(K, V, V) []string) []string {
	var diffs []string
	for k, v := range a {
		diffs = append(diffs, diff(k, v, b[k])...)
	}
	for k, v := range b {
		if _, overlap := a[k]; !overlap {
			diffs = append(diffs, diff(k, a[k], v)...)
		}
	}
	for i, diff := range diffs {
		diffs[i] = prefix + diff
	}
	return diffs
}
