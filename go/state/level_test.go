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
	"testing"

	"github.com/Fantom-foundation/fortune/go/tosca"
)

func TestLevel_UnknownSlotsAreZero(t *testing.T) {
	for name, config := range map[string]LevelConfig{
		"default_cache": {},
		"no_cache":      {CacheSize: -1},
	} {
		t.Run(name, func(t *testing.T) {
			db, err := NewMemoryLevel(config)
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			value, err := db.GetStorage(addr1, key1)
			if err != nil {
				t.Fatalf("failed to read slot: %v", err)
			}
			if !value.IsZero() {
				t.Errorf("unexpected value of unknown slot: %v", value)
			}
		})
	}
}

func TestLevel_CommitIsVisibleToReads(t *testing.T) {
	for name, config := range map[string]LevelConfig{
		"default_cache": {},
		"small_cache":   {CacheSize: 1},
		"no_cache":      {CacheSize: -1},
	} {
		t.Run(name, func(t *testing.T) {
			db, err := NewMemoryLevel(config)
			if err != nil {
				t.Fatalf("failed to open database: %v", err)
			}
			defer db.Close()

			// warm up the cache with the zero value
			if _, err := db.GetStorage(addr1, key1); err != nil {
				t.Fatalf("failed to read slot: %v", err)
			}
			err = db.Commit(Update{
				{addr1, key1}: tosca.NewWord(1),
				{addr1, key2}: tosca.NewWord(2),
			})
			if err != nil {
				t.Fatalf("failed to commit: %v", err)
			}
			for key, want := range map[tosca.Key]tosca.Word{key1: tosca.NewWord(1), key2: tosca.NewWord(2)} {
				got, err := db.GetStorage(addr1, key)
				if err != nil {
					t.Fatalf("failed to read slot: %v", err)
				}
				if want != got {
					t.Errorf("unexpected value for %v, wanted %v, got %v", key, want, got)
				}
			}

			if err := db.Commit(Update{{addr1, key1}: {}}); err != nil {
				t.Fatalf("failed to commit: %v", err)
			}
			if got, _ := db.GetStorage(addr1, key1); !got.IsZero() {
				t.Errorf("deleted slot should be zero, got %v", got)
			}
		})
	}
}

func TestLevel_ForEachVisitsSlotsOfOneAccountInOrder(t *testing.T) {
	db, err := NewMemoryLevel(LevelConfig{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	err = db.Commit(Update{
		{addr1, key2}:            tosca.NewWord(2),
		{addr1, key1}:            tosca.NewWord(1),
		{tosca.Address{2}, key1}: tosca.NewWord(3),
	})
	if err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	var keys []tosca.Key
	var values []tosca.Word
	err = db.ForEach(addr1, func(key tosca.Key, value tosca.Word) bool {
		keys = append(keys, key)
		values = append(values, value)
		return true
	})
	if err != nil {
		t.Fatalf("failed to iterate: %v", err)
	}
	if len(keys) != 2 || keys[0] != key1 || keys[1] != key2 {
		t.Errorf("unexpected keys: %v", keys)
	}
	if len(values) != 2 || values[0] != tosca.NewWord(1) || values[1] != tosca.NewWord(2) {
		t.Errorf("unexpected values: %v", values)
	}

	stats, err := db.Stats()
	if err != nil {
		t.Fatalf("failed to collect stats: %v", err)
	}
	if want, got := 3, stats.Slots; want != got {
		t.Errorf("unexpected number of slots, wanted %d, got %d", want, got)
	}
}

func TestLevel_DataSurvivesReopening(t *testing.T) {
	dir := t.TempDir()
	db, err := OpenLevel(dir, LevelConfig{})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Commit(Update{{addr1, key1}: tosca.NewWord(42)}); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	db, err = OpenLevel(dir, LevelConfig{})
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()
	got, err := db.GetStorage(addr1, key1)
	if err != nil {
		t.Fatalf("failed to read slot: %v", err)
	}
	if want := tosca.NewWord(42); want != got {
		t.Errorf("unexpected value after reopening, wanted %v, got %v", want, got)
	}
}
