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
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fortune/go/tosca"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// storagePrefix is the key prefix of storage slots in the database. A slot is
// stored under prefix ‖ address ‖ key with the 32-byte word as value.
const storagePrefix = byte('s')

const slotKeyLength = 1 + len(tosca.Address{}) + len(tosca.Key{})

// LevelConfig contains the configuration options of the LevelDB backend.
type LevelConfig struct {
	// CacheSize is the number of committed slots kept in memory. If set to 0,
	// a default size is used. If negative, no cache is used.
	CacheSize int
	// BlockCacheMiB is the size of LevelDB's block cache in MiB. Values
	// smaller than 8 are raised to 8.
	BlockCacheMiB int
}

const defaultSlotCacheSize = 1 << 16

// Level is a Backend persisting storage slots in a LevelDB database.
type Level struct {
	db    *leveldb.DB
	cache *lru.Cache[Slot, tosca.Word]
}

// OpenLevel opens (or creates) a LevelDB database in the given directory.
func OpenLevel(path string, config LevelConfig) (*Level, error) {
	db, err := leveldb.OpenFile(path, levelOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open database in %s: %w", path, err)
	}
	return newLevel(db, config)
}

// NewMemoryLevel creates a LevelDB backend on in-memory storage.
func NewMemoryLevel(config LevelConfig) (*Level, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), levelOptions(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newLevel(db, config)
}

func levelOptions(config LevelConfig) *opt.Options {
	cacheMiB := config.BlockCacheMiB
	if cacheMiB < 8 {
		cacheMiB = 8
	}
	return &opt.Options{
		BlockCacheCapacity: cacheMiB * opt.MiB,
		Filter:             filter.NewBloomFilter(10),
	}
}

func newLevel(db *leveldb.DB, config LevelConfig) (*Level, error) {
	if config.CacheSize == 0 {
		config.CacheSize = defaultSlotCacheSize
	}
	var cache *lru.Cache[Slot, tosca.Word]
	if config.CacheSize > 0 {
		var err error
		cache, err = lru.New[Slot, tosca.Word](config.CacheSize)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Level{db: db, cache: cache}, nil
}

func (l *Level) GetStorage(address tosca.Address, key tosca.Key) (tosca.Word, error) {
	slot := Slot{address, key}
	if l.cache != nil {
		if value, found := l.cache.Get(slot); found {
			return value, nil
		}
	}
	var value tosca.Word
	data, err := l.db.Get(slotKey(slot), nil)
	switch {
	case errors.Is(err, leveldb.ErrNotFound):
	case err != nil:
		return tosca.Word{}, err
	case len(data) != len(value):
		return tosca.Word{}, fmt.Errorf("corrupted slot %v: invalid length %d", slot, len(data))
	default:
		copy(value[:], data)
	}
	if l.cache != nil {
		l.cache.Add(slot, value)
	}
	return value, nil
}

func (l *Level) Commit(update Update) error {
	batch := new(leveldb.Batch)
	for slot, value := range update {
		if value.IsZero() {
			batch.Delete(slotKey(slot))
		} else {
			batch.Put(slotKey(slot), value[:])
		}
	}
	if err := l.db.Write(batch, nil); err != nil {
		return fmt.Errorf("failed to write %d slots: %w", len(update), err)
	}
	if l.cache != nil {
		for slot, value := range update {
			l.cache.Add(slot, value)
		}
	}
	return nil
}

// ForEach visits all non-zero slots of the given account in key order until
// the visitor returns false.
func (l *Level) ForEach(address tosca.Address, visit func(tosca.Key, tosca.Word) bool) error {
	prefix := append([]byte{storagePrefix}, address[:]...)
	iter := l.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		if len(iter.Key()) != slotKeyLength || len(iter.Value()) != len(tosca.Word{}) {
			return fmt.Errorf("corrupted slot entry %x", iter.Key())
		}
		var key tosca.Key
		var value tosca.Word
		copy(key[:], iter.Key()[len(prefix):])
		copy(value[:], iter.Value())
		if !visit(key, value) {
			break
		}
	}
	return iter.Error()
}

// LevelStats summarizes the content of a LevelDB backend.
type LevelStats struct {
	Slots     int   // number of stored slots
	DiskBytes int64 // approximate size of the stored slots on disk
}

// Stats counts the stored slots and estimates their disk footprint.
func (l *Level) Stats() (LevelStats, error) {
	var res LevelStats
	rng := util.BytesPrefix([]byte{storagePrefix})
	iter := l.db.NewIterator(rng, nil)
	for iter.Next() {
		res.Slots++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return res, err
	}
	sizes, err := l.db.SizeOf([]util.Range{*rng})
	if err != nil {
		return res, err
	}
	res.DiskBytes = sizes.Sum()
	return res, nil
}

func (l *Level) Close() error {
	return l.db.Close()
}

func slotKey(slot Slot) []byte {
	res := make([]byte, 0, slotKeyLength)
	res = append(res, storagePrefix)
	res = append(res, slot.Address[:]...)
	return append(res, slot.Key[:]...)
}
