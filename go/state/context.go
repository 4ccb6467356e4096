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
)

// ErrContextClosed is returned when a context is used after it was committed
// or discarded.
var ErrContextClosed = errors.New("transaction context already closed")

// Context implements tosca.TransactionContext for a single transaction on top
// of a Backend. Writes are buffered and recorded in an undo log, so snapshots
// are plain positions in that log. Buffered writes reach the backend in one
// Commit; Discard drops them. Either way the transient storage of the
// transaction is cleared and the context is closed.
//
// Backend read failures cannot be reported through the WorldState interface.
// The first one is recorded and causes Commit to fail, similar to how the
// geth StateDB tracks database errors.
type Context struct {
	backend   Backend
	dirty     map[Slot]tosca.Word
	transient TransientStorage
	undo      []func()
	err       error
	closed    bool
}

// NewContext opens a transaction context on the given backend and starts its
// transient storage.
func NewContext(backend Backend) *Context {
	c := &Context{
		backend: backend,
		dirty:   map[Slot]tosca.Word{},
	}
	c.transient.Begin()
	return c
}

func (c *Context) GetStorage(address tosca.Address, key tosca.Key) tosca.Word {
	c.checkOpen()
	slot := Slot{address, key}
	if value, found := c.dirty[slot]; found {
		return value
	}
	value, err := c.backend.GetStorage(address, key)
	if err != nil {
		c.setError(fmt.Errorf("failed to read slot %v: %w", slot, err))
		return tosca.Word{}
	}
	return value
}

func (c *Context) SetStorage(address tosca.Address, key tosca.Key, value tosca.Word) {
	c.checkOpen()
	slot := Slot{address, key}
	original, found := c.dirty[slot]
	c.dirty[slot] = value
	c.undo = append(c.undo, func() {
		if found {
			c.dirty[slot] = original
		} else {
			delete(c.dirty, slot)
		}
	})
}

func (c *Context) GetTransientStorage(address tosca.Address, key tosca.Key) tosca.Word {
	return c.transient.Get(address, key)
}

func (c *Context) SetTransientStorage(address tosca.Address, key tosca.Key, value tosca.Word) {
	original := c.transient.Get(address, key)
	c.transient.Set(address, key, value)
	c.undo = append(c.undo, func() { c.transient.Set(address, key, original) })
}

func (c *Context) CreateSnapshot() tosca.Snapshot {
	c.checkOpen()
	return tosca.Snapshot(len(c.undo))
}

func (c *Context) RestoreSnapshot(snapshot tosca.Snapshot) {
	c.checkOpen()
	for len(c.undo) > int(snapshot) {
		c.undo[len(c.undo)-1]()
		c.undo = c.undo[:len(c.undo)-1]
	}
}

// TransientPhase reports the life-cycle state of the transient storage.
func (c *Context) TransientPhase() TransientPhase {
	return c.transient.Phase()
}

// Err returns the first backend error encountered by this context.
func (c *Context) Err() error {
	return c.err
}

// Pending returns a copy of the buffered writes.
func (c *Context) Pending() Update {
	res := make(Update, len(c.dirty))
	for slot, value := range c.dirty {
		res[slot] = value
	}
	return res
}

// Commit writes all buffered slots to the backend in a single update and
// closes the context. Nothing is written if a backend error was recorded.
func (c *Context) Commit() error {
	if c.closed {
		return ErrContextClosed
	}
	defer c.close()
	if c.err != nil {
		return c.err
	}
	if len(c.dirty) == 0 {
		return nil
	}
	return c.backend.Commit(c.Pending())
}

// Discard drops all buffered writes and closes the context.
func (c *Context) Discard() {
	if !c.closed {
		c.close()
	}
}

// checkOpen panics if the context was committed or discarded. Transient
// storage performs the same check on its own.
func (c *Context) checkOpen() {
	if c.closed {
		panic(ErrContextClosed)
	}
}

func (c *Context) close() {
	c.transient.Clear()
	c.dirty = nil
	c.undo = nil
	c.closed = true
}

func (c *Context) setError(err error) {
	if c.err == nil {
		c.err = err
	}
}
