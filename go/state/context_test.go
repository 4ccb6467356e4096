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
	"testing"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"go.uber.org/mock/gomock"
)

var (
	addr1 = tosca.Address{1}
	key1  = tosca.NewKey(1)
	key2  = tosca.NewKey(2)
)

func TestContext_ReadsFallBackToBackend(t *testing.T) {
	backend := WorldState{addr1: Storage{key1: tosca.NewWord(5)}}
	context := NewContext(backend)

	if want, got := tosca.NewWord(5), context.GetStorage(addr1, key1); want != got {
		t.Errorf("unexpected value, wanted %v, got %v", want, got)
	}
	context.SetStorage(addr1, key1, tosca.NewWord(6))
	if want, got := tosca.NewWord(6), context.GetStorage(addr1, key1); want != got {
		t.Errorf("unexpected value, wanted %v, got %v", want, got)
	}
	if want, got := tosca.NewWord(5), backend[addr1][key1]; want != got {
		t.Errorf("backend modified before commit, wanted %v, got %v", want, got)
	}
}

func TestContext_RestoreSnapshotUndoesWrites(t *testing.T) {
	backend := WorldState{addr1: Storage{key1: tosca.NewWord(5)}}
	context := NewContext(backend)

	context.SetStorage(addr1, key1, tosca.NewWord(6))
	snapshot := context.CreateSnapshot()
	context.SetStorage(addr1, key1, tosca.NewWord(7))
	context.SetStorage(addr1, key2, tosca.NewWord(8))
	context.SetTransientStorage(addr1, key1, tosca.NewWord(9))

	context.RestoreSnapshot(snapshot)

	if want, got := tosca.NewWord(6), context.GetStorage(addr1, key1); want != got {
		t.Errorf("unexpected value, wanted %v, got %v", want, got)
	}
	if got := context.GetStorage(addr1, key2); !got.IsZero() {
		t.Errorf("write after snapshot was not undone, got %v", got)
	}
	if got := context.GetTransientStorage(addr1, key1); !got.IsZero() {
		t.Errorf("transient write after snapshot was not undone, got %v", got)
	}
	pending := context.Pending()
	if len(pending) != 1 || pending[Slot{addr1, key1}] != tosca.NewWord(6) {
		t.Errorf("unexpected pending writes: %v", pending)
	}
}

func TestContext_TransientWritesBeforeSnapshotSurviveRestore(t *testing.T) {
	context := NewContext(WorldState{})
	context.SetTransientStorage(addr1, key1, tosca.NewWord(1))
	snapshot := context.CreateSnapshot()
	context.SetTransientStorage(addr1, key1, tosca.NewWord(2))
	context.RestoreSnapshot(snapshot)

	if want, got := tosca.NewWord(1), context.GetTransientStorage(addr1, key1); want != got {
		t.Errorf("unexpected transient value, wanted %v, got %v", want, got)
	}
}

func TestContext_CommitWritesAllSlotsInOneUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	backend.EXPECT().Commit(Update{
		{addr1, key1}: tosca.NewWord(1),
		{addr1, key2}: tosca.NewWord(2),
	}).Return(nil)

	context := NewContext(backend)
	context.SetStorage(addr1, key1, tosca.NewWord(1))
	context.SetStorage(addr1, key2, tosca.NewWord(2))
	if err := context.Commit(); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	if want, got := TransientCleared, context.TransientPhase(); want != got {
		t.Errorf("transient storage not cleared on commit, wanted %v, got %v", want, got)
	}
	if err := context.Commit(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("second commit should fail with %v, got %v", ErrContextClosed, err)
	}
}

func TestContext_CommitWithoutWritesDoesNotTouchBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)

	context := NewContext(backend)
	context.SetTransientStorage(addr1, key1, tosca.NewWord(1))
	if err := context.Commit(); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
}

func TestContext_BackendReadErrorPreventsCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	injected := errors.New("injected")
	backend.EXPECT().GetStorage(addr1, key1).Return(tosca.Word{}, injected)

	context := NewContext(backend)
	if got := context.GetStorage(addr1, key1); !got.IsZero() {
		t.Errorf("failed read must produce zero, got %v", got)
	}
	context.SetStorage(addr1, key2, tosca.NewWord(1))

	if err := context.Commit(); !errors.Is(err, injected) {
		t.Errorf("unexpected commit error, wanted %v, got %v", injected, err)
	}
	if !errors.Is(context.Err(), injected) {
		t.Errorf("unexpected recorded error, got %v", context.Err())
	}
}

func TestContext_DiscardDropsWritesAndClearsTransientStorage(t *testing.T) {
	backend := WorldState{}
	context := NewContext(backend)
	context.SetStorage(addr1, key1, tosca.NewWord(1))
	context.SetTransientStorage(addr1, key1, tosca.NewWord(1))

	context.Discard()
	context.Discard()

	if len(backend) != 0 {
		t.Errorf("discarded writes reached the backend: %v", backend)
	}
	if want, got := TransientCleared, context.TransientPhase(); want != got {
		t.Errorf("transient storage not cleared on discard, wanted %v, got %v", want, got)
	}
	if err := context.Commit(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("commit after discard should fail with %v, got %v", ErrContextClosed, err)
	}
}

func TestContext_TransientStorageIsNotSharedBetweenContexts(t *testing.T) {
	backend := WorldState{}
	first := NewContext(backend)
	first.SetTransientStorage(addr1, key1, tosca.NewWord(456))
	if err := first.Commit(); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}

	second := NewContext(backend)
	if got := second.GetTransientStorage(addr1, key1); !got.IsZero() {
		t.Errorf("transient value leaked into next transaction: %v", got)
	}
	if len(backend) != 0 {
		t.Errorf("transient value was persisted: %v", backend)
	}
}

func TestContext_AccessAfterCloseFails(t *testing.T) {
	closers := map[string]func(*Context){
		"commit":  func(c *Context) { c.Commit() },
		"discard": func(c *Context) { c.Discard() },
	}
	accesses := map[string]func(*Context){
		"get storage":           func(c *Context) { c.GetStorage(addr1, key1) },
		"set storage":           func(c *Context) { c.SetStorage(addr1, key1, tosca.NewWord(1)) },
		"get transient storage": func(c *Context) { c.GetTransientStorage(addr1, key1) },
		"set transient storage": func(c *Context) { c.SetTransientStorage(addr1, key1, tosca.NewWord(1)) },
		"create snapshot":       func(c *Context) { c.CreateSnapshot() },
		"restore snapshot":      func(c *Context) { c.RestoreSnapshot(0) },
	}
	for closerName, closer := range closers {
		for accessName, access := range accesses {
			t.Run(closerName+"/"+accessName, func(t *testing.T) {
				backend := WorldState{addr1: Storage{key1: tosca.NewWord(7)}}
				context := NewContext(backend)
				closer(context)
				defer func() {
					if recover() == nil {
						t.Errorf("expected access of closed context to panic")
					}
				}()
				access(context)
			})
		}
	}
}
