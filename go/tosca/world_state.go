// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package tosca

// WorldState is an interface to access and manipulate the durable storage of
// contract accounts. Every account owns an independent 2^256 slot space.
type WorldState interface {
	GetStorage(Address, Key) Word
	SetStorage(Address, Key, Word)
}

// TransactionContext is an interface to access and manipulate the world state
// in a transaction. All modifications are buffered in the transaction context,
// which can be snapshot and restored. Additionally, a transaction context
// manages transient storage, a per-account slot space that lives exactly as
// long as the transaction.
type TransactionContext interface {
	WorldState

	CreateSnapshot() Snapshot
	RestoreSnapshot(Snapshot)

	GetTransientStorage(Address, Key) Word
	SetTransientStorage(Address, Key, Word)
}

// RunContext extends the transaction context with the ability to issue
// nested calls into other (or the same) contracts.
type RunContext interface {
	TransactionContext

	Call(kind CallKind, parameter CallParameters) (CallResult, error)
}

// Snapshot is a type used to represent a snapshot of the world state in a
// transaction context.
type Snapshot int
