// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fortune/go/tosca"
)

//go:generate mockgen -source host.go -destination host_mock.go -package contract

// Storage provides access to the persistent slots of the executing contract.
type Storage interface {
	GetStorage(tosca.Key) tosca.Word
	SetStorage(tosca.Key, tosca.Word)
}

// TransientStore provides access to the transient slots of the executing
// contract. Stored values are visible to all calls of the current
// transaction, including re-entrant ones, and vanish when it ends.
type TransientStore interface {
	Load(tosca.Key) tosca.Word
	Store(tosca.Key, tosca.Word)
}

// Host is the capability surface offered to contract logic. It is bound to
// a single call frame.
type Host interface {
	Storage
	TransientStore

	BlockTimestamp() uint64
	Caller() tosca.Address
	ContractAddress() tosca.Address

	// StaticCall issues a read-only call and returns its output. A call that
	// ends in a revert produces an error wrapping ErrCallFailed.
	StaticCall(recipient tosca.Address, input tosca.Data) (tosca.Data, error)
}

var (
	ErrCallFailed      = errors.New("nested call failed")
	ErrWriteProtection = errors.New("write protection")
)

// frameHost implements Host on top of the parameters of a call frame. Writes
// attempted in a static frame are dropped and remembered, so the dispatcher
// can revert the call.
type frameHost struct {
	params    tosca.Parameters
	violation bool
	hostErr   error
}

func newFrameHost(params tosca.Parameters) *frameHost {
	return &frameHost{params: params}
}

func (h *frameHost) GetStorage(key tosca.Key) tosca.Word {
	return h.params.Context.GetStorage(h.params.Recipient, key)
}

func (h *frameHost) SetStorage(key tosca.Key, value tosca.Word) {
	if h.params.Static {
		h.violation = true
		return
	}
	h.params.Context.SetStorage(h.params.Recipient, key, value)
}

func (h *frameHost) Load(key tosca.Key) tosca.Word {
	return h.params.Context.GetTransientStorage(h.params.Recipient, key)
}

func (h *frameHost) Store(key tosca.Key, value tosca.Word) {
	if h.params.Static {
		h.violation = true
		return
	}
	h.params.Context.SetTransientStorage(h.params.Recipient, key, value)
}

func (h *frameHost) BlockTimestamp() uint64 {
	return h.params.Timestamp
}

func (h *frameHost) Caller() tosca.Address {
	return h.params.Sender
}

func (h *frameHost) ContractAddress() tosca.Address {
	return h.params.Recipient
}

func (h *frameHost) StaticCall(recipient tosca.Address, input tosca.Data) (tosca.Data, error) {
	result, err := h.params.Context.Call(tosca.StaticCall, tosca.CallParameters{
		Sender:    h.params.Recipient,
		Recipient: recipient,
		Input:     input,
	})
	if err != nil {
		// Failures of the host are not reverts; they abort the transaction.
		if h.hostErr == nil {
			h.hostErr = err
		}
		return nil, fmt.Errorf("%w: %w", ErrCallFailed, err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: call to %v reverted", ErrCallFailed, recipient)
	}
	return result.Output, nil
}
