// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package floria

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/log"
)

// MaxRecursiveDepth is the deepest nesting level at which a call frame may
// still be started. The top-level frame of a transaction is at depth 0.
const MaxRecursiveDepth = 1024

var (
	ErrUnknownContract = errors.New("no contract deployed")
	ErrMaxDepth        = errors.New("max call depth exceeded")
)

// runContext is the RunContext handed to contracts. Each frame obtains its
// own copy carrying the depth and static flag a nested call would start with.
// All frames of a transaction share its fault record.
type runContext struct {
	tosca.TransactionContext
	deployments           tosca.Deployments
	blockParameters       tosca.BlockParameters
	transactionParameters tosca.TransactionParameters
	depth                 int
	static                bool
	fault                 *error
	log                   log.Logger
}

func (r runContext) Call(kind tosca.CallKind, parameters tosca.CallParameters) (tosca.CallResult, error) {
	if kind != tosca.Call && kind != tosca.StaticCall {
		return tosca.CallResult{}, fmt.Errorf("unsupported call kind %v", kind)
	}
	return r.executeCall(kind, parameters)
}

func (r runContext) executeCall(kind tosca.CallKind, parameters tosca.CallParameters) (tosca.CallResult, error) {
	if r.depth > MaxRecursiveDepth {
		r.logFailure(kind, parameters, ErrMaxDepth)
		return tosca.CallResult{}, nil
	}
	contract := r.deployments.GetContract(parameters.Recipient)
	if contract == nil {
		r.logFailure(kind, parameters, ErrUnknownContract)
		return tosca.CallResult{}, nil
	}

	frame := r
	frame.depth++
	if kind == tosca.StaticCall {
		frame.static = true
	}

	snapshot := r.CreateSnapshot()
	result, err := contract.Run(tosca.Parameters{
		BlockParameters:       r.blockParameters,
		TransactionParameters: r.transactionParameters,
		Context:               frame,
		Kind:                  kind,
		Static:                frame.static,
		Depth:                 r.depth,
		Recipient:             parameters.Recipient,
		Sender:                parameters.Sender,
		Input:                 parameters.Input,
	})
	if err != nil || !result.Success {
		r.RestoreSnapshot(snapshot)
	}
	if err != nil {
		err = fmt.Errorf("call to %v at depth %d failed: %w", parameters.Recipient, r.depth, err)
		if r.fault != nil && *r.fault == nil {
			*r.fault = err
		}
		return tosca.CallResult{}, err
	}
	if !result.Success {
		r.logFailure(kind, parameters, nil)
	}
	return tosca.CallResult{
		Output:  result.Output,
		Success: result.Success,
	}, nil
}

func (r runContext) logFailure(kind tosca.CallKind, parameters tosca.CallParameters, err error) {
	if r.log == nil {
		return
	}
	ctx := []any{"kind", kind, "sender", parameters.Sender, "recipient", parameters.Recipient, "depth", r.depth}
	if err != nil {
		ctx = append(ctx, "err", err)
	}
	r.log.Debug("Call failed", ctx...)
}
