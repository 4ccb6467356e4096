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
	"strings"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrInvalidInput  = errors.New("invalid input")
	ErrAborted       = errors.New("transaction aborted")
)

// Abort marks err as a fault of the whole transaction. A handler returning
// such an error does not revert its call; the error is reported to the
// processor, which aborts the transaction.
func Abort(err error) error {
	return fmt.Errorf("%w: %w", ErrAborted, err)
}

// Handler implements a single ABI method. It receives the decoded arguments
// and returns the values to be encoded as output. A non-nil error reverts
// the call, unless it is marked by Abort.
type Handler func(host Host, args []any) ([]any, error)

// Dispatcher routes call data to handlers by 4-byte method selector. It
// implements tosca.Contract.
type Dispatcher struct {
	abi      abi.ABI
	handlers map[[4]byte]method
	log      log.Logger
}

type method struct {
	abi     abi.Method
	handler Handler
}

// NewDispatcher parses the given ABI definition and binds the handlers to
// its methods by name. Methods of the ABI without a handler are not exposed;
// a handler without a matching method is an error.
func NewDispatcher(name string, definition string, handlers map[string]Handler) (*Dispatcher, error) {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", name, err)
	}
	res := &Dispatcher{
		abi:      parsed,
		handlers: make(map[[4]byte]method, len(handlers)),
		log:      log.New("contract", name),
	}
	for methodName, handler := range handlers {
		m, found := parsed.Methods[methodName]
		if !found {
			return nil, fmt.Errorf("%w: %s not in ABI of %s", ErrUnknownMethod, methodName, name)
		}
		res.handlers[[4]byte(m.ID)] = method{abi: m, handler: handler}
	}
	return res, nil
}

// Methods lists the names of the exposed methods in alphabetical order.
func (d *Dispatcher) Methods() []string {
	res := make([]string, 0, len(d.handlers))
	for _, m := range maps.Values(d.handlers) {
		res = append(res, m.abi.Name)
	}
	slices.Sort(res)
	return res
}

func (d *Dispatcher) Run(params tosca.Parameters) (tosca.Result, error) {
	input := params.Input
	if len(input) < 4 {
		return d.revert(params, fmt.Errorf("%w: call data of %d bytes", ErrUnknownMethod, len(input))), nil
	}
	m, found := d.handlers[[4]byte(input[:4])]
	if !found {
		return d.revert(params, fmt.Errorf("%w: selector %x", ErrUnknownMethod, input[:4])), nil
	}
	if params.Static && !m.abi.IsConstant() {
		return d.revert(params, fmt.Errorf("%w: %s in static context", ErrWriteProtection, m.abi.Name)), nil
	}
	args, err := m.abi.Inputs.Unpack(input[4:])
	if err != nil {
		return d.revert(params, fmt.Errorf("%w: %s: %w", ErrInvalidInput, m.abi.Name, err)), nil
	}

	host := newFrameHost(params)
	results, err := m.handler(host, args)
	if host.hostErr != nil {
		return tosca.Result{}, host.hostErr
	}
	if errors.Is(err, ErrAborted) {
		return tosca.Result{}, fmt.Errorf("%s: %w", m.abi.Name, err)
	}
	if err != nil {
		return d.revert(params, fmt.Errorf("%s: %w", m.abi.Name, err)), nil
	}
	if host.violation {
		return d.revert(params, fmt.Errorf("%w: %s wrote in static context", ErrWriteProtection, m.abi.Name)), nil
	}
	output, err := m.abi.Outputs.Pack(results...)
	if err != nil {
		return tosca.Result{}, fmt.Errorf("failed to encode output of %s: %w", m.abi.Name, err)
	}
	return tosca.Result{Success: true, Output: output}, nil
}

func (d *Dispatcher) revert(params tosca.Parameters, err error) tosca.Result {
	d.log.Debug("Call reverted", "address", params.Recipient, "sender", params.Sender, "depth", params.Depth, "err", err)
	return tosca.Result{Output: EncodeRevert(err.Error())}
}

// Pack encodes the call data of the named method.
func (d *Dispatcher) Pack(name string, args ...any) (tosca.Data, error) {
	return d.abi.Pack(name, args...)
}

// Unpack decodes the output of the named method.
func (d *Dispatcher) Unpack(name string, output tosca.Data) ([]any, error) {
	return d.abi.Unpack(name, output)
}
