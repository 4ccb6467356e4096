// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fortune

import (
	"fmt"

	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/common"
)

// Name is the name under which the contract is registered.
const Name = "fortune"

const definition = `[
	{"type":"function","name":"mintFortune","stateMutability":"nonpayable",
	 "inputs":[{"name":"value","type":"uint32"}],"outputs":[]},
	{"type":"function","name":"getFortune","stateMutability":"view",
	 "inputs":[{"name":"index","type":"uint64"}],"outputs":[{"name":"","type":"uint32"}]},
	{"type":"function","name":"generateFortune","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint32"}]},
	{"type":"function","name":"totalMinted","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"uint64"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view",
	 "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint64"}]}
]`

func init() {
	if err := tosca.RegisterContractFactory(Name, newFromConfig); err != nil {
		panic(fmt.Errorf("failed to register %s contract: %w", Name, err))
	}
}

func newFromConfig(config any) (tosca.Contract, error) {
	if config != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %T", Name, config)
	}
	res, err := New()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// New creates the fortune contract. It takes no configuration.
func New() (*contract.Dispatcher, error) {
	return contract.NewDispatcher(Name, definition, map[string]contract.Handler{
		"mintFortune":     mintFortune,
		"getFortune":      getFortune,
		"generateFortune": generateFortune,
		"totalMinted":     totalMinted,
		"balanceOf":       balanceOf,
	})
}

func mintFortune(host contract.Host, args []any) ([]any, error) {
	if err := NewLedger(host).Mint(args[0].(uint32), host.Caller()); err != nil {
		return nil, contract.Abort(err)
	}
	return nil, nil
}

func getFortune(host contract.Host, args []any) ([]any, error) {
	return []any{NewLedger(host).Get(args[0].(uint64))}, nil
}

func generateFortune(host contract.Host, _ []any) ([]any, error) {
	ledger := NewLedger(host)
	total := ledger.Total()
	if total == 0 {
		return []any{uint32(0)}, nil
	}
	return []any{ledger.Get(Select(total, host.BlockTimestamp(), host.Caller()))}, nil
}

func totalMinted(host contract.Host, _ []any) ([]any, error) {
	return []any{NewLedger(host).Total()}, nil
}

func balanceOf(host contract.Host, args []any) ([]any, error) {
	return []any{NewLedger(host).BalanceOf(tosca.Address(args[0].(common.Address)))}, nil
}
