// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tstore

import (
	"fmt"

	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/tosca"
)

// Name is the name under which the contract is registered.
const Name = "tstore"

const definition = `[
	{"type":"function","name":"hello","stateMutability":"view",
	 "inputs":[],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"reentrant","stateMutability":"nonpayable",
	 "inputs":[],"outputs":[{"name":"","type":"bytes32"}]}
]`

// Config selects the entry points exposed by a deployed scratch pad.
type Config struct {
	Hello     bool // expose hello(), reading the sentinel slot
	Reentrant bool // expose reentrant(), publishing and re-reading the sentinel
}

// DefaultConfig exposes both entry points.
func DefaultConfig() Config {
	return Config{Hello: true, Reentrant: true}
}

func init() {
	if err := tosca.RegisterContractFactory(Name, newFromConfig); err != nil {
		panic(fmt.Errorf("failed to register %s contract: %w", Name, err))
	}
}

func newFromConfig(config any) (tosca.Contract, error) {
	var c Config
	switch value := config.(type) {
	case nil:
		c = DefaultConfig()
	case Config:
		c = value
	case *Config:
		c = DefaultConfig()
		if value != nil {
			c = *value
		}
	default:
		return nil, fmt.Errorf("invalid configuration for %s: %T", Name, config)
	}
	res, err := New(c)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// New creates a scratch pad contract exposing the entry points selected by
// the configuration.
func New(config Config) (*contract.Dispatcher, error) {
	if !config.Hello && !config.Reentrant {
		return nil, fmt.Errorf("invalid configuration for %s: no entry point enabled", Name)
	}
	handlers := map[string]contract.Handler{}
	if config.Hello {
		handlers["hello"] = hello
	}
	if config.Reentrant {
		handlers["reentrant"] = reentrant
	}
	return contract.NewDispatcher(Name, definition, handlers)
}

func hello(host contract.Host, _ []any) ([]any, error) {
	return []any{[32]byte(NewScratchPad(host).Probe())}, nil
}

func reentrant(host contract.Host, _ []any) ([]any, error) {
	value, err := NewScratchPad(host).Reenter()
	if err != nil {
		return nil, err
	}
	return []any{[32]byte(value)}, nil
}
