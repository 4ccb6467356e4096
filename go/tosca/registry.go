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

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// This file provides registries for Processor and Contract factories.
//
// For an implementation to be available it needs to be registered. Typically,
// this registration is part of the init code of the package providing an
// implementation. Thus, by including the implementation package, processors
// and contracts become available in these central registries.

// ProcessorFactory is the type of a function that creates a new Processor
// resolving contracts through the given deployments.
type ProcessorFactory func(Deployments) Processor

// ContractFactory is the type of a function that creates a new Contract
// instance using a contract specific configuration. A nil configuration
// selects the contract's defaults.
type ContractFactory func(config any) (Contract, error)

// GetProcessor performs a lookup for the given name (case-insensitive) and
// creates a processor instance using the given deployments. The result is
// nil if no factory was registered under the given name.
func GetProcessor(name string, deployments Deployments) Processor {
	factory := GetProcessorFactory(name)
	if factory == nil {
		return nil
	}
	return factory(deployments)
}

// GetProcessorFactory performs a lookup for the given name (case-insensitive)
// in the registry. The result is nil if no factory was registered under the
// given name.
func GetProcessorFactory(name string) ProcessorFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return processorRegistry[strings.ToLower(name)]
}

// GetAllRegisteredProcessorFactories obtains all registered implementations.
func GetAllRegisteredProcessorFactories() map[string]ProcessorFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(processorRegistry)
}

// RegisterProcessorFactory can be used to register a new Processor implementation
// to be exported for general use in the binary. The name is not case-sensitive,
// and a panic is triggered if an implementation was bound to the same name
// before, or the implementation is nil. This function is mainly intended to be
// used by package initialization code.
func RegisterProcessorFactory(name string, factory ProcessorFactory) {
	key := strings.ToLower(name)
	if factory == nil {
		panic(fmt.Sprintf("invalid initialization: cannot register nil-processor using `%s`", key))
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := processorRegistry[key]; found {
		panic(fmt.Sprintf("invalid initialization: multiple Processors registered for `%s`", key))
	}
	processorRegistry[key] = factory
}

// NewContract performs a lookup for the given name (case-insensitive) in
// the registry and creates a new Contract using the given optional
// configuration. If no configuration is provided, the implementation uses
// its default configuration. An error is returned if no factory was
// registered under the given name.
func NewContract(name string, config ...any) (Contract, error) {
	if len(config) > 1 {
		return nil, fmt.Errorf("invalid configuration: too many arguments")
	}
	factory := GetContractFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("contract not found: %s", name)
	}
	c := any(nil)
	if len(config) > 0 {
		c = config[0]
	}
	return factory(c)
}

// GetContractFactory performs a lookup for the given name (case-insensitive)
// in the registry. The result is nil if no factory was registered under the
// given name.
func GetContractFactory(name string) ContractFactory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return contractRegistry[strings.ToLower(name)]
}

// GetAllRegisteredContracts obtains the sorted names of all registered
// contract implementations.
func GetAllRegisteredContracts() []string {
	registryLock.Lock()
	defer registryLock.Unlock()
	names := maps.Keys(contractRegistry)
	slices.Sort(names)
	return names
}

// RegisterContractFactory registers a new Contract implementation to be
// exported for general use in the binary. The name is not case-sensitive,
// and an error is returned if a factory was bound to the same name before, or
// the factory is nil.
func RegisterContractFactory(name string, factory ContractFactory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := contractRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	contractRegistry[key] = factory
	return nil
}

var (
	processorRegistry = map[string]ProcessorFactory{}
	contractRegistry  = map[string]ContractFactory{}

	// registryLock protects access to both registries.
	registryLock sync.Mutex
)
