// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package chain

import (
	"errors"
	"fmt"
	"sync"

	_ "github.com/Fantom-foundation/fortune/go/processor/floria"
	"github.com/Fantom-foundation/fortune/go/state"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrClosed          = errors.New("chain is closed")
	ErrAlreadyDeployed = errors.New("address already in use")
)

// Config contains the configuration options of a chain.
type Config struct {
	// Processor is the name of the registered processor executing the
	// transactions. If empty, "floria" is used.
	Processor string
	// Timestamp is the initial block timestamp.
	Timestamp uint64
}

// Deployment describes a contract deployed on a chain.
type Deployment struct {
	Name    string
	Address tosca.Address
}

// Chain hosts a set of contracts on top of a storage backend. Transactions
// are executed one at a time; each one is either committed to the backend as
// a whole or not at all.
type Chain struct {
	mu          sync.Mutex
	backend     state.Backend
	processor   tosca.Processor
	deployments tosca.DeploymentMap
	names       map[tosca.Address]string
	block       tosca.BlockParameters
	closed      bool
	log         log.Logger
}

// New creates a chain on the given backend. The chain takes ownership of the
// backend and closes it when being closed.
func New(backend state.Backend, config Config) (*Chain, error) {
	name := config.Processor
	if name == "" {
		name = "floria"
	}
	contracts := tosca.DeploymentMap{}
	processor := tosca.GetProcessor(name, contracts)
	if processor == nil {
		return nil, fmt.Errorf("unknown processor: %s", name)
	}
	return &Chain{
		backend:     backend,
		processor:   processor,
		deployments: contracts,
		names:       map[tosca.Address]string{},
		block:       tosca.BlockParameters{Timestamp: config.Timestamp},
		log:         log.New("module", "chain"),
	}, nil
}

// Deploy instantiates the contract registered under the given name with the
// given configuration and makes it available at the given address. Contracts
// keep no state of their own, so deployments are not persisted; a chain
// reopened on the same backend needs to deploy its contracts again.
func (c *Chain) Deploy(name string, address tosca.Address, config any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if existing, found := c.names[address]; found {
		return fmt.Errorf("%w: %v hosts %s", ErrAlreadyDeployed, address, existing)
	}
	contract, err := tosca.NewContract(name, config)
	if err != nil {
		return fmt.Errorf("failed to create contract %s: %w", name, err)
	}
	c.deployments[address] = contract
	c.names[address] = name
	c.log.Info("Deployed contract", "name", name, "address", address)
	return nil
}

// Deployments lists the deployed contracts ordered by address.
func (c *Chain) Deployments() []Deployment {
	c.mu.Lock()
	defer c.mu.Unlock()
	addresses := maps.Keys(c.names)
	slices.SortFunc(addresses, func(a, b tosca.Address) int {
		return slices.Compare(a[:], b[:])
	})
	res := make([]Deployment, 0, len(addresses))
	for _, address := range addresses {
		res = append(res, Deployment{Name: c.names[address], Address: address})
	}
	return res
}

func (c *Chain) SetTimestamp(timestamp uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.block.Timestamp = timestamp
}

func (c *Chain) Timestamp() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.block.Timestamp
}

// Execute runs a single transaction. The writes of a successful, non-static
// transaction are committed to the backend; all other writes are discarded.
// Transient storage is cleared in either case. An error is returned if the
// transaction could not be processed, for instance due to a failing backend.
func (c *Chain) Execute(transaction tosca.Transaction) (tosca.Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return tosca.Receipt{}, ErrClosed
	}

	context := state.NewContext(c.backend)
	receipt, err := c.processor.Run(c.block, transaction, context)
	if err == nil {
		err = context.Err()
	}
	if err != nil {
		context.Discard()
		return tosca.Receipt{}, fmt.Errorf("failed to execute transaction: %w", err)
	}
	if !receipt.Success || transaction.Static {
		context.Discard()
		return receipt, nil
	}

	updates := len(context.Pending())
	if err := context.Commit(); err != nil {
		return tosca.Receipt{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	c.block.BlockNumber++
	c.log.Debug("Committed transaction", "block", c.block.BlockNumber, "sender", transaction.Sender, "recipient", transaction.Recipient, "slots", updates)
	return receipt, nil
}

// Query runs a read-only call. Its writes, if any, are always discarded.
func (c *Chain) Query(sender, recipient tosca.Address, input tosca.Data) (tosca.Receipt, error) {
	return c.Execute(tosca.Transaction{
		Sender:    sender,
		Recipient: recipient,
		Input:     input,
		Static:    true,
	})
}

// Close closes the chain and its backend. Closing a closed chain is a no-op.
func (c *Chain) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.backend.Close()
}
