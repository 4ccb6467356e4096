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

//go:generate mockgen -source processor.go -destination processor_mock.go -package tosca

// Processor is an interface for a component capable of executing transactions.
// Implementations are executing individual transactions to progress the world
// state of a chain. In particular, they dispatch the transaction to the
// contract deployed at the recipient address, handle (potentially) recursive
// calls of contracts, and roll back the effects of failed calls.
type Processor interface {
	// Run executes the transaction provided by the parameters in the specified context.
	Run(BlockParameters, Transaction, TransactionContext) (Receipt, error)
}

// Deployments resolves the contract deployed at an address. The result is nil
// if no contract is deployed at the given address.
type Deployments interface {
	GetContract(Address) Contract
}

// DeploymentMap implements Deployments by a plain map.
type DeploymentMap map[Address]Contract

func (d DeploymentMap) GetContract(address Address) Contract {
	return d[address]
}

// Transaction summarizes the parameters of a transaction to be executed on a chain.
type Transaction struct {
	Sender    Address // the sender of the transaction
	Recipient Address // the address of the contract to be called
	Input     Data    // the call data for the transaction
	Static    bool    // if set, the transaction is a read-only query
}

// Receipt summarizes the result of the execution of a transaction.
type Receipt struct {
	Success bool // false if the execution ended in a revert, true otherwise
	Output  Data // the output produced by the transaction
}
