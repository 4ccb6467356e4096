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
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/log"
)

func init() {
	tosca.RegisterProcessorFactory("floria", newProcessor)
}

func newProcessor(deployments tosca.Deployments) tosca.Processor {
	return &processor{
		deployments: deployments,
		log:         log.New("processor", "floria"),
	}
}

type processor struct {
	deployments tosca.Deployments
	log         log.Logger
}

// Run executes a single transaction on the given context. Writes of a failed
// transaction are rolled back within the context; committing or discarding
// the context is up to the caller. A host failure in any frame fails the
// transaction, even if a calling contract ignored it.
func (p *processor) Run(
	blockParams tosca.BlockParameters,
	transaction tosca.Transaction,
	context tosca.TransactionContext,
) (tosca.Receipt, error) {
	var fault error
	root := p.newRunContext(blockParams, transaction, context)
	root.fault = &fault
	result, err := call(root, transaction)
	if err == nil {
		err = fault
	}
	if err != nil {
		p.log.Warn("Transaction aborted", "sender", transaction.Sender, "recipient", transaction.Recipient, "err", err)
		return tosca.Receipt{}, err
	}
	return tosca.Receipt{
		Success: result.Success,
		Output:  result.Output,
	}, nil
}

func (p *processor) newRunContext(
	blockParams tosca.BlockParameters,
	transaction tosca.Transaction,
	context tosca.TransactionContext,
) runContext {
	return runContext{
		TransactionContext: context,
		deployments:        p.deployments,
		blockParameters:    blockParams,
		transactionParameters: tosca.TransactionParameters{
			Origin: transaction.Sender,
		},
		log: p.log,
	}
}
