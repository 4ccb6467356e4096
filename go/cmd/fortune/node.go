// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Fantom-foundation/fortune/go/chain"
	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/contract/fortune"
	"github.com/Fantom-foundation/fortune/go/contract/tstore"
	"github.com/Fantom-foundation/fortune/go/state"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

// FortuneAddress is the address the fortune contract is deployed at.
func FortuneAddress() tosca.Address {
	return tosca.Address(common.HexToAddress("0xf047000000000000000000000000000000000001"))
}

// ScratchPadAddress is the address the transient storage scratch pad is
// deployed at.
func ScratchPadAddress() tosca.Address {
	return tosca.Address(common.HexToAddress("0x7570000000000000000000000000000000000002"))
}

// node bundles a chain opened on the data directory with the encoders of the
// deployed contracts.
type node struct {
	chain   *chain.Chain
	level   *state.Level
	sender  tosca.Address
	fortune *contract.Dispatcher
	tstore  *contract.Dispatcher
}

func openNode(context *cli.Context) (*node, error) {
	sender, err := SenderFlag.Fetch(context)
	if err != nil {
		return nil, err
	}
	padConfig := tstore.DefaultConfig()
	if WithoutHelloFlag.Fetch(context) {
		padConfig.Hello = false
	}
	fortuneABI, err := fortune.New()
	if err != nil {
		return nil, err
	}
	tstoreABI, err := tstore.New(padConfig)
	if err != nil {
		return nil, err
	}

	level, err := state.OpenLevel(DataDirFlag.Fetch(context), state.LevelConfig{})
	if err != nil {
		return nil, err
	}
	c, err := chain.New(level, chain.Config{Timestamp: TimestampFlag.Fetch(context)})
	if err != nil {
		level.Close()
		return nil, err
	}
	for _, deployment := range []struct {
		name    string
		address tosca.Address
		config  any
	}{
		{fortune.Name, FortuneAddress(), nil},
		{tstore.Name, ScratchPadAddress(), padConfig},
	} {
		if err := c.Deploy(deployment.name, deployment.address, deployment.config); err != nil {
			c.Close()
			return nil, err
		}
	}
	return &node{
		chain:   c,
		level:   level,
		sender:  sender,
		fortune: fortuneABI,
		tstore:  tstoreABI,
	}, nil
}

func (n *node) Close() error {
	return n.chain.Close()
}

// send executes a transaction calling the given method. A reverted call is
// reported as an error carrying the revert reason.
func (n *node) send(abi *contract.Dispatcher, recipient tosca.Address, method string, args ...any) ([]any, error) {
	input, err := abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	receipt, err := n.chain.Execute(tosca.Transaction{
		Sender:    n.sender,
		Recipient: recipient,
		Input:     input,
	})
	if err != nil {
		return nil, err
	}
	return unpackReceipt(abi, method, receipt)
}

// query runs a read-only call of the given method.
func (n *node) query(abi *contract.Dispatcher, recipient tosca.Address, method string, args ...any) ([]any, error) {
	input, err := abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	receipt, err := n.chain.Query(n.sender, recipient, input)
	if err != nil {
		return nil, err
	}
	return unpackReceipt(abi, method, receipt)
}

func unpackReceipt(abi *contract.Dispatcher, method string, receipt tosca.Receipt) ([]any, error) {
	if !receipt.Success {
		reason, err := contract.DecodeRevert(receipt.Output)
		if err != nil {
			return nil, fmt.Errorf("%s reverted", method)
		}
		return nil, fmt.Errorf("%s reverted: %s", method, reason)
	}
	return abi.Unpack(method, receipt.Output)
}
