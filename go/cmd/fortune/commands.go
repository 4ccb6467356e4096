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
	"math"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/common"
	gmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/urfave/cli/v2"
)

var MintCmd = cli.Command{
	Action:    withNode(doMint),
	Name:      "mint",
	Usage:     "Mints a new fortune owned by the sender",
	ArgsUsage: "<value>",
}

var GetCmd = cli.Command{
	Action:    withNode(doGet),
	Name:      "get",
	Usage:     "Prints the fortune at the given index",
	ArgsUsage: "<index>",
}

var GenerateCmd = cli.Command{
	Action: withNode(doGenerate),
	Name:   "generate",
	Usage:  "Picks a fortune based on the sender and the block timestamp",
}

var TotalCmd = cli.Command{
	Action: withNode(doTotal),
	Name:   "total",
	Usage:  "Prints the number of minted fortunes",
}

var BalanceCmd = cli.Command{
	Action:    withNode(doBalance),
	Name:      "balance",
	Usage:     "Prints the number of fortunes minted by an account, the sender by default",
	ArgsUsage: "[<address>]",
}

var HelloCmd = cli.Command{
	Action: withNode(doHello),
	Name:   "hello",
	Usage:  "Reads the scratch pad's transient slot in a fresh transaction",
}

var ReentrantCmd = cli.Command{
	Action: withNode(doReentrant),
	Name:   "reentrant",
	Usage:  "Publishes a value in transient storage and reads it back through a re-entrant call",
}

// withNode opens the node for the duration of a command.
func withNode(action func(*cli.Context, *node) error) cli.ActionFunc {
	return func(context *cli.Context) (err error) {
		n, err := openNode(context)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := n.Close(); err == nil {
				err = closeErr
			}
		}()
		return action(context, n)
	}
}

func doMint(context *cli.Context, n *node) error {
	value, err := uint32Arg(context, "value")
	if err != nil {
		return err
	}
	if _, err := n.send(n.fortune, FortuneAddress(), "mintFortune", value); err != nil {
		return err
	}
	total, err := n.query(n.fortune, FortuneAddress(), "totalMinted")
	if err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "minted fortune #%d: %d\n", total[0].(uint64)-1, value)
	return nil
}

func doGet(context *cli.Context, n *node) error {
	index, err := uint64Arg(context, "index")
	if err != nil {
		return err
	}
	return printQuery(context, n, "getFortune", index)
}

func doGenerate(context *cli.Context, n *node) error {
	return printQuery(context, n, "generateFortune")
}

func doTotal(context *cli.Context, n *node) error {
	return printQuery(context, n, "totalMinted")
}

func doBalance(context *cli.Context, n *node) error {
	account := n.sender
	if context.NArg() > 0 {
		var err error
		if account, err = tosca.ParseAddress(context.Args().First()); err != nil {
			return err
		}
	}
	return printQuery(context, n, "balanceOf", common.Address(account))
}

func doHello(context *cli.Context, n *node) error {
	values, err := n.query(n.tstore, ScratchPadAddress(), "hello")
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, tosca.Word(values[0].([32]byte)))
	return nil
}

func doReentrant(context *cli.Context, n *node) error {
	values, err := n.send(n.tstore, ScratchPadAddress(), "reentrant")
	if err != nil {
		return err
	}
	word := tosca.Word(values[0].([32]byte))
	fmt.Fprintf(context.App.Writer, "%v (%d)\n", word, word.Uint64())
	return nil
}

func printQuery(context *cli.Context, n *node, method string, args ...any) error {
	values, err := n.query(n.fortune, FortuneAddress(), method, args...)
	if err != nil {
		return err
	}
	fmt.Fprintln(context.App.Writer, values[0])
	return nil
}

func uint32Arg(context *cli.Context, name string) (uint32, error) {
	value, err := uint64Arg(context, name)
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("invalid %s: %d exceeds 32 bits", name, value)
	}
	return uint32(value), nil
}

func uint64Arg(context *cli.Context, name string) (uint64, error) {
	if context.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one argument <%s>", name)
	}
	value, ok := gmath.ParseUint64(context.Args().First())
	if !ok || context.Args().First() == "" {
		return 0, fmt.Errorf("invalid %s: %q", name, context.Args().First())
	}
	return value, nil
}
