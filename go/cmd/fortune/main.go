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
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "fortune",
		Usage:     "Operates a fortune ledger and a transient storage scratch pad",
		Copyright: "(c) 2024 Fantom Foundation",
		Flags: []cli.Flag{
			DataDirFlag,
			VerbosityFlag,
			SenderFlag,
			TimestampFlag,
			WithoutHelloFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&MintCmd,
			&GetCmd,
			&GenerateCmd,
			&TotalCmd,
			&BalanceCmd,
			&HelloCmd,
			&ReentrantCmd,
			&DumpCmd,
			&StatsCmd,
		},
	}
}

func setupLogging(context *cli.Context) error {
	handler := log.NewGlogHandler(log.NewTerminalHandler(context.App.ErrWriter, false))
	handler.Verbosity(log.FromLegacyLevel(VerbosityFlag.Fetch(context)))
	log.SetDefault(log.NewLogger(handler))
	return nil
}
