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
	"time"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/urfave/cli/v2"
)

type dataDirFlagType struct {
	cli.PathFlag
}

var DataDirFlag = &dataDirFlagType{
	cli.PathFlag{
		Name:    "datadir",
		Aliases: []string{"d"},
		Usage:   "directory of the ledger database",
		Value:   "fortune-data",
	},
}

func (f *dataDirFlagType) Fetch(context *cli.Context) string {
	return context.Path(f.Name)
}

type verbosityFlagType struct {
	cli.IntFlag
}

var VerbosityFlag = &verbosityFlagType{
	cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	},
}

func (f *verbosityFlagType) Fetch(context *cli.Context) int {
	return context.Int(f.Name)
}

type senderFlagType struct {
	cli.StringFlag
}

var SenderFlag = &senderFlagType{
	cli.StringFlag{
		Name:    "sender",
		Aliases: []string{"s"},
		Usage:   "address of the account sending transactions and queries",
		Value:   "0x0000000000000000000000000000000000000001",
	},
}

func (f *senderFlagType) Fetch(context *cli.Context) (tosca.Address, error) {
	return tosca.ParseAddress(context.String(f.Name))
}

type timestampFlagType struct {
	cli.Uint64Flag
}

var TimestampFlag = &timestampFlagType{
	cli.Uint64Flag{
		Name:  "timestamp",
		Usage: "block timestamp in seconds since the epoch, defaults to the current time",
	},
}

func (f *timestampFlagType) Fetch(context *cli.Context) uint64 {
	if !context.IsSet(f.Name) {
		return uint64(time.Now().Unix())
	}
	return context.Uint64(f.Name)
}

type withoutHelloFlagType struct {
	cli.BoolFlag
}

var WithoutHelloFlag = &withoutHelloFlagType{
	cli.BoolFlag{
		Name:  "without-hello",
		Usage: "deploy the scratch pad without its hello() entry point, making reentrant() fail",
	},
}

func (f *withoutHelloFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}

type rawFlagType struct {
	cli.BoolFlag
}

var RawFlag = &rawFlagType{
	cli.BoolFlag{
		Name:  "raw",
		Usage: "print the raw storage slots instead of the decoded ledger",
	},
}

func (f *rawFlagType) Fetch(context *cli.Context) bool {
	return context.Bool(f.Name)
}
