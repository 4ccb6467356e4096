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

	"github.com/Fantom-foundation/fortune/go/contract/fortune"
	"github.com/Fantom-foundation/fortune/go/state"
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var DumpCmd = cli.Command{
	Action: withNode(doDump),
	Name:   "dump",
	Usage:  "Prints the content of the fortune ledger",
	Flags: []cli.Flag{
		RawFlag,
	},
}

func doDump(context *cli.Context, n *node) error {
	out := context.App.Writer
	if RawFlag.Fetch(context) {
		return n.level.ForEach(FortuneAddress(), func(key tosca.Key, value tosca.Word) bool {
			fmt.Fprintf(out, "%v: %v\n", key, value)
			return true
		})
	}

	storage := &readOnlyStorage{backend: n.level, address: FortuneAddress()}
	ledger := fortune.NewLedger(storage)
	total := ledger.Total()
	balances := map[tosca.Address]uint64{}
	fmt.Fprintf(out, "%d fortunes\n", total)
	for i := uint64(0); i < total; i++ {
		owner := ledger.OwnerOf(i)
		balances[owner] = ledger.BalanceOf(owner)
		fmt.Fprintf(out, "#%d: %d (minted by %v)\n", i, ledger.Get(i), owner)
	}
	owners := maps.Keys(balances)
	slices.SortFunc(owners, func(a, b tosca.Address) int {
		return slices.Compare(a[:], b[:])
	})
	for _, owner := range owners {
		fmt.Fprintf(out, "%v owns %d\n", owner, balances[owner])
	}
	return storage.err
}

// readOnlyStorage exposes the committed slots of one account of a backend.
// The first read error is recorded.
type readOnlyStorage struct {
	backend state.Backend
	address tosca.Address
	err     error
}

func (s *readOnlyStorage) GetStorage(key tosca.Key) tosca.Word {
	value, err := s.backend.GetStorage(s.address, key)
	if err != nil && s.err == nil {
		s.err = err
	}
	return value
}

func (s *readOnlyStorage) SetStorage(tosca.Key, tosca.Word) {
	panic("write to read-only storage")
}
