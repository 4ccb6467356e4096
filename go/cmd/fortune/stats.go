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
	"strings"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var StatsCmd = cli.Command{
	Action: withNode(doStats),
	Name:   "stats",
	Usage:  "Prints statistics on the ledger database",
}

func doStats(context *cli.Context, n *node) error {
	stats, err := n.level.Stats()
	if err != nil {
		return fmt.Errorf("error collecting statistics: %w", err)
	}
	total, err := n.query(n.fortune, FortuneAddress(), "totalMinted")
	if err != nil {
		return err
	}
	var deployed []string
	for _, deployment := range n.chain.Deployments() {
		deployed = append(deployed, fmt.Sprintf("%s@%v", deployment.Name, deployment.Address))
	}
	registered := tosca.GetAllRegisteredContracts()
	fmt.Fprint(context.App.Writer, formatStats(total[0].(uint64), stats.Slots, stats.DiskBytes, deployed, registered))
	return nil
}

func formatStats(fortunes uint64, slots int, diskBytes int64, deployed, registered []string) string {
	res := fmt.Sprintf("Fortunes:  %d\n", fortunes)
	res += fmt.Sprintf("Slots:     %s\n", unitconv.FormatPrefix(float64(slots), unitconv.SI, 0))
	res += fmt.Sprintf("Disk size: %sB\n", unitconv.FormatPrefix(float64(diskBytes), unitconv.IEC, 1))
	for _, deployment := range deployed {
		res += fmt.Sprintf("Contract:  %s\n", deployment)
	}
	res += fmt.Sprintf("Available: %s\n", strings.Join(registered, ", "))
	return res
}
