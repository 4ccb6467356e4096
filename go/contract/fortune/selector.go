// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package fortune

import (
	"encoding/binary"

	"github.com/Fantom-foundation/fortune/go/tosca"
)

// Select picks an index in [0, total) from the block timestamp and the
// caller. The result is predictable by anyone who knows both inputs and must
// not be used where randomness matters. Select panics if total is 0.
func Select(total, timestamp uint64, caller tosca.Address) uint64 {
	return (binary.BigEndian.Uint64(caller[:8]) ^ timestamp) % total
}
