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
)

// call runs the top-level frame of a transaction.
func call(context runContext, transaction tosca.Transaction) (tosca.CallResult, error) {
	kind := tosca.Call
	if transaction.Static {
		kind = tosca.StaticCall
	}
	return context.Call(kind, tosca.CallParameters{
		Sender:    transaction.Sender,
		Recipient: transaction.Recipient,
		Input:     transaction.Input,
	})
}
