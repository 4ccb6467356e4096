// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

var revertSelector = Keccak256([]byte("Error(string)"))

var revertArguments = func() abi.Arguments {
	stringType, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Type: stringType}}
}()

// EncodeRevert produces the output of a reverted call carrying the given
// reason, encoded as a call to Error(string).
func EncodeRevert(reason string) tosca.Data {
	data, err := revertArguments.Pack(reason)
	if err != nil {
		panic(err)
	}
	return append(revertSelector[:4:4], data...)
}

// DecodeRevert extracts the reason of a reverted call from its output.
func DecodeRevert(output tosca.Data) (string, error) {
	return abi.UnpackRevert(output)
}
