// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tstore

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/fortune/go/contract"
	"github.com/Fantom-foundation/fortune/go/tosca"
)

var (
	// SentinelKey is the transient slot shared by the outer and the nested call.
	SentinelKey = tosca.NewKey(123)
	// SentinelValue is the value published before re-entering the contract.
	SentinelValue = tosca.NewWord(456)
)

var ErrNestedCallFailed = errors.New("re-entrant hello failed")

var helloInput = func() tosca.Data {
	selector := contract.Keccak256([]byte("hello()"))
	return tosca.Data(selector[:4])
}()

// ScratchPad passes a value from a call to a read-only re-entrant call into
// the same contract through transient storage.
type ScratchPad struct {
	host contract.Host
}

func NewScratchPad(host contract.Host) ScratchPad {
	return ScratchPad{host: host}
}

// Publish stores the sentinel value in transient storage.
func (p ScratchPad) Publish() {
	p.host.Store(SentinelKey, SentinelValue)
}

// Probe loads the sentinel slot. It is zero unless a call of the current
// transaction published it.
func (p ScratchPad) Probe() tosca.Word {
	return p.host.Load(SentinelKey)
}

// Reenter publishes the sentinel and reads it back through a static call of
// hello() on the contract's own address.
func (p ScratchPad) Reenter() (tosca.Word, error) {
	p.Publish()
	output, err := p.host.StaticCall(p.host.ContractAddress(), helloInput)
	if err != nil {
		return tosca.Word{}, fmt.Errorf("%w: %w", ErrNestedCallFailed, err)
	}
	if len(output) != len(tosca.Word{}) {
		return tosca.Word{}, fmt.Errorf("%w: unexpected output of %d bytes", ErrNestedCallFailed, len(output))
	}
	return tosca.Word(output), nil
}
