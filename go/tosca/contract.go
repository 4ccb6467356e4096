// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tosca

//go:generate mockgen -source contract.go -destination contract_mock.go -package tosca

// Contract is a natively implemented contract hosted by a processor. It takes
// the place of byte-code plus interpreter: the processor hands the call
// parameters to Run and the contract reads and writes state through the
// provided context.
type Contract interface {
	// Run executes the call described by the parameters. The resulting error
	// is nil whenever the call was correctly processed, even if it ended in a
	// revert, which is signaled by an unsuccessful Result. A non-nil error
	// indicates a failure of the host, in which case the result is undefined.
	// Contracts are executed on a single goroutine per transaction, but
	// re-entrant calls into the same instance must be supported.
	Run(Parameters) (Result, error)
}

// Parameters summarizes the list of input parameters required for executing
// a contract call.
type Parameters struct {
	BlockParameters
	TransactionParameters
	Context   RunContext
	Kind      CallKind
	Static    bool
	Depth     int
	Recipient Address
	Sender    Address
	Input     Data
}

// BlockParameters contains information about the current block.
type BlockParameters struct {
	BlockNumber int64
	Timestamp   uint64
}

// TransactionParameters contains information about current transaction.
type TransactionParameters struct {
	Origin Address
}

// Result summarizes the result of a contract call.
type Result struct {
	Success bool // false if the execution ended in a revert, true otherwise
	Output  Data
}

type CallParameters struct {
	Sender    Address
	Recipient Address
	Input     Data
}

type CallResult struct {
	Output  Data
	Success bool // false if the execution ended in a revert, true otherwise
}
