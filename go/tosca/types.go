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

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit (32 byte) word, the unit of both
// persistent and transient storage.
type Word [32]byte

// Hash represents the 256-bit (32 bytes) result of a keccak256 digest.
type Hash [32]byte

// Data represents the input or output of contract invocations.
type Data []byte

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

// ParseAddress parses a 0x-prefixed hex string of exactly 20 bytes.
func ParseAddress(s string) (Address, error) {
	var res Address
	if err := parseHex(res[:], s); err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return res, nil
}

func (k Key) String() string {
	return fmt.Sprintf("0x%x", k[:])
}

func (w Word) String() string {
	return fmt.Sprintf("0x%x", w[:])
}

func (w Word) IsZero() bool {
	return w == Word{}
}

// Uint64 interprets the lowest 8 bytes of the word as a big-endian integer.
// Higher bytes are ignored.
func (w Word) Uint64() uint64 {
	return binary.BigEndian.Uint64(w[24:32])
}

func (w Word) ToUint256() *uint256.Int {
	return new(uint256.Int).SetBytes(w[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// NewWord creates a new Word instance from up to 4 uint64 arguments. The
// arguments are given in the order from most significant to least significant
// by padding leading zeros as needed. No argument results in a value of zero.
func NewWord(args ...uint64) (result Word) {
	if len(args) > 4 {
		panic("Too many arguments")
	}
	offset := 4 - len(args)
	for i := 0; i < len(args) && i < 4; i++ {
		start := (offset * 8) + i*8
		end := start + 8
		binary.BigEndian.PutUint64(result[start:end], args[i])
	}
	return
}

// NewKey is the Key counterpart of NewWord.
func NewKey(args ...uint64) Key {
	return Key(NewWord(args...))
}

// WordFromUint256 converts a *uint256.Int to a Word.
// If the input is nil, it returns 0.
func WordFromUint256(value *uint256.Int) (result Word) {
	if value == nil {
		return result
	}
	return value.Bytes32()
}

// AddressToWord right-aligns the address in a word, the way addresses are
// stored in a slot and encoded in call data.
func AddressToWord(address Address) (result Word) {
	copy(result[12:], address[:])
	return result
}

// WordToAddress extracts the right-aligned address of a word.
func WordToAddress(word Word) (result Address) {
	copy(result[:], word[12:])
	return result
}

func parseHex(trg []byte, s string) error {
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("invalid format, does not start with 0x: %v", s)
	}
	data, err := hex.DecodeString(s[2:])
	if err != nil {
		return err
	}
	if want, got := len(trg), len(data); want != got {
		return fmt.Errorf("invalid format, wanted %d bytes, got %d", want, got)
	}
	copy(trg[:], data)
	return nil
}

// CallKind is an enum enabling the differentiation of the different types
// of recursive contract calls supported by the processor.
type CallKind int

const (
	Call CallKind = iota
	StaticCall
)

func (k CallKind) String() string {
	switch k {
	case Call:
		return "call"
	case StaticCall:
		return "static_call"
	default:
		return "unknown"
	}
}
