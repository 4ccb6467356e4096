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
	"encoding/binary"
	"fmt"

	"github.com/Fantom-foundation/fortune/go/tosca"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// The helpers in this file derive storage keys following the Solidity storage
// layout: fields occupy consecutive slots in declaration order, mappings are
// stored at keccak256(key ‖ slot), and the elements of dynamic arrays are
// packed into consecutive words starting at keccak256(slot).

// Keccak256 computes the legacy Keccak-256 digest of the concatenated inputs.
func Keccak256(data ...[]byte) tosca.Hash {
	hasher := sha3.NewLegacyKeccak256()
	for _, cur := range data {
		hasher.Write(cur)
	}
	var res tosca.Hash
	hasher.Sum(res[:0])
	return res
}

// FieldKey returns the key of the field declared at the given slot.
func FieldKey(slot uint64) tosca.Key {
	return tosca.NewKey(slot)
}

// MappingKey returns the key of the value stored for the given mapping key in
// the mapping declared at the given slot.
func MappingKey(slot uint64, key tosca.Word) tosca.Key {
	position := tosca.NewWord(slot)
	return tosca.Key(Keccak256(key[:], position[:]))
}

// ArrayElementKey locates element index of a dynamic array declared at the
// given slot whose elements are elementSize bytes wide. It returns the key of
// the word holding the element and the byte offset of the element within
// that word, counted from the low-order end.
func ArrayElementKey(slot uint64, index uint64, elementSize int) (tosca.Key, int) {
	if elementSize <= 0 || elementSize > 32 {
		panic(fmt.Sprintf("invalid element size %d", elementSize))
	}
	perWord := uint64(32 / elementSize)
	position := tosca.NewWord(slot)
	word := tosca.Word(Keccak256(position[:])).ToUint256()
	word.Add(word, uint256.NewInt(index/perWord))
	return tosca.Key(tosca.WordFromUint256(word)), int(index%perWord) * elementSize
}

// GetUint32 extracts the 4-byte big-endian value stored at the given offset
// of a word, counted from the low-order end.
func GetUint32(word tosca.Word, offset int) uint32 {
	end := len(word) - offset
	return binary.BigEndian.Uint32(word[end-4 : end])
}

// SetUint32 returns a copy of the word with the 4 bytes at the given offset,
// counted from the low-order end, replaced by value.
func SetUint32(word tosca.Word, offset int, value uint32) tosca.Word {
	end := len(word) - offset
	binary.BigEndian.PutUint32(word[end-4:end], value)
	return word
}
