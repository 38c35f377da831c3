// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// HashLength is the expected length of the common.Hash type
const HashLength = 32

// EmptyHash is the zero value hash
var EmptyHash = Hash{}

var errInvalidHashLength = errors.New("invalid hash length")

// Hash used to store a blake2b hash
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, only the first 32 bytes are used.
func NewHash(in []byte) (h Hash) {
	copy(h[:], in)
	return h
}

// ToBytes returns the hash as a byte slice
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is the zero hash.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the 0x prefixed hex string for the hash
func (h Hash) String() string {
	return hexutil.Encode(h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// HexToHash turns a 0x prefixed hex string into a Hash
func HexToHash(in string) (Hash, error) {
	b, err := hexutil.Decode(in)
	if err != nil {
		return Hash{}, err
	}

	if len(b) != HashLength {
		return Hash{}, fmt.Errorf("%w: expected %d bytes, got %d", errInvalidHashLength, HashLength, len(b))
	}

	return NewHash(b), nil
}

// MustHexToHash turns a 0x prefixed hex string into a Hash and panics on failure.
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) ([]byte, error) {
	return hexutil.Decode(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice and panics on failure.
func MustHexToBytes(in string) []byte {
	b, err := hexutil.Decode(in)
	if err != nil {
		panic(err)
	}
	return b
}
