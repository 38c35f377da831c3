// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// maxChunkSize bounds the allocation made ahead of reading a length prefixed byte vector.
const maxChunkSize = 4096

var (
	errCompactOverflow = errors.New("compact integer overflows uint64")
	errTrailingBytes   = errors.New("trailing bytes after decoding")
)

// Encode returns the SCALE encoding of an encodeable value.
func Encode(value scale.Encodeable) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	encoder := scale.NewEncoder(buffer)
	err := value.Encode(*encoder)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeExact decodes the SCALE encoded input into the value and
// fails if any byte of the input is left over.
func DecodeExact(in []byte, value scale.Decodeable) error {
	reader := bytes.NewReader(in)
	decoder := scale.NewDecoder(reader)
	err := value.Decode(*decoder)
	if err != nil {
		return err
	}

	if reader.Len() != 0 {
		return fmt.Errorf("%w: %d bytes left", errTrailingBytes, reader.Len())
	}
	return nil
}

func encodeCompact(encoder scale.Encoder, n uint64) error {
	return encoder.EncodeUintCompact(*new(big.Int).SetUint64(n))
}

func decodeCompact(decoder scale.Decoder) (uint64, error) {
	n, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: %s", errCompactOverflow, n)
	}
	return n.Uint64(), nil
}

func encodeBytes(encoder scale.Encoder, b []byte) error {
	err := encodeCompact(encoder, uint64(len(b)))
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	return encoder.Write(b)
}

// decodeBytes decodes a compact length prefixed byte vector.
// An empty vector decodes to nil. The vector is read in chunks so a
// length prefix larger than the input fails without a large allocation.
func decodeBytes(decoder scale.Decoder) ([]byte, error) {
	length, err := decodeCompact(decoder)
	if err != nil {
		return nil, fmt.Errorf("decoding length: %w", err)
	}
	if length == 0 {
		return nil, nil
	}

	initialCapacity := length
	if initialCapacity > maxChunkSize {
		initialCapacity = maxChunkSize
	}
	b := make([]byte, 0, initialCapacity)

	for remaining := length; remaining > 0; {
		size := remaining
		if size > maxChunkSize {
			size = maxChunkSize
		}
		chunk := make([]byte, size)
		err = decoder.Read(chunk)
		if err != nil {
			return nil, fmt.Errorf("reading %d of %d bytes: %w", length-remaining+size, length, err)
		}
		b = append(b, chunk...)
		remaining -= size
	}

	return b, nil
}

// EncodeLength encodes the compact length prefix of a vector.
func EncodeLength(encoder scale.Encoder, length int) error {
	return encodeCompact(encoder, uint64(length))
}

// DecodeLength decodes the compact length prefix of a vector.
func DecodeLength(decoder scale.Decoder) (uint64, error) {
	return decodeCompact(decoder)
}
