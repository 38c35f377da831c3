// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/gossamer-offences/lib/crypto/sr25519"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

// ErrInvalidBabePreDigestType is returned when decoding a BABE pre-runtime digest
// with an unsupported discriminant.
var ErrInvalidBabePreDigestType = errors.New("invalid BABE pre-runtime digest type")

// BabePreDigest is a BABE pre-runtime digest, naming the authority that
// claimed the slot.
type BabePreDigest interface {
	scale.VaryingDataTypeValue
	AuthorityIndexAndSlot() (authorityIndex uint32, slot uint64)
}

// NewBabeDigest returns a new VaryingDataType to represent a BabeDigest
func NewBabeDigest() scale.VaryingDataType {
	return scale.MustNewVaryingDataType(BabePrimaryPreDigest{}, BabeSecondaryPlainPreDigest{}, BabeSecondaryVRFPreDigest{})
}

// EncodeBabePreDigest returns the SCALE encoding of the digest prefixed with its index.
func EncodeBabePreDigest(digest BabePreDigest) ([]byte, error) {
	babeDigest := NewBabeDigest()
	err := babeDigest.Set(digest)
	if err != nil {
		return nil, err
	}
	return scale.Marshal(babeDigest)
}

// DecodeBabePreDigest decodes the input into a BABE pre-runtime digest.
// Every byte of the input must be consumed.
func DecodeBabePreDigest(in []byte) (BabePreDigest, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("reading index: %w", io.EOF)
	}
	switch in[0] {
	case 1, 2, 3:
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidBabePreDigestType, in[0])
	}

	babeDigest := NewBabeDigest()
	err := scale.Unmarshal(in, &babeDigest)
	if err != nil {
		return nil, err
	}

	value, err := babeDigest.Value()
	if err != nil {
		return nil, err
	}

	var digest BabePreDigest
	switch msg := value.(type) {
	case BabePrimaryPreDigest:
		digest = msg
	case BabeSecondaryPlainPreDigest:
		digest = msg
	case BabeSecondaryVRFPreDigest:
		digest = msg
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidBabePreDigestType, msg)
	}

	// the variants are fixed size, so a canonical input re-encodes to its own length
	enc, err := EncodeBabePreDigest(digest)
	if err != nil {
		return nil, err
	}
	switch {
	case len(enc) < len(in):
		return nil, fmt.Errorf("%w: %d bytes left", errTrailingBytes, len(in)-len(enc))
	case len(enc) > len(in):
		return nil, fmt.Errorf("%w: need %d bytes, got %d", io.ErrUnexpectedEOF, len(enc), len(in))
	}
	return digest, nil
}

// ToPreRuntimeDigest returns the BABE pre-runtime digest wrapped as a PreRuntimeDigest
func ToPreRuntimeDigest(digest BabePreDigest) (*PreRuntimeDigest, error) {
	enc, err := EncodeBabePreDigest(digest)
	if err != nil {
		return nil, err
	}
	return NewBABEPreRuntimeDigest(enc), nil
}

// BabePrimaryPreDigest as defined in Polkadot RE Spec, definition 5.10 in section 5.1.4
type BabePrimaryPreDigest struct {
	AuthorityIndex uint32
	SlotNumber     uint64
	VRFOutput      [sr25519.VRFOutputLength]byte
	VRFProof       [sr25519.VRFProofLength]byte
}

// Index returns VDT index
func (BabePrimaryPreDigest) Index() uint { return 1 }

// AuthorityIndexAndSlot returns the authority index and the slot number
func (d BabePrimaryPreDigest) AuthorityIndexAndSlot() (uint32, uint64) {
	return d.AuthorityIndex, d.SlotNumber
}

// BabeSecondaryPlainPreDigest is included in a block built by a secondary slot authorized producer
type BabeSecondaryPlainPreDigest struct {
	AuthorityIndex uint32
	SlotNumber     uint64
}

// NewBabeSecondaryPlainPreDigest returns a new BabeSecondaryPlainPreDigest
func NewBabeSecondaryPlainPreDigest(authorityIndex uint32, slotNumber uint64) *BabeSecondaryPlainPreDigest {
	return &BabeSecondaryPlainPreDigest{
		AuthorityIndex: authorityIndex,
		SlotNumber:     slotNumber,
	}
}

// Index returns VDT index
func (BabeSecondaryPlainPreDigest) Index() uint { return 2 }

// AuthorityIndexAndSlot returns the authority index and the slot number
func (d BabeSecondaryPlainPreDigest) AuthorityIndexAndSlot() (uint32, uint64) {
	return d.AuthorityIndex, d.SlotNumber
}

// BabeSecondaryVRFPreDigest is included in a block built by a secondary slot authorized producer
type BabeSecondaryVRFPreDigest struct {
	AuthorityIndex uint32
	SlotNumber     uint64
	VrfOutput      [sr25519.VRFOutputLength]byte
	VrfProof       [sr25519.VRFProofLength]byte
}

// Index returns VDT index
func (BabeSecondaryVRFPreDigest) Index() uint { return 3 }

// AuthorityIndexAndSlot returns the authority index and the slot number
func (d BabeSecondaryVRFPreDigest) AuthorityIndexAndSlot() (uint32, uint64) {
	return d.AuthorityIndex, d.SlotNumber
}
