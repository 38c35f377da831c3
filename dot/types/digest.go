// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte array to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

const (
	// OtherDigestType is the byte representation of OtherDigest
	OtherDigestType = byte(0)
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
	// RuntimeEnvironmentUpdatedType is the byte representation of RuntimeEnvironmentUpdated
	RuntimeEnvironmentUpdatedType = byte(8)
)

// ErrUnknownDigestItemType is returned when decoding a digest item with an unsupported type byte.
var ErrUnknownDigestItemType = errors.New("unknown digest item type")

// DigestItem is a single item of a block header digest
type DigestItem interface {
	Type() byte
	String() string
	Encode(encoder scale.Encoder) error
	Decode(decoder scale.Decoder) error
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// Encode SCALE encodes the digest items prefixed with their compact count
func (d Digest) Encode(encoder scale.Encoder) error {
	err := encodeCompact(encoder, uint64(len(d)))
	if err != nil {
		return err
	}

	for i, item := range d {
		err = encodeDigestItem(encoder, item)
		if err != nil {
			return fmt.Errorf("encoding digest item %d: %w", i, err)
		}
	}
	return nil
}

// Decode decodes a SCALE encoded digest into d. An empty digest decodes to nil.
func (d *Digest) Decode(decoder scale.Decoder) error {
	count, err := decodeCompact(decoder)
	if err != nil {
		return fmt.Errorf("could not decode length of digest items: %w", err)
	}

	var digest Digest
	for i := uint64(0); i < count; i++ {
		item, err := decodeDigestItem(decoder)
		if err != nil {
			return fmt.Errorf("could not decode digest item %d: %w", i, err)
		}
		digest = append(digest, item)
	}

	*d = digest
	return nil
}

func encodeDigestItem(encoder scale.Encoder, item DigestItem) error {
	err := encoder.PushByte(item.Type())
	if err != nil {
		return err
	}
	return item.Encode(encoder)
}

func decodeDigestItem(decoder scale.Decoder) (DigestItem, error) {
	typ, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	var item DigestItem
	switch typ {
	case OtherDigestType:
		item = new(OtherDigest)
	case ConsensusDigestType:
		item = new(ConsensusDigest)
	case SealDigestType:
		item = new(SealDigest)
	case PreRuntimeDigestType:
		item = new(PreRuntimeDigest)
	case RuntimeEnvironmentUpdatedType:
		item = new(RuntimeEnvironmentUpdated)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDigestItemType, typ)
	}

	err = item.Decode(decoder)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// engineDigest is the shape shared by the engine tagged digest items
type engineDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

func (d engineDigest) encode(encoder scale.Encoder) error {
	err := encoder.Write(d.ConsensusEngineID[:])
	if err != nil {
		return err
	}
	return encodeBytes(encoder, d.Data)
}

func (d *engineDigest) decode(decoder scale.Decoder) (err error) {
	err = decoder.Read(d.ConsensusEngineID[:])
	if err != nil {
		return fmt.Errorf("reading engine id: %w", err)
	}
	d.Data, err = decodeBytes(decoder)
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	return nil
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest engineDigest

// NewBABEPreRuntimeDigest returns a PreRuntimeDigest with the BABE consensus ID
func NewBABEPreRuntimeDigest(data []byte) *PreRuntimeDigest {
	return &PreRuntimeDigest{
		ConsensusEngineID: BabeEngineID,
		Data:              data,
	}
}

// Type returns the digest type
func (*PreRuntimeDigest) Type() byte { return PreRuntimeDigestType }

// String returns the digest as a string
func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Encode SCALE encodes the digest
func (d *PreRuntimeDigest) Encode(encoder scale.Encoder) error {
	return engineDigest(*d).encode(encoder)
}

// Decode decodes a SCALE encoded PreRuntimeDigest
func (d *PreRuntimeDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest engineDigest

// Type returns the digest type
func (*ConsensusDigest) Type() byte { return ConsensusDigestType }

// String returns the digest as a string
func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Encode SCALE encodes the digest
func (d *ConsensusDigest) Encode(encoder scale.Encoder) error {
	return engineDigest(*d).encode(encoder)
}

// Decode decodes a SCALE encoded ConsensusDigest
func (d *ConsensusDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest engineDigest

// NewBABESealDigest returns a SealDigest with the BABE consensus ID
func NewBABESealDigest(signature []byte) *SealDigest {
	return &SealDigest{
		ConsensusEngineID: BabeEngineID,
		Data:              signature,
	}
}

// Type returns the digest type
func (*SealDigest) Type() byte { return SealDigestType }

// String returns the digest as a string
func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID.ToBytes(), d.Data)
}

// Encode SCALE encodes the digest
func (d *SealDigest) Encode(encoder scale.Encoder) error {
	return engineDigest(*d).encode(encoder)
}

// Decode decodes a SCALE encoded SealDigest
func (d *SealDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// OtherDigest is an opaque digest item
type OtherDigest struct {
	Data []byte
}

// Type returns the digest type
func (*OtherDigest) Type() byte { return OtherDigestType }

// String returns the digest as a string
func (d *OtherDigest) String() string {
	return fmt.Sprintf("OtherDigest Data=0x%x", d.Data)
}

// Encode SCALE encodes the digest
func (d *OtherDigest) Encode(encoder scale.Encoder) error {
	return encodeBytes(encoder, d.Data)
}

// Decode decodes a SCALE encoded OtherDigest
func (d *OtherDigest) Decode(decoder scale.Decoder) (err error) {
	d.Data, err = decodeBytes(decoder)
	return err
}

// RuntimeEnvironmentUpdated signals a runtime code or heap pages change. It carries no data.
type RuntimeEnvironmentUpdated struct{}

// Type returns the digest type
func (*RuntimeEnvironmentUpdated) Type() byte { return RuntimeEnvironmentUpdatedType }

// String returns the digest as a string
func (*RuntimeEnvironmentUpdated) String() string { return "RuntimeEnvironmentUpdated" }

// Encode is a no-op since the item has no data
func (*RuntimeEnvironmentUpdated) Encode(scale.Encoder) error { return nil }

// Decode is a no-op since the item has no data
func (*RuntimeEnvironmentUpdated) Decode(scale.Decoder) error { return nil }
