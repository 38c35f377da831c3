// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/qdm12/gotree"
)

// ErrDecodeEquivocationProof is returned when an encoded equivocation proof
// is truncated, malformed or contains an unsupported discriminant.
var ErrDecodeEquivocationProof = errors.New("cannot decode equivocation proof")

// AuthorityID is a BABE authority identifier. It is the schnorrkel
// public key used to seal blocks.
type AuthorityID [32]byte

// String returns the 0x prefixed hex representation of the authority id
func (a AuthorityID) String() string {
	return hexutil.Encode(a[:])
}

// BabeEquivocationProof represents an equivocation proof. An equivocation happens when a validator
// produces more than one block on the same slot. The proof of equivocation
// are the given distinct headers that were signed by the validator and which
// include the slot number.
type BabeEquivocationProof struct {
	// The public key of the equivocator.
	Offender AuthorityID
	// The slot at which the equivocation happened.
	Slot uint64
	// The first header involved in the equivocation.
	FirstHeader Header
	// The second header involved in the equivocation.
	SecondHeader Header
}

// Encode SCALE encodes the proof
func (p BabeEquivocationProof) Encode(encoder scale.Encoder) error {
	err := encoder.Write(p.Offender[:])
	if err != nil {
		return err
	}

	err = encoder.Encode(p.Slot)
	if err != nil {
		return err
	}

	err = p.FirstHeader.Encode(encoder)
	if err != nil {
		return fmt.Errorf("encoding first header: %w", err)
	}

	err = p.SecondHeader.Encode(encoder)
	if err != nil {
		return fmt.Errorf("encoding second header: %w", err)
	}
	return nil
}

func (p *BabeEquivocationProof) String() string {
	return p.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (p *BabeEquivocationProof) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Equivocation proof")
	stringNode.Appendf("Offender: %s", p.Offender)
	stringNode.Appendf("Slot: %d", p.Slot)
	stringNode.AppendNode(p.FirstHeader.StringNode())
	stringNode.AppendNode(p.SecondHeader.StringNode())
	return stringNode
}

// Decode decodes a SCALE encoded proof into p
func (p *BabeEquivocationProof) Decode(decoder scale.Decoder) error {
	err := decoder.Read(p.Offender[:])
	if err != nil {
		return fmt.Errorf("reading offender: %w", err)
	}

	err = decoder.Decode(&p.Slot)
	if err != nil {
		return fmt.Errorf("decoding slot: %w", err)
	}

	err = p.FirstHeader.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding first header: %w", err)
	}

	err = p.SecondHeader.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding second header: %w", err)
	}
	return nil
}

// EncodeBabeEquivocationProof returns the SCALE encoding of the proof
func EncodeBabeEquivocationProof(proof *BabeEquivocationProof) ([]byte, error) {
	return Encode(proof)
}

// DecodeBabeEquivocationProof decodes a SCALE encoded proof. Every BABE pre-runtime
// digest carried by the headers must decode exactly, and the whole input must be
// consumed. All failures wrap ErrDecodeEquivocationProof and return a nil proof.
func DecodeBabeEquivocationProof(in []byte) (*BabeEquivocationProof, error) {
	proof := new(BabeEquivocationProof)
	err := DecodeExact(in, proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeEquivocationProof, err)
	}

	for i, header := range []*Header{&proof.FirstHeader, &proof.SecondHeader} {
		err = checkBabePreDigests(header)
		if err != nil {
			return nil, fmt.Errorf("%w: header %d: %s", ErrDecodeEquivocationProof, i+1, err)
		}
	}

	return proof, nil
}

func checkBabePreDigests(header *Header) error {
	for _, item := range header.Digest {
		preDigest, ok := item.(*PreRuntimeDigest)
		if !ok || preDigest.ConsensusEngineID != BabeEngineID {
			continue
		}

		_, err := DecodeBabePreDigest(preDigest.Data)
		if err != nil {
			return err
		}
	}
	return nil
}
