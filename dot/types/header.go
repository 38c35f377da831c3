// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/qdm12/gotree"
)

var (
	// ErrNoPreRuntimeDigest is returned when a header has no BABE pre-runtime digest.
	ErrNoPreRuntimeDigest = errors.New("header has no BABE pre-runtime digest")
	// ErrMultiplePreRuntimeDigests is returned when a header has more than one BABE pre-runtime digest.
	ErrMultiplePreRuntimeDigests = errors.New("header has multiple BABE pre-runtime digests")
	// ErrNoSeal is returned when the last digest item of a header is not a seal.
	ErrNoSeal = errors.New("last digest item is not a seal")
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash
	Number         uint64
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         Digest
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash, number uint64, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

// Encode SCALE encodes the header
func (bh Header) Encode(encoder scale.Encoder) error {
	err := encoder.Write(bh.ParentHash[:])
	if err != nil {
		return err
	}

	err = encodeCompact(encoder, bh.Number)
	if err != nil {
		return err
	}

	err = encoder.Write(bh.StateRoot[:])
	if err != nil {
		return err
	}

	err = encoder.Write(bh.ExtrinsicsRoot[:])
	if err != nil {
		return err
	}

	return bh.Digest.Encode(encoder)
}

// Decode decodes a SCALE encoded header into bh
func (bh *Header) Decode(decoder scale.Decoder) (err error) {
	err = decoder.Read(bh.ParentHash[:])
	if err != nil {
		return fmt.Errorf("reading parent hash: %w", err)
	}

	bh.Number, err = decodeCompact(decoder)
	if err != nil {
		return fmt.Errorf("decoding block number: %w", err)
	}

	err = decoder.Read(bh.StateRoot[:])
	if err != nil {
		return fmt.Errorf("reading state root: %w", err)
	}

	err = decoder.Read(bh.ExtrinsicsRoot[:])
	if err != nil {
		return fmt.Errorf("reading extrinsics root: %w", err)
	}

	return bh.Digest.Decode(decoder)
}

// Hash returns the blake2b hash of the SCALE encoded header.
// If hashing the header errors, this will panic.
func (bh *Header) Hash() common.Hash {
	enc, err := Encode(bh)
	if err != nil {
		panic(err)
	}
	return common.MustBlake2bHash(enc)
}

// PreSealHash returns the hash of the header with its last digest item removed,
// which is the message signed by the block author.
// The last digest item must be a seal.
func (bh *Header) PreSealHash() (common.Hash, error) {
	if _, err := bh.Seal(); err != nil {
		return common.Hash{}, err
	}

	unsealed := *bh
	unsealed.Digest = bh.Digest[:len(bh.Digest)-1]

	enc, err := Encode(unsealed)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Blake2bHash(enc)
}

// Seal returns the last digest item of the header if it is a seal.
func (bh *Header) Seal() (*SealDigest, error) {
	if len(bh.Digest) == 0 {
		return nil, ErrNoSeal
	}

	seal, ok := bh.Digest[len(bh.Digest)-1].(*SealDigest)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNoSeal, bh.Digest[len(bh.Digest)-1])
	}
	return seal, nil
}

// BabePreDigest finds and decodes the single BABE pre-runtime digest of the header.
func (bh *Header) BabePreDigest() (BabePreDigest, error) {
	var found BabePreDigest
	for _, item := range bh.Digest {
		preDigest, ok := item.(*PreRuntimeDigest)
		if !ok || preDigest.ConsensusEngineID != BabeEngineID {
			continue
		}

		if found != nil {
			return nil, ErrMultiplePreRuntimeDigests
		}

		babeDigest, err := DecodeBabePreDigest(preDigest.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding BABE pre-runtime digest: %w", err)
		}
		found = babeDigest
	}

	if found == nil {
		return nil, ErrNoPreRuntimeDigest
	}
	return found, nil
}

// DeepCopy returns a deep copy of the header to prevent side effects down the road
func (bh *Header) DeepCopy() *Header {
	cp := *bh
	if bh.Digest == nil {
		return &cp
	}

	cp.Digest = make(Digest, len(bh.Digest))
	for i, item := range bh.Digest {
		cp.Digest[i] = copyDigestItem(item)
	}
	return &cp
}

func copyDigestItem(item DigestItem) DigestItem {
	copyData := func(b []byte) []byte {
		if b == nil {
			return nil
		}
		return append([]byte(nil), b...)
	}

	switch d := item.(type) {
	case *PreRuntimeDigest:
		return &PreRuntimeDigest{ConsensusEngineID: d.ConsensusEngineID, Data: copyData(d.Data)}
	case *ConsensusDigest:
		return &ConsensusDigest{ConsensusEngineID: d.ConsensusEngineID, Data: copyData(d.Data)}
	case *SealDigest:
		return &SealDigest{ConsensusEngineID: d.ConsensusEngineID, Data: copyData(d.Data)}
	case *OtherDigest:
		return &OtherDigest{Data: copyData(d.Data)}
	default:
		return item
	}
}

// String returns the formatted header as a string
func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v Hash=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest, bh.Hash())
}

// StringNode returns a gotree compatible node for String methods.
func (bh *Header) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Header #%d", bh.Number)
	stringNode.Appendf("Hash: %s", bh.Hash())
	stringNode.Appendf("Parent hash: %s", bh.ParentHash)
	stringNode.Appendf("State root: %s", bh.StateRoot)
	stringNode.Appendf("Extrinsics root: %s", bh.ExtrinsicsRoot)
	digestNode := stringNode.Appendf("Digest: %d items", len(bh.Digest))
	for _, item := range bh.Digest {
		digestNode.Appendf("%s", item)
	}
	return stringNode
}
