// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const slotTablePrefix = "slot"

// We keep at least this number of slots in database.
const maxSlotCapacity uint64 = 1000

// We prune slots when they reach this number.
const pruningBound = 2 * maxSlotCapacity

var (
	slotHeaderMapKey   = []byte("slot_header_map")
	slotHeaderStartKey = []byte("slot_header_start")
)

func slotHeaderKey(slot uint64) []byte {
	slotEncoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(slotEncoded, slot)
	return bytes.Join([][]byte{slotHeaderMapKey, slotEncoded}, nil)
}

// SlotState keeps the headers seen per slot with their signer to detect equivocations.
type SlotState struct {
	db chaindb.Database
}

// NewSlotState returns a SlotState stored in its own table of the database.
func NewSlotState(db chaindb.Database) *SlotState {
	return &SlotState{
		db: chaindb.NewTable(db, slotTablePrefix),
	}
}

type headerAndSigner struct {
	Header types.Header
	Signer types.AuthorityID
}

type headersWithSigners []headerAndSigner

func (h headersWithSigners) Encode(encoder scale.Encoder) error {
	err := types.EncodeLength(encoder, len(h))
	if err != nil {
		return err
	}
	for _, entry := range h {
		err = entry.Header.Encode(encoder)
		if err != nil {
			return err
		}
		err = encoder.Write(entry.Signer[:])
		if err != nil {
			return err
		}
	}
	return nil
}

func (h *headersWithSigners) Decode(decoder scale.Decoder) error {
	count, err := types.DecodeLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding header count: %w", err)
	}

	*h = nil
	for i := uint64(0); i < count; i++ {
		var entry headerAndSigner
		err = entry.Header.Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding header %d: %w", i, err)
		}
		err = decoder.Read(entry.Signer[:])
		if err != nil {
			return fmt.Errorf("reading signer %d: %w", i, err)
		}
		*h = append(*h, entry)
	}
	return nil
}

// contentHash returns the hash of the header without its seal, so the same
// header sealed twice hashes the same.
func contentHash(header *types.Header) (common.Hash, error) {
	hash, err := header.PreSealHash()
	if errors.Is(err, types.ErrNoSeal) {
		return header.Hash(), nil
	} else if err != nil {
		return common.Hash{}, fmt.Errorf("hashing header without seal: %w", err)
	}
	return hash, nil
}

// CheckEquivocation records the header signed by the signer in the slot and returns
// an equivocation proof if the signer already signed a different header in the slot.
// Headers more than maxSlotCapacity slots behind slotNow are ignored.
func (s *SlotState) CheckEquivocation(slotNow, slot uint64, header *types.Header,
	signer types.AuthorityID) (*types.BabeEquivocationProof, error) {
	// We don't check equivocations for old headers out of our capacity.
	if saturatingSub(slotNow, slot) > maxSlotCapacity {
		return nil, nil
	}

	currentSlotKey := slotHeaderKey(slot)
	encodedHeadersWithSigners, err := s.db.Get(currentSlotKey)
	if err != nil && !errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("getting key slot header map key %d: %w", slot, err)
	}

	var seen headersWithSigners
	if len(encodedHeadersWithSigners) > 0 {
		err = types.DecodeExact(encodedHeadersWithSigners, &seen)
		if err != nil {
			return nil, fmt.Errorf("decoding headers with signers: %w", err)
		}
	}

	firstSavedSlot := slot
	firstSavedSlotEncoded, err := s.db.Get(slotHeaderStartKey)
	if err != nil && !errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, fmt.Errorf("getting key slot header start key: %w", err)
	}

	if len(firstSavedSlotEncoded) > 0 {
		firstSavedSlot = binary.LittleEndian.Uint64(firstSavedSlotEncoded)
	}

	if slotNow < firstSavedSlot {
		// slots are expected to be visited sequentially
		return nil, nil
	}

	headerHash, err := contentHash(header)
	if err != nil {
		return nil, err
	}
	for _, entry := range seen {
		if entry.Signer != signer {
			continue
		}

		seenHash, err := contentHash(&entry.Header)
		if err != nil {
			return nil, err
		}
		if seenHash == headerHash {
			// already recorded, an equivocation would have been detected then
			return nil, nil
		}

		return &types.BabeEquivocationProof{
			Offender:     signer,
			Slot:         slot,
			FirstHeader:  entry.Header,
			SecondHeader: *header.DeepCopy(),
		}, nil
	}

	var keysToDelete [][]byte
	newFirstSavedSlot := firstSavedSlot

	if slotNow-firstSavedSlot >= pruningBound {
		newFirstSavedSlot = saturatingSub(slotNow, maxSlotCapacity)

		for old := firstSavedSlot; old < newFirstSavedSlot; old++ {
			keysToDelete = append(keysToDelete, slotHeaderKey(old))
		}
	}

	seen = append(seen, headerAndSigner{Header: *header.DeepCopy(), Signer: signer})
	encodedHeadersWithSigners, err = types.Encode(seen)
	if err != nil {
		return nil, fmt.Errorf("encoding headers with signers: %w", err)
	}

	batch := s.db.NewBatch()
	err = batch.Put(currentSlotKey, encodedHeadersWithSigners)
	if err != nil {
		return nil, fmt.Errorf("while batch putting encoded headers with signers: %w", err)
	}

	newFirstSavedSlotEncoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(newFirstSavedSlotEncoded, newFirstSavedSlot)
	err = batch.Put(slotHeaderStartKey, newFirstSavedSlotEncoded)
	if err != nil {
		return nil, fmt.Errorf("while batch putting encoded new first saved slot: %w", err)
	}

	for _, toDelete := range keysToDelete {
		err := batch.Del(toDelete)
		if err != nil {
			return nil, fmt.Errorf("while batch deleting key %x: %w", toDelete, err)
		}
	}

	err = batch.Flush()
	if err != nil {
		return nil, fmt.Errorf("flushing slot headers batch: %w", err)
	}
	return nil, nil
}

func saturatingSub(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return 0
}
