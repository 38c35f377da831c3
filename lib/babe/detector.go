// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
)

// SlotTracker records the headers sealed per slot and signer.
type SlotTracker interface {
	// CheckEquivocation records the header and returns a proof if the signer
	// already sealed a different header in the slot.
	CheckEquivocation(slotNow, slot uint64, header *types.Header,
		signer types.AuthorityID) (*types.BabeEquivocationProof, error)
}

// AuthorityLookup finds the authority at an index of a session validator set.
type AuthorityLookup interface {
	Authority(session types.SessionIndex, index uint32) (*types.AuthorityID, error)
}

// EquivocationDetector checks imported headers for equivocations
// and reports the ones it finds.
type EquivocationDetector struct {
	slots       SlotTracker
	authorities AuthorityLookup
	reporter    *EquivocationReporter
	epochConfig EpochConfig
}

// NewEquivocationDetector returns a new EquivocationDetector.
func NewEquivocationDetector(slots SlotTracker, authorities AuthorityLookup,
	reporter *EquivocationReporter, epochConfig EpochConfig) *EquivocationDetector {
	return &EquivocationDetector{
		slots:       slots,
		authorities: authorities,
		reporter:    reporter,
		epochConfig: epochConfig,
	}
}

// ImportHeader verifies the seal of the header against the authority claiming its slot
// and records it. If that authority already sealed a different header in the slot,
// the equivocation is reported unsigned and its proof returned.
func (d *EquivocationDetector) ImportHeader(slotNow uint64, header *types.Header) (
	*types.BabeEquivocationProof, error) {
	preDigest, err := header.BabePreDigest()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHeader, err)
	}
	authorityIndex, slot := preDigest.AuthorityIndexAndSlot()

	session, err := d.epochConfig.SessionForSlot(slot)
	if err != nil {
		return nil, err
	}

	signer, err := d.authorities.Authority(session, authorityIndex)
	if err != nil {
		return nil, fmt.Errorf("looking up authority %d of session %d: %w", authorityIndex, session, err)
	}
	if signer == nil {
		return nil, fmt.Errorf("%w: index %d in session %d", ErrUnknownAuthority, authorityIndex, session)
	}

	_, _, err = checkHeader(header, slot, *signer)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHeader, err)
	}

	proof, err := d.slots.CheckEquivocation(slotNow, slot, header, *signer)
	if err != nil {
		return nil, fmt.Errorf("checking equivocation in slot %d: %w", slot, err)
	}
	if proof == nil {
		return nil, nil
	}
	logger.Infof("detected equivocation of %s in slot %d", proof.Offender, proof.Slot)

	encoded, err := types.EncodeBabeEquivocationProof(proof)
	if err != nil {
		return nil, fmt.Errorf("encoding equivocation proof: %w", err)
	}
	err = d.reporter.ReportEquivocation(nil, encoded, session)
	return proof, err
}
