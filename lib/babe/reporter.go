// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
)

// OffenceReporter receives offences for slashing.
type OffenceReporter interface {
	ReportOffence(reporters []types.AccountID, offence offences.Offence) error
	IsKnownOffence(kind types.Kind, timeSlot uint64, offenders []types.IdentificationTuple) (bool, error)
}

// EpochConfig maps slots to sessions, with one session per BABE epoch.
type EpochConfig struct {
	GenesisSlot uint64
	EpochLength uint64
}

// SessionForSlot returns the session containing the slot.
func (c EpochConfig) SessionForSlot(slot uint64) (types.SessionIndex, error) {
	if c.EpochLength == 0 {
		return 0, fmt.Errorf("%w: epoch length is zero", ErrSlotSessionMismatch)
	}
	if slot < c.GenesisSlot {
		return 0, fmt.Errorf("%w: slot %d is before genesis slot %d", ErrSlotSessionMismatch, slot, c.GenesisSlot)
	}
	return types.SessionIndex((slot - c.GenesisSlot) / c.EpochLength), nil
}

// EquivocationReporter turns encoded equivocation proofs into offence reports.
type EquivocationReporter struct {
	history     SessionHistory
	reporter    OffenceReporter
	epochConfig *EpochConfig
}

// NewEquivocationReporter returns a new EquivocationReporter. When epochConfig is not nil,
// the slot of each proof must be in the session it is reported for.
func NewEquivocationReporter(history SessionHistory, reporter OffenceReporter,
	epochConfig *EpochConfig) *EquivocationReporter {
	return &EquivocationReporter{
		history:     history,
		reporter:    reporter,
		epochConfig: epochConfig,
	}
}

// ReportEquivocation verifies the encoded proof and reports the equivocation
// of its offender in the session. A nil reporter reports it unsigned.
func (r *EquivocationReporter) ReportEquivocation(reporter *types.AccountID, encodedProof []byte,
	session types.SessionIndex) error {
	proof, offender, err := r.verify(encodedProof, session)
	if err != nil {
		return err
	}

	validatorSetCount, err := r.history.ValidatorSetCount(session)
	if err != nil {
		return fmt.Errorf("getting validator set count of session %d: %w", session, err)
	}

	var reporters []types.AccountID
	if reporter != nil {
		reporters = []types.AccountID{*reporter}
	}

	offence := NewEquivocationOffence(proof.Slot, session, validatorSetCount, offender)
	err = r.reporter.ReportOffence(reporters, offence)
	if err != nil {
		return fmt.Errorf("reporting equivocation of %s in slot %d: %w", proof.Offender, proof.Slot, err)
	}

	logger.Infof("reported equivocation of %s in slot %d of session %d", proof.Offender, proof.Slot, session)
	return nil
}

// IsKnownEquivocation returns true if the equivocation of the encoded proof
// was already reported for the session.
func (r *EquivocationReporter) IsKnownEquivocation(encodedProof []byte, session types.SessionIndex) (bool, error) {
	proof, offender, err := r.verify(encodedProof, session)
	if err != nil {
		return false, err
	}

	return r.reporter.IsKnownOffence(EquivocationKind, proof.Slot, []types.IdentificationTuple{offender})
}

func (r *EquivocationReporter) verify(encodedProof []byte, session types.SessionIndex) (
	*types.BabeEquivocationProof, types.IdentificationTuple, error) {
	proof, err := types.DecodeBabeEquivocationProof(encodedProof)
	if err != nil {
		return nil, types.IdentificationTuple{}, fmt.Errorf("%w: %s", ErrInvalidEquivocationProof, err)
	}
	logger.Tracef("verifying proof for session %d:\n%s", session, proof)

	if !CheckEquivocationProof(proof) {
		return nil, types.IdentificationTuple{}, fmt.Errorf("%w: offender %s in slot %d",
			ErrInvalidEquivocationProof, proof.Offender, proof.Slot)
	}

	if r.epochConfig != nil {
		slotSession, err := r.epochConfig.SessionForSlot(proof.Slot)
		if err != nil {
			return nil, types.IdentificationTuple{}, err
		}
		if slotSession != session {
			return nil, types.IdentificationTuple{}, fmt.Errorf("%w: slot %d is in session %d, not %d",
				ErrSlotSessionMismatch, proof.Slot, slotSession, session)
		}
	}

	offender, err := ResolveOffender(r.history, proof, session)
	if err != nil {
		return nil, types.IdentificationTuple{}, err
	}
	return proof, offender, nil
}
