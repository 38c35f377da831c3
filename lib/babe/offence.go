// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
)

// EquivocationKind is the kind of BABE equivocation offences
var EquivocationKind = types.NewKind("babe:equivocatio")

// EquivocationOffence is a BABE equivocation: an authority produced
// two different blocks in the same slot.
type EquivocationOffence struct {
	slot              uint64
	session           types.SessionIndex
	validatorSetCount uint32
	offender          types.IdentificationTuple
}

var _ offences.Offence = (*EquivocationOffence)(nil)

// NewEquivocationOffence returns the equivocation offence of the offender in the slot.
func NewEquivocationOffence(slot uint64, session types.SessionIndex, validatorSetCount uint32,
	offender types.IdentificationTuple) *EquivocationOffence {
	return &EquivocationOffence{
		slot:              slot,
		session:           session,
		validatorSetCount: validatorSetCount,
		offender:          offender,
	}
}

// Kind returns EquivocationKind
func (*EquivocationOffence) Kind() types.Kind { return EquivocationKind }

// TimeSlot returns the slot of the equivocation
func (o *EquivocationOffence) TimeSlot() uint64 { return o.slot }

// SessionIndex returns the session of the equivocation
func (o *EquivocationOffence) SessionIndex() types.SessionIndex { return o.session }

// ValidatorSetCount returns the size of the validator set in the session
func (o *EquivocationOffence) ValidatorSetCount() uint32 { return o.validatorSetCount }

// Offenders returns the single offender
func (o *EquivocationOffence) Offenders() []types.IdentificationTuple {
	return []types.IdentificationTuple{o.offender}
}

// SlashFraction returns the equivocation slash fraction for the number of offenders
func (o *EquivocationOffence) SlashFraction(offendersCount uint32) types.Perbill {
	return offences.EquivocationSlashFraction(offendersCount, o.validatorSetCount)
}
