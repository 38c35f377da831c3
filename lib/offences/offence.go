// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
)

// Offence is a misbehaviour of one or more validators in a time slot,
// independent of the kind of fault committed.
type Offence interface {
	// Kind identifies the type of offence.
	Kind() types.Kind
	// TimeSlot is the time at which the offence happened, in units
	// defined by the offence kind (a BABE slot, a session index).
	TimeSlot() uint64
	// SessionIndex is the session in which the offence happened.
	SessionIndex() types.SessionIndex
	// ValidatorSetCount is the size of the validator set in the session of the offence.
	ValidatorSetCount() uint32
	// Offenders returns the identification of each offender.
	Offenders() []types.IdentificationTuple
	// SlashFraction returns the fraction of the exposure to slash, given the
	// number of validators committing this kind of offence in the same time slot.
	SlashFraction(offendersCount uint32) types.Perbill
}

// EquivocationSlashFraction returns min((3k/n)², 1) for k offenders in a validator set of n.
// It panics if n is zero.
func EquivocationSlashFraction(offendersCount, validatorSetCount uint32) types.Perbill {
	return types.PerbillFromRational(3*uint64(offendersCount), uint64(validatorSetCount)).Square()
}
