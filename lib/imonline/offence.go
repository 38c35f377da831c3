// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package imonline

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
)

// UnresponsivenessKind is the kind of offences of validators that went offline in a session.
var UnresponsivenessKind = types.NewKind("im-online:offlin")

// maxSlashFraction is the fraction slashed when every validator is offline.
var maxSlashFraction = types.PerbillFromPercent(7)

// UnresponsivenessSlashFraction returns the slash fraction for offendersCount offline
// validators in a validator set of validatorSetCount. Up to 10% of the set plus one may be
// offline without slashing, above that the fraction grows linearly to 7% at a third
// of the set offline.
func UnresponsivenessSlashFraction(offendersCount, validatorSetCount uint32) types.Perbill {
	threshold := validatorSetCount/10 + 1
	if offendersCount <= threshold {
		return types.PerbillFromParts(0)
	}

	x := types.PerbillFromRational(3*uint64(offendersCount-threshold), uint64(validatorSetCount))
	return x.Mul(maxSlashFraction)
}

// UnresponsivenessOffence is the offence of validators that sent no heartbeat
// and authored no block during a session.
type UnresponsivenessOffence struct {
	session           types.SessionIndex
	validatorSetCount uint32
	offenders         []types.IdentificationTuple
}

var _ offences.Offence = (*UnresponsivenessOffence)(nil)

// NewUnresponsivenessOffence returns the unresponsiveness offence of the offenders in the session.
func NewUnresponsivenessOffence(session types.SessionIndex, validatorSetCount uint32,
	offenders []types.IdentificationTuple) *UnresponsivenessOffence {
	return &UnresponsivenessOffence{
		session:           session,
		validatorSetCount: validatorSetCount,
		offenders:         offenders,
	}
}

// Kind returns UnresponsivenessKind
func (*UnresponsivenessOffence) Kind() types.Kind { return UnresponsivenessKind }

// TimeSlot returns the session index, the time unit of unresponsiveness
func (o *UnresponsivenessOffence) TimeSlot() uint64 { return uint64(o.session) }

// SessionIndex returns the session of the offence
func (o *UnresponsivenessOffence) SessionIndex() types.SessionIndex { return o.session }

// ValidatorSetCount returns the size of the validator set in the session
func (o *UnresponsivenessOffence) ValidatorSetCount() uint32 { return o.validatorSetCount }

// Offenders returns the offline validators
func (o *UnresponsivenessOffence) Offenders() []types.IdentificationTuple { return o.offenders }

// SlashFraction returns UnresponsivenessSlashFraction for the validator set of the session.
func (o *UnresponsivenessOffence) SlashFraction(offendersCount uint32) types.Perbill {
	return UnresponsivenessSlashFraction(offendersCount, o.validatorSetCount)
}
