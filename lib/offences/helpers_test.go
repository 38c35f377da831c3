// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"testing"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/stretchr/testify/require"
)

var testKind = types.NewKind("test:offence")

type testOffence struct {
	timeSlot          uint64
	session           types.SessionIndex
	validatorSetCount uint32
	offenders         []types.IdentificationTuple
}

func (testOffence) Kind() types.Kind                         { return testKind }
func (o testOffence) TimeSlot() uint64                       { return o.timeSlot }
func (o testOffence) SessionIndex() types.SessionIndex       { return o.session }
func (o testOffence) ValidatorSetCount() uint32              { return o.validatorSetCount }
func (o testOffence) Offenders() []types.IdentificationTuple { return o.offenders }

func (o testOffence) SlashFraction(offendersCount uint32) types.Perbill {
	return EquivocationSlashFraction(offendersCount, o.validatorSetCount)
}

func newTestOffender(id byte) types.IdentificationTuple {
	return types.IdentificationTuple{
		Authority: types.AuthorityID{id},
		FullIdentification: types.FullIdentification{
			Stash: types.AccountID{id, id},
			Exposure: types.Exposure{
				Total: types.NewBalance(1000),
				Own:   types.NewBalance(1000),
			},
		},
	}
}

func mustReportID(t *testing.T, timeSlot uint64, offender types.IdentificationTuple) common.Hash {
	t.Helper()
	id, err := ReportID(testKind, timeSlot, offender)
	require.NoError(t, err)
	return id
}
