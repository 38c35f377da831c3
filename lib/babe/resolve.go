// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
)

// SessionHistory looks up the validator set of past sessions.
type SessionHistory interface {
	// FullIdentification returns the identification of the authority in the session,
	// or nil if the authority had none or the session is no longer held.
	FullIdentification(session types.SessionIndex, authority types.AuthorityID) (*types.FullIdentification, error)
	// ValidatorSetCount returns the size of the validator set of the session, or 0 if unknown.
	ValidatorSetCount(session types.SessionIndex) (uint32, error)
}

// ResolveOffender returns the identification of the proof offender as of the session.
func ResolveOffender(history SessionHistory, proof *types.BabeEquivocationProof,
	session types.SessionIndex) (types.IdentificationTuple, error) {
	identification, err := history.FullIdentification(session, proof.Offender)
	if err != nil {
		return types.IdentificationTuple{}, fmt.Errorf("looking up identification of %s in session %d: %w",
			proof.Offender, session, err)
	}

	if identification == nil {
		return types.IdentificationTuple{}, fmt.Errorf("%w: authority %s in session %d",
			ErrUnknownAuthority, proof.Offender, session)
	}

	return types.IdentificationTuple{
		Authority:          proof.Offender,
		FullIdentification: *identification,
	}, nil
}
