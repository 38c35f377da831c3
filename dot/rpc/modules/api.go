// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/holiman/uint256"
)

// EquivocationAPI is the interface for reporting BABE equivocations
type EquivocationAPI interface {
	ReportEquivocation(reporter *types.AccountID, encodedProof []byte, session types.SessionIndex) error
	IsKnownEquivocation(encodedProof []byte, session types.SessionIndex) (bool, error)
}

// HeaderAPI is the interface for checking imported headers for equivocations
type HeaderAPI interface {
	ImportHeader(slotNow uint64, header *types.Header) (*types.BabeEquivocationProof, error)
}

// StakingAPI is the interface for reading the staking ledger
type StakingAPI interface {
	Balance(account types.AccountID) *uint256.Int
	Slashed(stash types.AccountID, session types.SessionIndex) types.Perbill
	TotalSlashed(account types.AccountID) *uint256.Int
}
