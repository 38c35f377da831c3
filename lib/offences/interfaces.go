// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/common"
)

// Report is a new entry of the reported offences ledger.
type Report struct {
	ID      common.Hash
	Details types.OffenceDetails
}

// ReportStore is the ledger of reported offences.
type ReportStore interface {
	HasReport(id common.Hash) (bool, error)
	GetReport(id common.Hash) (*types.OffenceDetails, error)
	GetConcurrentReportIDs(kind types.Kind, timeSlot uint64) ([]common.Hash, error)
	// StoreReports atomically writes the reports and appends their
	// ids to the concurrent reports index of the kind and time slot.
	StoreReports(kind types.Kind, timeSlot uint64, reports []Report) error
}

// Staking applies slashes and issues rewards. Changes made after StartTransaction
// are discarded by RollbackTransaction and kept by CommitTransaction.
type Staking interface {
	StartTransaction()
	CommitTransaction()
	RollbackTransaction()
	// ApplySlash slashes the exposure of the offender in the session by the fraction.
	// Slashing an offender again in the same session only applies the increase
	// over the highest fraction already applied.
	ApplySlash(offender types.IdentificationTuple, fraction types.Perbill, session types.SessionIndex) error
	RewardReporters(reporters []types.AccountID, fraction types.Perbill) error
}

// EventSink receives an event for every offence report applied.
type EventSink interface {
	HandleOffence(event OffenceEvent)
}

// Metrics records the outcome of offence reports.
type Metrics interface {
	ReportApplied(kind types.Kind, offenders int, fraction types.Perbill)
	ReportRejected(kind types.Kind, err error)
}
