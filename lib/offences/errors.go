// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import "errors"

var (
	// ErrNoOffenders is returned when reporting an offence without offenders
	ErrNoOffenders = errors.New("offence has no offenders")

	// ErrUnknownValidatorSet is returned when the validator set size of the offence session is zero
	ErrUnknownValidatorSet = errors.New("validator set of the offence session is unknown")

	// ErrDuplicateReport is returned when every offender of an offence was already reported
	// for the same kind and time slot
	ErrDuplicateReport = errors.New("offence already reported")

	// ErrSlashApplicationFailed is returned when the staking system fails to slash an offender
	ErrSlashApplicationFailed = errors.New("failed to apply slash")

	// ErrRewardFailed is returned when the staking system fails to reward the reporters
	ErrRewardFailed = errors.New("failed to reward reporters")

	// ErrReportStorage is returned when the reported offences ledger cannot be read or written
	ErrReportStorage = errors.New("reported offences storage failure")
)
