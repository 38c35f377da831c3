// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import "errors"

var (
	// ErrInvalidEquivocationProof is returned when an equivocation proof cannot be decoded
	// or does not prove an equivocation
	ErrInvalidEquivocationProof = errors.New("invalid equivocation proof")

	// ErrSlotSessionMismatch is returned when the slot of an equivocation proof is not
	// in the session it is reported for
	ErrSlotSessionMismatch = errors.New("slot is not in the reported session")

	// ErrInvalidHeader is returned when an imported header has no valid BABE
	// pre-runtime digest or is not sealed by the authority claiming its slot
	ErrInvalidHeader = errors.New("invalid header")

	// ErrUnknownAuthority is returned when an authority has no identification in a session
	ErrUnknownAuthority = errors.New("authority has no identification in session")
)
