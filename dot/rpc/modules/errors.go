// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import "errors"

var (
	ErrInvalidAccountID   = errors.New("invalid account id")
	ErrInvalidProofHex    = errors.New("invalid equivocation proof hex")
	ErrInvalidHeader      = errors.New("invalid header")
	ErrUnknownOffenceKind = errors.New("unknown offence kind")
	ErrNoValidators       = errors.New("validator set is empty")
)
