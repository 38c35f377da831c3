// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"math/bits"

	"github.com/holiman/uint256"
)

// PerbillAccuracy is the number of parts in one whole Perbill.
const PerbillAccuracy = 1_000_000_000

// Perbill is a fixed point fraction in [0, 1] expressed in parts per billion.
type Perbill uint32

// PerbillOne is the Perbill representing one whole.
const PerbillOne Perbill = PerbillAccuracy

// PerbillFromParts returns the Perbill for the given number of parts, saturating at one.
func PerbillFromParts(parts uint32) Perbill {
	if parts > PerbillAccuracy {
		return PerbillOne
	}
	return Perbill(parts)
}

// PerbillFromPercent returns the Perbill for the given percentage, saturating at one.
func PerbillFromPercent(percent uint32) Perbill {
	if percent >= 100 {
		return PerbillOne
	}
	return Perbill(percent * (PerbillAccuracy / 100))
}

// PerbillFromRational returns p/q rounded down, saturating at one when p >= q.
// It panics if q is zero.
func PerbillFromRational(p, q uint64) Perbill {
	if q == 0 {
		panic("perbill: rational with zero denominator")
	}
	if p >= q {
		return PerbillOne
	}

	hi, lo := bits.Mul64(p, PerbillAccuracy)
	// p < q so the quotient fits in 64 bits
	parts, _ := bits.Div64(hi, lo, q)
	return Perbill(parts)
}

// Parts returns the number of parts per billion.
func (p Perbill) Parts() uint32 {
	return uint32(p)
}

// IsZero returns true if the fraction is zero.
func (p Perbill) IsZero() bool {
	return p == 0
}

// Square returns p*p, rounded to the nearest part with ties rounded down.
func (p Perbill) Square() Perbill {
	product := uint64(p) * uint64(p)
	parts := product / PerbillAccuracy
	if product%PerbillAccuracy > PerbillAccuracy/2 {
		parts++
	}
	return Perbill(parts)
}

// Mul returns p*other rounded down.
func (p Perbill) Mul(other Perbill) Perbill {
	return Perbill(uint64(p) * uint64(other) / PerbillAccuracy)
}

// MulBalance returns the fraction of the balance, rounded down.
func (p Perbill) MulBalance(balance *uint256.Int) *uint256.Int {
	result := new(uint256.Int).Mul(balance, uint256.NewInt(uint64(p)))
	return result.Div(result, uint256.NewInt(PerbillAccuracy))
}

// String returns the fraction as a decimal number with nine digits after the point.
func (p Perbill) String() string {
	return fmt.Sprintf("%d.%09d", uint32(p)/PerbillAccuracy, uint32(p)%PerbillAccuracy)
}
