// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/ChainSafe/gossamer-offences/lib/crypto/sr25519"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "babe"))

var (
	errSlotMismatch      = errors.New("slot mismatch")
	errNotBabeSeal       = errors.New("seal is not from the BABE engine")
	errBadSeal           = errors.New("seal signature does not verify")
	errAuthorityMismatch = errors.New("headers claim different authority indexes")
	errSameHeader        = errors.New("headers are identical")
)

// CheckEquivocationProof returns true if the proof shows its offender sealed two
// different headers in the proof slot. It does not modify the proof.
func CheckEquivocationProof(proof *types.BabeEquivocationProof) bool {
	if proof == nil {
		return false
	}

	err := checkEquivocationProof(proof)
	if err != nil {
		logger.Debugf("equivocation proof of %s in slot %d is invalid: %s", proof.Offender, proof.Slot, err)
		return false
	}
	return true
}

func checkEquivocationProof(proof *types.BabeEquivocationProof) error {
	firstIndex, firstHash, err := checkHeader(&proof.FirstHeader, proof.Slot, proof.Offender)
	if err != nil {
		return fmt.Errorf("first header: %w", err)
	}

	secondIndex, secondHash, err := checkHeader(&proof.SecondHeader, proof.Slot, proof.Offender)
	if err != nil {
		return fmt.Errorf("second header: %w", err)
	}

	if firstIndex != secondIndex {
		return fmt.Errorf("%w: %d and %d", errAuthorityMismatch, firstIndex, secondIndex)
	}

	// seals are randomized, so identical content sealed twice is not an equivocation
	if firstHash == secondHash {
		return errSameHeader
	}
	return nil
}

// checkHeader verifies the header claims the slot and is sealed by the offender,
// and returns the authority index it claims with the header hash without its seal.
func checkHeader(header *types.Header, slot uint64, offender types.AuthorityID) (
	authorityIndex uint32, preSealHash common.Hash, err error) {
	preDigest, err := header.BabePreDigest()
	if err != nil {
		return 0, common.Hash{}, err
	}

	authorityIndex, headerSlot := preDigest.AuthorityIndexAndSlot()
	if headerSlot != slot {
		return 0, common.Hash{}, fmt.Errorf("%w: header slot %d, proof slot %d", errSlotMismatch, headerSlot, slot)
	}

	seal, err := header.Seal()
	if err != nil {
		return 0, common.Hash{}, err
	}
	if seal.ConsensusEngineID != types.BabeEngineID {
		return 0, common.Hash{}, fmt.Errorf("%w: %s", errNotBabeSeal, seal.ConsensusEngineID.ToBytes())
	}

	preSealHash, err = header.PreSealHash()
	if err != nil {
		return 0, common.Hash{}, err
	}

	pub, err := sr25519.NewPublicKey(offender[:])
	if err != nil {
		return 0, common.Hash{}, fmt.Errorf("decoding offender public key: %w", err)
	}

	ok, err := pub.Verify(preSealHash[:], seal.Data)
	if err != nil {
		return 0, common.Hash{}, fmt.Errorf("verifying seal: %w", err)
	}
	if !ok {
		return 0, common.Hash{}, errBadSeal
	}

	return authorityIndex, preSealHash, nil
}

// SetLogLevel sets the level of the babe logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
