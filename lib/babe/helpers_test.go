// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package babe

import (
	"testing"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/ChainSafe/gossamer-offences/lib/crypto/sr25519"
	"github.com/stretchr/testify/require"
)

// substrateProof is an equivocation proof produced by a Substrate node for
// authority 0 in slot 11.
var substrateProof = common.MustHexToBytes("0x" +
	"def12e42f3e487e9b14095aa8d5cc16a33491f1b50dadcf8811d1480f3fa86270b000000000000009e0407f0439986be" +
	"fbc4e55f88a5eae4ff1202bb4c7d6c324321c46c2673b35628241b05693ae45ec641d4dad53daa1533f9b679655bcc19" +
	"1f57dbd02b77d3b980000000000000000000000000000000000000000000000000000000000000000008064241424534" +
	"02000000000b0000000000000005424142450101bcc0d95b8a4ed950081d8c37f2d2aab8496287d4ecd17334c84fafac" +
	"f2a1c72fec5d655f2b228d10f7dc213b1fc51b07c43e0ceeec7c88bf1d2416eef2ca398b000000000000000000000000" +
	"00000000000000000000000000000000000000002817af99530621417b3350df7ebae2e1f0691ca909360b8a2ec2c9fa" +
	"30f27d757400000000000000000000000000000000000000000000000000000000000000000806424142453402000000" +
	"000b00000000000000054241424501018e0c7c0ba7e367584e17e4216029cfb7e3bd7246fe1e80f3e953d62d4ab67877" +
	"40f3db773ff0cd7be752cdae8f460256b614108d915b74c33adfaf91ff077985")

func newTestKeypair(t *testing.T, seed byte) *sr25519.Keypair {
	t.Helper()
	raw := make([]byte, sr25519.SeedLength)
	raw[0] = seed
	kp, err := sr25519.NewKeypairFromSeed(raw)
	require.NoError(t, err)
	return kp
}

func authorityID(kp *sr25519.Keypair) types.AuthorityID {
	return types.AuthorityID(kp.Public().Encode())
}

// newSignedHeader returns a header claiming the slot for the authority index,
// sealed by the keypair.
func newSignedHeader(t *testing.T, kp *sr25519.Keypair, authorityIndex uint32,
	slot uint64, stateRoot common.Hash) types.Header {
	t.Helper()

	preDigest, err := types.ToPreRuntimeDigest(*types.NewBabeSecondaryPlainPreDigest(authorityIndex, slot))
	require.NoError(t, err)

	header := types.Header{
		ParentHash: common.Hash{0xaa},
		Number:     10,
		StateRoot:  stateRoot,
		Digest:     types.Digest{preDigest},
	}

	preSealHash := header.Hash()
	signature, err := kp.Sign(preSealHash[:])
	require.NoError(t, err)

	header.Digest = append(header.Digest, types.NewBABESealDigest(signature))
	return header
}

// newTestProof returns a valid equivocation proof of the keypair in the slot.
func newTestProof(t *testing.T, kp *sr25519.Keypair, slot uint64) *types.BabeEquivocationProof {
	t.Helper()
	return &types.BabeEquivocationProof{
		Offender:     authorityID(kp),
		Slot:         slot,
		FirstHeader:  newSignedHeader(t, kp, 0, slot, common.Hash{0x01}),
		SecondHeader: newSignedHeader(t, kp, 0, slot, common.Hash{0x02}),
	}
}

func encodeProof(t *testing.T, proof *types.BabeEquivocationProof) []byte {
	t.Helper()
	enc, err := types.EncodeBabeEquivocationProof(proof)
	require.NoError(t, err)
	return enc
}
