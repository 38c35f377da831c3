// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"testing"

	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_PreSealHash(t *testing.T) {
	t.Parallel()

	preDigest := mustPreRuntimeDigest(*NewBabeSecondaryPlainPreDigest(1, 5))
	sealed := newTestHeader(4, preDigest, NewBABESealDigest([]byte{1, 2}))
	unsealed := newTestHeader(4, preDigest)

	hash, err := sealed.PreSealHash()
	require.NoError(t, err)
	assert.Equal(t, unsealed.Hash(), hash)
	assert.NotEqual(t, sealed.Hash(), hash)

	// the receiver keeps its seal
	require.Len(t, sealed.Digest, 2)
	_, err = sealed.Seal()
	require.NoError(t, err)
}

func TestHeader_Seal(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		header     Header
		seal       *SealDigest
		errWrapped error
	}{
		"no digest": {
			header:     newTestHeader(1),
			errWrapped: ErrNoSeal,
		},
		"seal not last": {
			header: newTestHeader(1,
				NewBABESealDigest([]byte{1}),
				&OtherDigest{Data: []byte{2}}),
			errWrapped: ErrNoSeal,
		},
		"seal last": {
			header: newTestHeader(1,
				&OtherDigest{Data: []byte{2}},
				NewBABESealDigest([]byte{1})),
			seal: NewBABESealDigest([]byte{1}),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			seal, err := testCase.header.Seal()
			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.seal, seal)

			_, err = testCase.header.PreSealHash()
			assert.ErrorIs(t, err, testCase.errWrapped)
		})
	}
}

func TestHeader_BabePreDigest(t *testing.T) {
	t.Parallel()

	plain := *NewBabeSecondaryPlainPreDigest(2, 8)

	testCases := map[string]struct {
		header     Header
		preDigest  BabePreDigest
		errWrapped error
	}{
		"no pre-runtime digest": {
			header:     newTestHeader(1, NewBABESealDigest([]byte{1})),
			errWrapped: ErrNoPreRuntimeDigest,
		},
		"other engine only": {
			header: newTestHeader(1, &PreRuntimeDigest{
				ConsensusEngineID: GrandpaEngineID,
				Data:              []byte{1},
			}),
			errWrapped: ErrNoPreRuntimeDigest,
		},
		"two BABE pre-runtime digests": {
			header:     newTestHeader(1, mustPreRuntimeDigest(plain), mustPreRuntimeDigest(plain)),
			errWrapped: ErrMultiplePreRuntimeDigests,
		},
		"invalid pre-digest index": {
			header:     newTestHeader(1, NewBABEPreRuntimeDigest([]byte{4, 0})),
			errWrapped: ErrInvalidBabePreDigestType,
		},
		"secondary plain": {
			header:    newTestHeader(1, mustPreRuntimeDigest(plain), NewBABESealDigest([]byte{1})),
			preDigest: plain,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			preDigest, err := testCase.header.BabePreDigest()
			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.preDigest, preDigest)
		})
	}
}

func TestHeader_DeepCopy(t *testing.T) {
	t.Parallel()

	header := newTestHeader(9, &OtherDigest{Data: []byte{1}}, NewBABESealDigest([]byte{2}))
	cp := header.DeepCopy()
	require.Equal(t, &header, cp)

	cp.Digest[0].(*OtherDigest).Data[0] = 0xff
	cp.ParentHash = common.Hash{0xff}
	assert.Equal(t, []byte{1}, header.Digest[0].(*OtherDigest).Data)
	assert.Equal(t, common.Hash{0x01}, header.ParentHash)
}

func TestHeader_HashIsNotCached(t *testing.T) {
	t.Parallel()

	header := newTestHeader(1)
	before := header.Hash()
	header.Number = 2
	assert.NotEqual(t, before, header.Hash())
}
