// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ChainSafe/gossamer-offences/lib/common"
)

// equivocationProofBlob is an equivocation proof produced by a Substrate
// node for authority 0 in slot 11, with block number 10 on both headers.
var equivocationProofBlob = common.MustHexToBytes("0x" +
	"def12e42f3e487e9b14095aa8d5cc16a33491f1b50dadcf8811d1480f3fa86270b000000000000009e0407f0439986be" +
	"fbc4e55f88a5eae4ff1202bb4c7d6c324321c46c2673b35628241b05693ae45ec641d4dad53daa1533f9b679655bcc19" +
	"1f57dbd02b77d3b980000000000000000000000000000000000000000000000000000000000000000008064241424534" +
	"02000000000b0000000000000005424142450101bcc0d95b8a4ed950081d8c37f2d2aab8496287d4ecd17334c84fafac" +
	"f2a1c72fec5d655f2b228d10f7dc213b1fc51b07c43e0ceeec7c88bf1d2416eef2ca398b000000000000000000000000" +
	"00000000000000000000000000000000000000002817af99530621417b3350df7ebae2e1f0691ca909360b8a2ec2c9fa" +
	"30f27d757400000000000000000000000000000000000000000000000000000000000000000806424142453402000000" +
	"000b00000000000000054241424501018e0c7c0ba7e367584e17e4216029cfb7e3bd7246fe1e80f3e953d62d4ab67877" +
	"40f3db773ff0cd7be752cdae8f460256b614108d915b74c33adfaf91ff077985")

// withByte returns a copy of the blob with the byte at index i set to b.
func withByte(blob []byte, i int, b byte) []byte {
	cp := append([]byte(nil), blob...)
	cp[i] = b
	return cp
}

func newTestHeader(number uint64, digest ...DigestItem) Header {
	return Header{
		ParentHash:     common.Hash{0x01},
		Number:         number,
		StateRoot:      common.Hash{0x02},
		ExtrinsicsRoot: common.Hash{0x03},
		Digest:         digest,
	}
}

func mustPreRuntimeDigest(digest BabePreDigest) *PreRuntimeDigest {
	preDigest, err := ToPreRuntimeDigest(digest)
	if err != nil {
		panic(err)
	}
	return preDigest
}
