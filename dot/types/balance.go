// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// maxBalanceBits is the bit width of a runtime balance (u128).
const maxBalanceBits = 128

var errBalanceOverflow = errors.New("balance overflows 128 bits")

// NewBalance returns a balance holding n.
func NewBalance(n uint64) *uint256.Int {
	return uint256.NewInt(n)
}

func encodeCompactBalance(encoder scale.Encoder, balance *uint256.Int) error {
	if balance == nil {
		return encodeCompact(encoder, 0)
	}
	if balance.BitLen() > maxBalanceBits {
		return fmt.Errorf("%w: %s", errBalanceOverflow, balance)
	}
	return encoder.EncodeUintCompact(*balance.ToBig())
}

func decodeCompactBalance(decoder scale.Decoder) (*uint256.Int, error) {
	n, err := decoder.DecodeUintCompact()
	if err != nil {
		return nil, err
	}
	return balanceFromBig(n)
}

func balanceFromBig(n *big.Int) (*uint256.Int, error) {
	if n.BitLen() > maxBalanceBits {
		return nil, fmt.Errorf("%w: %s", errBalanceOverflow, n)
	}
	balance, _ := uint256.FromBig(n)
	return balance, nil
}
