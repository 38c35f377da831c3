// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// KindLength is the length of an offence kind identifier.
const KindLength = 16

// Kind identifies a type of offence.
type Kind [KindLength]byte

// NewKind returns the kind for the given identifier, truncated or zero padded to 16 bytes.
func NewKind(id string) (k Kind) {
	copy(k[:], id)
	return k
}

// String returns the kind identifier without its zero padding
func (k Kind) String() string {
	return strings.TrimRight(string(k[:]), "\x00")
}

// SessionIndex is the index of a session.
type SessionIndex uint32

// AccountID is the stash account identity of a validator or a nominator.
type AccountID [32]byte

// String returns the 0x prefixed hex representation of the account id
func (a AccountID) String() string {
	return hexutil.Encode(a[:])
}

// IndividualExposure is the stake backing a validator by a single nominator.
type IndividualExposure struct {
	Who   AccountID
	Value *uint256.Int
}

// Exposure is the stake backing a validator in a session.
type Exposure struct {
	// Total is the own stake plus the nominator stakes.
	Total  *uint256.Int
	Own    *uint256.Int
	Others []IndividualExposure
}

// Encode SCALE encodes the exposure with compact balances
func (e Exposure) Encode(encoder scale.Encoder) error {
	err := encodeCompactBalance(encoder, e.Total)
	if err != nil {
		return fmt.Errorf("encoding total: %w", err)
	}

	err = encodeCompactBalance(encoder, e.Own)
	if err != nil {
		return fmt.Errorf("encoding own: %w", err)
	}

	err = encodeCompact(encoder, uint64(len(e.Others)))
	if err != nil {
		return err
	}

	for _, other := range e.Others {
		err = encoder.Write(other.Who[:])
		if err != nil {
			return err
		}
		err = encodeCompactBalance(encoder, other.Value)
		if err != nil {
			return fmt.Errorf("encoding exposure of %s: %w", other.Who, err)
		}
	}
	return nil
}

// Decode decodes a SCALE encoded exposure into e
func (e *Exposure) Decode(decoder scale.Decoder) (err error) {
	e.Total, err = decodeCompactBalance(decoder)
	if err != nil {
		return fmt.Errorf("decoding total: %w", err)
	}

	e.Own, err = decodeCompactBalance(decoder)
	if err != nil {
		return fmt.Errorf("decoding own: %w", err)
	}

	count, err := decodeCompact(decoder)
	if err != nil {
		return fmt.Errorf("decoding nominator count: %w", err)
	}

	e.Others = nil
	for i := uint64(0); i < count; i++ {
		var other IndividualExposure
		err = decoder.Read(other.Who[:])
		if err != nil {
			return fmt.Errorf("reading nominator %d: %w", i, err)
		}
		other.Value, err = decodeCompactBalance(decoder)
		if err != nil {
			return fmt.Errorf("decoding exposure of nominator %d: %w", i, err)
		}
		e.Others = append(e.Others, other)
	}
	return nil
}

// FullIdentification is the staking identity of a validator as of a session.
type FullIdentification struct {
	Stash    AccountID
	Exposure Exposure
}

// Encode SCALE encodes the identification
func (f FullIdentification) Encode(encoder scale.Encoder) error {
	err := encoder.Write(f.Stash[:])
	if err != nil {
		return err
	}
	return f.Exposure.Encode(encoder)
}

// Decode decodes a SCALE encoded identification into f
func (f *FullIdentification) Decode(decoder scale.Decoder) error {
	err := decoder.Read(f.Stash[:])
	if err != nil {
		return fmt.Errorf("reading stash: %w", err)
	}
	return f.Exposure.Decode(decoder)
}

// IdentificationTuple maps the authority key of an offender to its
// full identification in the session of the offence.
type IdentificationTuple struct {
	Authority          AuthorityID
	FullIdentification FullIdentification
}

// Encode SCALE encodes the tuple
func (t IdentificationTuple) Encode(encoder scale.Encoder) error {
	err := encoder.Write(t.Authority[:])
	if err != nil {
		return err
	}
	return t.FullIdentification.Encode(encoder)
}

// Decode decodes a SCALE encoded tuple into t
func (t *IdentificationTuple) Decode(decoder scale.Decoder) error {
	err := decoder.Read(t.Authority[:])
	if err != nil {
		return fmt.Errorf("reading authority: %w", err)
	}
	return t.FullIdentification.Decode(decoder)
}

// OffenceDetails is an entry of the reported offences ledger.
type OffenceDetails struct {
	Offender  IdentificationTuple
	Reporters []AccountID
}

// Encode SCALE encodes the details
func (d OffenceDetails) Encode(encoder scale.Encoder) error {
	err := d.Offender.Encode(encoder)
	if err != nil {
		return err
	}

	err = encodeCompact(encoder, uint64(len(d.Reporters)))
	if err != nil {
		return err
	}

	for _, reporter := range d.Reporters {
		err = encoder.Write(reporter[:])
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode decodes SCALE encoded details into d
func (d *OffenceDetails) Decode(decoder scale.Decoder) error {
	err := d.Offender.Decode(decoder)
	if err != nil {
		return fmt.Errorf("decoding offender: %w", err)
	}

	count, err := decodeCompact(decoder)
	if err != nil {
		return fmt.Errorf("decoding reporter count: %w", err)
	}

	d.Reporters = nil
	for i := uint64(0); i < count; i++ {
		var reporter AccountID
		err = decoder.Read(reporter[:])
		if err != nil {
			return fmt.Errorf("reading reporter %d: %w", i, err)
		}
		d.Reporters = append(d.Reporters, reporter)
	}
	return nil
}
