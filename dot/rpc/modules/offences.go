// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"fmt"
	"net/http"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/imonline"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Offence kinds accepted by SlashFraction
const (
	EquivocationKind     = "equivocation"
	UnresponsivenessKind = "unresponsiveness"
)

// OffencesModule is the RPC module reporting equivocations and
// inspecting the slashes applied.
type OffencesModule struct {
	equivocationAPI EquivocationAPI
	headerAPI       HeaderAPI
	stakingAPI      StakingAPI
}

// NewOffencesModule creates a new offences rpc module.
func NewOffencesModule(equivocationAPI EquivocationAPI, headerAPI HeaderAPI,
	stakingAPI StakingAPI) *OffencesModule {
	return &OffencesModule{
		equivocationAPI: equivocationAPI,
		headerAPI:       headerAPI,
		stakingAPI:      stakingAPI,
	}
}

// ReportEquivocationRequest holds a hex encoded equivocation proof, the session
// it is reported for and the optional account of the reporter.
type ReportEquivocationRequest struct {
	Proof    string `json:"proof" validate:"required"`
	Session  uint32 `json:"session"`
	Reporter string `json:"reporter,omitempty"`
}

// ReportEquivocationResponse is true once the equivocation is reported
type ReportEquivocationResponse bool

// ReportEquivocation verifies the proof and reports the equivocation.
// Without a reporter the report is unsigned and pays no reward.
func (om *OffencesModule) ReportEquivocation(_ *http.Request, req *ReportEquivocationRequest,
	res *ReportEquivocationResponse) error {
	proof, err := decodeProof(req.Proof)
	if err != nil {
		return err
	}

	var reporter *types.AccountID
	if req.Reporter != "" {
		account, err := parseAccountID(req.Reporter)
		if err != nil {
			return err
		}
		reporter = &account
	}

	err = om.equivocationAPI.ReportEquivocation(reporter, proof, types.SessionIndex(req.Session))
	if err != nil {
		return err
	}

	*res = true
	return nil
}

// EquivocationRequest holds a hex encoded equivocation proof and its session
type EquivocationRequest struct {
	Proof   string `json:"proof" validate:"required"`
	Session uint32 `json:"session"`
}

// IsKnownEquivocation returns true if the equivocation was already reported.
func (om *OffencesModule) IsKnownEquivocation(_ *http.Request, req *EquivocationRequest, res *bool) error {
	proof, err := decodeProof(req.Proof)
	if err != nil {
		return err
	}

	known, err := om.equivocationAPI.IsKnownEquivocation(proof, types.SessionIndex(req.Session))
	if err != nil {
		return err
	}

	*res = known
	return nil
}

// ImportHeaderRequest holds a hex encoded header and the current slot
type ImportHeaderRequest struct {
	Header  string `json:"header" validate:"required"`
	SlotNow uint64 `json:"slotNow"`
}

// ImportHeaderResponse holds the hex encoded equivocation proof the header
// completes, if any
type ImportHeaderResponse struct {
	Equivocation bool   `json:"equivocation"`
	Proof        string `json:"proof,omitempty"`
}

// ImportHeader checks the header for an equivocation of the authority that sealed it.
// A detected equivocation is reported unsigned and its proof returned.
func (om *OffencesModule) ImportHeader(_ *http.Request, req *ImportHeaderRequest, res *ImportHeaderResponse) error {
	encoded, err := hexutil.Decode(req.Header)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidHeader, err)
	}

	header := new(types.Header)
	err = types.DecodeExact(encoded, header)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidHeader, err)
	}

	proof, err := om.headerAPI.ImportHeader(req.SlotNow, header)
	if err != nil {
		return err
	}

	*res = ImportHeaderResponse{}
	if proof == nil {
		return nil
	}

	encodedProof, err := types.EncodeBabeEquivocationProof(proof)
	if err != nil {
		return err
	}
	*res = ImportHeaderResponse{
		Equivocation: true,
		Proof:        hexutil.Encode(encodedProof),
	}
	return nil
}

// SlashFractionRequest holds the number of offenders of a kind and the validator set size
type SlashFractionRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=equivocation unresponsiveness"`
	Offenders  uint32 `json:"offenders"`
	Validators uint32 `json:"validators" validate:"gt=0"`
}

// SlashFractionResponse is a slash fraction in parts per billion and as a decimal
type SlashFractionResponse struct {
	Parts    uint32 `json:"parts"`
	Fraction string `json:"fraction"`
}

// SlashFraction computes the slash fraction of the offence kind.
func (*OffencesModule) SlashFraction(_ *http.Request, req *SlashFractionRequest, res *SlashFractionResponse) error {
	if req.Validators == 0 {
		return ErrNoValidators
	}

	var fraction types.Perbill
	switch req.Kind {
	case EquivocationKind:
		fraction = offences.EquivocationSlashFraction(req.Offenders, req.Validators)
	case UnresponsivenessKind:
		fraction = imonline.UnresponsivenessSlashFraction(req.Offenders, req.Validators)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOffenceKind, req.Kind)
	}

	*res = SlashFractionResponse{
		Parts:    fraction.Parts(),
		Fraction: fraction.String(),
	}
	return nil
}

// StashRequest holds a stash account and a session
type StashRequest struct {
	Account string `json:"account" validate:"required"`
	Session uint32 `json:"session"`
}

// StashResponse holds the balances of a stash and the fraction it was slashed by in the session
type StashResponse struct {
	Balance      string `json:"balance"`
	TotalSlashed string `json:"totalSlashed"`
	Slashed      string `json:"slashed"`
}

// Stash returns the balance of the account and the slashes applied to it.
func (om *OffencesModule) Stash(_ *http.Request, req *StashRequest, res *StashResponse) error {
	account, err := parseAccountID(req.Account)
	if err != nil {
		return err
	}

	*res = StashResponse{
		Balance:      om.stakingAPI.Balance(account).ToBig().String(),
		TotalSlashed: om.stakingAPI.TotalSlashed(account).ToBig().String(),
		Slashed:      om.stakingAPI.Slashed(account, types.SessionIndex(req.Session)).String(),
	}
	return nil
}

func decodeProof(s string) ([]byte, error) {
	proof, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProofHex, err)
	}
	return proof, nil
}

func parseAccountID(s string) (account types.AccountID, err error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return account, fmt.Errorf("%w: %s", ErrInvalidAccountID, err)
	}
	if len(b) != len(account) {
		return account, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAccountID, len(account), len(b))
	}
	copy(account[:], b)
	return account, nil
}
