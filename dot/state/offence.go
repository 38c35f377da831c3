// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/ChainSafe/gossamer/pkg/scale"
)

const offenceTablePrefix = "offences"

var (
	reportKeyPrefix     = []byte("report")
	concurrentKeyPrefix = []byte("concurrent")
)

func reportKey(id common.Hash) []byte {
	return bytes.Join([][]byte{reportKeyPrefix, id[:]}, nil)
}

func concurrentReportsKey(kind types.Kind, timeSlot uint64) []byte {
	timeSlotEncoded := make([]byte, 8)
	binary.LittleEndian.PutUint64(timeSlotEncoded, timeSlot)
	suffix := common.Twox64Concat(bytes.Join([][]byte{kind[:], timeSlotEncoded}, nil))
	return bytes.Join([][]byte{concurrentKeyPrefix, suffix}, nil)
}

// OffenceState is the ledger of reported offences and the index of
// concurrent reports per kind and time slot.
type OffenceState struct {
	db chaindb.Database
}

var _ offences.ReportStore = (*OffenceState)(nil)

// NewOffenceState returns an OffenceState stored in its own table of the database.
func NewOffenceState(db chaindb.Database) *OffenceState {
	return &OffenceState{
		db: chaindb.NewTable(db, offenceTablePrefix),
	}
}

// HasReport returns true if a report with the id is in the ledger.
func (s *OffenceState) HasReport(id common.Hash) (bool, error) {
	return s.db.Has(reportKey(id))
}

// GetReport returns the ledger entry of the report id, or nil if there is none.
func (s *OffenceState) GetReport(id common.Hash) (*types.OffenceDetails, error) {
	encoded, err := s.db.Get(reportKey(id))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting report %s: %w", id, err)
	}

	details := new(types.OffenceDetails)
	err = types.DecodeExact(encoded, details)
	if err != nil {
		return nil, fmt.Errorf("decoding report %s: %w", id, err)
	}
	return details, nil
}

// GetConcurrentReportIDs returns the ids of the reports of the kind and time slot,
// in the order they were stored.
func (s *OffenceState) GetConcurrentReportIDs(kind types.Kind, timeSlot uint64) ([]common.Hash, error) {
	encoded, err := s.db.Get(concurrentReportsKey(kind, timeSlot))
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting concurrent reports of %s at time slot %d: %w", kind, timeSlot, err)
	}

	var ids []common.Hash
	err = scale.Unmarshal(encoded, &ids)
	if err != nil {
		return nil, fmt.Errorf("decoding concurrent reports of %s at time slot %d: %w", kind, timeSlot, err)
	}
	return ids, nil
}

// StoreReports writes the reports and appends their ids to the concurrent reports
// index of the kind and time slot in a single batch.
func (s *OffenceState) StoreReports(kind types.Kind, timeSlot uint64, reports []offences.Report) error {
	if len(reports) == 0 {
		return nil
	}

	ids, err := s.GetConcurrentReportIDs(kind, timeSlot)
	if err != nil {
		return err
	}

	batch := s.db.NewBatch()
	for _, report := range reports {
		encoded, err := types.Encode(report.Details)
		if err != nil {
			return fmt.Errorf("encoding report %s: %w", report.ID, err)
		}

		err = batch.Put(reportKey(report.ID), encoded)
		if err != nil {
			return fmt.Errorf("while batch putting report %s: %w", report.ID, err)
		}
		ids = append(ids, report.ID)
	}

	encodedIDs, err := scale.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding concurrent report ids: %w", err)
	}
	err = batch.Put(concurrentReportsKey(kind, timeSlot), encodedIDs)
	if err != nil {
		return fmt.Errorf("while batch putting concurrent report ids: %w", err)
	}

	return batch.Flush()
}
