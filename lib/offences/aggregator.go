// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"fmt"
	"sync"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "offences"))

// Aggregator receives offence reports, filters out the offenders already
// reported and slashes the offenders of each kind and time slot.
type Aggregator struct {
	// serialises reports so the ledger is checked and written atomically
	mutex   sync.Mutex
	store   ReportStore
	staking Staking
	events  EventSink
	metrics Metrics
}

// NewAggregator returns a new Aggregator. The metrics may be nil.
func NewAggregator(store ReportStore, staking Staking, events EventSink, metrics Metrics) *Aggregator {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Aggregator{
		store:   store,
		staking: staking,
		events:  events,
		metrics: metrics,
	}
}

type reportIDPreimage struct {
	kind     types.Kind
	timeSlot uint64
	offender types.IdentificationTuple
}

func (r reportIDPreimage) Encode(encoder scale.Encoder) error {
	err := encoder.Write(r.kind[:])
	if err != nil {
		return err
	}
	err = encoder.Encode(r.timeSlot)
	if err != nil {
		return err
	}
	return r.offender.Encode(encoder)
}

// ReportID returns the identifier of the report of an offender for
// the kind and time slot.
func ReportID(kind types.Kind, timeSlot uint64, offender types.IdentificationTuple) (common.Hash, error) {
	enc, err := types.Encode(reportIDPreimage{
		kind:     kind,
		timeSlot: timeSlot,
		offender: offender,
	})
	if err != nil {
		return common.Hash{}, err
	}
	return common.Blake2bHash(enc)
}

// ReportOffence reports the offence on behalf of the reporters, which may be empty.
// The offenders not yet reported for the kind and time slot are recorded, and every
// offender reported for the kind and time slot is slashed by the fraction computed
// for their total count. Either all the slashes, rewards and ledger writes apply,
// or none of them does.
func (a *Aggregator) ReportOffence(reporters []types.AccountID, offence Offence) (err error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	kind := offence.Kind()
	defer func() {
		if err != nil {
			a.metrics.ReportRejected(kind, err)
		}
	}()

	offenders := offence.Offenders()
	if len(offenders) == 0 {
		return ErrNoOffenders
	}

	if offence.ValidatorSetCount() == 0 {
		return fmt.Errorf("%w: session %d", ErrUnknownValidatorSet, offence.SessionIndex())
	}

	timeSlot := offence.TimeSlot()
	newReports, err := a.newReports(kind, timeSlot, offenders, reporters)
	if err != nil {
		return err
	}

	if len(newReports) == 0 {
		return fmt.Errorf("%w: kind %s and time slot %d", ErrDuplicateReport, kind, timeSlot)
	}

	concurrent, err := a.concurrentOffenders(kind, timeSlot)
	if err != nil {
		return err
	}
	var reslashed []types.IdentificationTuple
	if len(concurrent) > 0 {
		reslashed = append(reslashed, concurrent...)
	}
	for _, report := range newReports {
		concurrent = append(concurrent, report.Details.Offender)
	}

	fraction := offence.SlashFraction(uint32(len(concurrent)))
	session := offence.SessionIndex()

	a.staking.StartTransaction()
	err = a.apply(concurrent, reporters, fraction, session)
	if err == nil {
		err = a.store.StoreReports(kind, timeSlot, newReports)
		if err != nil {
			err = fmt.Errorf("%w: %s", ErrReportStorage, err)
		}
	}
	if err != nil {
		a.staking.RollbackTransaction()
		logger.Debugf("offence of kind %s at time slot %d rolled back: %s", kind, timeSlot, err)
		return err
	}
	a.staking.CommitTransaction()

	event := OffenceEvent{
		Kind:         kind,
		TimeSlot:     timeSlot,
		SessionIndex: session,
		Offenders:    make([]types.IdentificationTuple, len(newReports)),
		Reslashed:    reslashed,
		Fraction:     fraction,
	}
	for i, report := range newReports {
		event.Offenders[i] = report.Details.Offender
	}
	a.events.HandleOffence(event)
	a.metrics.ReportApplied(kind, len(newReports), fraction)

	logger.Infof("offence reported: %s, concurrent offenders %d, reporters %d",
		event, len(concurrent), len(reporters))
	return nil
}

// IsKnownOffence returns true if every offender was already reported
// for the kind and time slot.
func (a *Aggregator) IsKnownOffence(kind types.Kind, timeSlot uint64,
	offenders []types.IdentificationTuple) (bool, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for _, offender := range offenders {
		id, err := ReportID(kind, timeSlot, offender)
		if err != nil {
			return false, fmt.Errorf("computing report id: %w", err)
		}

		known, err := a.store.HasReport(id)
		if err != nil {
			return false, fmt.Errorf("%w: %s", ErrReportStorage, err)
		}
		if !known {
			return false, nil
		}
	}
	return true, nil
}

// newReports returns a report for each offender not already reported,
// in the order of the offenders.
func (a *Aggregator) newReports(kind types.Kind, timeSlot uint64,
	offenders []types.IdentificationTuple, reporters []types.AccountID) ([]Report, error) {
	seen := make(map[common.Hash]struct{}, len(offenders))
	var reports []Report

	for _, offender := range offenders {
		id, err := ReportID(kind, timeSlot, offender)
		if err != nil {
			return nil, fmt.Errorf("computing report id: %w", err)
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		known, err := a.store.HasReport(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrReportStorage, err)
		}
		if known {
			logger.Debugf("offender %s already reported for kind %s and time slot %d",
				offender.Authority, kind, timeSlot)
			continue
		}

		reports = append(reports, Report{
			ID: id,
			Details: types.OffenceDetails{
				Offender:  offender,
				Reporters: reporters,
			},
		})
	}

	return reports, nil
}

// concurrentOffenders returns the offenders already reported for the kind and time slot.
func (a *Aggregator) concurrentOffenders(kind types.Kind, timeSlot uint64) ([]types.IdentificationTuple, error) {
	ids, err := a.store.GetConcurrentReportIDs(kind, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReportStorage, err)
	}

	offenders := make([]types.IdentificationTuple, 0, len(ids))
	for _, id := range ids {
		details, err := a.store.GetReport(id)
		if err != nil {
			return nil, fmt.Errorf("%w: report %s: %s", ErrReportStorage, id, err)
		}
		if details == nil {
			return nil, fmt.Errorf("%w: report %s is indexed but missing", ErrReportStorage, id)
		}
		offenders = append(offenders, details.Offender)
	}
	return offenders, nil
}

func (a *Aggregator) apply(offenders []types.IdentificationTuple, reporters []types.AccountID,
	fraction types.Perbill, session types.SessionIndex) error {
	for _, offender := range offenders {
		err := a.staking.ApplySlash(offender, fraction, session)
		if err != nil {
			return fmt.Errorf("%w: offender %s: %s", ErrSlashApplicationFailed, offender.Authority, err)
		}
	}

	if len(reporters) == 0 {
		return nil
	}

	err := a.staking.RewardReporters(reporters, fraction)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRewardFailed, err)
	}
	return nil
}

// SetLogLevel sets the level of the offences logger.
func SetLogLevel(level log.Level) {
	logger.Patch(log.SetLevel(level))
}
