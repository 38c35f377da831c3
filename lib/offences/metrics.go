// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package offences

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus is the Prometheus implementation of Metrics.
type Prometheus struct {
	reportsApplied  *prometheus.CounterVec
	reportsRejected *prometheus.CounterVec
	offenders       *prometheus.CounterVec
	fractions       *prometheus.HistogramVec
}

// NewPrometheus creates the offence metrics and registers them on the registerer.
// Collectors already registered are reused.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	reportsApplied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_offences",
		Name:      "reports_applied_total",
		Help:      "offence reports applied by kind",
	}, []string{"kind"})

	reportsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_offences",
		Name:      "reports_rejected_total",
		Help:      "offence reports rejected by kind and reason",
	}, []string{"kind", "reason"})

	offenders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gossamer_offences",
		Name:      "offenders_reported_total",
		Help:      "offenders newly reported by kind",
	}, []string{"kind"})

	fractions := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "gossamer_offences",
		Name:      "slash_fraction",
		Help:      "slash fraction applied by offence reports",
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 1},
	}, []string{"kind"})

	metrics = &Prometheus{
		reportsApplied:  reportsApplied,
		reportsRejected: reportsRejected,
		offenders:       offenders,
		fractions:       fractions,
	}

	collectorsToRegister := []struct {
		name      string
		collector prometheus.Collector
		set       func(existing prometheus.Collector)
	}{
		{"reports applied counter", reportsApplied, func(c prometheus.Collector) {
			metrics.reportsApplied = c.(*prometheus.CounterVec)
		}},
		{"reports rejected counter", reportsRejected, func(c prometheus.Collector) {
			metrics.reportsRejected = c.(*prometheus.CounterVec)
		}},
		{"offenders counter", offenders, func(c prometheus.Collector) {
			metrics.offenders = c.(*prometheus.CounterVec)
		}},
		{"slash fraction histogram", fractions, func(c prometheus.Collector) {
			metrics.fractions = c.(*prometheus.HistogramVec)
		}},
	}

	for _, toRegister := range collectorsToRegister {
		err = registerer.Register(toRegister.collector)
		alreadyRegistered := prometheus.AlreadyRegisteredError{}
		if errors.As(err, &alreadyRegistered) {
			toRegister.set(alreadyRegistered.ExistingCollector)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot register %s: %w", toRegister.name, err)
		}
	}

	return metrics, nil
}

// ReportApplied records an applied report.
func (p *Prometheus) ReportApplied(kind types.Kind, offenders int, fraction types.Perbill) {
	p.reportsApplied.WithLabelValues(kind.String()).Inc()
	p.offenders.WithLabelValues(kind.String()).Add(float64(offenders))
	p.fractions.WithLabelValues(kind.String()).Observe(float64(fraction) / types.PerbillAccuracy)
}

// ReportRejected records a rejected report under the reason matching err.
func (p *Prometheus) ReportRejected(kind types.Kind, err error) {
	p.reportsRejected.WithLabelValues(kind.String(), rejectionReason(err)).Inc()
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateReport):
		return "duplicate"
	case errors.Is(err, ErrNoOffenders):
		return "no_offenders"
	case errors.Is(err, ErrUnknownValidatorSet):
		return "unknown_validator_set"
	case errors.Is(err, ErrSlashApplicationFailed):
		return "slash_failed"
	case errors.Is(err, ErrRewardFailed):
		return "reward_failed"
	case errors.Is(err, ErrReportStorage):
		return "storage"
	default:
		return "other"
	}
}

type noopMetrics struct{}

func (noopMetrics) ReportApplied(types.Kind, int, types.Perbill) {}
func (noopMetrics) ReportRejected(types.Kind, error)             {}
