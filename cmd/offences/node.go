// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"

	ctoml "github.com/ChainSafe/gossamer-offences/dot/config/toml"
	"github.com/ChainSafe/gossamer-offences/dot/rpc/subscription"
	"github.com/ChainSafe/gossamer-offences/dot/staking"
	"github.com/ChainSafe/gossamer-offences/dot/state"
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/lib/babe"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// node wires the offence reporting pipeline over the state service.
type node struct {
	cfg         *ctoml.Config
	levels      logLevels
	state       *state.Service
	staking     *staking.InMemoryStaking
	registry    *prometheus.Registry
	broadcaster *subscription.OffenceBroadcaster
	aggregator  *offences.Aggregator
	reporter    *babe.EquivocationReporter
	detector    *babe.EquivocationDetector
}

// eventLogger logs every offence event applied.
type eventLogger struct{}

func (eventLogger) HandleOffence(event offences.OffenceEvent) {
	logger.Infof("offence applied: %s", event)
}

func newNode(cfg *ctoml.Config, levels logLevels, inMemory bool, sinks ...offences.EventSink) (*node, error) {
	stateSrvc := state.NewService(state.Config{
		Path:         cfg.Global.BasePath,
		LogLevel:     levels.state,
		HistoryDepth: cfg.History.Depth,
	})
	if inMemory {
		stateSrvc.UseMemDB()
	}

	err := stateSrvc.Start()
	if err != nil {
		return nil, fmt.Errorf("starting state service: %w", err)
	}

	n := &node{
		cfg:         cfg,
		levels:      levels,
		state:       stateSrvc,
		staking:     staking.NewInMemoryStaking(types.PerbillFromPercent(cfg.Staking.SlashRewardPercent)),
		registry:    prometheus.NewRegistry(),
		broadcaster: subscription.NewOffenceBroadcaster(),
	}

	err = n.loadSessions()
	if err != nil {
		_ = stateSrvc.Stop()
		return nil, err
	}

	n.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	offenceMetrics, err := offences.NewPrometheus(n.registry)
	if err != nil {
		_ = stateSrvc.Stop()
		return nil, err
	}

	events := append(offences.MultiSink{eventLogger{}, n.broadcaster}, sinks...)
	n.aggregator = offences.NewAggregator(stateSrvc.Offences, n.staking, events, offenceMetrics)
	epochConfig := babe.EpochConfig{
		GenesisSlot: cfg.Babe.GenesisSlot,
		EpochLength: cfg.Babe.EpochLength,
	}
	n.reporter = babe.NewEquivocationReporter(stateSrvc.Historical, n.aggregator, &epochConfig)
	n.detector = babe.NewEquivocationDetector(stateSrvc.Slot, stateSrvc.Historical, n.reporter, epochConfig)

	return n, nil
}

// loadSessions stores the configured sessions in the session history
// and bonds their validators and nominators.
func (n *node) loadSessions() error {
	for _, session := range n.cfg.Sessions {
		validators := make([]state.SessionValidator, len(session.Validators))
		for i, validatorCfg := range session.Validators {
			validator, err := sessionValidator(validatorCfg)
			if err != nil {
				return fmt.Errorf("session %d: %w", session.Index, err)
			}
			validators[i] = validator
			n.staking.Bond(validator.FullIdentification)
		}

		err := n.state.Historical.StoreSession(types.SessionIndex(session.Index), validators)
		if errors.Is(err, state.ErrSessionNotAppended) {
			logger.Debugf("session %d is already stored", session.Index)
			continue
		}
		if err != nil {
			return fmt.Errorf("storing session %d: %w", session.Index, err)
		}
	}
	return nil
}

func sessionValidator(cfg ctoml.ValidatorConfig) (validator state.SessionValidator, err error) {
	authority, err := decodeKey(cfg.Authority)
	if err != nil {
		return validator, fmt.Errorf("authority: %w", err)
	}
	stash, err := decodeKey(cfg.Stash)
	if err != nil {
		return validator, fmt.Errorf("stash: %w", err)
	}

	exposure := types.Exposure{
		Total: types.NewBalance(cfg.Own),
		Own:   types.NewBalance(cfg.Own),
	}
	for _, nominator := range cfg.Nominators {
		who, err := decodeKey(nominator.Who)
		if err != nil {
			return validator, fmt.Errorf("nominator: %w", err)
		}
		exposure.Total.Add(exposure.Total, types.NewBalance(nominator.Value))
		exposure.Others = append(exposure.Others, types.IndividualExposure{
			Who:   types.AccountID(who),
			Value: types.NewBalance(nominator.Value),
		})
	}

	return state.SessionValidator{
		Authority: types.AuthorityID(authority),
		FullIdentification: types.FullIdentification{
			Stash:    types.AccountID(stash),
			Exposure: exposure,
		},
	}, nil
}

func decodeKey(s string) (key [32]byte, err error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return key, err
	}
	if len(b) != len(key) {
		return key, fmt.Errorf("expected %d bytes, got %d", len(key), len(b))
	}
	copy(key[:], b)
	return key, nil
}

func (n *node) stop() {
	err := n.state.Stop()
	if err != nil {
		logger.Errorf("stopping state service: %s", err)
	}
}
