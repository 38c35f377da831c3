// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations of the offences tooling
type Config struct {
	Global   GlobalConfig    `toml:"global,omitempty"`
	Log      LogConfig       `toml:"log,omitempty"`
	History  HistoryConfig   `toml:"history,omitempty"`
	Babe     BabeConfig      `toml:"babe,omitempty"`
	Staking  StakingConfig   `toml:"staking,omitempty"`
	RPC      RPCConfig       `toml:"rpc,omitempty"`
	Metrics  MetricsConfig   `toml:"metrics,omitempty"`
	Pprof    PprofConfig     `toml:"pprof,omitempty"`
	Sessions []SessionConfig `toml:"sessions,omitempty" validate:"dive"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	BasePath string `toml:"basepath,omitempty" validate:"required"`
	LogLvl   string `toml:"log,omitempty" validate:"omitempty,loglevel"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	StateLvl    string `toml:"state,omitempty" validate:"omitempty,loglevel"`
	BabeLvl     string `toml:"babe,omitempty" validate:"omitempty,loglevel"`
	OffencesLvl string `toml:"offences,omitempty" validate:"omitempty,loglevel"`
	StakingLvl  string `toml:"staking,omitempty" validate:"omitempty,loglevel"`
	RPCLvl      string `toml:"rpc,omitempty" validate:"omitempty,loglevel"`
}

// HistoryConfig is the configuration of the session history
type HistoryConfig struct {
	Depth uint32 `toml:"depth,omitempty"`
}

// BabeConfig maps BABE slots to sessions
type BabeConfig struct {
	GenesisSlot uint64 `toml:"genesis-slot,omitempty"`
	EpochLength uint64 `toml:"epoch-length,omitempty" validate:"gt=0"`
}

// StakingConfig is the configuration of the staking ledger
type StakingConfig struct {
	SlashRewardPercent uint32 `toml:"slash-reward-percent,omitempty" validate:"lte=100"`
}

// RPCConfig is the configuration of the JSON-RPC server
type RPCConfig struct {
	Enabled  bool   `toml:"enabled,omitempty"`
	Address  string `toml:"address,omitempty" validate:"required"`
	External bool   `toml:"external,omitempty"`
	WS       bool   `toml:"ws,omitempty"`
}

// MetricsConfig is the configuration of the Prometheus metrics server
type MetricsConfig struct {
	Enabled bool   `toml:"enabled,omitempty"`
	Address string `toml:"address,omitempty" validate:"required"`
}

// PprofConfig is the configuration of the pprof http server
type PprofConfig struct {
	Enabled          bool   `toml:"enabled,omitempty"`
	Address          string `toml:"address,omitempty" validate:"required"`
	BlockProfileRate int    `toml:"block-profile-rate,omitempty" validate:"gte=0"`
	MutexProfileRate int    `toml:"mutex-profile-rate,omitempty" validate:"gte=0"`
}

// SessionConfig is the validator set of a session
type SessionConfig struct {
	Index      uint32            `toml:"index"`
	Validators []ValidatorConfig `toml:"validators" validate:"required,dive"`
}

// ValidatorConfig is a validator of a session with its exposure
type ValidatorConfig struct {
	Authority  string            `toml:"authority" validate:"required,hexkey"`
	Stash      string            `toml:"stash" validate:"required,hexkey"`
	Own        uint64            `toml:"own"`
	Nominators []NominatorConfig `toml:"nominators,omitempty" validate:"dive"`
}

// NominatorConfig is the stake of a nominator backing a validator
type NominatorConfig struct {
	Who   string `toml:"who" validate:"required,hexkey"`
	Value uint64 `toml:"value"`
}
