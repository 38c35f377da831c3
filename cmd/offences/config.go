// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	ctoml "github.com/ChainSafe/gossamer-offences/dot/config/toml"
	"github.com/ChainSafe/gossamer-offences/dot/rpc/subscription"
	"github.com/ChainSafe/gossamer-offences/dot/staking"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/internal/metrics"
	"github.com/ChainSafe/gossamer-offences/lib/babe"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/urfave/cli"
)

// loadConfig returns the default configuration overridden by the
// configuration file and the global flags.
func loadConfig(ctx *cli.Context) (*ctoml.Config, error) {
	cfg := ctoml.Default()

	if path := ctx.GlobalString(ConfigFlag.Name); path != "" {
		err := cfg.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
	}

	if basepath := ctx.GlobalString(BasePathFlag.Name); basepath != "" {
		cfg.Global.BasePath = basepath
	}

	if level := ctx.GlobalString(LogFlag.Name); level != "" {
		cfg.Global.LogLvl = level
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// logLevels are the log levels of the packages, defaulting to the global level.
type logLevels struct {
	global, state, babe, offences, staking, rpc log.Level
}

func parseLogLevels(cfg *ctoml.Config) (levels logLevels, err error) {
	levels.global = log.Info
	if cfg.Global.LogLvl != "" {
		levels.global, err = log.ParseLevel(cfg.Global.LogLvl)
		if err != nil {
			return levels, err
		}
	}

	for _, pkg := range []struct {
		setting string
		level   *log.Level
	}{
		{cfg.Log.StateLvl, &levels.state},
		{cfg.Log.BabeLvl, &levels.babe},
		{cfg.Log.OffencesLvl, &levels.offences},
		{cfg.Log.StakingLvl, &levels.staking},
		{cfg.Log.RPCLvl, &levels.rpc},
	} {
		if pkg.setting == "" {
			*pkg.level = levels.global
			continue
		}
		*pkg.level, err = log.ParseLevel(pkg.setting)
		if err != nil {
			return levels, err
		}
	}

	return levels, nil
}

// setupLogger sets up the global logger and the package loggers.
func setupLogger(cfg *ctoml.Config) (levels logLevels, err error) {
	levels, err = parseLogLevels(cfg)
	if err != nil {
		return levels, err
	}

	log.Patch(
		log.SetWriter(os.Stdout),
		log.SetCallerFile(true),
		log.SetCallerLine(true),
		log.SetLevel(levels.global),
	)

	babe.SetLogLevel(levels.babe)
	offences.SetLogLevel(levels.offences)
	staking.SetLogLevel(levels.staking)
	subscription.SetLogLevel(levels.rpc)
	metrics.SetLogLevel(levels.global)

	return levels, nil
}
