// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag data directory of the offences ledger
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory of the offences ledger",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// InMemoryFlag keeps the ledger in memory
	InMemoryFlag = cli.BoolFlag{
		Name:  "in-memory",
		Usage: "Keep the offences ledger in memory instead of the data directory",
	}
)

// Equivocation flags
var (
	// ProofFlag hex encoded equivocation proof
	ProofFlag = cli.StringFlag{
		Name:  "proof",
		Usage: "0x prefixed hex SCALE encoded BABE equivocation proof",
	}
	// SessionFlag session the equivocation is reported for
	SessionFlag = cli.Int64Flag{
		Name:  "session",
		Usage: "Session of the equivocation. Defaults to the session of the slot of the proof",
		Value: -1,
	}
	// ReporterFlag account of the reporter
	ReporterFlag = cli.StringFlag{
		Name:  "reporter",
		Usage: "0x prefixed hex account id of the reporter. The report is unsigned without it",
	}
)

// Slash fraction flags
var (
	// KindFlag offence kind
	KindFlag = cli.StringFlag{
		Name:  "kind",
		Usage: "Offence kind: equivocation or unresponsiveness",
		Value: "equivocation",
	}
	// OffendersFlag number of concurrent offenders
	OffendersFlag = cli.UintFlag{
		Name:  "offenders",
		Usage: "Number of concurrent offenders",
		Value: 1,
	}
	// ValidatorsFlag validator set size
	ValidatorsFlag = cli.UintFlag{
		Name:  "validators",
		Usage: "Size of the validator set",
	}
)

// Export flags
var (
	// OutputFlag destination file
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "Destination of the exported TOML configuration",
		Value: "config.toml",
	}
)

// GlobalFlags are the flags of every command
var GlobalFlags = []cli.Flag{
	ConfigFlag,
	BasePathFlag,
	LogFlag,
}
