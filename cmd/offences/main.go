// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "offences"
	app.Usage = "BABE equivocation reporting and offence slashing"
	app.Version = "0.1.0"
	app.Flags = GlobalFlags
	app.Commands = []cli.Command{
		checkProofCommand,
		slashFractionCommand,
		reportCommand,
		serveCommand,
		exportConfigCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
