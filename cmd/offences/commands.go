// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	ctoml "github.com/ChainSafe/gossamer-offences/dot/config/toml"
	"github.com/ChainSafe/gossamer-offences/dot/rpc"
	"github.com/ChainSafe/gossamer-offences/dot/types"
	"github.com/ChainSafe/gossamer-offences/internal/metrics"
	"github.com/ChainSafe/gossamer-offences/internal/pprof"
	"github.com/ChainSafe/gossamer-offences/lib/babe"
	"github.com/ChainSafe/gossamer-offences/lib/imonline"
	"github.com/ChainSafe/gossamer-offences/lib/offences"
	"github.com/ChainSafe/gossamer-offences/lib/services"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli"
)

var (
	errNoProof           = errors.New("no equivocation proof given")
	errNoValidators      = errors.New("validator set size must be greater than zero")
	errUnknownKind       = errors.New("unknown offence kind")
	errInvalidReporter   = errors.New("invalid reporter account")
	errSessionOutOfRange = errors.New("session is out of range")
)

var checkProofCommand = cli.Command{
	Name:      "check-proof",
	Usage:     "Decode and check a BABE equivocation proof",
	ArgsUsage: "[proof]",
	Flags:     []cli.Flag{ProofFlag},
	Action:    checkProofAction,
}

var slashFractionCommand = cli.Command{
	Name:   "slash-fraction",
	Usage:  "Compute the slash fraction of concurrent offenders",
	Flags:  []cli.Flag{KindFlag, OffendersFlag, ValidatorsFlag},
	Action: slashFractionAction,
}

var reportCommand = cli.Command{
	Name:      "report",
	Usage:     "Report a BABE equivocation and apply its slashes",
	ArgsUsage: "[proof]",
	Flags:     []cli.Flag{ProofFlag, SessionFlag, ReporterFlag, InMemoryFlag},
	Action:    reportAction,
}

var serveCommand = cli.Command{
	Name:   "serve",
	Usage:  "Serve equivocation reports over JSON-RPC until interrupted",
	Flags:  []cli.Flag{InMemoryFlag},
	Action: serveAction,
}

var exportConfigCommand = cli.Command{
	Name:   "export-config",
	Usage:  "Export the effective configuration to a TOML file",
	Flags:  []cli.Flag{OutputFlag},
	Action: exportConfigAction,
}

func proofFromContext(ctx *cli.Context) ([]byte, error) {
	input := ctx.String(ProofFlag.Name)
	if input == "" {
		input = ctx.Args().First()
	}
	if input == "" {
		return nil, errNoProof
	}

	proof, err := hexutil.Decode(input)
	if err != nil {
		return nil, fmt.Errorf("decoding proof hex: %w", err)
	}
	return proof, nil
}

func checkProofAction(ctx *cli.Context) error {
	encoded, err := proofFromContext(ctx)
	if err != nil {
		return err
	}

	proof, err := types.DecodeBabeEquivocationProof(encoded)
	if err != nil {
		return fmt.Errorf("%w: %s", babe.ErrInvalidEquivocationProof, err)
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "offender: %s\n", proof.Offender)
	fmt.Fprintf(w, "slot: %d\n", proof.Slot)
	fmt.Fprintf(w, "first header: #%d %s\n", proof.FirstHeader.Number, proof.FirstHeader.Hash())
	fmt.Fprintf(w, "second header: #%d %s\n", proof.SecondHeader.Number, proof.SecondHeader.Hash())

	if !babe.CheckEquivocationProof(proof) {
		fmt.Fprintln(w, "valid: false")
		return babe.ErrInvalidEquivocationProof
	}
	fmt.Fprintln(w, "valid: true")
	return nil
}

func slashFractionAction(ctx *cli.Context) error {
	offenders := uint32(ctx.Uint(OffendersFlag.Name))
	validators := uint32(ctx.Uint(ValidatorsFlag.Name))
	if validators == 0 {
		return errNoValidators
	}

	var fraction types.Perbill
	switch kind := ctx.String(KindFlag.Name); kind {
	case "equivocation":
		fraction = offences.EquivocationSlashFraction(offenders, validators)
	case "unresponsiveness":
		fraction = imonline.UnresponsivenessSlashFraction(offenders, validators)
	default:
		return fmt.Errorf("%w: %s", errUnknownKind, kind)
	}

	fmt.Fprintf(ctx.App.Writer, "%s (%d parts per billion)\n", fraction, fraction.Parts())
	return nil
}

func reportAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	levels, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	encoded, err := proofFromContext(ctx)
	if err != nil {
		return err
	}

	var reporter *types.AccountID
	if hex := ctx.String(ReporterFlag.Name); hex != "" {
		account, err := decodeKey(hex)
		if err != nil {
			return fmt.Errorf("%w: %s", errInvalidReporter, err)
		}
		reporter = (*types.AccountID)(&account)
	}

	session, err := reportedSession(ctx, cfg, encoded)
	if err != nil {
		return err
	}

	events := offences.NewEventChannel(1)
	n, err := newNode(cfg, levels, ctx.Bool(InMemoryFlag.Name), events)
	if err != nil {
		return err
	}
	defer n.stop()

	err = n.reporter.ReportEquivocation(reporter, encoded, session)
	if err != nil {
		return err
	}

	event := <-events.Events()
	w := ctx.App.Writer
	fmt.Fprintf(w, "reported %s offence in time slot %d of session %d\n",
		event.Kind, event.TimeSlot, event.SessionIndex)
	fmt.Fprintf(w, "slash fraction: %s\n", event.Fraction)
	for _, offender := range event.Offenders {
		stash := offender.FullIdentification.Stash
		fmt.Fprintf(w, "offender %s stash %s balance %s\n",
			offender.Authority, stash, n.staking.Balance(stash).ToBig())
	}
	for _, offender := range event.Reslashed {
		stash := offender.FullIdentification.Stash
		fmt.Fprintf(w, "reslashed %s stash %s balance %s\n",
			offender.Authority, stash, n.staking.Balance(stash).ToBig())
	}
	if reporter != nil {
		fmt.Fprintf(w, "reporter %s balance %s\n", reporter, n.staking.Balance(*reporter).ToBig())
	}
	return nil
}

// reportedSession returns the session flag, or the session
// of the slot of the proof when the flag is not set.
func reportedSession(ctx *cli.Context, cfg *ctoml.Config, encoded []byte) (types.SessionIndex, error) {
	if session := ctx.Int64(SessionFlag.Name); session >= 0 {
		if session > int64(^uint32(0)) {
			return 0, fmt.Errorf("%w: %d", errSessionOutOfRange, session)
		}
		return types.SessionIndex(session), nil
	}

	proof, err := types.DecodeBabeEquivocationProof(encoded)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", babe.ErrInvalidEquivocationProof, err)
	}

	epochConfig := babe.EpochConfig{
		GenesisSlot: cfg.Babe.GenesisSlot,
		EpochLength: cfg.Babe.EpochLength,
	}
	return epochConfig.SessionForSlot(proof.Slot)
}

func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	levels, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return serve(cfg, levels, ctx.Bool(InMemoryFlag.Name), stop)
}

// serve runs the enabled services until stop receives a value.
func serve(cfg *ctoml.Config, levels logLevels, inMemory bool, stop <-chan os.Signal) error {
	n, err := newNode(cfg, levels, inMemory)
	if err != nil {
		return err
	}

	registry := services.NewServiceRegistry(logger)
	registry.RegisterService(n.state)

	if cfg.RPC.Enabled {
		rpcConfig := &rpc.HTTPServerConfig{
			LogLvl:          levels.rpc,
			Address:         cfg.RPC.Address,
			EquivocationAPI: n.reporter,
			HeaderAPI:       n.detector,
			StakingAPI:      n.staking,
			External:        cfg.RPC.External,
		}
		if cfg.RPC.WS {
			rpcConfig.Broadcaster = n.broadcaster
		}
		rpcServer, err := rpc.NewHTTPServer(rpcConfig)
		if err != nil {
			n.stop()
			return err
		}
		registry.RegisterService(rpcServer)
	}

	if cfg.Metrics.Enabled {
		registry.RegisterService(metrics.NewServer(cfg.Metrics.Address, n.registry))
	}

	if cfg.Pprof.Enabled {
		registry.RegisterService(pprof.NewService(pprof.Settings{
			ListeningAddress: cfg.Pprof.Address,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}, logger))
	}

	err = registry.StartAll()
	if err != nil {
		return err
	}

	sig := <-stop
	logger.Infof("received %s, shutting down", sig)
	registry.StopAll()
	return nil
}

func exportConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	output := ctx.String(OutputFlag.Name)
	err = cfg.Export(output)
	if err != nil {
		return fmt.Errorf("exporting configuration: %w", err)
	}

	fmt.Fprintf(ctx.App.Writer, "configuration exported to %s\n", output)
	return nil
}
