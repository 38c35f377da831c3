// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

// keyLength is the byte length of authority and account keys
const keyLength = 32

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Global: GlobalConfig{
			BasePath: "~/.gossamer-offences",
			LogLvl:   log.Info.String(),
		},
		History: HistoryConfig{
			Depth: 168,
		},
		Babe: BabeConfig{
			EpochLength: 600,
		},
		Staking: StakingConfig{
			SlashRewardPercent: 10,
		},
		RPC: RPCConfig{
			Enabled: true,
			Address: "localhost:8545",
			WS:      true,
		},
		Metrics: MetricsConfig{
			Address: "localhost:9876",
		},
		Pprof: PprofConfig{
			Address: "localhost:6060",
		},
	}
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("hexkey", func(fl validator.FieldLevel) bool {
		key, err := hexutil.Decode(fl.Field().String())
		return err == nil && len(key) == keyLength
	})
	return validate
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoadFile decodes the toml file at path over the configuration and validates the result
func (c *Config) LoadFile(path string) error {
	fp, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	/* #nosec */
	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return err
	}
	defer f.Close()

	err = toml.NewDecoder(f).Decode(c)
	if err != nil {
		return fmt.Errorf("decoding toml file %s: %w", fp, err)
	}

	return c.Validate()
}

// Export writes the configuration to a toml file
func (c *Config) Export(path string) error {
	raw, err := toml.Marshal(*c)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return os.WriteFile(path, raw, 0600)
}
