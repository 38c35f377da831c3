// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/gossamer-offences/internal/log"
	"github.com/ChainSafe/gossamer-offences/lib/utils"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

// Service holds the offence ledger, the session history and the slot headers.
type Service struct {
	dbPath       string
	isMemDB      bool
	historyDepth uint32
	db           chaindb.Database

	Offences   *OffenceState
	Historical *HistoricalState
	Slot       *SlotState
}

// Config is the configuration used by the state service.
type Config struct {
	Path         string
	LogLevel     log.Level
	HistoryDepth uint32
}

// NewService create a new instance of Service
func NewService(config Config) *Service {
	logger.Patch(log.SetLevel(config.LogLevel))

	return &Service{
		dbPath:       config.Path,
		historyDepth: config.HistoryDepth,
	}
}

// UseMemDB tells the service to use an in-memory key-value store instead of a persistent database.
// This should be called after NewService, and before Start.
func (s *Service) UseMemDB() {
	s.isMemDB = true
}

// DB returns the Service's database
func (s *Service) DB() chaindb.Database {
	return s.db
}

// Start opens the database and creates the states stored in it.
func (s *Service) Start() error {
	if s.db != nil {
		return nil
	}

	basepath, err := filepath.Abs(utils.ExpandDir(s.dbPath))
	if err != nil {
		return err
	}

	db, err := utils.SetupDatabase(basepath, s.isMemDB)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	s.db = db
	s.Offences = NewOffenceState(db)
	s.Historical = NewHistoricalState(db, s.historyDepth)
	s.Slot = NewSlotState(db)

	logger.Debugf("created state service at %s (in memory: %t)", basepath, s.isMemDB)
	return nil
}

// Stop flushes and closes the database.
func (s *Service) Stop() error {
	if s.db == nil {
		return nil
	}

	if err := s.db.Flush(); err != nil {
		return err
	}

	err := s.db.Close()
	s.db = nil
	return err
}
