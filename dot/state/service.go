// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/utils"
	"github.com/ChainSafe/chaindb"
)

const bridgePrefix = "bridge"

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

// Service is the struct that holds the database and the bridge state
type Service struct {
	dbPath    string
	logLvl    log.Level
	db        chaindb.Database
	isMemDB   bool // set to true if using an in-memory database; only used for testing.
	Base      *BaseState
	Bridge    *BridgeState
	bridgeCfg BridgeConfig

	// PrunerCfg is the headers pruning configuration.
	PrunerCfg pruner.Config
}

// Config is the default configuration used by state service.
type Config struct {
	Path      string
	LogLevel  log.Level
	PrunerCfg pruner.Config
	Bridge    BridgeConfig
}

// NewService create a new instance of Service
func NewService(config Config) *Service {
	logger.Patch(log.SetLevel(config.LogLevel))

	return &Service{
		dbPath:    config.Path,
		logLvl:    config.LogLevel,
		bridgeCfg: config.Bridge,
		PrunerCfg: config.PrunerCfg,
	}
}

// UseMemDB tells the service to use an in-memory key-value store instead of a persistent database.
// This should be called after NewService, and before Initialise.
// This should only be used for testing.
func (s *Service) UseMemDB() {
	s.isMemDB = true
}

// DB returns the Service's database
func (s *Service) DB() chaindb.Database {
	return s.db
}

// Start opens the database and loads the bridge state.
func (s *Service) Start() error {
	if s.isMemDB && s.Bridge != nil {
		return nil
	}

	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return err
	}

	s.db, err = utils.SetupDatabase(basepath, false)
	if err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	s.Base = NewBaseState(s.db)

	stored, err := s.Base.loadPruningData()
	if err != nil {
		return fmt.Errorf("failed to load pruning configuration: %w", err)
	}
	if stored != s.PrunerCfg {
		logger.Warnf("pruning configuration changed from %+v to %+v", stored, s.PrunerCfg)
		if err = s.Base.storePruningData(s.PrunerCfg); err != nil {
			return fmt.Errorf("failed to store pruning configuration: %w", err)
		}
	}

	s.Bridge = NewBridgeState(chaindb.NewTable(s.db, bridgePrefix), s.bridgeCfg)
	if !s.Bridge.IsInitialised() {
		return ErrNotInitialised
	}

	best, _ := s.Bridge.BestBlock()
	finalized := s.Bridge.FinalizedBlock()
	logger.Infof("created state service with best header %s and finalized header %s", best, finalized)
	return nil
}

// Stop closes the database.
func (s *Service) Stop() error {
	if s.db == nil {
		return nil
	}

	if s.Bridge != nil {
		s.Bridge.Discard()
		best, _ := s.Bridge.BestBlock()
		logger.Debugf("stop with best header %s", best)
	}

	if err := s.db.Flush(); err != nil {
		return err
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// IsInitialised returns true if a bridge database exists at the service path.
func (s *Service) IsInitialised() bool {
	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return false
	}
	return utils.DatabaseExists(basepath)
}

var errNilGenesisHeader = errors.New("genesis header is nil")
