// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/utils"
	"github.com/ChainSafe/chaindb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Genesis is the initial header of the bridge, trusted without verification.
type Genesis struct {
	Header          *types.Header
	TotalDifficulty uint256.Int
	Validators      []common.Address
}

// Initialise clears the database and writes the genesis state.
// This only needs to be called once, before the service is started.
func (s *Service) Initialise(genesis *Genesis) error {
	if genesis.Header == nil {
		return errNilGenesisHeader
	}

	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to read basepath: %s", err)
	}

	if !s.isMemDB {
		if err := utils.ClearDatabase(basepath); err != nil {
			return fmt.Errorf("while cleaning database: %w", err)
		}
	}

	db, err := utils.SetupDatabase(basepath, s.isMemDB)
	if err != nil {
		return fmt.Errorf("failed to create database: %s", err)
	}

	s.db = db
	s.Base = NewBaseState(db)

	if err = s.Base.storePruningData(s.PrunerCfg); err != nil {
		return fmt.Errorf("failed to write pruning data to database: %s", err)
	}

	if err = s.Base.storeGenesisHash(genesis.Header.Hash()); err != nil {
		return fmt.Errorf("failed to write genesis hash to database: %s", err)
	}

	bridge := NewBridgeState(chaindb.NewTable(db, bridgePrefix), s.bridgeCfg)
	err = bridge.InitialiseGenesis(genesis.Header, genesis.TotalDifficulty, genesis.Validators)
	if err != nil {
		return fmt.Errorf("failed to initialise bridge state: %w", err)
	}

	if s.isMemDB {
		s.Bridge = bridge
		return nil
	}

	s.db, s.Base = nil, nil
	if err = db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %s", err)
	}
	return nil
}
