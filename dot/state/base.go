// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/chaindb"
	"github.com/ethereum/go-ethereum/common"
)

var (
	pruningKey     = []byte("prune")
	genesisHashKey = []byte("genesis_hash")
)

// BaseState is a wrapper for the chaindb.Database, without any prefixes
type BaseState struct {
	db chaindb.Database
}

// NewBaseState returns a new BaseState
func NewBaseState(db chaindb.Database) *BaseState {
	return &BaseState{
		db: db,
	}
}

// Put stores key/value pair in database
func (s *BaseState) Put(key, value []byte) error {
	return s.db.Put(key, value)
}

// Get retrieves value by key from database
func (s *BaseState) Get(key []byte) ([]byte, error) {
	return s.db.Get(key)
}

// Del deletes key from database
func (s *BaseState) Del(key []byte) error {
	return s.db.Del(key)
}

// storePruningData stores the pruner configuration.
func (s *BaseState) storePruningData(mode pruner.Config) error {
	encMode, err := json.Marshal(mode)
	if err != nil {
		return fmt.Errorf("cannot json encode pruning mode: %s", err)
	}

	return s.db.Put(pruningKey, encMode)
}

// loadPruningData retrieves pruner configuration from db.
func (s *BaseState) loadPruningData() (pruner.Config, error) {
	data, err := s.db.Get(pruningKey)
	if err != nil {
		return pruner.Config{}, err
	}

	var mode pruner.Config
	err = json.Unmarshal(data, &mode)

	return mode, err
}

// storeGenesisHash stores the hash of the initial header of the bridge.
func (s *BaseState) storeGenesisHash(hash common.Hash) error {
	return s.db.Put(genesisHashKey, hash[:])
}

// LoadGenesisHash loads the hash of the initial header of the bridge.
func (s *BaseState) LoadGenesisHash() (common.Hash, error) {
	data, err := s.db.Get(genesisHashKey)
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(data), nil
}
