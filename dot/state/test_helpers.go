// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"testing"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/chaindb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// NewInMemoryDB creates a new in-memory database
func NewInMemoryDB(t *testing.T) chaindb.Database {
	db, err := chaindb.NewBadgerDB(&chaindb.Config{
		DataDir:  t.TempDir(),
		InMemory: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// NewTestBridgeState creates a bridge state on an in-memory database,
// initialised with the given genesis header and validators.
func NewTestBridgeState(t *testing.T, config BridgeConfig, genesis *types.Header,
	validators []common.Address) *BridgeState {
	bs := NewBridgeState(chaindb.NewTable(NewInMemoryDB(t), bridgePrefix), config)
	err := bs.InitialiseGenesis(genesis, uint256.Int{}, validators)
	require.NoError(t, err)
	return bs
}
