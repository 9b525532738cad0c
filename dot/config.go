// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"github.com/ChainSafe/aurabridge/dot/bridge"
	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/internal/metrics"
	"github.com/ChainSafe/aurabridge/internal/pprof"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global     GlobalConfig
	Aura       aura.Configuration
	Validators []validators.ScheduledSource
	Genesis    GenesisConfig
	Pruning    pruner.Config
	Bridge     state.BridgeConfig
	Pool       bridge.PoolConfig
	Pprof      PprofConfig
}

// GlobalConfig is used for every node command
type GlobalConfig struct {
	Name           string
	BasePath       string
	LogLvl         log.Level
	PublishMetrics bool
	MetricsAddress string
}

// PprofConfig is the configuration of the profiling http server.
type PprofConfig struct {
	Enabled  bool
	Settings pprof.Settings
}

// GenesisConfig is the header the bridge starts from. The header is read
// from the JSON file at HeaderPath when Header is nil.
type GenesisConfig struct {
	HeaderPath      string
	Header          *types.Header
	TotalDifficulty uint256.Int
	Validators      []common.Address
}

// DefaultConfig returns the configuration shared by every chain.
// It has neither validators sources nor genesis.
func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLvl:         log.Info,
			MetricsAddress: metrics.DefaultAddress,
		},
		Pruning: pruner.Config{
			Mode:           pruner.KeepDepth,
			RetainedBlocks: pruner.DefaultRetainedBlocks,
		},
		Bridge: state.DefaultBridgeConfig(),
		Pool:   bridge.DefaultPoolConfig(),
		Pprof: PprofConfig{
			Settings: pprof.Settings{ListeningAddress: pprof.DefaultAddress},
		},
	}
}

// ValidatorsConfiguration returns the validators configuration of the sources.
func (c *Config) ValidatorsConfiguration() (*validators.Configuration, error) {
	return validators.NewMultiConfiguration(c.Validators)
}
