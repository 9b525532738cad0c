// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is a collection of configurations throughout the system
type Config struct {
	Global     GlobalConfig       `toml:"global,omitempty"`
	Aura       AuraConfig         `toml:"aura,omitempty"`
	Validators []ValidatorsSource `toml:"validators,omitempty" validate:"dive"`
	Genesis    GenesisConfig      `toml:"genesis,omitempty"`
	Pruning    PruningConfig      `toml:"pruning,omitempty"`
	Finality   FinalityConfig     `toml:"finality,omitempty"`
	Pool       PoolConfig         `toml:"pool,omitempty"`
	Pprof      PprofConfig        `toml:"pprof,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string `toml:"name,omitempty"`
	BasePath       string `toml:"basepath,omitempty"`
	LogLvl         string `toml:"log,omitempty"`
	MetricsAddress string `toml:"metrics-address,omitempty" validate:"omitempty,hostname_port"`
	PublishMetrics bool   `toml:"publish-metrics,omitempty"`
}

// AuraConfig is to marshal/unmarshal the Aura engine parameters.
// Transitions are decimal or 0x prefixed header numbers, or "never".
// Gas limits are decimal or 0x prefixed 256 bits numbers.
type AuraConfig struct {
	EmptyStepsTransition        string `toml:"empty-steps-transition,omitempty"`
	StrictEmptyStepsTransition  string `toml:"strict-empty-steps-transition,omitempty"`
	ValidateStepTransition      string `toml:"validate-step-transition,omitempty"`
	ValidateScoreTransition     string `toml:"validate-score-transition,omitempty"`
	TwoThirdsMajorityTransition string `toml:"two-thirds-majority-transition,omitempty"`
	MinGasLimit                 string `toml:"min-gas-limit,omitempty"`
	MaxGasLimit                 string `toml:"max-gas-limit,omitempty"`
	MaximumExtraDataSize        uint64 `toml:"maximum-extra-data-size,omitempty"`
}

// ValidatorsSource is to marshal/unmarshal a validators source, used
// from the header following StartsAt.
type ValidatorsSource struct {
	StartsAt   uint64   `toml:"starts-at"`
	Kind       string   `toml:"kind" validate:"oneof=list contract"`
	Contract   string   `toml:"contract,omitempty" validate:"required_if=Kind contract"`
	Validators []string `toml:"validators,omitempty" validate:"min=1,dive,eth_addr"`
}

// GenesisConfig is to marshal/unmarshal the initial header of the bridge.
type GenesisConfig struct {
	Header          string   `toml:"header,omitempty"`
	TotalDifficulty string   `toml:"total-difficulty,omitempty"`
	Validators      []string `toml:"validators,omitempty" validate:"dive,eth_addr"`
}

// PruningConfig is to marshal/unmarshal the headers pruning configuration.
type PruningConfig struct {
	Mode         string `toml:"mode,omitempty" validate:"omitempty,oneof=archive keep-depth"`
	Depth        uint64 `toml:"depth,omitempty"`
	MaxPerImport uint64 `toml:"max-per-import,omitempty"`
}

// FinalityConfig is to marshal/unmarshal the finality votes caching.
type FinalityConfig struct {
	VotesCachingInterval uint64 `toml:"votes-caching-interval,omitempty"`
}

// PoolConfig is to marshal/unmarshal the unsigned headers pool limits.
type PoolConfig struct {
	MaxFutureNumberDifference uint64 `toml:"max-future-number-difference,omitempty"`
}

// PprofConfig is to marshal/unmarshal the profiling server configuration.
type PprofConfig struct {
	Enabled          bool   `toml:"enabled,omitempty"`
	ListeningAddress string `toml:"listening-address,omitempty" validate:"omitempty,hostname_port"`
	BlockRate        int    `toml:"block-rate,omitempty" validate:"gte=0"`
	MutexRate        int    `toml:"mutex-rate,omitempty" validate:"gte=0"`
}

// Validate checks the values that can be checked without parsing them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid toml configuration: %w", err)
	}

	for i, source := range c.Validators {
		if source.Contract == "" {
			continue
		}
		if err := validator.New().Var(source.Contract, "eth_addr"); err != nil {
			return fmt.Errorf("invalid toml configuration: contract of validators source %d: %w", i, err)
		}
	}
	return nil
}
