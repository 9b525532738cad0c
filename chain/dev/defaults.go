// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"github.com/ChainSafe/aurabridge/dot"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/utils"
	"github.com/ChainSafe/aurabridge/lib/validators"
)

const (
	// ValidatorsCount is the number of validators of the dev chain.
	ValidatorsCount = 3
	// defaultRetainedBlocks is the number of headers kept below the best header
	defaultRetainedBlocks = 64
)

var (
	defaultName     = "dev"
	defaultBasePath = utils.BasePath(defaultName)
)

// DefaultConfig returns the configuration of a dev chain, authored by the
// deterministic dev validators keys from the built-in genesis header.
func DefaultConfig() *dot.Config {
	config := dot.DefaultConfig()
	config.Global.Name = defaultName
	config.Global.BasePath = defaultBasePath
	config.Aura = aura.KovanConfiguration()
	config.Validators = []validators.ScheduledSource{{
		Source: validators.NewListSource(aura.ValidatorsAddresses(ValidatorsCount)),
	}}
	config.Genesis = dot.GenesisConfig{
		Header:     aura.GenesisHeader(),
		Validators: aura.ValidatorsAddresses(ValidatorsCount),
	}
	config.Pruning = pruner.Config{
		Mode:           pruner.KeepDepth,
		RetainedBlocks: defaultRetainedBlocks,
	}
	return config
}
