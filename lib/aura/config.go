// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"math"

	"github.com/holiman/uint256"
)

// Configuration are the Aura engine parameters of the source chain.
// Transitions are header numbers from which a rule applies.
type Configuration struct {
	// EmptyStepsTransition enables empty step messages in the seal.
	EmptyStepsTransition uint64
	// StrictEmptyStepsTransition requires empty steps to be ordered.
	StrictEmptyStepsTransition uint64
	// ValidateStepTransition enables monotonic step validation.
	ValidateStepTransition uint64
	// ValidateScoreTransition enables chain score validation.
	ValidateScoreTransition uint64
	// TwoThirdsMajorityTransition switches finality from a half to a two thirds majority.
	TwoThirdsMajorityTransition uint64
	MinGasLimit                 uint256.Int
	MaxGasLimit                 uint256.Int
	MaximumExtraDataSize        uint64
}

// KovanConfiguration returns the Aura configuration of the Kovan chain.
func KovanConfiguration() Configuration {
	config := Configuration{
		EmptyStepsTransition:        math.MaxUint64,
		StrictEmptyStepsTransition:  0,
		ValidateStepTransition:      0x16e360,
		ValidateScoreTransition:     0x41a3c4,
		TwoThirdsMajorityTransition: math.MaxUint64,
		MaximumExtraDataSize:        0x20,
	}
	config.MinGasLimit.SetUint64(0x1388)
	config.MaxGasLimit.SetAllOne()
	return config
}

// EmptyStepsEnabled returns true if headers with the given number carry empty steps.
func (c *Configuration) EmptyStepsEnabled(number uint64) bool {
	return number >= c.EmptyStepsTransition
}
