// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"errors"
)

// ErrNoGenesisHeader is returned when neither a genesis header nor its file is configured
var ErrNoGenesisHeader = errors.New("no genesis header provided")

// ErrNoGenesisValidators is returned when the genesis has no validator
var ErrNoGenesisValidators = errors.New("no genesis validators provided")

// ErrNodeNotInitialised is returned when a node is created before being initialised
var ErrNodeNotInitialised = errors.New("node is not initialised")
