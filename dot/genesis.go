// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/dot/types"
)

// LoadHeaderFile reads a JSON encoded header.
func LoadHeaderFile(path string) (*types.Header, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	header := new(types.Header)
	if err = json.Unmarshal(data, header); err != nil {
		return nil, fmt.Errorf("decoding header from %s: %w", path, err)
	}
	return header, nil
}

// stateGenesis returns the genesis written to the state database.
func (g *GenesisConfig) stateGenesis() (*state.Genesis, error) {
	header := g.Header
	if header == nil {
		if g.HeaderPath == "" {
			return nil, ErrNoGenesisHeader
		}

		var err error
		header, err = LoadHeaderFile(g.HeaderPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load genesis header: %w", err)
		}
	}

	if len(g.Validators) == 0 {
		return nil, ErrNoGenesisValidators
	}

	return &state.Genesis{
		Header:          header,
		TotalDifficulty: g.TotalDifficulty,
		Validators:      g.Validators,
	}, nil
}
