// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/stretchr/testify/require"
)

// newTestConfig returns a configuration of a chain authored by three test
// validators, with its database in a temporary directory.
func newTestConfig(t *testing.T) *Config {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Global.Name = "test"
	cfg.Global.BasePath = t.TempDir()
	cfg.Aura = aura.TestConfiguration()
	cfg.Validators = []validators.ScheduledSource{{
		Source: validators.NewListSource(aura.ValidatorsAddresses(3)),
	}}
	cfg.Genesis = GenesisConfig{
		Header:     aura.GenesisHeader(),
		Validators: aura.ValidatorsAddresses(3),
	}
	return cfg
}

func writeHeaderToTestJSON(t *testing.T, header *types.Header) (filename string) {
	t.Helper()

	data, err := json.Marshal(header)
	require.NoError(t, err)
	filename = filepath.Join(t.TempDir(), "header.json")
	err = os.WriteFile(filename, data, os.ModePerm)
	require.NoError(t, err)
	return filename
}
