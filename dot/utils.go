// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"os"

	ctoml "github.com/ChainSafe/aurabridge/dot/config/toml"
	"github.com/naoina/toml"
)

// ExportTomlConfig exports a toml configuration to a toml configuration file
func ExportTomlConfig(cfg *ctoml.Config, fp string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(fp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
