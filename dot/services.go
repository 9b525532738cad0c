// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"

	"github.com/ChainSafe/aurabridge/dot/bridge"
	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/internal/metrics"
	"github.com/ChainSafe/aurabridge/internal/pprof"
	"github.com/ChainSafe/aurabridge/lib/utils"
)

// createStateService creates the state service, which opens the database when started.
func createStateService(cfg *Config) *state.Service {
	logger.Debug("creating state service...")
	return state.NewService(state.Config{
		Path:      utils.ExpandDir(cfg.Global.BasePath),
		LogLevel:  cfg.Global.LogLvl,
		PrunerCfg: cfg.Pruning,
		Bridge:    cfg.Bridge,
	})
}

// createBridgeConfig creates the bridge service configuration,
// without its state which is only available once the state service is started.
func createBridgeConfig(cfg *Config, handler bridge.SubmissionHandler) (*bridge.Config, error) {
	logger.Debugf("creating bridge configuration with %s pruning...", cfg.Pruning.Mode)

	validatorsCfg, err := cfg.ValidatorsConfiguration()
	if err != nil {
		return nil, fmt.Errorf("invalid validators configuration: %w", err)
	}

	strategy, err := pruner.NewStrategy(cfg.Pruning)
	if err != nil {
		return nil, fmt.Errorf("invalid pruning configuration: %w", err)
	}

	return &bridge.Config{
		LogLvl:     cfg.Global.LogLvl,
		Aura:       cfg.Aura,
		Validators: validatorsCfg,
		Pruning:    &pruner.LoggingStrategy{Strategy: strategy, Logger: logger},
		Pool:       cfg.Pool,
		Handler:    handler,
	}, nil
}

// createMetricsServer creates the server publishing the prometheus metrics.
func createMetricsServer(cfg *Config) *metrics.Server {
	address := cfg.Global.MetricsAddress
	if address == "" {
		address = metrics.DefaultAddress
	}
	logger.Infof("enabling stand-alone metrics HTTP endpoint at %s", address)
	return metrics.NewServer(address)
}

// createPprofService creates the profiling http server service.
func createPprofService(cfg PprofConfig) *pprof.Service {
	logger.Infof("enabling pprof HTTP endpoint at %s", cfg.Settings.ListeningAddress)
	return pprof.NewService(cfg.Settings, logger)
}
