// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/aurabridge/dot/bridge"
	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/services"
	"github.com/ChainSafe/aurabridge/lib/utils"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// Node is a container for all the components of a bridge node.
type Node struct {
	Name     string
	Services *services.ServiceRegistry // registry of all node services
	State    *state.Service
	// Bridge is set once the node is started.
	Bridge *bridge.Service

	bridgeCfg *bridge.Config
}

// InitNode initialises the bridge database from the genesis of the
// configuration. An existing database at the base path is cleared.
func InitNode(cfg *Config) error {
	logger.Patch(log.SetLevel(cfg.Global.LogLvl))
	logger.Infof("🕸️ initialising %s bridge at %s...", cfg.Global.Name, cfg.Global.BasePath)

	if _, err := cfg.ValidatorsConfiguration(); err != nil {
		return fmt.Errorf("invalid validators configuration: %w", err)
	}

	genesis, err := cfg.Genesis.stateGenesis()
	if err != nil {
		return err
	}

	stateSrvc := createStateService(cfg)
	if err = stateSrvc.Initialise(genesis); err != nil {
		return fmt.Errorf("failed to initialise state service: %w", err)
	}

	logger.Infof("bridge initialised with genesis header %s and %d validators",
		genesis.Header.ID(), len(genesis.Validators))
	return nil
}

// NodeInitialized returns true if, within the configured data directory for the
// node, the state database has been created and the genesis header has been stored
func NodeInitialized(basepath string) bool {
	basepath, err := filepath.Abs(utils.ExpandDir(basepath))
	if err != nil {
		return false
	}
	if !utils.DatabaseExists(basepath) {
		logger.Debugf("node has not been initialised at %s: no database", basepath)
		return false
	}

	db, err := utils.SetupDatabase(basepath, false)
	if err != nil {
		logger.Errorf("failed to open database at %s: %s", basepath, err)
		return false
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Errorf("failed to close database: %s", err)
		}
	}()

	if _, err = state.NewBaseState(db).LoadGenesisHash(); err != nil {
		logger.Debugf("node has not been initialised at %s: %s", basepath, err)
		return false
	}
	return true
}

// NewNode creates a bridge node from the configuration. The handler
// is notified of the headers submissions and may be nil.
func NewNode(cfg *Config, handler bridge.SubmissionHandler) (*Node, error) {
	logger.Patch(log.SetLevel(cfg.Global.LogLvl))

	if !NodeInitialized(cfg.Global.BasePath) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotInitialised, cfg.Global.BasePath)
	}

	logger.Infof("🕸️ initialising %s bridge services at %s...", cfg.Global.Name, cfg.Global.BasePath)

	bridgeCfg, err := createBridgeConfig(cfg, handler)
	if err != nil {
		return nil, err
	}

	stateSrvc := createStateService(cfg)
	node := &Node{
		Name:      cfg.Global.Name,
		Services:  services.NewServiceRegistry(logger),
		State:     stateSrvc,
		bridgeCfg: bridgeCfg,
	}
	node.Services.RegisterService(stateSrvc)

	if cfg.Global.PublishMetrics {
		node.Services.RegisterService(createMetricsServer(cfg))
	} else {
		logger.Debug("metrics server disabled")
	}

	if cfg.Pprof.Enabled {
		node.Services.RegisterService(createPprofService(cfg.Pprof))
	}

	return node, nil
}

// Start starts all node services, and the bridge service on top of the state.
func (n *Node) Start() error {
	logger.Info("🕸️ starting node services...")
	if err := n.Services.StartAll(); err != nil {
		return err
	}

	cfg := *n.bridgeCfg
	cfg.State = n.State.Bridge
	bridgeSrvc, err := bridge.NewService(&cfg)
	if err != nil {
		n.Services.StopAll()
		return fmt.Errorf("failed to create bridge service: %w", err)
	}
	n.Bridge = bridgeSrvc

	best, _ := bridgeSrvc.BestBlock()
	logger.Infof("bridge started with best header %s and finalized header %s",
		best, bridgeSrvc.FinalizedBlock())
	return nil
}

// Stop stops all node services.
func (n *Node) Stop() {
	n.Services.StopAll()
}
