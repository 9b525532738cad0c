// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ChainSafe/aurabridge/chain/dev"
	"github.com/ChainSafe/aurabridge/chain/kovan"
	"github.com/ChainSafe/aurabridge/dot"
	ctoml "github.com/ChainSafe/aurabridge/dot/config/toml"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/utils"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethmath "github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/naoina/toml"
	"github.com/urfave/cli"
)

// never is the transition value of a rule that never applies.
const never = "never"

var (
	errUnknownChain  = errors.New("unknown chain id")
	errInvalidNumber = errors.New("invalid number")
	errInvalidSource = errors.New("invalid validators source")
)

// DefaultCfg is the default configuration of the bridge.
var DefaultCfg = kovan.DefaultConfig

// chainConfig returns the preset configuration of the chain id.
func chainConfig(id string) (*dot.Config, error) {
	switch id {
	case "":
		return DefaultCfg(), nil
	case "kovan":
		return kovan.DefaultConfig(), nil
	case "dev":
		return dev.DefaultConfig(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownChain, id)
	}
}

// loadConfigFile loads and validates the toml configuration file.
func loadConfigFile(fp string) (*ctoml.Config, error) {
	fp, err := filepath.Abs(fp)
	if err != nil {
		return nil, err
	}

	logger.Infof("loading toml configuration from %s...", fp)

	f, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	cfg := new(ctoml.Config)
	if err = toml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding toml configuration: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// createDotConfig creates the bridge configuration from the chain preset,
// then the toml configuration file, then the flag values.
func createDotConfig(ctx *cli.Context) (*dot.Config, error) {
	cfg, err := chainConfig(ctx.String(ChainFlag.Name))
	if err != nil {
		return nil, err
	}

	if fp := ctx.String(ConfigFlag.Name); fp != "" {
		tomlCfg, err := loadConfigFile(fp)
		if err != nil {
			return nil, fmt.Errorf("failed to load toml configuration: %w", err)
		}
		if err = setDotConfigFromToml(tomlCfg, cfg); err != nil {
			return nil, err
		}
	}

	if err = setDotConfigFromFlags(ctx, cfg); err != nil {
		return nil, err
	}

	cfg.Global.BasePath = utils.ExpandDir(cfg.Global.BasePath)
	logger.Debugf("bridge configuration has name %s and base path %s", cfg.Global.Name, cfg.Global.BasePath)
	return cfg, nil
}

// setDotConfigFromToml applies the toml configuration over the dot configuration.
func setDotConfigFromToml(tomlCfg *ctoml.Config, cfg *dot.Config) (err error) {
	setDotGlobalConfigFromToml(tomlCfg.Global, &cfg.Global)

	if err = setAuraConfigFromToml(tomlCfg.Aura, &cfg.Aura); err != nil {
		return fmt.Errorf("aura configuration: %w", err)
	}

	if len(tomlCfg.Validators) > 0 {
		cfg.Validators, err = validatorsSourcesFromToml(tomlCfg.Validators)
		if err != nil {
			return fmt.Errorf("validators configuration: %w", err)
		}
	}

	if err = setGenesisConfigFromToml(tomlCfg.Genesis, &cfg.Genesis); err != nil {
		return fmt.Errorf("genesis configuration: %w", err)
	}

	if tomlCfg.Pruning.Mode != "" {
		cfg.Pruning.Mode = pruner.Mode(tomlCfg.Pruning.Mode)
	}
	if tomlCfg.Pruning.Depth != 0 {
		cfg.Pruning.RetainedBlocks = tomlCfg.Pruning.Depth
	}
	if tomlCfg.Pruning.MaxPerImport != 0 {
		cfg.Bridge.MaxBlocksToPruneInSingleImport = tomlCfg.Pruning.MaxPerImport
	}
	if tomlCfg.Finality.VotesCachingInterval != 0 {
		cfg.Bridge.FinalityVotesCachingInterval = tomlCfg.Finality.VotesCachingInterval
	}
	if tomlCfg.Pool.MaxFutureNumberDifference != 0 {
		cfg.Pool.MaxFutureNumberDifference = tomlCfg.Pool.MaxFutureNumberDifference
	}

	setPprofConfigFromToml(tomlCfg.Pprof, &cfg.Pprof)
	return nil
}

func setPprofConfigFromToml(tomlCfg ctoml.PprofConfig, cfg *dot.PprofConfig) {
	cfg.Enabled = cfg.Enabled || tomlCfg.Enabled
	if tomlCfg.ListeningAddress != "" {
		cfg.Settings.ListeningAddress = tomlCfg.ListeningAddress
	}
	if tomlCfg.BlockRate != 0 {
		cfg.Settings.BlockProfileRate = tomlCfg.BlockRate
	}
	if tomlCfg.MutexRate != 0 {
		cfg.Settings.MutexProfileRate = tomlCfg.MutexRate
	}
}

func setDotGlobalConfigFromToml(tomlCfg ctoml.GlobalConfig, cfg *dot.GlobalConfig) {
	if tomlCfg.Name != "" {
		cfg.Name = tomlCfg.Name
	}

	if tomlCfg.BasePath != "" {
		cfg.BasePath = tomlCfg.BasePath
	}

	if tomlCfg.LogLvl != "" {
		level, err := parseLogLevelString(tomlCfg.LogLvl)
		if err == nil {
			cfg.LogLvl = level
		} else {
			logger.Warnf("ignoring toml log level: %s", err)
		}
	}

	if tomlCfg.MetricsAddress != "" {
		cfg.MetricsAddress = tomlCfg.MetricsAddress
	}
	cfg.PublishMetrics = cfg.PublishMetrics || tomlCfg.PublishMetrics
}

func setAuraConfigFromToml(tomlCfg ctoml.AuraConfig, cfg *aura.Configuration) error {
	transitions := []struct {
		name  string
		value string
		dst   *uint64
	}{
		{name: "empty-steps-transition", value: tomlCfg.EmptyStepsTransition, dst: &cfg.EmptyStepsTransition},
		{name: "strict-empty-steps-transition", value: tomlCfg.StrictEmptyStepsTransition,
			dst: &cfg.StrictEmptyStepsTransition},
		{name: "validate-step-transition", value: tomlCfg.ValidateStepTransition, dst: &cfg.ValidateStepTransition},
		{name: "validate-score-transition", value: tomlCfg.ValidateScoreTransition,
			dst: &cfg.ValidateScoreTransition},
		{name: "two-thirds-majority-transition", value: tomlCfg.TwoThirdsMajorityTransition,
			dst: &cfg.TwoThirdsMajorityTransition},
	}
	for _, transition := range transitions {
		if transition.value == "" {
			continue
		}
		number, err := parseTransition(transition.value)
		if err != nil {
			return fmt.Errorf("%s: %w", transition.name, err)
		}
		*transition.dst = number
	}

	gasLimits := []struct {
		name  string
		value string
		dst   *uint256.Int
	}{
		{name: "min-gas-limit", value: tomlCfg.MinGasLimit, dst: &cfg.MinGasLimit},
		{name: "max-gas-limit", value: tomlCfg.MaxGasLimit, dst: &cfg.MaxGasLimit},
	}
	for _, gasLimit := range gasLimits {
		if gasLimit.value == "" {
			continue
		}
		if err := parseUint256(gasLimit.value, gasLimit.dst); err != nil {
			return fmt.Errorf("%s: %w", gasLimit.name, err)
		}
	}

	if tomlCfg.MaximumExtraDataSize != 0 {
		cfg.MaximumExtraDataSize = tomlCfg.MaximumExtraDataSize
	}
	return nil
}

func validatorsSourcesFromToml(tomlSources []ctoml.ValidatorsSource) ([]validators.ScheduledSource, error) {
	sources := make([]validators.ScheduledSource, len(tomlSources))
	for i, tomlSource := range tomlSources {
		addresses := addressesFromStrings(tomlSource.Validators)
		var source validators.Source
		switch tomlSource.Kind {
		case validators.ListSource.String():
			source = validators.NewListSource(addresses)
		case validators.ContractSource.String():
			if !common.IsHexAddress(tomlSource.Contract) {
				return nil, fmt.Errorf("%w %d: contract %q", errInvalidSource, i, tomlSource.Contract)
			}
			source = validators.NewContractSource(common.HexToAddress(tomlSource.Contract), addresses)
		default:
			return nil, fmt.Errorf("%w %d: kind %q", errInvalidSource, i, tomlSource.Kind)
		}
		sources[i] = validators.ScheduledSource{StartsAt: tomlSource.StartsAt, Source: source}
	}

	if _, err := validators.NewMultiConfiguration(sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func setGenesisConfigFromToml(tomlCfg ctoml.GenesisConfig, cfg *dot.GenesisConfig) error {
	if tomlCfg.Header != "" {
		cfg.HeaderPath = tomlCfg.Header
		cfg.Header = nil
	}
	if tomlCfg.TotalDifficulty != "" {
		if err := parseUint256(tomlCfg.TotalDifficulty, &cfg.TotalDifficulty); err != nil {
			return fmt.Errorf("total-difficulty: %w", err)
		}
	}
	if len(tomlCfg.Validators) > 0 {
		cfg.Validators = addressesFromStrings(tomlCfg.Validators)
	}
	return nil
}

// setDotConfigFromFlags sets the dot configuration using flag values from the cli context
func setDotConfigFromFlags(ctx *cli.Context, cfg *dot.Config) error {
	// check --basepath flag and update bridge configuration
	if basepath := ctx.String(BasePathFlag.Name); basepath != "" {
		cfg.Global.BasePath = basepath
	}

	// check if cfg.BasePath his been set, if not set to default
	if cfg.Global.BasePath == "" {
		cfg.Global.BasePath = utils.BasePath(cfg.Global.Name)
	}

	if lvl := ctx.String(LogFlag.Name); lvl != "" {
		level, err := parseLogLevelString(lvl)
		if err != nil {
			return err
		}
		cfg.Global.LogLvl = level
	}

	if genesis := ctx.String(GenesisFlag.Name); genesis != "" {
		cfg.Genesis.HeaderPath = genesis
		cfg.Genesis.Header = nil
	}

	if mode := ctx.String(PruningFlag.Name); mode != "" {
		cfg.Pruning.Mode = pruner.Mode(mode)
	}
	if retain := ctx.Uint64(RetainBlocksFlag.Name); retain != 0 {
		cfg.Pruning.RetainedBlocks = retain
	}
	if !cfg.Pruning.Mode.IsValid() {
		return fmt.Errorf("%w: %q", pruner.ErrInvalidMode, cfg.Pruning.Mode)
	}

	cfg.Global.PublishMetrics = cfg.Global.PublishMetrics || ctx.Bool(PublishMetricsFlag.Name)

	cfg.Pprof.Enabled = cfg.Pprof.Enabled || ctx.Bool(PprofFlag.Name)

	// check --metrics-address flag and update bridge configuration
	if metricsAddress := ctx.String(MetricsAddressFlag.Name); metricsAddress != "" {
		port, err := strconv.Atoi(metricsAddress)
		if err != nil {
			cfg.Global.MetricsAddress = metricsAddress
		} else {
			cfg.Global.MetricsAddress = ":" + fmt.Sprint(port)
		}
	}
	return nil
}

// tomlFromDotConfig returns the toml configuration of the dot configuration.
func tomlFromDotConfig(cfg *dot.Config) *ctoml.Config {
	tomlCfg := &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:           cfg.Global.Name,
			BasePath:       cfg.Global.BasePath,
			LogLvl:         cfg.Global.LogLvl.String(),
			MetricsAddress: cfg.Global.MetricsAddress,
			PublishMetrics: cfg.Global.PublishMetrics,
		},
		Aura: ctoml.AuraConfig{
			EmptyStepsTransition:        formatTransition(cfg.Aura.EmptyStepsTransition),
			StrictEmptyStepsTransition:  formatTransition(cfg.Aura.StrictEmptyStepsTransition),
			ValidateStepTransition:      formatTransition(cfg.Aura.ValidateStepTransition),
			ValidateScoreTransition:     formatTransition(cfg.Aura.ValidateScoreTransition),
			TwoThirdsMajorityTransition: formatTransition(cfg.Aura.TwoThirdsMajorityTransition),
			MinGasLimit:                 cfg.Aura.MinGasLimit.Hex(),
			MaxGasLimit:                 cfg.Aura.MaxGasLimit.Hex(),
			MaximumExtraDataSize:        cfg.Aura.MaximumExtraDataSize,
		},
		Genesis: ctoml.GenesisConfig{
			Header:          cfg.Genesis.HeaderPath,
			TotalDifficulty: cfg.Genesis.TotalDifficulty.Hex(),
			Validators:      addressesToStrings(cfg.Genesis.Validators),
		},
		Pruning: ctoml.PruningConfig{
			Mode:         string(cfg.Pruning.Mode),
			Depth:        cfg.Pruning.RetainedBlocks,
			MaxPerImport: cfg.Bridge.MaxBlocksToPruneInSingleImport,
		},
		Finality: ctoml.FinalityConfig{
			VotesCachingInterval: cfg.Bridge.FinalityVotesCachingInterval,
		},
		Pool: ctoml.PoolConfig{
			MaxFutureNumberDifference: cfg.Pool.MaxFutureNumberDifference,
		},
		Pprof: ctoml.PprofConfig{
			Enabled:          cfg.Pprof.Enabled,
			ListeningAddress: cfg.Pprof.Settings.ListeningAddress,
			BlockRate:        cfg.Pprof.Settings.BlockProfileRate,
			MutexRate:        cfg.Pprof.Settings.MutexProfileRate,
		},
	}

	for _, source := range cfg.Validators {
		tomlSource := ctoml.ValidatorsSource{
			StartsAt:   source.StartsAt,
			Kind:       source.Source.Kind.String(),
			Validators: addressesToStrings(source.Source.Validators),
		}
		if source.Source.Kind == validators.ContractSource {
			tomlSource.Contract = strings.ToLower(source.Source.Contract.Hex())
		}
		tomlCfg.Validators = append(tomlCfg.Validators, tomlSource)
	}
	return tomlCfg
}

// parseLogLevelString parses a log level name or its integer value.
func parseLogLevelString(logLevelString string) (log.Level, error) {
	if levelInt, err := strconv.Atoi(logLevelString); err == nil {
		if levelInt < int(log.Trace) || levelInt > int(log.Critical) {
			return 0, fmt.Errorf("%w: %d", log.ErrLevelNotRecognised, levelInt)
		}
		return log.Level(levelInt), nil
	}
	return log.ParseLevel(logLevelString)
}

// parseTransition parses a decimal or 0x prefixed header number, or never.
func parseTransition(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == never {
		return math.MaxUint64, nil
	}
	number, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, s)
	}
	return number, nil
}

func formatTransition(number uint64) string {
	if number == math.MaxUint64 {
		return never
	}
	return hexutil.EncodeUint64(number)
}

// parseUint256 parses a decimal or 0x prefixed 256 bits number.
func parseUint256(s string, dst *uint256.Int) error {
	value, ok := ethmath.ParseBig256(strings.TrimSpace(s))
	if !ok || value.Sign() < 0 {
		return fmt.Errorf("%w: %q", errInvalidNumber, s)
	}
	dst.SetFromBig(value)
	return nil
}

func addressesFromStrings(values []string) []common.Address {
	addresses := make([]common.Address, len(values))
	for i, value := range values {
		addresses[i] = common.HexToAddress(value)
	}
	return addresses
}

func addressesToStrings(addresses []common.Address) []string {
	if len(addresses) == 0 {
		return nil
	}
	values := make([]string, len(addresses))
	for i, address := range addresses {
		values[i] = strings.ToLower(address.Hex())
	}
	return values
}
