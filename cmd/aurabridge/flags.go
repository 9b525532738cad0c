// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global bridge configuration flags
var (
	// LogFlag cli service settings
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels crit (silent), eror, warn, info, dbug and trce (trace)",
	}
	// ChainFlag is chain id used to load default configuration for specified chain
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Usage: "Chain id used to load default configuration for specified chain: kovan or dev",
	}
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// BasePathFlag data directory for the bridge
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the bridge",
	}
	// PruningFlag triggers the headers pruning
	PruningFlag = cli.StringFlag{
		Name:  "pruning",
		Usage: "Headers pruning mode: archive or keep-depth",
	}
	// RetainBlocksFlag is the number of headers kept below the best header
	RetainBlocksFlag = cli.Uint64Flag{
		Name:  "retain-blocks",
		Usage: "Number of headers kept below the best header in the keep-depth pruning mode",
	}
	// PublishMetricsFlag publishes node metrics to prometheus.
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish bridge metrics",
	}
	// MetricsAddressFlag sets the metric server listening address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Listening address of the metrics server",
	}
	// PprofFlag enables the pprof http server
	PprofFlag = cli.BoolFlag{
		Name:  "pprof",
		Usage: "Serve the pprof profiling data over http",
	}
)

// Initialization-only flags
var (
	// ForceFlag initialises the bridge even if it is already initialised
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Clear the existing bridge database, if any",
	}
	// GenesisFlag is the JSON file of the genesis header
	GenesisFlag = cli.StringFlag{
		Name:  "genesis",
		Usage: "Path to the JSON file of the genesis header",
	}
)

// Import flags
var (
	// SubmitterFlag identifies the submitter of signed headers
	SubmitterFlag = cli.StringFlag{
		Name:  "submitter",
		Usage: "Identifier of the headers submitter",
	}
	// InputFlag is the file the headers are read from
	InputFlag = cli.StringFlag{
		Name:  "input",
		Usage: "JSON file of the headers, gzip compressed if it ends with .gz",
	}
)

// Export and generate flags
var (
	// OutputFlag is the file written by the command
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "File written by the command, gzip compressed if it ends with .gz",
	}
	// CountFlag is the number of headers to generate
	CountFlag = cli.IntFlag{
		Name:  "count",
		Usage: "Number of headers to generate",
		Value: 16,
	}
)

// flag sets for the commands
var (
	// GlobalFlags are flags that are valid for use with every command
	GlobalFlags = []cli.Flag{
		LogFlag,
		ChainFlag,
		ConfigFlag,
		BasePathFlag,
	}

	// StartupFlags are flags of the commands starting the bridge services
	StartupFlags = []cli.Flag{
		PruningFlag,
		RetainBlocksFlag,
		PublishMetricsFlag,
		MetricsAddressFlag,
		PprofFlag,
	}

	// InitFlags are flags that are valid for use with the init subcommand
	InitFlags = append([]cli.Flag{
		ForceFlag,
		GenesisFlag,
		PruningFlag,
		RetainBlocksFlag,
	}, GlobalFlags...)

	// ImportFlags are flags that are valid for use with the import subcommand
	ImportFlags = append(append([]cli.Flag{
		SubmitterFlag,
		InputFlag,
	}, StartupFlags...), GlobalFlags...)

	// InputFlags are flags of the commands reading a single header
	InputFlags = append(append([]cli.Flag{
		InputFlag,
	}, StartupFlags...), GlobalFlags...)

	// ExportFlags are flags that are valid for use with the export subcommand
	ExportFlags = append(append([]cli.Flag{
		OutputFlag,
		GenesisFlag,
	}, StartupFlags...), GlobalFlags...)

	// GenerateFlags are flags that are valid for use with the generate subcommand
	GenerateFlags = []cli.Flag{
		LogFlag,
		OutputFlag,
		CountFlag,
	}
)
