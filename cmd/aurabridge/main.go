// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ChainSafe/aurabridge/chain/dev"
	"github.com/ChainSafe/aurabridge/dot"
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	errAlreadyInitialised = errors.New("bridge is already initialised, use --force to clear it")
	errNoOutput           = errors.New("no output file provided")
)

var (
	initCommand = cli.Command{
		Action:    FixupAction(initAction),
		Name:      "init",
		Usage:     "Initialise the bridge database from the genesis header",
		ArgsUsage: "",
		Flags:     InitFlags,
		Category:  "INIT",
		Description: "The init command initialises the bridge database with the genesis header and validators.\n" +
			"\tUsage: aurabridge init --chain kovan --genesis header.json",
	}
	importCommand = cli.Command{
		Action:    FixupAction(importAction),
		Name:      "import",
		Usage:     "Import a batch of signed headers",
		ArgsUsage: "",
		Flags:     ImportFlags,
		Category:  "IMPORT",
		Description: "The import command imports the headers of a submitter, with their receipts.\n" +
			"\tUsage: aurabridge import --submitter alice --input headers.json.gz",
	}
	importUnsignedCommand = cli.Command{
		Action:    FixupAction(importUnsignedAction),
		Name:      "import-unsigned",
		Usage:     "Import a single unsigned header",
		ArgsUsage: "",
		Flags:     InputFlags,
		Category:  "IMPORT",
		Description: "The import-unsigned command imports a header submitted without submitter.\n" +
			"\tUsage: aurabridge import-unsigned --input header.json",
	}
	validateUnsignedCommand = cli.Command{
		Action:    FixupAction(validateUnsignedAction),
		Name:      "validate-unsigned",
		Usage:     "Check an unsigned header may enter the transactions pool",
		ArgsUsage: "",
		Flags:     InputFlags,
		Category:  "IMPORT",
		Description: "The validate-unsigned command checks an unsigned header without importing it,\n" +
			"\tand prints its pool tags.\n" +
			"\tUsage: aurabridge validate-unsigned --input header.json",
	}
	requiresReceiptsCommand = cli.Command{
		Action:    FixupAction(requiresReceiptsAction),
		Name:      "requires-receipts",
		Usage:     "Check whether importing a header requires its receipts",
		ArgsUsage: "",
		Flags:     InputFlags,
		Category:  "IMPORT",
		Description: "The requires-receipts command prints true if the header may signal a validators change.\n" +
			"\tUsage: aurabridge requires-receipts --input header.json",
	}
	statusCommand = cli.Command{
		Action:    FixupAction(statusAction),
		Name:      "status",
		Usage:     "Print the best and finalized headers",
		ArgsUsage: "",
		Flags:     append([]cli.Flag{SubmitterFlag}, GlobalFlags...),
		Category:  "STATUS",
		Description: "The status command prints the best header, the finalized header and the pruning range.\n" +
			"\tUsage: aurabridge status --chain kovan",
	}
	exportCommand = cli.Command{
		Action:    FixupAction(exportAction),
		Name:      "export",
		Usage:     "Export the configuration to a toml file",
		ArgsUsage: "",
		Flags:     ExportFlags,
		Category:  "EXPORT",
		Description: "The export command exports the chain configuration, with the flags values, to a toml file.\n" +
			"\tUsage: aurabridge export --chain dev --output config.toml",
	}
	generateCommand = cli.Command{
		Action:    FixupAction(generateAction),
		Name:      "generate",
		Usage:     "Generate signed headers of the dev chain",
		ArgsUsage: "",
		Flags:     GenerateFlags,
		Category:  "EXPORT",
		Description: "The generate command writes headers of the dev chain, signed by the dev validators.\n" +
			"\tUsage: aurabridge generate --count 16 --output headers.json.gz",
	}
)

// newApp returns the aurabridge cli application.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "aurabridge"
	app.Usage = "Aura headers chain bridge command-line interface"
	app.Copyright = "Copyright 2021 ChainSafe Systems Authors"
	app.Author = "ChainSafe Systems 2021"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		initCommand,
		importCommand,
		importUnsignedCommand,
		validateUnsignedCommand,
		requiresReceiptsCommand,
		statusCommand,
		exportCommand,
		generateCommand,
	}
	app.Flags = GlobalFlags
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Errorf("failed to run cli app: %s", err)
		os.Exit(1)
	}
}

// FixupAction sets up the logger before running the action.
func FixupAction(action func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		if _, err := setupLogger(ctx); err != nil {
			return fmt.Errorf("failed to setup logger: %w", err)
		}
		return action(ctx)
	}
}

// initAction is the action for the "init" subcommand, initialising the
// bridge database from the genesis of the configuration.
func initAction(ctx *cli.Context) error {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create bridge configuration: %w", err)
	}

	if dot.NodeInitialized(cfg.Global.BasePath) {
		if !ctx.Bool(ForceFlag.Name) {
			return errAlreadyInitialised
		}
		logger.Warnf("clearing the bridge database at %s", cfg.Global.BasePath)
	}

	return dot.InitNode(cfg)
}

// startNode creates and starts the bridge node of the configuration.
func startNode(ctx *cli.Context) (*dot.Node, error) {
	cfg, err := createDotConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create bridge configuration: %w", err)
	}

	node, err := dot.NewNode(cfg, &loggingHandler{logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}

	if err = node.Start(); err != nil {
		return nil, fmt.Errorf("failed to start node: %w", err)
	}
	return node, nil
}

func importAction(ctx *cli.Context) error {
	submitter := types.Submitter(ctx.String(SubmitterFlag.Name))
	if !submitter.IsKnown() {
		return fmt.Errorf("--%s is required", SubmitterFlag.Name)
	}

	headers, err := readHeaders(ctx.String(InputFlag.Name))
	if err != nil {
		return err
	}

	node, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer node.Stop()

	result, err := node.Bridge.ImportSignedHeaders(submitter, headers)
	fmt.Fprintf(ctx.App.Writer, "useful: %d, useless: %d\n", result.Useful, result.Useless)
	if err != nil {
		return fmt.Errorf("importing headers: %w", err)
	}
	return nil
}

func importUnsignedAction(ctx *cli.Context) error {
	header, err := readHeader(ctx.String(InputFlag.Name))
	if err != nil {
		return err
	}

	node, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer node.Stop()

	id, err := node.Bridge.ImportUnsignedHeader(header.Header, header.Receipts)
	if err != nil {
		return fmt.Errorf("importing header: %w", err)
	}
	fmt.Fprintf(ctx.App.Writer, "imported header %s\n", id)
	return nil
}

func validateUnsignedAction(ctx *cli.Context) error {
	header, err := readHeader(ctx.String(InputFlag.Name))
	if err != nil {
		return err
	}

	node, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer node.Stop()

	tags, err := node.Bridge.ValidateUnsignedHeader(header.Header, header.Receipts)
	if err != nil {
		return fmt.Errorf("validating header: %w", err)
	}
	for _, tag := range tags.Requires {
		fmt.Fprintf(ctx.App.Writer, "requires %s\n", hexutil.Encode(tag))
	}
	for _, tag := range tags.Provides {
		fmt.Fprintf(ctx.App.Writer, "provides %s\n", hexutil.Encode(tag))
	}
	return nil
}

func requiresReceiptsAction(ctx *cli.Context) error {
	header, err := readHeader(ctx.String(InputFlag.Name))
	if err != nil {
		return err
	}

	node, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer node.Stop()

	fmt.Fprintln(ctx.App.Writer, node.Bridge.IsImportRequiresReceipts(header.Header))
	return nil
}

func statusAction(ctx *cli.Context) error {
	node, err := startNode(ctx)
	if err != nil {
		return err
	}
	defer node.Stop()

	label := color.New(color.FgCyan, color.Bold)
	best, totalDifficulty := node.Bridge.BestBlock()
	pruningRange := node.Bridge.PruningRange()

	label.Fprint(ctx.App.Writer, "best: ")
	fmt.Fprintf(ctx.App.Writer, "%s (total difficulty %s)\n", best, totalDifficulty.ToBig())
	label.Fprint(ctx.App.Writer, "finalized: ")
	fmt.Fprintf(ctx.App.Writer, "%s\n", node.Bridge.FinalizedBlock())
	label.Fprint(ctx.App.Writer, "pruning range: ")
	fmt.Fprintf(ctx.App.Writer, "[%d, %d)\n", pruningRange.OldestUnprunedBlock, pruningRange.OldestBlockToKeep)

	if submitter := types.Submitter(ctx.String(SubmitterFlag.Name)); submitter.IsKnown() {
		label.Fprintf(ctx.App.Writer, "finalized headers of %s: ", submitter)
		fmt.Fprintf(ctx.App.Writer, "%d\n", node.Bridge.FinalizedHeadersCount(submitter))
	}
	return nil
}

func exportAction(ctx *cli.Context) error {
	fp := ctx.String(OutputFlag.Name)
	if fp == "" {
		return errNoOutput
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to create bridge configuration: %w", err)
	}

	if err = dot.ExportTomlConfig(tomlFromDotConfig(cfg), fp); err != nil {
		return err
	}
	logger.Infof("exported toml configuration to %s", fp)
	return nil
}

func generateAction(ctx *cli.Context) error {
	fp := ctx.String(OutputFlag.Name)
	if fp == "" {
		return errNoOutput
	}

	count := ctx.Int(CountFlag.Name)
	keys := aura.ValidatorKeys(dev.ValidatorsCount)
	headers := make([]types.HeaderWithReceipts, count)
	parent := dev.DefaultConfig().Genesis.Header
	for i := range headers {
		header := aura.NewHeaderBuilder(parent).SignBySet(keys)
		headers[i] = types.HeaderWithReceipts{Header: header}
		parent = header
	}

	if err := writeOutput(fp, headers); err != nil {
		return err
	}
	logger.Infof("generated %d dev headers to %s", count, fp)
	return nil
}
