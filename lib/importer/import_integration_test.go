// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import (
	"testing"

	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/finality"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newTestImporter(t *testing.T, source validators.Source, pruning pruner.Strategy) (
	*Importer, *state.BridgeState, *types.Header) {
	t.Helper()

	genesis := aura.GenesisHeader()
	bs := state.NewTestBridgeState(t, state.DefaultBridgeConfig(), genesis, aura.ValidatorsAddresses(3))
	config := aura.TestConfiguration()
	importer := NewImporter(
		bs,
		aura.NewVerifier(config, bs),
		validators.New(validators.NewSingleConfiguration(source), bs),
		finality.NewFinalizer(bs),
		Config{
			TwoThirdsMajorityTransition: config.TwoThirdsMajorityTransition,
			Pruning:                     pruning,
		},
	)
	return importer, bs, genesis
}

func importAndCommit(t *testing.T, importer *Importer, bs *state.BridgeState, submitter types.Submitter,
	header *types.Header, receipts types.Receipts) []types.FinalizedHeader {
	t.Helper()

	_, finalized, err := importer.ImportHeader(submitter, header, receipts)
	require.NoError(t, err)
	require.NoError(t, bs.Commit())
	return finalized
}

func finalizedNumbers(finalized []types.FinalizedHeader) (numbers []uint64) {
	for _, header := range finalized {
		numbers = append(numbers, header.ID.Number)
	}
	return numbers
}

func Test_Importer_finalizesAndEnactsChange(t *testing.T) {
	t.Parallel()

	keys := aura.ValidatorKeys(3)
	importer, bs, genesis := newTestImporter(t,
		validators.NewContractSource(validators.TestContractAddress, aura.ValidatorsAddresses(3)),
		&pruner.DepthKeeper{Depth: 10})

	// each header finalizes its parent
	parent := genesis
	for number := uint64(1); number <= 10; number++ {
		header := aura.NewHeaderBuilder(parent).SignBySet(keys)
		finalized := importAndCommit(t, importer, bs, "100", header, nil)
		if number == 1 {
			assert.Empty(t, finalized)
		} else {
			assert.Equal(t, []uint64{number - 1}, finalizedNumbers(finalized))
		}
		parent = header
	}

	// header 11 signals a validators change
	var receipts types.Receipts
	header11 := aura.NewHeaderBuilder(parent).Customize(func(header *types.Header) {
		receipts = validators.WithValidatorsChange(header)
	}).SignBySet(keys)
	require.True(t, importer.HeaderImportRequiresReceipts(header11))

	_, _, err := importer.ImportHeader("101", header11, nil)
	require.ErrorIs(t, err, validators.ErrMissingTransactionsReceipts)

	finalized := importAndCommit(t, importer, bs, "101", header11, receipts)
	assert.Equal(t, []uint64{10}, finalizedNumbers(finalized))
	assert.Equal(t, types.PruningRange{OldestUnprunedBlock: 1, OldestBlockToKeep: 1}, bs.PruningRange())
	_, _, has := bs.Header(genesis.Hash())
	assert.False(t, has)
	_, has = bs.ScheduledChange(header11.Hash())
	require.True(t, has)

	// headers 12 to 24 are all authored by the same validator
	parent = header11
	for number := uint64(12); number <= 24; number++ {
		parentStep, _ := parent.Step()
		header := aura.NewHeaderBuilder(parent).Step(parentStep + 3).SignBy(keys[2])
		finalized := importAndCommit(t, importer, bs, "102", header, nil)
		assert.Empty(t, finalized)
		parent = header
	}
	assert.Equal(t, types.HeaderID{Number: 10, Hash: header11.ParentHash}, bs.FinalizedBlock())
	assert.Equal(t, types.PruningRange{OldestUnprunedBlock: 11, OldestBlockToKeep: 14}, bs.PruningRange())

	// header 25 finalizes 11 to 24, and enacts the change of header 11
	parentStep, _ := parent.Step()
	header25 := aura.NewHeaderBuilder(parent).Step(parentStep + 1).SignBy(keys[0])
	finalized = importAndCommit(t, importer, bs, "103", header25, nil)

	var expected []uint64
	for number := uint64(11); number <= 24; number++ {
		expected = append(expected, number)
	}
	assert.Equal(t, expected, finalizedNumbers(finalized))
	assert.Equal(t, types.Submitter("101"), finalized[0].Submitter)
	assert.Equal(t, types.Submitter("102"), finalized[len(finalized)-1].Submitter)
	assert.Equal(t, parent.ID(), bs.FinalizedBlock())
	assert.Equal(t, types.PruningRange{OldestUnprunedBlock: 15, OldestBlockToKeep: 15}, bs.PruningRange())

	best, _ := bs.BestBlock()
	assert.Equal(t, header25.ID(), best)

	context, has := bs.ImportContext("", header25.Hash())
	require.True(t, has)
	assert.Equal(t, []common.Address{validators.TestNewValidator}, context.ValidatorsSet.Validators)
	assert.Equal(t, header11.ID(), *context.ValidatorsSet.SignalBlock)
	assert.Equal(t, header25.ID(), context.ValidatorsSet.EnactBlock)
}

func Test_Importer_ImportHeader_rejectsKnownAndAncient(t *testing.T) {
	t.Parallel()

	keys := aura.ValidatorKeys(3)
	importer, bs, genesis := newTestImporter(t,
		validators.NewListSource(aura.ValidatorsAddresses(3)), nil)

	header1 := aura.NewHeaderBuilder(genesis).SignBySet(keys)
	importAndCommit(t, importer, bs, "", header1, nil)

	_, _, err := importer.ImportHeader("", header1, nil)
	assert.ErrorIs(t, err, ErrKnownHeader)
	_, _, err = importer.ImportHeader("", genesis, nil)
	assert.ErrorIs(t, err, ErrAncientHeader)

	header2 := aura.NewHeaderBuilder(header1).SignBySet(keys)
	importAndCommit(t, importer, bs, "", header2, nil)
	assert.Equal(t, header1.ID(), bs.FinalizedBlock())

	// a sibling of the finalized header is now ancient
	sibling := aura.NewHeaderBuilder(genesis).Step(aura.GenesisStep + 2).SignBySet(keys)
	_, _, err = importer.ImportHeader("", sibling, nil)
	assert.ErrorIs(t, err, ErrAncientHeader)
}

func Test_Importer_ImportHeader_forkChoice(t *testing.T) {
	t.Parallel()

	keys := aura.ValidatorKeys(3)
	importer, bs, genesis := newTestImporter(t,
		validators.NewListSource(aura.ValidatorsAddresses(3)), nil)

	// the header of the earlier step has the highest score
	late := aura.NewHeaderBuilder(genesis).Step(aura.GenesisStep + 2).SignBySet(keys)
	importAndCommit(t, importer, bs, "", late, nil)
	best, _ := bs.BestBlock()
	assert.Equal(t, late.ID(), best)

	early := aura.NewHeaderBuilder(genesis).SignBySet(keys)
	importAndCommit(t, importer, bs, "", early, nil)
	best, _ = bs.BestBlock()
	assert.Equal(t, early.ID(), best)

	// the late fork takes over once it is longer
	child := aura.NewHeaderBuilder(late).SignBySet(keys)
	importAndCommit(t, importer, bs, "", child, nil)
	best, _ = bs.BestBlock()
	assert.Equal(t, child.ID(), best)
}

func Test_Importer_ImportHeaders_realState(t *testing.T) {
	t.Parallel()

	keys := aura.ValidatorKeys(3)
	importer, bs, genesis := newTestImporter(t,
		validators.NewListSource(aura.ValidatorsAddresses(3)), nil)

	header1 := aura.NewHeaderBuilder(genesis).SignBySet(keys)
	importAndCommit(t, importer, bs, "alice", header1, nil)

	header2 := aura.NewHeaderBuilder(header1).SignBySet(keys)
	header3 := aura.NewHeaderBuilder(header2).SignBySet(keys)
	invalid := aura.NewHeaderBuilder(header3).SignBy(keys[0])

	result, err := importer.ImportHeaders("bob", []types.HeaderWithReceipts{
		{Header: header1},
		{Header: header2},
		{Header: header3},
		{Header: invalid},
	})
	assert.Same(t, aura.ErrNotValidator, err)
	assert.Equal(t, BatchResult{
		Useful:    2,
		Useless:   1,
		Finalized: map[types.Submitter]uint64{"alice": 1, "bob": 1},
	}, result)
	require.NoError(t, bs.Commit())

	best, _ := bs.BestBlock()
	assert.Equal(t, header3.ID(), best)
	assert.Equal(t, header2.ID(), bs.FinalizedBlock())
}

func Test_Importer_ImportHeader_monotonicity(t *testing.T) {
	t.Parallel()

	keys := aura.ValidatorKeys(3)

	rapid.Check(t, func(rt *rapid.T) {
		importer, bs, genesis := newTestImporter(t,
			validators.NewListSource(aura.ValidatorsAddresses(3)),
			&pruner.DepthKeeper{Depth: rapid.Uint64Range(1, 8).Draw(rt, "depth").(uint64)})

		headers := []*types.Header{genesis}
		count := rapid.IntRange(1, 30).Draw(rt, "count").(int)
		for i := 0; i < count; i++ {
			parent := headers[rapid.IntRange(0, len(headers)-1).Draw(rt, "parent").(int)]
			parentStep, _ := parent.Step()
			step := parentStep + rapid.Uint64Range(1, 4).Draw(rt, "step").(uint64)
			header := aura.NewHeaderBuilder(parent).Step(step).SignBySet(keys)

			bestBefore, tdBefore := bs.BestBlock()
			finalizedBefore := bs.FinalizedBlock()
			rangeBefore := bs.PruningRange()

			_, _, err := importer.ImportHeader("", header, nil)
			require.NoError(rt, bs.Commit())

			best, td := bs.BestBlock()
			if err != nil {
				require.Equal(rt, bestBefore, best)
				require.Equal(rt, finalizedBefore, bs.FinalizedBlock())
				require.Equal(rt, rangeBefore, bs.PruningRange())
				continue
			}

			headers = append(headers, header)
			require.False(rt, td.Lt(&tdBefore), "best total difficulty decreased")
			require.GreaterOrEqual(rt, bs.FinalizedBlock().Number, finalizedBefore.Number)
			pruningRange := bs.PruningRange()
			require.GreaterOrEqual(rt, pruningRange.OldestUnprunedBlock, rangeBefore.OldestUnprunedBlock)
			require.GreaterOrEqual(rt, pruningRange.OldestBlockToKeep, rangeBefore.OldestBlockToKeep)
			require.LessOrEqual(rt, pruningRange.OldestUnprunedBlock, pruningRange.OldestBlockToKeep)
		}
	})
}
