// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import (
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/holiman/uint256"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "importer"))

// Config is the configuration of the importer.
type Config struct {
	// TwoThirdsMajorityTransition is passed to the finalizer unchanged.
	TwoThirdsMajorityTransition uint64
	// Pruning defaults to keeping pruner.DefaultRetainedBlocks headers.
	Pruning pruner.Strategy
}

// Importer imports headers into the storage, tracking the best header,
// the finalized header and the validators set changes.
type Importer struct {
	storage    Storage
	verifier   Verifier
	validators ValidatorSource
	finalizer  Finalizer
	config     Config
}

// NewImporter returns an importer over the storage and its collaborators,
// which must read the same storage.
func NewImporter(storage Storage, verifier Verifier, validators ValidatorSource,
	finalizer Finalizer, config Config) *Importer {
	if config.Pruning == nil {
		config.Pruning = &pruner.DepthKeeper{Depth: pruner.DefaultRetainedBlocks}
	}
	return &Importer{
		storage:    storage,
		verifier:   verifier,
		validators: validators,
		finalizer:  finalizer,
		config:     config,
	}
}

// importPlan holds every effect of a header import, computed before
// anything is written to the storage.
type importPlan struct {
	header           *types.HeaderToImport
	finalizedHeaders []types.FinalizedHeader
	lastFinalized    *types.HeaderID
	pruneEnd         *uint64
}

// IsImportableHeader returns the id of the header if it is neither ancient
// nor known.
func IsImportableHeader(storage HeaderLookup, header *types.Header) (types.HeaderID, error) {
	if header.Number <= storage.FinalizedBlock().Number {
		return types.HeaderID{}, ErrAncientHeader
	}

	id := header.ID()
	if _, _, has := storage.Header(id.Hash); has {
		return types.HeaderID{}, ErrKnownHeader
	}
	return id, nil
}

// ImportHeader imports a single header with its receipts, which may be nil.
// It returns the id of the header and the headers it finalized, ordered
// from the oldest to the newest. The storage is left untouched on error.
func (i *Importer) ImportHeader(submitter types.Submitter, header *types.Header, receipts types.Receipts) (
	types.HeaderID, []types.FinalizedHeader, error) {
	plan, err := i.plan(submitter, header, receipts)
	if err != nil {
		if IsUseless(err) {
			uselessCounter.Inc()
		} else {
			rejectedCounter.Inc()
		}
		return types.HeaderID{}, nil, err
	}

	i.apply(plan)
	usefulCounter.Inc()
	return plan.header.ID, plan.finalizedHeaders, nil
}

func (i *Importer) plan(submitter types.Submitter, header *types.Header, receipts types.Receipts) (
	*importPlan, error) {
	id, err := IsImportableHeader(i.storage, header)
	if err != nil {
		return nil, err
	}

	context, err := i.verifier.VerifyHeader(submitter, header)
	if err != nil {
		return nil, err
	}

	scheduled, enacted, err := i.validators.ExtractChange(header, receipts)
	if err != nil {
		return nil, err
	}

	bestFinalized := i.storage.FinalizedBlock()
	effects, err := i.finalizer.FinalizeBlocks(bestFinalized, &context.ValidatorsSet, id,
		submitter, header, i.config.TwoThirdsMajorityTransition)
	if err != nil {
		return nil, err
	}

	var enactedChange *types.ChangeToEnact
	if enacted != nil {
		enactedChange = &types.ChangeToEnact{Validators: enacted}
	} else {
		enactedChange = i.validators.ResolveChange(effects.FinalizedHeaders)
	}

	_, bestTotalDifficulty := i.storage.BestBlock()
	var totalDifficulty uint256.Int
	totalDifficulty.Add(&context.ParentTotalDifficulty, &header.Difficulty)
	isBest := totalDifficulty.Gt(&bestTotalDifficulty)

	plan := &importPlan{
		header: context.NewHeaderToImport(header, id, isBest, totalDifficulty,
			enactedChange, scheduled, effects.Votes),
		finalizedHeaders: effects.FinalizedHeaders,
	}
	if n := len(effects.FinalizedHeaders); n > 0 {
		plan.lastFinalized = &effects.FinalizedHeaders[n-1].ID
	}
	if isBest {
		if pruneEnd, ok := i.config.Pruning.PruningUpperBound(id.Number); ok {
			plan.pruneEnd = &pruneEnd
		}
	}
	return plan, nil
}

func (i *Importer) apply(plan *importPlan) {
	i.storage.InsertHeader(plan.header)
	i.storage.FinalizeAndPruneHeaders(plan.lastFinalized, plan.pruneEnd)

	if plan.header.IsBest {
		bestNumberGauge.Set(float64(plan.header.ID.Number))
	}
	if plan.lastFinalized != nil {
		finalizedNumberGauge.Set(float64(plan.lastFinalized.Number))
		finalizedCounter.Add(float64(len(plan.finalizedHeaders)))
	}

	logger.Debugf("imported header %s, best: %t, finalized: %d header(s)",
		plan.header.ID, plan.header.IsBest, len(plan.finalizedHeaders))
}

// HeaderImportRequiresReceipts returns true if the header may be imported
// and its import needs the transactions receipts.
func (i *Importer) HeaderImportRequiresReceipts(header *types.Header) bool {
	if _, err := IsImportableHeader(i.storage, header); err != nil {
		return false
	}
	return i.validators.MaybeSignalsChange(header)
}
