// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// HeaderLookup is the storage needed to decide if a header may be imported.
type HeaderLookup interface {
	FinalizedBlock() types.HeaderID
	Header(hash common.Hash) (*types.Header, types.Submitter, bool)
}

// Storage is the storage of imported headers.
type Storage interface {
	HeaderLookup
	BestBlock() (types.HeaderID, uint256.Int)
	// InsertHeader inserts a verified header. It must not fail.
	InsertHeader(header *types.HeaderToImport)
	// FinalizeAndPruneHeaders moves the finalized block to finalized, if not nil,
	// and prunes headers below pruneEnd, if not nil. It must not fail.
	FinalizeAndPruneHeaders(finalized *types.HeaderID, pruneEnd *uint64)
}

// Verifier verifies the consensus rules of a header.
type Verifier interface {
	VerifyHeader(submitter types.Submitter, header *types.Header) (*types.ImportContext, error)
}

// ValidatorSource extracts and resolves validators set changes.
type ValidatorSource interface {
	MaybeSignalsChange(header *types.Header) bool
	ExtractChange(header *types.Header, receipts types.Receipts) (scheduled, enacted []common.Address, err error)
	ResolveChange(finalized []types.FinalizedHeader) *types.ChangeToEnact
}

// Finalizer computes the headers finalized by a header.
type Finalizer interface {
	FinalizeBlocks(
		bestFinalized types.HeaderID,
		validatorsSet *types.ValidatorsSet,
		id types.HeaderID,
		submitter types.Submitter,
		header *types.Header,
		twoThirdsMajorityTransition uint64,
	) (*types.FinalityEffects, error)
}
