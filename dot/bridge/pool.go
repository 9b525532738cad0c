// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/importer"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// DefaultMaxFutureNumberDifference is the default number of headers an
// unsigned header may be ahead of the best header.
const DefaultMaxFutureNumberDifference = 10

// PoolConfig holds the transactions pool limits of unsigned headers.
type PoolConfig struct {
	MaxFutureNumberDifference uint64
}

// DefaultPoolConfig returns the default pool configuration.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{MaxFutureNumberDifference: DefaultMaxFutureNumberDifference}
}

// PoolTags are the tags of an unsigned header transaction.
// A transaction is only valid once every required tag is provided
// by another transaction, and at most one transaction provides a tag.
type PoolTags struct {
	Requires [][]byte
	Provides [][]byte
}

type poolStorage interface {
	importer.HeaderLookup
	BestBlock() (types.HeaderID, uint256.Int)
	ImportContext(submitter types.Submitter, parentHash common.Hash) (*types.ImportContext, bool)
	ScheduledChange(hash common.Hash) (*types.ScheduledChange, bool)
}

type changeDetector interface {
	MaybeSignalsChange(header *types.Header) bool
}

// acceptIntoPool checks the unsigned header as far as possible without
// its parent, and returns its pool tags.
func acceptIntoPool(storage poolStorage, config *aura.Configuration, detector changeDetector,
	poolConfig PoolConfig, header *types.Header, receipts types.Receipts) (*PoolTags, error) {
	id, err := importer.IsImportableHeader(storage, header)
	if err != nil {
		return nil, err
	}

	if err = aura.ContextlessChecks(config, header); err != nil {
		return nil, err
	}

	// the same header must not be in the pool twice, with and without receipts
	receiptsRequired := detector.MaybeSignalsChange(header)
	switch {
	case receiptsRequired && receipts == nil:
		return nil, validators.ErrMissingTransactionsReceipts
	case !receiptsRequired && receipts != nil:
		return nil, ErrRedundantTransactionsReceipts
	}

	best, _ := storage.BestBlock()
	if header.Number > best.Number && header.Number-best.Number > poolConfig.MaxFutureNumberDifference {
		return nil, ErrUnsignedTooFarInTheFuture
	}

	tags := &PoolTags{
		Provides: [][]byte{
			encodeTag(header.Number, header.Author),
			encodeTag(id.Number, id.Hash),
		},
	}

	if context, has := storage.ImportContext("", header.ParentHash); has {
		step, err := aura.ContextualChecks(config, context, header)
		if err != nil {
			return nil, err
		}
		if err = aura.ValidatorChecks(config, context.ValidatorsSet.Validators, header, step); err != nil {
			return nil, err
		}
	} else {
		// without the parent, the header is assumed to extend the best chain
		// and to be authored by the current or the next signalled validators
		step, ok := header.Step()
		if !ok {
			return nil, aura.ErrMissingStep
		}
		bestContext, has := storage.ImportContext("", best.Hash)
		if !has {
			return nil, aura.ErrMissingParentBlock
		}
		err = aura.ValidatorChecks(config, bestContext.ValidatorsSet.Validators, header, step)
		if err != nil {
			next := findNextValidatorsSignal(storage, bestContext)
			if next == nil {
				return nil, err
			}
			if err = aura.ValidatorChecks(config, next, header, step); err != nil {
				return nil, err
			}
		}
		tags.Requires = [][]byte{encodeTag(header.Number-1, header.ParentHash)}
	}

	if receipts != nil && !header.CheckReceiptsRoot(receipts) {
		return nil, validators.ErrTransactionsReceiptsMismatch
	}

	return tags, nil
}

// findNextValidatorsSignal returns the validators of the oldest change
// signalled after the current validators set, if any.
func findNextValidatorsSignal(storage poolStorage, context *types.ImportContext) []common.Address {
	var next *types.ScheduledChange
	current := context.LastSignalBlock()
	for {
		if current == nil || isSignalBlock(*current, context.ValidatorsSet.SignalBlock) {
			if next == nil {
				return nil
			}
			return next.Validators
		}

		change, has := storage.ScheduledChange(current.Hash)
		if !has {
			return nil
		}
		next, current = change, change.PrevSignalBlock
	}
}

func isSignalBlock(id types.HeaderID, signalBlock *types.HeaderID) bool {
	return signalBlock != nil && *signalBlock == id
}

func encodeTag(number uint64, value interface{}) []byte {
	encoded, err := rlp.EncodeToBytes([]interface{}{number, value})
	if err != nil {
		panic(err)
	}
	return encoded
}
