// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// InitialiseGenesis writes the initial header, its total difficulty and
// the initial validators set to an empty bridge state, and commits them.
func (bs *BridgeState) InitialiseGenesis(header *types.Header, totalDifficulty uint256.Int,
	validators []ethcommon.Address) error {
	if bs.IsInitialised() {
		return ErrAlreadyInitialised
	}

	id := header.ID()
	bs.putBestBlock(id, totalDifficulty)
	bs.putRecord(common.FinalizedBlockKey, id)
	bs.putRecord(common.PruningRangeKey, types.PruningRange{
		OldestUnprunedBlock: id.Number,
		OldestBlockToKeep:   id.Number,
	})
	bs.putRecord(common.HeadersByNumberKey(id.Number), []ethcommon.Hash{id.Hash})
	bs.putRecord(common.HeaderKey(id.Hash[:]), newStoredHeaderRecord(&types.StoredHeader{
		Header:          header,
		TotalDifficulty: totalDifficulty,
	}))
	bs.putRecord(common.ValidatorsSetKey(0), newValidatorsSetRecord(types.ValidatorsSet{
		Validators: validators,
		EnactBlock: id,
	}))
	bs.putRecord(common.ValidatorsSetRcKey(0), uint64(1))
	bs.putRecord(common.NextValidatorsSetIDKey, uint64(1))

	logger.Infof("initialised bridge with header %s and %d validators", id, len(validators))
	return bs.Commit()
}

// InsertHeader inserts a verified header, and the validators set changes
// it signals or enacts.
func (bs *BridgeState) InsertHeader(header *types.HeaderToImport) {
	if header.IsBest {
		bs.putBestBlock(header.ID, header.TotalDifficulty)
	}

	if header.ScheduledChange != nil {
		bs.putRecord(common.ScheduledChangeKey(header.ID.Hash[:]), newScheduledChangeRecord(types.ScheduledChange{
			Validators:      header.ScheduledChange,
			PrevSignalBlock: header.Context.LastSignalBlock(),
		}))
	}

	var nextValidatorsSetID uint64
	if header.EnactedChange != nil {
		bs.getRecord(common.NextValidatorsSetIDKey, &nextValidatorsSetID)
		bs.putRecord(common.NextValidatorsSetIDKey, nextValidatorsSetID+1)
		bs.putRecord(common.ValidatorsSetKey(nextValidatorsSetID), newValidatorsSetRecord(types.ValidatorsSet{
			Validators:  header.EnactedChange.Validators,
			SignalBlock: header.EnactedChange.SignalBlock,
			EnactBlock:  header.ID,
		}))
		bs.putRecord(common.ValidatorsSetRcKey(nextValidatorsSetID), uint64(1))
		logger.Debugf("header %s enacts validators set %d with %d validators",
			header.ID, nextValidatorsSetID, len(header.EnactedChange.Validators))
	} else {
		nextValidatorsSetID = header.Context.ValidatorsSetID
		rc := bs.ValidatorsSetRc(nextValidatorsSetID)
		bs.putRecord(common.ValidatorsSetRcKey(nextValidatorsSetID), rc+1)
	}

	interval := bs.config.FinalityVotesCachingInterval
	if interval != 0 && header.ID.Number != 0 && header.ID.Number%interval == 0 {
		bs.putRecord(common.FinalityCacheKey(header.ID.Hash[:]), newFinalityVotesRecord(header.FinalityVotes))
	}

	hashes := bs.HeadersByNumber(header.ID.Number)
	bs.putRecord(common.HeadersByNumberKey(header.ID.Number), append(hashes, header.ID.Hash))

	bs.putRecord(common.HeaderKey(header.ID.Hash[:]), newStoredHeaderRecord(&types.StoredHeader{
		Submitter:           header.Context.Submitter,
		Header:              header.Header,
		TotalDifficulty:     header.TotalDifficulty,
		NextValidatorsSetID: nextValidatorsSetID,
		LastSignalBlock:     header.Context.LastSignalBlock(),
	}))

	bs.insertedCounter.Inc()
}
