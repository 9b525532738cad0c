// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// FinalizeAndPruneHeaders records the new best finalized header, if any,
// and prunes headers below pruneEnd, if given.
func (bs *BridgeState) FinalizeAndPruneHeaders(finalized *types.HeaderID, pruneEnd *uint64) {
	var finalizedNumber uint64
	if finalized != nil {
		bs.putRecord(common.FinalizedBlockKey, *finalized)
		finalizedNumber = finalized.Number
	} else {
		finalizedNumber = bs.FinalizedBlock().Number
	}

	if pruneEnd != nil {
		bs.pruneHeaders(finalizedNumber, *pruneEnd)
	}
}

// pruneHeaders removes at most MaxBlocksToPruneInSingleImport headers,
// from the oldest unpruned number up to, excluding, the oldest header to keep.
// It stops at the first non finalized number where a header signals a
// validators change, since this change is still awaiting finalization.
func (bs *BridgeState) pruneHeaders(finalizedNumber, pruneEnd uint64) {
	pruningRange := bs.PruningRange()
	newRange := pruningRange
	if pruneEnd > newRange.OldestBlockToKeep {
		newRange.OldestBlockToKeep = pruneEnd
	}

	remaining := bs.config.MaxBlocksToPruneInSingleImport
	for number := newRange.OldestUnprunedBlock; number < newRange.OldestBlockToKeep; number++ {
		if remaining == 0 {
			break
		}

		hashes := bs.HeadersByNumber(number)
		if len(hashes) != 0 {
			if number > finalizedNumber && bs.anyScheduledChange(hashes) {
				break
			}

			hashes = bs.pruneHashes(hashes, &remaining)
			if len(hashes) != 0 {
				bs.putRecord(common.HeadersByNumberKey(number), hashes)
				break
			}
			bs.del(common.HeadersByNumberKey(number))
		}

		newRange.OldestUnprunedBlock = number + 1
	}

	if newRange != pruningRange {
		bs.putRecord(common.PruningRangeKey, newRange)
		logger.Debugf("pruning range moved from [%d, %d) to [%d, %d)",
			pruningRange.OldestUnprunedBlock, pruningRange.OldestBlockToKeep,
			newRange.OldestUnprunedBlock, newRange.OldestBlockToKeep)
	}
}

func (bs *BridgeState) anyScheduledChange(hashes []ethcommon.Hash) bool {
	for _, hash := range hashes {
		if _, has := bs.get(common.ScheduledChangeKey(hash[:])); has {
			return true
		}
	}
	return false
}

// pruneHashes removes the headers from the end of hashes until remaining
// reaches zero, and returns the hashes left.
func (bs *BridgeState) pruneHashes(hashes []ethcommon.Hash, remaining *uint64) []ethcommon.Hash {
	for len(hashes) != 0 && *remaining != 0 {
		hash := hashes[len(hashes)-1]
		hashes = hashes[:len(hashes)-1]

		stored, has := bs.StoredHeader(hash)
		bs.del(common.HeaderKey(hash[:]))
		bs.del(common.ScheduledChangeKey(hash[:]))
		bs.del(common.FinalityCacheKey(hash[:]))
		if has {
			bs.releaseValidatorsSet(stored.NextValidatorsSetID)
		}

		bs.prunedCounter.Inc()
		logger.Tracef("pruned header %s", hash)
		*remaining--
	}
	return hashes
}

func (bs *BridgeState) releaseValidatorsSet(id uint64) {
	rc := bs.ValidatorsSetRc(id)
	if rc > 1 {
		bs.putRecord(common.ValidatorsSetRcKey(id), rc-1)
		return
	}

	bs.del(common.ValidatorsSetRcKey(id))
	bs.del(common.ValidatorsSetKey(id))
	logger.Debugf("validators set %d is no longer referenced and was removed", id)
}
