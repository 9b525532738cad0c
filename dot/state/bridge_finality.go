// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// CachedFinalityVotes walks the ancestry of a header, starting at its parent,
// until it reaches a header for which stopAt returns true, a cached finality
// votes entry, or the number of the best finalized header.
func (bs *BridgeState) CachedFinalityVotes(parent, bestFinalized types.HeaderID,
	stopAt func(ethcommon.Hash) bool) (votes types.CachedFinalityVotes) {
	current := parent
	for {
		if current.Number == bestFinalized.Number && current.Hash != bestFinalized.Hash {
			votes.StoppedAtFinalizedSibling = true
			return votes
		}

		if stopAt(current.Hash) {
			return votes
		}

		if cached, has := bs.FinalityVotes(current.Hash); has {
			votes.Votes = cached
			return votes
		}

		stored, has := bs.StoredHeader(current.Hash)
		if !has || stored.Header.Number == 0 {
			return votes
		}

		votes.UnaccountedAncestry = append(votes.UnaccountedAncestry, types.UnaccountedAncestor{
			ID:        current,
			Submitter: stored.Submitter,
			Header:    stored.Header,
		})
		current, _ = stored.Header.ParentID()
	}
}
