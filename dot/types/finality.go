// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// FinalizedHeader is a header finalized by an import, with its submitter.
type FinalizedHeader struct {
	ID        HeaderID
	Submitter Submitter
}

// FinalityAncestor is a non-finalized header whose signers vote for its ancestry.
type FinalityAncestor struct {
	ID        HeaderID
	Submitter Submitter
	Signers   []common.Address
}

// FinalityVotes are the votes of the non-finalized ancestry of a header.
type FinalityVotes struct {
	// Votes counts, per signer, the ancestors signed by it.
	Votes map[common.Address]uint64
	// Ancestry is ordered from the oldest to the newest header.
	Ancestry []FinalityAncestor
}

// DeepCopy returns a deep copy of the votes.
func (v FinalityVotes) DeepCopy() FinalityVotes {
	cp := FinalityVotes{
		Votes:    make(map[common.Address]uint64, len(v.Votes)),
		Ancestry: make([]FinalityAncestor, len(v.Ancestry)),
	}
	for signer, count := range v.Votes {
		cp.Votes[signer] = count
	}
	for i, ancestor := range v.Ancestry {
		ancestor.Signers = append([]common.Address(nil), ancestor.Signers...)
		cp.Ancestry[i] = ancestor
	}
	return cp
}

// UnaccountedAncestor is an ancestor whose votes are not in any cached entry.
type UnaccountedAncestor struct {
	ID        HeaderID
	Submitter Submitter
	Header    *Header
}

// CachedFinalityVotes is the result of walking the ancestry of a header
// back to the nearest cached votes entry.
type CachedFinalityVotes struct {
	// StoppedAtFinalizedSibling is true when the walk reached the number of
	// the best finalized header on a different branch.
	StoppedAtFinalizedSibling bool
	// UnaccountedAncestry is ordered from the newest to the oldest header.
	UnaccountedAncestry []UnaccountedAncestor
	// Votes is the cached entry where the walk stopped, zero if none.
	Votes FinalityVotes
}

// FinalityEffects are the effects of a header on finality.
type FinalityEffects struct {
	// FinalizedHeaders are ordered from the oldest to the newest header.
	FinalizedHeaders []FinalizedHeader
	Votes            FinalityVotes
}
