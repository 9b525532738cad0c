// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ethereum/go-ethereum/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "finality"))

// Storage provides the cached finality votes of the ancestry of a header.
type Storage interface {
	CachedFinalityVotes(parent, bestFinalized types.HeaderID,
		stopAt func(common.Hash) bool) types.CachedFinalityVotes
}

// Finalizer counts the votes of validators for the non-finalized
// ancestry of imported headers.
type Finalizer struct {
	storage Storage
}

// NewFinalizer returns a finalizer reading cached votes from storage.
func NewFinalizer(storage Storage) *Finalizer {
	return &Finalizer{storage: storage}
}

// FinalizeBlocks returns the ancestors of the header, the header included,
// finalized once the header is imported, and the votes to store with it.
// A header is finalized when more than half of the validators, or more than
// two thirds from twoThirdsMajorityTransition on, signed it or its descendants.
func (f *Finalizer) FinalizeBlocks(
	bestFinalized types.HeaderID,
	validatorsSet *types.ValidatorsSet,
	id types.HeaderID,
	submitter types.Submitter,
	header *types.Header,
	twoThirdsMajorityTransition uint64,
) (*types.FinalityEffects, error) {
	validators := make(map[common.Address]struct{}, len(validatorsSet.Validators))
	for _, validator := range validatorsSet.Validators {
		validators[validator] = struct{}{}
	}

	var cached types.CachedFinalityVotes
	if parent, ok := header.ParentID(); ok {
		enactHash := validatorsSet.EnactBlock.Hash
		cached = f.storage.CachedFinalityVotes(parent, bestFinalized, func(hash common.Hash) bool {
			return hash == enactHash || hash == bestFinalized.Hash
		})
	}

	votes, err := prepareVotes(cached, bestFinalized, validators, id, submitter, header)
	if err != nil {
		return nil, err
	}

	var finalized []types.FinalizedHeader
	current := copyVotes(votes.Votes)
	for _, ancestor := range votes.Ancestry {
		twoThirds := ancestor.ID.Number >= twoThirdsMajorityTransition
		if !isFinalized(len(validators), len(current), twoThirds) {
			break
		}
		removeSignersVotes(ancestor.Signers, current)
		finalized = append(finalized, types.FinalizedHeader{
			ID:        ancestor.ID,
			Submitter: ancestor.Submitter,
		})
	}

	if len(finalized) > 0 {
		logger.Debugf("header %s finalizes %d header(s) up to %s",
			id, len(finalized), finalized[len(finalized)-1].ID)
	}

	return &types.FinalityEffects{
		FinalizedHeaders: finalized,
		Votes:            votes,
	}, nil
}

func isFinalized(validators, signers int, twoThirds bool) bool {
	if twoThirds {
		return signers*3 > validators*2
	}
	return signers*2 > validators
}

// prepareVotes updates the cached votes with the ancestors finalized since
// they were cached, then adds the votes of the unaccounted ancestors and of
// the header itself.
func prepareVotes(
	cached types.CachedFinalityVotes,
	bestFinalized types.HeaderID,
	validators map[common.Address]struct{},
	id types.HeaderID,
	submitter types.Submitter,
	header *types.Header,
) (types.FinalityVotes, error) {
	if cached.StoppedAtFinalizedSibling {
		return types.FinalityVotes{}, ErrTryingToFinalizeSibling
	}

	if _, ok := validators[header.Author]; !ok {
		return types.FinalityVotes{}, ErrNotValidator
	}

	votes := cached.Votes.DeepCopy()

	for len(votes.Ancestry) > 0 && votes.Ancestry[0].ID.Number <= bestFinalized.Number {
		removeSignersVotes(votes.Ancestry[0].Signers, votes.Votes)
		votes.Ancestry = votes.Ancestry[1:]
	}

	// unaccounted ancestry is ordered from the newest to the oldest
	for i := len(cached.UnaccountedAncestry) - 1; i >= 0; i-- {
		ancestor := cached.UnaccountedAncestry[i]
		signers := []common.Address{ancestor.Header.Author}
		if err := addSignersVotes(validators, signers, votes.Votes); err != nil {
			return types.FinalityVotes{}, err
		}
		votes.Ancestry = append(votes.Ancestry, types.FinalityAncestor{
			ID:        ancestor.ID,
			Submitter: ancestor.Submitter,
			Signers:   signers,
		})
	}

	votes.Votes[header.Author]++
	votes.Ancestry = append(votes.Ancestry, types.FinalityAncestor{
		ID:        id,
		Submitter: submitter,
		Signers:   []common.Address{header.Author},
	})

	return votes, nil
}

func addSignersVotes(validators map[common.Address]struct{}, signers []common.Address,
	votes map[common.Address]uint64) error {
	for _, signer := range signers {
		if _, ok := validators[signer]; !ok {
			return ErrNotValidator
		}
		votes[signer]++
	}
	return nil
}

func removeSignersVotes(signers []common.Address, votes map[common.Address]uint64) {
	for _, signer := range signers {
		if votes[signer] > 1 {
			votes[signer]--
		} else {
			delete(votes, signer)
		}
	}
}

func copyVotes(votes map[common.Address]uint64) map[common.Address]uint64 {
	cp := make(map[common.Address]uint64, len(votes))
	for signer, count := range votes {
		cp[signer] = count
	}
	return cp
}
