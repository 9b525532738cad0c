// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Records are RLP encoded. Optional values are encoded as
// slices holding zero or one element.

type bestBlockRecord struct {
	ID              types.HeaderID
	TotalDifficulty *big.Int
}

type storedHeaderRecord struct {
	Submitter           types.Submitter
	Header              *types.Header
	TotalDifficulty     *big.Int
	NextValidatorsSetID uint64
	LastSignalBlock     []types.HeaderID
}

type validatorsSetRecord struct {
	Validators  []common.Address
	SignalBlock []types.HeaderID
	EnactBlock  types.HeaderID
}

type scheduledChangeRecord struct {
	Validators      []common.Address
	PrevSignalBlock []types.HeaderID
}

type voteRecord struct {
	Signer common.Address
	Count  uint64
}

type ancestorRecord struct {
	ID        types.HeaderID
	Submitter types.Submitter
	Signers   []common.Address
}

type finalityVotesRecord struct {
	Votes    []voteRecord
	Ancestry []ancestorRecord
}

func optionalID(id *types.HeaderID) []types.HeaderID {
	if id == nil {
		return nil
	}
	return []types.HeaderID{*id}
}

func fromOptionalID(ids []types.HeaderID) *types.HeaderID {
	if len(ids) == 0 {
		return nil
	}
	id := ids[0]
	return &id
}

func toUint256(value *big.Int) (u uint256.Int) {
	if value != nil {
		// values are written from uint256.Int so they cannot overflow
		u.SetFromBig(value)
	}
	return u
}

func newStoredHeaderRecord(header *types.StoredHeader) storedHeaderRecord {
	return storedHeaderRecord{
		Submitter:           header.Submitter,
		Header:              header.Header,
		TotalDifficulty:     header.TotalDifficulty.ToBig(),
		NextValidatorsSetID: header.NextValidatorsSetID,
		LastSignalBlock:     optionalID(header.LastSignalBlock),
	}
}

func (r storedHeaderRecord) storedHeader() *types.StoredHeader {
	return &types.StoredHeader{
		Submitter:           r.Submitter,
		Header:              r.Header,
		TotalDifficulty:     toUint256(r.TotalDifficulty),
		NextValidatorsSetID: r.NextValidatorsSetID,
		LastSignalBlock:     fromOptionalID(r.LastSignalBlock),
	}
}

func newValidatorsSetRecord(set types.ValidatorsSet) validatorsSetRecord {
	return validatorsSetRecord{
		Validators:  set.Validators,
		SignalBlock: optionalID(set.SignalBlock),
		EnactBlock:  set.EnactBlock,
	}
}

func (r validatorsSetRecord) validatorsSet() types.ValidatorsSet {
	return types.ValidatorsSet{
		Validators:  r.Validators,
		SignalBlock: fromOptionalID(r.SignalBlock),
		EnactBlock:  r.EnactBlock,
	}
}

func newScheduledChangeRecord(change types.ScheduledChange) scheduledChangeRecord {
	return scheduledChangeRecord{
		Validators:      change.Validators,
		PrevSignalBlock: optionalID(change.PrevSignalBlock),
	}
}

func (r scheduledChangeRecord) scheduledChange() *types.ScheduledChange {
	return &types.ScheduledChange{
		Validators:      r.Validators,
		PrevSignalBlock: fromOptionalID(r.PrevSignalBlock),
	}
}

func newFinalityVotesRecord(votes types.FinalityVotes) finalityVotesRecord {
	record := finalityVotesRecord{
		Votes:    make([]voteRecord, 0, len(votes.Votes)),
		Ancestry: make([]ancestorRecord, len(votes.Ancestry)),
	}
	for signer, count := range votes.Votes {
		record.Votes = append(record.Votes, voteRecord{Signer: signer, Count: count})
	}
	sort.Slice(record.Votes, func(i, j int) bool {
		return bytes.Compare(record.Votes[i].Signer[:], record.Votes[j].Signer[:]) < 0
	})
	for i, ancestor := range votes.Ancestry {
		record.Ancestry[i] = ancestorRecord(ancestor)
	}
	return record
}

func (r finalityVotesRecord) finalityVotes() types.FinalityVotes {
	votes := types.FinalityVotes{
		Votes:    make(map[common.Address]uint64, len(r.Votes)),
		Ancestry: make([]types.FinalityAncestor, len(r.Ancestry)),
	}
	for _, vote := range r.Votes {
		votes.Votes[vote.Signer] = vote.Count
	}
	for i, ancestor := range r.Ancestry {
		votes.Ancestry[i] = types.FinalityAncestor(ancestor)
	}
	return votes
}
