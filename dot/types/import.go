// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Submitter identifies the account that submitted headers to the bridge.
// The empty submitter is used for unsigned submissions.
type Submitter string

// IsKnown returns true if the submitter is not the empty submitter.
func (s Submitter) IsKnown() bool {
	return s != ""
}

// StoredHeader is a header persisted by the bridge.
type StoredHeader struct {
	Submitter       Submitter
	Header          *Header
	TotalDifficulty uint256.Int
	// NextValidatorsSetID is the id of the validators set that
	// authors the children of this header.
	NextValidatorsSetID uint64
	// LastSignalBlock is the latest ancestor of this header, excluding
	// the header itself, which signalled a validators change.
	LastSignalBlock *HeaderID
}

// ImportContext is everything known about the parent of
// a header before this header is imported.
type ImportContext struct {
	Submitter             Submitter
	ParentHash            common.Hash
	ParentHeader          *Header
	ParentTotalDifficulty uint256.Int
	ParentScheduledChange *ScheduledChange
	ValidatorsSetID       uint64
	ValidatorsSet         ValidatorsSet
	// ParentLastSignalBlock is the last signal block stored with the parent.
	ParentLastSignalBlock *HeaderID
}

// ParentID returns the id of the parent header.
func (c *ImportContext) ParentID() HeaderID {
	return HeaderID{Number: c.ParentHeader.Number, Hash: c.ParentHash}
}

// LastSignalBlock returns the latest header of the ancestry, parent
// included, that signalled a validators change.
func (c *ImportContext) LastSignalBlock() *HeaderID {
	if c.ParentScheduledChange != nil {
		parentID := c.ParentID()
		return &parentID
	}
	return c.ParentLastSignalBlock
}

// NewHeaderToImport converts the context into a header ready for insertion.
func (c *ImportContext) NewHeaderToImport(
	header *Header,
	id HeaderID,
	isBest bool,
	totalDifficulty uint256.Int,
	enactedChange *ChangeToEnact,
	scheduledChange []common.Address,
	finalityVotes FinalityVotes,
) *HeaderToImport {
	return &HeaderToImport{
		Context:         c,
		IsBest:          isBest,
		ID:              id,
		Header:          header,
		TotalDifficulty: totalDifficulty,
		EnactedChange:   enactedChange,
		ScheduledChange: scheduledChange,
		FinalityVotes:   finalityVotes,
	}
}

// HeaderToImport is a verified header with every effect of its import resolved.
type HeaderToImport struct {
	Context         *ImportContext
	IsBest          bool
	ID              HeaderID
	Header          *Header
	TotalDifficulty uint256.Int
	// EnactedChange is nil unless the header enacts a validators set.
	EnactedChange *ChangeToEnact
	// ScheduledChange is nil unless the header signals a validators change.
	ScheduledChange []common.Address
	FinalityVotes   FinalityVotes
}
