// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import "github.com/ethereum/go-ethereum/common"

// ValidatorsSet is a set of validators enacted at some header.
type ValidatorsSet struct {
	Validators []common.Address
	// SignalBlock is the header that signalled the set, nil for the genesis
	// set and for sets enacted immediately.
	SignalBlock *HeaderID
	EnactBlock  HeaderID
}

// Contains returns true if the address is a member of the set.
func (s *ValidatorsSet) Contains(address common.Address) bool {
	for _, validator := range s.Validators {
		if validator == address {
			return true
		}
	}
	return false
}

// ScheduledChange is a validators set change signalled by a header,
// awaiting the finalization of that header.
type ScheduledChange struct {
	Validators []common.Address
	// PrevSignalBlock is the previous header in the ancestry that signalled a change.
	PrevSignalBlock *HeaderID
}

// ChangeToEnact is a validators set change that a header enacts.
type ChangeToEnact struct {
	// SignalBlock is nil when the change is enacted without prior signal.
	SignalBlock *HeaderID
	Validators  []common.Address
}
