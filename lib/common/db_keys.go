// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import "encoding/binary"

var (
	// BestBlockKey is the db location of the best header id and its total difficulty.
	BestBlockKey = []byte("best_block")
	// FinalizedBlockKey is the db location of the id of the best finalized header.
	FinalizedBlockKey = []byte("finalized_block")
	// PruningRangeKey is the db location of the range of headers still awaiting pruning.
	PruningRangeKey = []byte("pruning_range")
	// NextValidatorsSetIDKey is the db location of the id given to the next enacted validators set.
	NextValidatorsSetIDKey = []byte("next_validators_set_id")
)

var (
	headerPrefix          = []byte("hdr")
	headersByNumberPrefix = []byte("num")
	validatorsSetPrefix   = []byte("vset")
	validatorsSetRcPrefix = []byte("vsrc")
	scheduledChangePrefix = []byte("sch")
	finalityCachePrefix   = []byte("fin")
	submitterPrefix       = []byte("subm")
)

// HeaderKey returns the db location of the stored header with the given hash.
func HeaderKey(hash []byte) []byte { return append(copyPrefix(headerPrefix), hash...) }

// HeadersByNumberKey returns the db location of the hashes of the headers at a given number.
func HeadersByNumberKey(number uint64) []byte { return uint64Key(headersByNumberPrefix, number) }

// ValidatorsSetKey returns the db location of a validators set.
func ValidatorsSetKey(id uint64) []byte { return uint64Key(validatorsSetPrefix, id) }

// ValidatorsSetRcKey returns the db location of the reference counter of a validators set.
func ValidatorsSetRcKey(id uint64) []byte { return uint64Key(validatorsSetRcPrefix, id) }

// ScheduledChangeKey returns the db location of the validators change signalled by a header.
func ScheduledChangeKey(hash []byte) []byte { return append(copyPrefix(scheduledChangePrefix), hash...) }

// FinalityCacheKey returns the db location of the finality votes cached at a header.
func FinalityCacheKey(hash []byte) []byte { return append(copyPrefix(finalityCachePrefix), hash...) }

// SubmitterKey returns the db location of the finalized headers counter of a submitter.
func SubmitterKey(submitter string) []byte {
	return append(copyPrefix(submitterPrefix), submitter...)
}

func uint64Key(prefix []byte, n uint64) []byte {
	key := make([]byte, len(prefix)+8)
	copy(key, prefix)
	binary.BigEndian.PutUint64(key[len(prefix):], n)
	return key
}

func copyPrefix(prefix []byte) []byte {
	key := make([]byte, len(prefix), len(prefix)+32)
	copy(key, prefix)
	return key
}
