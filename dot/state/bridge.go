// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/lib/common"
	"github.com/ChainSafe/chaindb"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// DefaultMaxBlocksToPruneInSingleImport is the default maximum number
	// of headers removed by a single import.
	DefaultMaxBlocksToPruneInSingleImport = 8
	// DefaultFinalityVotesCachingInterval is the default interval, in headers,
	// between two cached finality votes entries.
	DefaultFinalityVotesCachingInterval = 16
)

var (
	// ErrNotInitialised is returned when the bridge state holds no genesis header.
	ErrNotInitialised = errors.New("bridge state is not initialised")
	// ErrAlreadyInitialised is returned when initialising a non empty bridge state.
	ErrAlreadyInitialised = errors.New("bridge state is already initialised")
)

var (
	insertedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aurabridge_state",
		Name:      "headers_inserted_total",
		Help:      "total number of headers inserted",
	})
	prunedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aurabridge_state",
		Name:      "headers_pruned_total",
		Help:      "total number of headers pruned",
	})
	commitCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aurabridge_state",
		Name:      "commits_total",
		Help:      "total number of pending changes flushed to the database",
	})
)

// BridgeConfig holds the storage tuning of the bridge state.
type BridgeConfig struct {
	MaxBlocksToPruneInSingleImport uint64
	// FinalityVotesCachingInterval is the interval between headers whose
	// finality votes are cached. Zero disables caching.
	FinalityVotesCachingInterval uint64
}

// DefaultBridgeConfig returns the default bridge state configuration.
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		MaxBlocksToPruneInSingleImport: DefaultMaxBlocksToPruneInSingleImport,
		FinalityVotesCachingInterval:   DefaultFinalityVotesCachingInterval,
	}
}

// BridgeState stores the headers of the source chain and the data
// needed to track their finality.
// Writes are kept in memory until Commit flushes them to the database,
// and reads see the pending writes.
// Storage read failures are recorded and returned by the next Commit,
// which then discards the pending changes.
// It is not safe for concurrent use.
type BridgeState struct {
	db     chaindb.Database
	config BridgeConfig

	puts map[string][]byte
	dels map[string]struct{}
	err  error

	insertedCounter prometheus.Counter
	prunedCounter   prometheus.Counter
	commitCounter   prometheus.Counter
}

// NewBridgeState creates a bridge state on top of the given database.
func NewBridgeState(db chaindb.Database, config BridgeConfig) *BridgeState {
	return &BridgeState{
		db:              db,
		config:          config,
		puts:            make(map[string][]byte),
		dels:            make(map[string]struct{}),
		insertedCounter: insertedCounter,
		prunedCounter:   prunedCounter,
		commitCounter:   commitCounter,
	}
}

// IsInitialised returns true if a genesis header was written to the state.
func (bs *BridgeState) IsInitialised() bool {
	_, has := bs.get(common.BestBlockKey)
	return has
}

// Commit flushes the pending changes to the database.
func (bs *BridgeState) Commit() error {
	if bs.err != nil {
		err := bs.err
		bs.Discard()
		return fmt.Errorf("discarding pending changes: %w", err)
	}

	if len(bs.puts) == 0 && len(bs.dels) == 0 {
		return nil
	}

	batch := bs.db.NewBatch()
	for key, value := range bs.puts {
		if err := batch.Put([]byte(key), value); err != nil {
			return fmt.Errorf("putting key 0x%x in batch: %w", key, err)
		}
	}
	for key := range bs.dels {
		if err := batch.Del([]byte(key)); err != nil {
			return fmt.Errorf("deleting key 0x%x in batch: %w", key, err)
		}
	}

	if err := batch.Flush(); err != nil {
		return fmt.Errorf("flushing batch: %w", err)
	}

	bs.commitCounter.Inc()
	logger.Tracef("committed %d writes and %d deletions", len(bs.puts), len(bs.dels))
	bs.puts = make(map[string][]byte)
	bs.dels = make(map[string]struct{})
	return nil
}

// Discard drops the pending changes and any recorded read failure.
func (bs *BridgeState) Discard() {
	bs.puts = make(map[string][]byte)
	bs.dels = make(map[string]struct{})
	bs.err = nil
}

// Err returns the first storage failure since the last Commit or Discard.
func (bs *BridgeState) Err() error {
	return bs.err
}

func (bs *BridgeState) fail(err error) {
	if bs.err == nil {
		logger.Errorf("bridge state failure: %s", err)
		bs.err = err
	}
}

func (bs *BridgeState) get(key []byte) (value []byte, has bool) {
	k := string(key)
	if _, deleted := bs.dels[k]; deleted {
		return nil, false
	}
	if value, has = bs.puts[k]; has {
		return value, true
	}

	value, err := bs.db.Get(key)
	if errors.Is(err, chaindb.ErrKeyNotFound) {
		return nil, false
	} else if err != nil {
		bs.fail(fmt.Errorf("reading key 0x%x: %w", key, err))
		return nil, false
	}
	return value, true
}

func (bs *BridgeState) put(key, value []byte) {
	k := string(key)
	delete(bs.dels, k)
	bs.puts[k] = value
}

func (bs *BridgeState) del(key []byte) {
	k := string(key)
	delete(bs.puts, k)
	bs.dels[k] = struct{}{}
}

func (bs *BridgeState) getRecord(key []byte, record interface{}) (has bool) {
	encoded, has := bs.get(key)
	if !has {
		return false
	}
	if err := rlp.DecodeBytes(encoded, record); err != nil {
		bs.fail(fmt.Errorf("decoding record at key 0x%x: %w", key, err))
		return false
	}
	return true
}

func (bs *BridgeState) putRecord(key []byte, record interface{}) {
	encoded, err := rlp.EncodeToBytes(record)
	if err != nil {
		bs.fail(fmt.Errorf("encoding record at key 0x%x: %w", key, err))
		return
	}
	bs.put(key, encoded)
}

// BestBlock returns the id and total difficulty of the best header.
func (bs *BridgeState) BestBlock() (types.HeaderID, uint256.Int) {
	var record bestBlockRecord
	bs.getRecord(common.BestBlockKey, &record)
	return record.ID, toUint256(record.TotalDifficulty)
}

func (bs *BridgeState) putBestBlock(id types.HeaderID, totalDifficulty uint256.Int) {
	bs.putRecord(common.BestBlockKey, bestBlockRecord{ID: id, TotalDifficulty: totalDifficulty.ToBig()})
}

// FinalizedBlock returns the id of the best finalized header.
func (bs *BridgeState) FinalizedBlock() (id types.HeaderID) {
	bs.getRecord(common.FinalizedBlockKey, &id)
	return id
}

// PruningRange returns the range of headers awaiting pruning.
func (bs *BridgeState) PruningRange() (pruningRange types.PruningRange) {
	bs.getRecord(common.PruningRangeKey, &pruningRange)
	return pruningRange
}

// StoredHeader returns the stored header with the given hash.
func (bs *BridgeState) StoredHeader(hash ethcommon.Hash) (*types.StoredHeader, bool) {
	var record storedHeaderRecord
	if !bs.getRecord(common.HeaderKey(hash[:]), &record) {
		return nil, false
	}
	return record.storedHeader(), true
}

// Header returns the header with the given hash and its submitter.
func (bs *BridgeState) Header(hash ethcommon.Hash) (*types.Header, types.Submitter, bool) {
	stored, has := bs.StoredHeader(hash)
	if !has {
		return nil, "", false
	}
	return stored.Header, stored.Submitter, true
}

// HeadersByNumber returns the hashes of the stored headers at the given number.
func (bs *BridgeState) HeadersByNumber(number uint64) (hashes []ethcommon.Hash) {
	bs.getRecord(common.HeadersByNumberKey(number), &hashes)
	return hashes
}

// ScheduledChange returns the validators change signalled by the given header.
func (bs *BridgeState) ScheduledChange(hash ethcommon.Hash) (*types.ScheduledChange, bool) {
	var record scheduledChangeRecord
	if !bs.getRecord(common.ScheduledChangeKey(hash[:]), &record) {
		return nil, false
	}
	return record.scheduledChange(), true
}

// ValidatorsSet returns the validators set with the given id.
func (bs *BridgeState) ValidatorsSet(id uint64) (*types.ValidatorsSet, bool) {
	var record validatorsSetRecord
	if !bs.getRecord(common.ValidatorsSetKey(id), &record) {
		return nil, false
	}
	set := record.validatorsSet()
	return &set, true
}

// ValidatorsSetRc returns the number of stored headers referencing the validators set.
func (bs *BridgeState) ValidatorsSetRc(id uint64) (rc uint64) {
	bs.getRecord(common.ValidatorsSetRcKey(id), &rc)
	return rc
}

// FinalityVotes returns the finality votes cached at the given header.
func (bs *BridgeState) FinalityVotes(hash ethcommon.Hash) (types.FinalityVotes, bool) {
	var record finalityVotesRecord
	if !bs.getRecord(common.FinalityCacheKey(hash[:]), &record) {
		return types.FinalityVotes{}, false
	}
	return record.finalityVotes(), true
}

// ImportContext returns the context needed to import a child of the given parent.
func (bs *BridgeState) ImportContext(submitter types.Submitter, parentHash ethcommon.Hash) (
	*types.ImportContext, bool) {
	parent, has := bs.StoredHeader(parentHash)
	if !has {
		return nil, false
	}

	set, has := bs.ValidatorsSet(parent.NextValidatorsSetID)
	if !has {
		bs.fail(fmt.Errorf("validators set %d of header %s is missing",
			parent.NextValidatorsSetID, parentHash))
		return nil, false
	}

	parentScheduledChange, _ := bs.ScheduledChange(parentHash)

	return &types.ImportContext{
		Submitter:             submitter,
		ParentHash:            parentHash,
		ParentHeader:          parent.Header,
		ParentTotalDifficulty: parent.TotalDifficulty,
		ParentScheduledChange: parentScheduledChange,
		ValidatorsSetID:       parent.NextValidatorsSetID,
		ValidatorsSet:         *set,
		ParentLastSignalBlock: parent.LastSignalBlock,
	}, true
}

// FinalizedHeadersCount returns the number of submitted headers of the
// submitter that were finalized.
func (bs *BridgeState) FinalizedHeadersCount(submitter types.Submitter) (count uint64) {
	bs.getRecord(common.SubmitterKey(string(submitter)), &count)
	return count
}

// AddFinalizedHeadersCount increments the finalized headers counter of the submitter.
func (bs *BridgeState) AddFinalizedHeadersCount(submitter types.Submitter, count uint64) {
	if !submitter.IsKnown() || count == 0 {
		return
	}
	total := bs.FinalizedHeadersCount(submitter) + count
	bs.putRecord(common.SubmitterKey(string(submitter)), total)
}
