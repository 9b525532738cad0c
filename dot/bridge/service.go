// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ChainSafe/aurabridge/dot/state"
	"github.com/ChainSafe/aurabridge/dot/state/pruner"
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/aura"
	"github.com/ChainSafe/aurabridge/lib/finality"
	"github.com/ChainSafe/aurabridge/lib/importer"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "bridge"))

// Config holds the configuration of the bridge service.
type Config struct {
	LogLvl log.Level

	State      *state.BridgeState
	Aura       aura.Configuration
	Validators *validators.Configuration
	// Pruning defaults to keeping pruner.DefaultRetainedBlocks headers.
	Pruning pruner.Strategy
	Pool    PoolConfig
	// Handler defaults to NoopSubmissionHandler.
	Handler SubmissionHandler
}

// Service imports headers of the source chain into the bridge state.
// Calls are serialised and every call changing the state commits it.
type Service struct {
	sync.Mutex

	state      *state.BridgeState
	importer   *importer.Importer
	aura       *aura.Verifier
	validators *validators.Validators
	pool       PoolConfig
	handler    SubmissionHandler
}

// NewService returns a bridge service over the given bridge state.
func NewService(cfg *Config) (*Service, error) {
	if cfg.State == nil {
		return nil, ErrNilBridgeState
	}
	if cfg.Validators == nil {
		return nil, ErrNilValidatorsConfiguration
	}

	logger.Patch(log.SetLevel(cfg.LogLvl))

	handler := cfg.Handler
	if handler == nil {
		handler = NoopSubmissionHandler{}
	}

	verifier := aura.NewVerifier(cfg.Aura, cfg.State)
	validatorSource := validators.New(cfg.Validators, cfg.State)
	imp := importer.NewImporter(
		cfg.State,
		verifier,
		validatorSource,
		finality.NewFinalizer(cfg.State),
		importer.Config{
			TwoThirdsMajorityTransition: cfg.Aura.TwoThirdsMajorityTransition,
			Pruning:                     cfg.Pruning,
		},
	)

	return &Service{
		state:      cfg.State,
		importer:   imp,
		aura:       verifier,
		validators: validatorSource,
		pool:       cfg.Pool,
		handler:    handler,
	}, nil
}

// ImportUnsignedHeader imports a single header submitted without submitter.
func (s *Service) ImportUnsignedHeader(header *types.Header, receipts types.Receipts) (types.HeaderID, error) {
	s.Lock()
	defer s.Unlock()

	id, finalized, err := s.importer.ImportHeader("", header, receipts)
	if err != nil {
		s.state.Discard()
		return types.HeaderID{}, err
	}

	s.trackFinalized(countFinalized(finalized))

	if err = s.state.Commit(); err != nil {
		return types.HeaderID{}, fmt.Errorf("committing header %s: %w", id, err)
	}
	return id, nil
}

// ImportSignedHeaders imports a batch of headers of the submitter. The headers
// imported before an invalid one are kept, and committed with the
// finalized headers counters.
func (s *Service) ImportSignedHeaders(submitter types.Submitter, headers []types.HeaderWithReceipts) (
	importer.BatchResult, error) {
	s.Lock()
	defer s.Unlock()

	result, importErr := s.importer.ImportHeaders(submitter, headers)
	s.trackFinalized(result.Finalized)

	if importErr != nil {
		s.handler.OnInvalidHeadersSubmitted(submitter)
	} else {
		s.handler.OnValidHeadersSubmitted(submitter, result.Useful, result.Useless)
	}

	if err := s.state.Commit(); err != nil {
		if importErr != nil {
			logger.Errorf("cannot commit headers submitted by %q: %s", submitter, err)
			return result, importErr
		}
		return result, fmt.Errorf("committing headers submitted by %q: %w", submitter, err)
	}
	return result, importErr
}

// trackFinalized persists the finalized headers counters, and notifies
// the handler in submitters order.
func (s *Service) trackFinalized(finalized map[types.Submitter]uint64) {
	submitters := make([]types.Submitter, 0, len(finalized))
	for submitter := range finalized {
		submitters = append(submitters, submitter)
	}
	sort.Slice(submitters, func(i, j int) bool { return submitters[i] < submitters[j] })

	for _, submitter := range submitters {
		count := finalized[submitter]
		s.state.AddFinalizedHeadersCount(submitter, count)
		s.handler.OnValidHeadersFinalized(submitter, count)
	}
}

func countFinalized(finalized []types.FinalizedHeader) map[types.Submitter]uint64 {
	counts := make(map[types.Submitter]uint64)
	for _, header := range finalized {
		if header.Submitter.IsKnown() {
			counts[header.Submitter]++
		}
	}
	return counts
}

// lockRead locks the service for a call which does not change the state.
// The returned function drops the storage failures recorded during the
// call, so that they do not fail the next import, and unlocks the service.
func (s *Service) lockRead() (unlock func()) {
	s.Lock()
	return func() {
		if err := s.state.Err(); err != nil {
			logger.Warnf("dropping bridge state read failure: %s", err)
		}
		s.state.Discard()
		s.Unlock()
	}
}

// BestBlock returns the id and total difficulty of the best header.
func (s *Service) BestBlock() (types.HeaderID, uint256.Int) {
	defer s.lockRead()()
	return s.state.BestBlock()
}

// FinalizedBlock returns the id of the best finalized header.
func (s *Service) FinalizedBlock() types.HeaderID {
	defer s.lockRead()()
	return s.state.FinalizedBlock()
}

// PruningRange returns the range of headers numbers that may be pruned.
func (s *Service) PruningRange() types.PruningRange {
	defer s.lockRead()()
	return s.state.PruningRange()
}

// FinalizedHeadersCount returns the number of headers of the submitter that were finalized.
func (s *Service) FinalizedHeadersCount(submitter types.Submitter) uint64 {
	defer s.lockRead()()
	return s.state.FinalizedHeadersCount(submitter)
}

// IsKnownBlock returns true if the header is stored.
func (s *Service) IsKnownBlock(hash common.Hash) bool {
	defer s.lockRead()()
	_, _, has := s.state.Header(hash)
	return has
}

// IsImportRequiresReceipts returns true if importing the header needs its receipts.
func (s *Service) IsImportRequiresReceipts(header *types.Header) bool {
	defer s.lockRead()()
	return s.importer.HeaderImportRequiresReceipts(header)
}

// ValidateUnsignedHeader checks whether the unsigned header may enter the
// transactions pool, and returns its pool tags.
func (s *Service) ValidateUnsignedHeader(header *types.Header, receipts types.Receipts) (*PoolTags, error) {
	defer s.lockRead()()
	return acceptIntoPool(s.state, s.aura.Config(), s.validators, s.pool, header, receipts)
}
