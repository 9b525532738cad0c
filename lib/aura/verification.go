// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"math"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ChainSafe/aurabridge/lib/validators"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "aura"))

// Storage provides the import context of headers.
type Storage interface {
	ImportContext(submitter types.Submitter, parentHash common.Hash) (*types.ImportContext, bool)
}

// Verifier verifies headers against the Aura rules.
type Verifier struct {
	config  Configuration
	storage Storage
}

// NewVerifier returns a verifier of the given configuration
// reading parent headers from storage.
func NewVerifier(config Configuration, storage Storage) *Verifier {
	return &Verifier{
		config:  config,
		storage: storage,
	}
}

// Config returns the configuration of the verifier.
func (v *Verifier) Config() *Configuration {
	return &v.config
}

// VerifyHeader verifies the header and returns the context of its import.
func (v *Verifier) VerifyHeader(submitter types.Submitter, header *types.Header) (*types.ImportContext, error) {
	if err := ContextlessChecks(&v.config, header); err != nil {
		return nil, err
	}

	context, has := v.storage.ImportContext(submitter, header.ParentHash)
	if !has {
		return nil, ErrMissingParentBlock
	}

	step, err := ContextualChecks(&v.config, context, header)
	if err != nil {
		return nil, err
	}

	if err := ValidatorChecks(&v.config, context.ValidatorsSet.Validators, header, step); err != nil {
		return nil, err
	}

	logger.Tracef("verified header #%d at step %d authored by %s", header.Number, step, header.Author)
	return context, nil
}

// ContextlessChecks performs the checks that only need the header itself.
func ContextlessChecks(config *Configuration, header *types.Header) error {
	if len(header.Seal) != expectedSealFields(config, header) {
		return ErrInvalidSealArity
	}
	if header.Number >= math.MaxUint64 {
		return ErrRidiculousNumber
	}
	if header.GasUsed.Gt(&header.GasLimit) {
		return ErrTooMuchGasUsed
	}
	if header.GasLimit.Lt(&config.MinGasLimit) || header.GasLimit.Gt(&config.MaxGasLimit) {
		return ErrInvalidGasLimit
	}
	if header.Number != 0 && uint64(len(header.ExtraData)) > config.MaximumExtraDataSize {
		return ErrExtraDataOutOfBounds
	}
	// the future can not be detected here, only overflows
	if header.Timestamp > math.MaxInt32 {
		return ErrTimestampOverflow
	}
	return nil
}

// ContextualChecks performs the checks that need the parent of the header
// and returns the step of the header.
func ContextualChecks(config *Configuration, context *types.ImportContext, header *types.Header) (uint64, error) {
	step, ok := header.Step()
	if !ok {
		return 0, ErrMissingStep
	}
	parentStep, ok := context.ParentHeader.Step()
	if !ok {
		return 0, ErrMissingStep
	}

	if step == parentStep || (header.Number >= config.ValidateStepTransition && step <= parentStep) {
		return 0, ErrDoubleVote
	}

	if config.EmptyStepsEnabled(header.Number) {
		return 0, ErrEmptyStepsUnsupported
	}

	if header.Number >= config.ValidateScoreTransition {
		score := CalculateScore(parentStep, step)
		if !header.Difficulty.Eq(&score) {
			return 0, ErrInvalidDifficulty
		}
	}

	return step, nil
}

// ValidatorChecks checks that the header is authored and signed by the
// validator of its step.
func ValidatorChecks(config *Configuration, validatorsSet []common.Address, header *types.Header, step uint64) error {
	expected, err := validators.StepValidator(validatorsSet, step)
	if err != nil || header.Author != expected {
		return ErrNotValidator
	}

	signature, ok := header.Signature()
	if !ok {
		return ErrMissingSignature
	}

	sealHash := header.SealHash()
	publicKey, err := crypto.SigToPub(sealHash[:], signature)
	if err != nil || crypto.PubkeyToAddress(*publicKey) != expected {
		return ErrNotValidator
	}
	return nil
}

// CalculateScore returns the expected difficulty of a header:
// U128::MAX + parentStep - step.
func CalculateScore(parentStep, step uint64) (score uint256.Int) {
	score.Lsh(uint256.NewInt(1), 128)
	score.SubUint64(&score, 1)
	score.Add(&score, uint256.NewInt(parentStep))
	score.Sub(&score, uint256.NewInt(step))
	return score
}

func expectedSealFields(config *Configuration, header *types.Header) int {
	if config.EmptyStepsEnabled(header.Number) {
		return 3
	}
	return 2
}
