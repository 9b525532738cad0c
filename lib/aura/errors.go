// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import "errors"

var (
	ErrInvalidSealArity     = errors.New("header has an invalid number of seal fields")
	ErrRidiculousNumber     = errors.New("header number is too large")
	ErrTooMuchGasUsed       = errors.New("header gas used is above its gas limit")
	ErrInvalidGasLimit      = errors.New("header gas limit is out of bounds")
	ErrExtraDataOutOfBounds = errors.New("header extra data is too large")
	ErrTimestampOverflow    = errors.New("header timestamp overflows")
	ErrMissingParentBlock   = errors.New("header parent is not known")
	ErrMissingStep          = errors.New("header seal has no step")
	ErrDoubleVote           = errors.New("header step is not after its parent step")
	ErrInvalidDifficulty    = errors.New("header difficulty does not match the chain score")
	ErrNotValidator         = errors.New("header is not authored by the step validator")
	ErrMissingSignature     = errors.New("header seal has no signature")

	// ErrEmptyStepsUnsupported is returned for headers after the empty steps transition.
	ErrEmptyStepsUnsupported = errors.New("empty steps are not supported")
)
