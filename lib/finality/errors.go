// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package finality

import "errors"

var (
	// ErrTryingToFinalizeSibling is returned when the ancestry of a header
	// reaches a sibling of the best finalized header.
	ErrTryingToFinalizeSibling = errors.New("trying to finalize sibling of finalized block")
	// ErrNotValidator is returned when a header signer is not in the active validators set.
	ErrNotValidator = errors.New("header is signed by a non-validator")
)
