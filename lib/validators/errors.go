// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package validators

import "errors"

var (
	// ErrMissingTransactionsReceipts is returned when a header may signal a
	// validators change but its receipts were not provided.
	ErrMissingTransactionsReceipts = errors.New("transactions receipts are required but missing")
	// ErrTransactionsReceiptsMismatch is returned when the provided receipts
	// do not match the receipts root of the header.
	ErrTransactionsReceiptsMismatch = errors.New("transactions receipts do not match the receipts root")

	// ErrNoSource is returned for a configuration without sources.
	ErrNoSource = errors.New("no validators source")
	// ErrInvalidSources is returned for sources not ordered by start number.
	ErrInvalidSources = errors.New("invalid validators sources")
	// ErrNoValidators is returned by StepValidator for an empty set.
	ErrNoValidators = errors.New("empty validators set")
)
