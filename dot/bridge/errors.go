// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import "errors"

var (
	// ErrNilBridgeState is returned when the service is created without bridge state.
	ErrNilBridgeState = errors.New("cannot have nil bridge state")
	// ErrNilValidatorsConfiguration is returned when the service is created
	// without validators configuration.
	ErrNilValidatorsConfiguration = errors.New("cannot have nil validators configuration")

	// ErrRedundantTransactionsReceipts is returned when receipts are submitted
	// with an unsigned header which does not need them.
	ErrRedundantTransactionsReceipts = errors.New("redundant transactions receipts are provided")
	// ErrUnsignedTooFarInTheFuture is returned when an unsigned header is too
	// far ahead of the best header to be accepted into the pool yet.
	ErrUnsignedTooFarInTheFuture = errors.New("unsigned header is too far in the future")
)
