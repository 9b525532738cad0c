// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import "github.com/ChainSafe/aurabridge/dot/types"

// SubmissionHandler is notified of the outcome of signed headers submissions.
type SubmissionHandler interface {
	// OnValidHeadersSubmitted is called when a batch was imported without error.
	OnValidHeadersSubmitted(submitter types.Submitter, useful, useless uint64)
	// OnInvalidHeadersSubmitted is called when a batch contained an invalid header.
	// Headers imported before it stay imported.
	OnInvalidHeadersSubmitted(submitter types.Submitter)
	// OnValidHeadersFinalized is called with the number of headers of the
	// submitter finalized by an import.
	OnValidHeadersFinalized(submitter types.Submitter, finalized uint64)
}

// NoopSubmissionHandler ignores every notification.
type NoopSubmissionHandler struct{}

// OnValidHeadersSubmitted does nothing.
func (NoopSubmissionHandler) OnValidHeadersSubmitted(types.Submitter, uint64, uint64) {}

// OnInvalidHeadersSubmitted does nothing.
func (NoopSubmissionHandler) OnInvalidHeadersSubmitted(types.Submitter) {}

// OnValidHeadersFinalized does nothing.
func (NoopSubmissionHandler) OnValidHeadersFinalized(types.Submitter, uint64) {}
