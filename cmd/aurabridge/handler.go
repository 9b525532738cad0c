// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/ChainSafe/aurabridge/dot/bridge"
	"github.com/ChainSafe/aurabridge/dot/types"
)

// Infoer logs strings at the info level.
type Infoer interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// loggingHandler logs the headers submissions.
type loggingHandler struct {
	logger Infoer
}

var _ bridge.SubmissionHandler = (*loggingHandler)(nil)

func (h *loggingHandler) OnValidHeadersSubmitted(submitter types.Submitter, useful, useless uint64) {
	h.logger.Infof("submitter %s imported %d useful and %d useless headers", submitter, useful, useless)
}

func (h *loggingHandler) OnInvalidHeadersSubmitted(submitter types.Submitter) {
	h.logger.Warnf("submitter %s submitted an invalid header", submitter)
}

func (h *loggingHandler) OnValidHeadersFinalized(submitter types.Submitter, finalized uint64) {
	h.logger.Infof("%d headers of submitter %s are finalized", finalized, submitter)
}
