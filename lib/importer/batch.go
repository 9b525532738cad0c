// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import (
	"github.com/ChainSafe/aurabridge/dot/types"
)

// BatchResult is the outcome of a batch import.
type BatchResult struct {
	// Useful is the number of imported headers.
	Useful uint64
	// Useless is the number of ancient or known headers.
	Useless uint64
	// Finalized counts, per known submitter, the headers finalized
	// during the batch.
	Finalized map[types.Submitter]uint64
}

// ImportHeaders imports the headers in order. Ancient and known headers are
// counted as useless, any other error stops the import. Headers imported
// before the error stay imported, and the result is returned with the error.
func (i *Importer) ImportHeaders(submitter types.Submitter, headers []types.HeaderWithReceipts) (
	BatchResult, error) {
	result := BatchResult{Finalized: make(map[types.Submitter]uint64)}

	for index, header := range headers {
		_, finalized, err := i.ImportHeader(submitter, header.Header, header.Receipts)
		switch {
		case err == nil:
			result.Useful++
			for _, finalizedHeader := range finalized {
				if finalizedHeader.Submitter.IsKnown() {
					result.Finalized[finalizedHeader.Submitter]++
				}
			}
		case IsUseless(err):
			result.Useless++
			logger.Tracef("useless header #%d submitted by %q: %s", header.Header.Number, submitter, err)
		default:
			logger.Debugf("header %d of batch (#%d) submitted by %q is invalid: %s",
				index, header.Header.Number, submitter, err)
			return result, err
		}
	}

	return result, nil
}
