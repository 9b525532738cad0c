// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import "errors"

var (
	// ErrAncientHeader is returned for a header at or below the finalized header number.
	ErrAncientHeader = errors.New("header is at or below the finalized header")
	// ErrKnownHeader is returned for a header already imported.
	ErrKnownHeader = errors.New("header is already known")
)

// IsUseless returns true if the error rejects a header that is not worth
// importing, rather than an invalid header.
func IsUseless(err error) bool {
	return errors.Is(err, ErrAncientHeader) || errors.Is(err, ErrKnownHeader)
}
