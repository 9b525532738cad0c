// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// PruningRange is the range of headers numbers that may be pruned.
// Every header below OldestUnprunedBlock has been removed, and
// headers from OldestBlockToKeep upwards are retained.
type PruningRange struct {
	OldestUnprunedBlock uint64
	OldestBlockToKeep   uint64
}
