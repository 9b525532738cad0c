// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pruner

import (
	"errors"
	"fmt"
)

const (
	// Archive pruner mode.
	Archive = Mode("archive")
	// KeepDepth pruner mode keeps a fixed number of headers below the best header.
	KeepDepth = Mode("keep-depth")
)

// DefaultRetainedBlocks is the number of headers kept below the best header
// in the keep-depth mode.
const DefaultRetainedBlocks = 4096

var (
	// ErrInvalidMode is returned for an unknown pruning mode.
	ErrInvalidMode = errors.New("invalid pruning mode")
	// ErrZeroRetainedBlocks is returned when the keep-depth mode retains no block.
	ErrZeroRetainedBlocks = errors.New("retained blocks must be greater than zero")
)

// Mode online pruning mode of imported headers
type Mode string

// IsValid checks whether the pruning mode is valid
func (p Mode) IsValid() bool {
	switch p {
	case Archive, KeepDepth:
		return true
	default:
		return false
	}
}

// Config holds the headers pruning mode and retained blocks
type Config struct {
	Mode           Mode
	RetainedBlocks uint64
}

// Strategy decides up to which header number headers may be pruned.
type Strategy interface {
	// PruningUpperBound returns the number below which headers may be pruned,
	// given the number of the best header. It returns false if nothing
	// should be pruned.
	PruningUpperBound(bestNumber uint64) (upperBound uint64, ok bool)
}

// NewStrategy returns the pruning strategy for the configuration.
func NewStrategy(cfg Config) (Strategy, error) {
	switch cfg.Mode {
	case Archive:
		return &ArchiveNode{}, nil
	case KeepDepth:
		if cfg.RetainedBlocks == 0 {
			return nil, ErrZeroRetainedBlocks
		}
		return &DepthKeeper{Depth: cfg.RetainedBlocks}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
}

// ArchiveNode never prunes headers.
type ArchiveNode struct{}

// PruningUpperBound for archive node always returns false.
func (*ArchiveNode) PruningUpperBound(uint64) (uint64, bool) {
	return 0, false
}

// DepthKeeper keeps the Depth headers below the best header.
type DepthKeeper struct {
	Depth uint64
}

// PruningUpperBound returns bestNumber - Depth, if the best header is deep enough.
func (k *DepthKeeper) PruningUpperBound(bestNumber uint64) (uint64, bool) {
	if bestNumber < k.Depth {
		return 0, false
	}
	return bestNumber - k.Depth, true
}
