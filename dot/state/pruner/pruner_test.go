// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pruner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewStrategy(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cfg        Config
		strategy   Strategy
		errWrapped error
	}{
		"archive": {
			cfg:      Config{Mode: Archive},
			strategy: &ArchiveNode{},
		},
		"keep depth": {
			cfg:      Config{Mode: KeepDepth, RetainedBlocks: 10},
			strategy: &DepthKeeper{Depth: 10},
		},
		"keep nothing": {
			cfg:        Config{Mode: KeepDepth},
			errWrapped: ErrZeroRetainedBlocks,
		},
		"unknown mode": {
			cfg:        Config{Mode: "full"},
			errWrapped: ErrInvalidMode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			strategy, err := NewStrategy(testCase.cfg)
			if testCase.errWrapped != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, testCase.errWrapped))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.strategy, strategy)
		})
	}
}

func Test_DepthKeeper_PruningUpperBound(t *testing.T) {
	t.Parallel()

	keeper := &DepthKeeper{Depth: 10}

	_, ok := keeper.PruningUpperBound(9)
	assert.False(t, ok)

	bound, ok := keeper.PruningUpperBound(10)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), bound)

	bound, ok = keeper.PruningUpperBound(25)
	assert.True(t, ok)
	assert.Equal(t, uint64(15), bound)

	_, ok = (&ArchiveNode{}).PruningUpperBound(1_000_000)
	assert.False(t, ok)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, _ ...interface{}) { l.lines = append(l.lines, format) }
func (l *recordingLogger) Tracef(format string, _ ...interface{}) { l.lines = append(l.lines, format) }

func Test_LoggingStrategy(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	strategy := &LoggingStrategy{Strategy: &DepthKeeper{Depth: 2}, Logger: logger}

	_, ok := strategy.PruningUpperBound(1)
	assert.False(t, ok)
	assert.Empty(t, logger.lines)

	bound, ok := strategy.PruningUpperBound(5)
	assert.True(t, ok)
	assert.Equal(t, uint64(3), bound)
	assert.Len(t, logger.lines, 1)
}
