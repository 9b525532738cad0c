// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pruner

// Logger logs formatted strings at the different log levels.
type Logger interface {
	Debugf(format string, args ...interface{})
	Tracef(format string, args ...interface{})
}

// LoggingStrategy wraps a strategy to log every pruning bound it returns.
type LoggingStrategy struct {
	Strategy
	Logger Logger
}

// PruningUpperBound implements Strategy.
func (s *LoggingStrategy) PruningUpperBound(bestNumber uint64) (upperBound uint64, ok bool) {
	upperBound, ok = s.Strategy.PruningUpperBound(bestNumber)
	if ok {
		s.Logger.Tracef("headers below #%d may be pruned (best #%d)", upperBound, bestNumber)
	}
	return upperBound, ok
}
