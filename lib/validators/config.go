// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package validators

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// SourceKind is the kind of a validators source.
type SourceKind uint8

const (
	// ListSource is a static list of validators.
	ListSource SourceKind = iota
	// ContractSource is a validators contract emitting InitiateChange events.
	ContractSource
)

func (k SourceKind) String() string {
	switch k {
	case ListSource:
		return "list"
	case ContractSource:
		return "contract"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Source is where the validators of a range of headers come from.
type Source struct {
	Kind SourceKind
	// Contract is the address of the validators contract, for contract sources.
	Contract common.Address
	// Validators is the static list for list sources, and the
	// initial validators for contract sources.
	Validators []common.Address
}

// NewListSource returns a static list source.
func NewListSource(validators []common.Address) Source {
	return Source{Kind: ListSource, Validators: validators}
}

// NewContractSource returns a contract source with its initial validators.
func NewContractSource(contract common.Address, initial []common.Address) Source {
	return Source{Kind: ContractSource, Contract: contract, Validators: initial}
}

// ScheduledSource is a source used from the header after StartsAt.
type ScheduledSource struct {
	StartsAt uint64
	Source   Source
}

// Configuration lists the validators sources of the chain.
type Configuration struct {
	sources []ScheduledSource
}

// NewSingleConfiguration returns a configuration with one source for every header.
func NewSingleConfiguration(source Source) *Configuration {
	return &Configuration{sources: []ScheduledSource{{Source: source}}}
}

// NewMultiConfiguration returns a configuration switching sources at given
// header numbers. The first source must start at 0 and the following ones
// at strictly increasing numbers.
func NewMultiConfiguration(sources []ScheduledSource) (*Configuration, error) {
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	if sources[0].StartsAt != 0 {
		return nil, fmt.Errorf("%w: first source starts at %d", ErrInvalidSources, sources[0].StartsAt)
	}
	for i := 1; i < len(sources); i++ {
		if sources[i].StartsAt <= sources[i-1].StartsAt {
			return nil, fmt.Errorf("%w: source %d starts at %d, not after %d",
				ErrInvalidSources, i, sources[i].StartsAt, sources[i-1].StartsAt)
		}
	}
	return &Configuration{sources: sources}, nil
}

// Sources returns the scheduled sources of the configuration.
func (c *Configuration) Sources() []ScheduledSource {
	return c.sources
}

// sourceAt returns the index of the source authoring the header with the given number.
func (c *Configuration) sourceAt(number uint64) int {
	index := 0
	for i, source := range c.sources {
		if source.StartsAt < number {
			index = i
		}
	}
	return index
}

// sourceAtNextHeader returns the source authoring the header following
// the header with the given number, and the number it starts at.
func (c *Configuration) sourceAtNextHeader(number uint64) (startsAt uint64, source Source) {
	index := c.sourceAt(number)
	if next := index + 1; next < len(c.sources) && c.sources[next].StartsAt < number+1 {
		return c.sources[next].StartsAt, c.sources[next].Source
	}
	return c.sources[index].StartsAt, c.sources[index].Source
}
