// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package validators

import (
	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ChainSafe/aurabridge/internal/log"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "validators"))

// ChangeEventHash is the topic of the InitiateChange event emitted by
// validators contracts.
var ChangeEventHash = crypto.Keccak256Hash([]byte("InitiateChange(bytes32,address[])"))

// changeEventArguments are the non indexed arguments of the InitiateChange event.
var changeEventArguments = func() abi.Arguments {
	addresses, err := abi.NewType("address[]", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Name: "newSet", Type: addresses}}
}()

// Storage is the storage the validators need to resolve changes.
type Storage interface {
	ImportContext(submitter types.Submitter, parentHash common.Hash) (*types.ImportContext, bool)
	ScheduledChange(hash common.Hash) (*types.ScheduledChange, bool)
}

// Validators extracts and resolves validators set changes of the configured sources.
type Validators struct {
	config  *Configuration
	storage Storage
}

// New returns validators reading the sources of config and the state of storage.
func New(config *Configuration, storage Storage) *Validators {
	return &Validators{
		config:  config,
		storage: storage,
	}
}

// MaybeSignalsChange returns true if the header may signal a validators
// change, in which case its receipts are required to import it.
func (v *Validators) MaybeSignalsChange(header *types.Header) bool {
	source := v.config.sources[v.config.sourceAt(header.Number)].Source
	if source.Kind != ContractSource {
		return false
	}
	return bloomContains(header.LogBloom, source.Contract, header.ParentHash)
}

// ExtractChange returns the validators change signalled by the header,
// either scheduled until the header is finalized or enacted immediately.
// Both are nil if the header does not change validators.
func (v *Validators) ExtractChange(header *types.Header, receipts types.Receipts) (
	scheduled, enacted []common.Address, err error) {
	index := v.config.sourceAt(header.Number)
	nextStartsAt, nextSource := v.config.sourceAtNextHeader(header.Number)
	if nextStartsAt == header.Number {
		logger.Debugf("validators source %s starts at header %d", nextSource.Kind, header.Number)
		switch nextSource.Kind {
		case ListSource:
			return nil, nextSource.Validators, nil
		default:
			return nextSource.Validators, nil, nil
		}
	}

	source := v.config.sources[index].Source
	if source.Kind != ContractSource {
		return nil, nil, nil
	}
	if !bloomContains(header.LogBloom, source.Contract, header.ParentHash) {
		return nil, nil, nil
	}

	if receipts == nil {
		return nil, nil, ErrMissingTransactionsReceipts
	}
	if !header.CheckReceiptsRoot(receipts) {
		return nil, nil, ErrTransactionsReceiptsMismatch
	}

	// only the last change of a header has any effect
	for i := len(receipts) - 1; i >= 0; i-- {
		receipt := receipts[i]
		if !bloomContains(receipt.Bloom, source.Contract, header.ParentHash) {
			continue
		}
		for _, l := range receipt.Logs {
			if !isChangeLog(l, source.Contract, header.ParentHash) {
				continue
			}
			if validators, ok := decodeChangeData(l.Data); ok {
				return validators, nil, nil
			}
		}
	}
	return nil, nil, nil
}

// ResolveChange returns the scheduled change enacted by the finalization
// of the given headers, ordered from the oldest to the newest, if any.
func (v *Validators) ResolveChange(finalized []types.FinalizedHeader) *types.ChangeToEnact {
	if len(finalized) == 0 {
		return nil
	}
	oldest, newest := finalized[0].ID, finalized[len(finalized)-1].ID

	// a pruned header had no scheduled change left in its ancestry
	context, has := v.storage.ImportContext("", newest.Hash)
	if !has {
		return nil
	}
	signalBlock := context.LastSignalBlock()
	if signalBlock == nil || signalBlock.Number < oldest.Number {
		return nil
	}

	// a missing change has been enacted already
	change, has := v.storage.ScheduledChange(signalBlock.Hash)
	if !has {
		return nil
	}
	return &types.ChangeToEnact{
		SignalBlock: signalBlock,
		Validators:  change.Validators,
	}
}

// StepValidator returns the validator expected to author the header at step.
func StepValidator(validators []common.Address, step uint64) (common.Address, error) {
	if len(validators) == 0 {
		return common.Address{}, ErrNoValidators
	}
	return validators[step%uint64(len(validators))], nil
}

func bloomContains(bloom ethtypes.Bloom, contract common.Address, parentHash common.Hash) bool {
	return bloom.Test(contract.Bytes()) &&
		bloom.Test(ChangeEventHash.Bytes()) &&
		bloom.Test(parentHash.Bytes())
}

func isChangeLog(l *ethtypes.Log, contract common.Address, parentHash common.Hash) bool {
	return l.Address == contract &&
		len(l.Topics) == 2 &&
		l.Topics[0] == ChangeEventHash &&
		l.Topics[1] == parentHash
}

// decodeChangeData decodes the ABI encoded address[] of an InitiateChange
// event.
func decodeChangeData(data []byte) ([]common.Address, bool) {
	values, err := changeEventArguments.Unpack(data)
	if err != nil || len(values) != 1 {
		return nil, false
	}
	validators, ok := values[0].([]common.Address)
	return validators, ok
}
