// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package validators

import (
	"bytes"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// TestContractAddress is the validators contract used by ValidatorsChangeReceipt.
var TestContractAddress = common.BytesToAddress(bytes.Repeat([]byte{3}, common.AddressLength))

// TestNewValidator is the single validator announced by ValidatorsChangeReceipt.
var TestNewValidator = common.BytesToAddress(bytes.Repeat([]byte{7}, common.AddressLength))

// ValidatorsChangeReceipt returns a receipt with an InitiateChange event of
// TestContractAddress, announcing TestNewValidator as the only validator.
func ValidatorsChangeReceipt(parentHash common.Hash) *ethtypes.Receipt {
	return ValidatorsChangeReceiptOf(parentHash, []common.Address{TestNewValidator})
}

// ValidatorsChangeReceiptOf returns a receipt with an InitiateChange event of
// TestContractAddress, announcing the given validators.
func ValidatorsChangeReceiptOf(parentHash common.Hash, validators []common.Address) *ethtypes.Receipt {
	data, err := changeEventArguments.Pack(validators)
	if err != nil {
		panic(err)
	}

	var bloom ethtypes.Bloom
	for i := range bloom {
		bloom[i] = 0xff
	}

	return &ethtypes.Receipt{
		Status:            ethtypes.ReceiptStatusSuccessful,
		CumulativeGasUsed: 0,
		Bloom:             bloom,
		Logs: []*ethtypes.Log{{
			Address: TestContractAddress,
			Topics:  []common.Hash{ChangeEventHash, parentHash},
			Data:    data,
		}},
	}
}

// WithValidatorsChange sets the receipts root and log bloom of the header so
// that it signals the change of ValidatorsChangeReceipt. It returns the receipts.
func WithValidatorsChange(header *types.Header) types.Receipts {
	return WithValidatorsChangeTo(header, []common.Address{TestNewValidator})
}

// WithValidatorsChangeTo sets the receipts root and log bloom of the header
// so that it signals a change to the given validators. It returns the receipts.
func WithValidatorsChangeTo(header *types.Header, validators []common.Address) types.Receipts {
	receipts := types.Receipts{ValidatorsChangeReceiptOf(header.ParentHash, validators)}
	for i := range header.LogBloom {
		header.LogBloom[i] = 0xff
	}
	header.ReceiptsRoot = types.ReceiptsRoot(receipts)
	return receipts
}
