// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// headerJSON mirrors the header objects returned by the source chain JSON-RPC.
type headerJSON struct {
	ParentHash       common.Hash     `json:"parentHash"`
	UncleHash        common.Hash     `json:"sha3Uncles"`
	Author           common.Address  `json:"miner"`
	StateRoot        common.Hash     `json:"stateRoot"`
	TransactionsRoot common.Hash     `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash     `json:"receiptsRoot"`
	LogBloom         ethtypes.Bloom  `json:"logsBloom"`
	Difficulty       *hexutil.Big    `json:"difficulty"`
	Number           hexutil.Uint64  `json:"number"`
	GasLimit         *hexutil.Big    `json:"gasLimit"`
	GasUsed          *hexutil.Big    `json:"gasUsed"`
	Timestamp        hexutil.Uint64  `json:"timestamp"`
	ExtraData        hexutil.Bytes   `json:"extraData"`
	SealFields       []hexutil.Bytes `json:"sealFields"`
}

// MarshalJSON implements json.Marshaler.
func (h Header) MarshalJSON() ([]byte, error) {
	enc := headerJSON{
		ParentHash:       h.ParentHash,
		UncleHash:        h.UncleHash,
		Author:           h.Author,
		StateRoot:        h.StateRoot,
		TransactionsRoot: h.TransactionsRoot,
		ReceiptsRoot:     h.ReceiptsRoot,
		LogBloom:         h.LogBloom,
		Difficulty:       (*hexutil.Big)(h.Difficulty.ToBig()),
		Number:           hexutil.Uint64(h.Number),
		GasLimit:         (*hexutil.Big)(h.GasLimit.ToBig()),
		GasUsed:          (*hexutil.Big)(h.GasUsed.ToBig()),
		Timestamp:        hexutil.Uint64(h.Timestamp),
		ExtraData:        h.ExtraData,
	}
	for _, field := range h.Seal {
		enc.SealFields = append(enc.SealFields, field)
	}
	return json.Marshal(enc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Header) UnmarshalJSON(data []byte) error {
	var dec headerJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}

	*h = Header{
		ParentHash:       dec.ParentHash,
		UncleHash:        dec.UncleHash,
		Author:           dec.Author,
		StateRoot:        dec.StateRoot,
		TransactionsRoot: dec.TransactionsRoot,
		ReceiptsRoot:     dec.ReceiptsRoot,
		LogBloom:         dec.LogBloom,
		Number:           uint64(dec.Number),
		Timestamp:        uint64(dec.Timestamp),
		ExtraData:        dec.ExtraData,
	}

	bigFields := []struct {
		name  string
		value *hexutil.Big
		dst   *uint256.Int
	}{
		{name: "difficulty", value: dec.Difficulty, dst: &h.Difficulty},
		{name: "gasLimit", value: dec.GasLimit, dst: &h.GasLimit},
		{name: "gasUsed", value: dec.GasUsed, dst: &h.GasUsed},
	}
	for _, field := range bigFields {
		if field.value == nil {
			continue
		}
		if err := setBig(field.dst, (*big.Int)(field.value)); err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
	}

	for _, field := range dec.SealFields {
		h.Seal = append(h.Seal, field)
	}
	return nil
}
