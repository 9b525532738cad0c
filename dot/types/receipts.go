// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/trie"
)

// Receipts are the transactions receipts of a single header.
type Receipts = ethtypes.Receipts

// ReceiptsRoot computes the root of the receipts trie.
func ReceiptsRoot(receipts Receipts) common.Hash {
	return ethtypes.DeriveSha(receipts, trie.NewStackTrie(nil))
}

// HeaderWithReceipts is a header submitted for import, with the
// transactions receipts it may need to prove a validators set change.
// A nil Receipts means no receipts were provided.
type HeaderWithReceipts struct {
	Header   *Header  `json:"header"`
	Receipts Receipts `json:"receipts"`
}
