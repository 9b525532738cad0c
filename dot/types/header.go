// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// SignatureLength is the length of a recoverable secp256k1 signature sealed in a header.
const SignatureLength = crypto.SignatureLength

var errUint256Overflow = errors.New("value overflows 256 bits")

// HeaderID identifies a header by its number and hash.
type HeaderID struct {
	Number uint64
	Hash   common.Hash
}

func (id HeaderID) String() string {
	return fmt.Sprintf("#%d (%s)", id.Number, id.Hash.TerminalString())
}

// Header is an Aura block header of the source chain.
// The seal holds raw RLP items, the first being the step and
// the second the author signature.
type Header struct {
	ParentHash       common.Hash
	UncleHash        common.Hash
	Author           common.Address
	StateRoot        common.Hash
	TransactionsRoot common.Hash
	ReceiptsRoot     common.Hash
	LogBloom         ethtypes.Bloom
	Difficulty       uint256.Int
	Number           uint64
	GasLimit         uint256.Int
	GasUsed          uint256.Int
	Timestamp        uint64
	ExtraData        []byte
	Seal             [][]byte
}

// Hash returns the keccak256 hash of the RLP encoded header, seal included.
func (h *Header) Hash() common.Hash {
	return h.hash(true)
}

// SealHash returns the hash the author signs, which excludes the seal.
func (h *Header) SealHash() common.Hash {
	return h.hash(false)
}

// ID returns the number and hash of the header.
func (h *Header) ID() HeaderID {
	return HeaderID{Number: h.Number, Hash: h.Hash()}
}

// ParentID returns the id of the parent header.
// It returns false for a genesis header.
func (h *Header) ParentID() (id HeaderID, ok bool) {
	if h.Number == 0 {
		return id, false
	}
	return HeaderID{Number: h.Number - 1, Hash: h.ParentHash}, true
}

// Step decodes the Aura step from the first seal field.
func (h *Header) Step() (step uint64, ok bool) {
	if len(h.Seal) == 0 {
		return 0, false
	}
	if err := rlp.DecodeBytes(h.Seal[0], &step); err != nil {
		return 0, false
	}
	return step, true
}

// Signature decodes the author signature from the second seal field.
func (h *Header) Signature() (signature []byte, ok bool) {
	if len(h.Seal) < 2 {
		return nil, false
	}
	if err := rlp.DecodeBytes(h.Seal[1], &signature); err != nil {
		return nil, false
	}
	if len(signature) != SignatureLength {
		return nil, false
	}
	return signature, true
}

// SetStep sets the first seal field to the encoded step.
func (h *Header) SetStep(step uint64) {
	encoded, err := rlp.EncodeToBytes(step)
	if err != nil {
		panic(err)
	}
	h.setSealField(0, encoded)
}

// SetSignature sets the second seal field to the encoded signature.
func (h *Header) SetSignature(signature []byte) {
	encoded, err := rlp.EncodeToBytes(signature)
	if err != nil {
		panic(err)
	}
	h.setSealField(1, encoded)
}

func (h *Header) setSealField(index int, value []byte) {
	for len(h.Seal) <= index {
		h.Seal = append(h.Seal, []byte{rlp.EmptyString[0]})
	}
	h.Seal[index] = value
}

// CheckReceiptsRoot returns true if the receipts trie root matches
// the receipts root of the header.
func (h *Header) CheckReceiptsRoot(receipts Receipts) bool {
	return ReceiptsRoot(receipts) == h.ReceiptsRoot
}

// DeepCopy returns a deep copy of the header.
func (h *Header) DeepCopy() *Header {
	cp := *h
	cp.ExtraData = common.CopyBytes(h.ExtraData)
	if h.Seal != nil {
		cp.Seal = make([][]byte, len(h.Seal))
		for i, field := range h.Seal {
			cp.Seal[i] = common.CopyBytes(field)
		}
	}
	return &cp
}

func (h *Header) fields(withSeal bool) []interface{} {
	fields := []interface{}{
		h.ParentHash,
		h.UncleHash,
		h.Author,
		h.StateRoot,
		h.TransactionsRoot,
		h.ReceiptsRoot,
		h.LogBloom,
		h.Difficulty.ToBig(),
		h.Number,
		h.GasLimit.ToBig(),
		h.GasUsed.ToBig(),
		h.Timestamp,
		h.ExtraData,
	}
	if withSeal {
		for _, field := range h.Seal {
			fields = append(fields, rlp.RawValue(field))
		}
	}
	return fields
}

func (h *Header) hash(withSeal bool) common.Hash {
	encoded, err := rlp.EncodeToBytes(h.fields(withSeal))
	if err != nil {
		panic(fmt.Sprintf("encoding header: %s", err))
	}
	return crypto.Keccak256Hash(encoded)
}

// EncodeRLP implements rlp.Encoder and writes the header with its seal fields.
func (h *Header) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, h.fields(true))
}

// DecodeRLP implements rlp.Decoder.
func (h *Header) DecodeRLP(s *rlp.Stream) (err error) {
	if _, err = s.List(); err != nil {
		return err
	}

	var difficulty, gasLimit, gasUsed *big.Int
	targets := []interface{}{
		&h.ParentHash, &h.UncleHash, &h.Author, &h.StateRoot,
		&h.TransactionsRoot, &h.ReceiptsRoot, &h.LogBloom,
		&difficulty, &h.Number, &gasLimit, &gasUsed,
		&h.Timestamp, &h.ExtraData,
	}
	for _, target := range targets {
		if err = s.Decode(target); err != nil {
			return fmt.Errorf("decoding header field: %w", err)
		}
	}

	if err = setBig(&h.Difficulty, difficulty); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	if err = setBig(&h.GasLimit, gasLimit); err != nil {
		return fmt.Errorf("gas limit: %w", err)
	}
	if err = setBig(&h.GasUsed, gasUsed); err != nil {
		return fmt.Errorf("gas used: %w", err)
	}

	h.Seal = nil
	for {
		raw, err := s.Raw()
		if errors.Is(err, rlp.EOL) {
			break
		} else if err != nil {
			return fmt.Errorf("decoding seal field: %w", err)
		}
		h.Seal = append(h.Seal, raw)
	}

	return s.ListEnd()
}

func setBig(dst *uint256.Int, value *big.Int) error {
	if value == nil {
		dst.Clear()
		return nil
	}
	if overflow := dst.SetFromBig(value); overflow {
		return errUint256Overflow
	}
	return nil
}
