// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package aura

import (
	"bytes"
	"crypto/ecdsa"

	"github.com/ChainSafe/aurabridge/dot/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenesisStep is the step of the genesis header built by GenesisHeader.
const GenesisStep = 42

// TestGasLimit is the gas limit of headers built by HeaderBuilder.
const TestGasLimit = 0x2000

// TestConfiguration returns the configuration used by tests.
func TestConfiguration() Configuration {
	return KovanConfiguration()
}

// ValidatorKey returns the deterministic secret key of the test validator at index.
func ValidatorKey(index int) *ecdsa.PrivateKey {
	key, err := crypto.ToECDSA(bytes.Repeat([]byte{byte(index + 1)}, 32))
	if err != nil {
		panic(err)
	}
	return key
}

// ValidatorKeys returns the keys of count test validators.
func ValidatorKeys(count int) []*ecdsa.PrivateKey {
	keys := make([]*ecdsa.PrivateKey, count)
	for i := range keys {
		keys[i] = ValidatorKey(i)
	}
	return keys
}

// ValidatorsAddresses returns the addresses of count test validators.
func ValidatorsAddresses(count int) []common.Address {
	addresses := make([]common.Address, count)
	for i := range addresses {
		addresses[i] = crypto.PubkeyToAddress(ValidatorKey(i).PublicKey)
	}
	return addresses
}

// GenesisHeader returns the header test chains start from.
func GenesisHeader() *types.Header {
	header := &types.Header{}
	header.SetStep(GenesisStep)
	header.SetSignature(nil)
	return header
}

// HeaderBuilder builds signed test headers.
type HeaderBuilder struct {
	header     *types.Header
	parentStep uint64
}

// NewHeaderBuilder returns a builder of a child of the parent, authored
// at the step following the parent step.
func NewHeaderBuilder(parent *types.Header) *HeaderBuilder {
	parentStep, _ := parent.Step()
	header := &types.Header{
		ParentHash: parent.Hash(),
		Number:     parent.Number + 1,
	}
	header.GasLimit.SetUint64(TestGasLimit)
	header.SetStep(parentStep + 1)
	header.SetSignature(nil)
	header.Difficulty = CalculateScore(parentStep, parentStep+1)
	return &HeaderBuilder{header: header, parentStep: parentStep}
}

// Step sets the step of the header and the difficulty expected at that step.
func (b *HeaderBuilder) Step(step uint64) *HeaderBuilder {
	b.header.SetStep(step)
	b.header.Difficulty = CalculateScore(b.parentStep, step)
	return b
}

// Difficulty sets the difficulty of the header.
func (b *HeaderBuilder) Difficulty(difficulty uint64) *HeaderBuilder {
	b.header.Difficulty.SetUint64(difficulty)
	return b
}

// Customize applies f to the header before it is signed.
func (b *HeaderBuilder) Customize(f func(header *types.Header)) *HeaderBuilder {
	f(b.header)
	return b
}

// SignBy sets the author of the header and signs it with key.
func (b *HeaderBuilder) SignBy(key *ecdsa.PrivateKey) *types.Header {
	b.header.Author = crypto.PubkeyToAddress(key.PublicKey)
	return SignHeader(b.header, key)
}

// SignBySet signs the header with the key of the step validator.
func (b *HeaderBuilder) SignBySet(keys []*ecdsa.PrivateKey) *types.Header {
	step, _ := b.header.Step()
	return b.SignBy(keys[step%uint64(len(keys))])
}

// SignHeader signs the seal hash of the header with key.
func SignHeader(header *types.Header, key *ecdsa.PrivateKey) *types.Header {
	sealHash := header.SealHash()
	signature, err := crypto.Sign(sealHash[:], key)
	if err != nil {
		panic(err)
	}
	header.SetSignature(signature)
	return header
}
