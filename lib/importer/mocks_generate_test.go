// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Storage,Verifier,ValidatorSource,Finalizer
