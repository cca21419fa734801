// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sizes

import "github.com/ava-labs/feemeter/txn"

// KeyBytes returns the storage size of [key]: KeySize for every primitive key
// plus IntSize for every threshold it contains.
func KeyBytes(key *txn.Key) uint64 {
	primitives, thresholds := keyMetadata(key)
	return primitives*KeySize + thresholds*IntSize
}

// CountCryptoKeys returns the number of primitive keys in [key].
func CountCryptoKeys(key *txn.Key) uint64 {
	primitives, _ := keyMetadata(key)
	return primitives
}

func keyMetadata(key *txn.Key) (primitives uint64, thresholds uint64) {
	switch {
	case key == nil:
		return 0, 0
	case key.Ed25519 != nil, key.ECDSASecp256k1 != nil, key.ContractID != nil:
		return 1, 0
	case key.Threshold != nil:
		primitives, thresholds = sumKeyMetadata(key.Threshold.Keys)
		return primitives, thresholds + 1
	default:
		return sumKeyMetadata(key.KeyList)
	}
}

func sumKeyMetadata(keys []*txn.Key) (primitives uint64, thresholds uint64) {
	for _, k := range keys {
		p, t := keyMetadata(k)
		primitives += p
		thresholds += t
	}
	return primitives, thresholds
}
