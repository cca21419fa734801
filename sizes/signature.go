// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sizes

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ava-labs/feemeter/txn"
)

const (
	sigMapPairField    protowire.Number = 1
	sigPairPrefixField protowire.Number = 1
)

const (
	minSignatureField = txn.SigContract
	maxSignatureField = txn.SigECDSASecp256k1
)

// SignatureMapBytes returns the length of [sigMap] in its canonical protobuf
// encoding.
func SignatureMapBytes(sigMap *txn.SignatureMap) uint64 {
	if sigMap == nil {
		return 0
	}
	size := 0
	for i := range sigMap.Pairs {
		pairSize := signaturePairBytes(&sigMap.Pairs[i])
		size += protowire.SizeTag(sigMapPairField) + protowire.SizeBytes(pairSize)
	}
	return uint64(size)
}

func signaturePairBytes(pair *txn.SignaturePair) int {
	size := 0
	// proto3 omits empty scalar bytes fields
	if len(pair.PubKeyPrefix) > 0 {
		size += protowire.SizeTag(sigPairPrefixField) + protowire.SizeBytes(len(pair.PubKeyPrefix))
	}
	// a set oneof member is always written, even when empty
	if pair.Type >= minSignatureField && pair.Type <= maxSignatureField {
		size += protowire.SizeTag(protowire.Number(pair.Type)) + protowire.SizeBytes(len(pair.Signature))
	}
	return size
}
