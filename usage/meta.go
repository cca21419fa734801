// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
)

// SigUsage is the shape of the signatures attached to one transaction.
type SigUsage struct {
	NumSigs      uint64 `json:"numSigs"`
	SigsSize     uint64 `json:"sigsSize"`
	NumPayerKeys uint64 `json:"numPayerKeys"`
}

func NewSigUsage(sigMap *txn.SignatureMap, numPayerKeys uint64) SigUsage {
	var numSigs uint64
	if sigMap != nil {
		numSigs = uint64(len(sigMap.Pairs))
	}
	return SigUsage{
		NumSigs:      numSigs,
		SigsSize:     sizes.SignatureMapBytes(sigMap),
		NumPayerKeys: numPayerKeys,
	}
}

// BaseTransactionMeta is the part of a transaction body that every
// transaction's record pays for.
type BaseTransactionMeta struct {
	MemoUtf8Bytes        uint64 `json:"memoUtf8Bytes"`
	NumExplicitTransfers uint64 `json:"numExplicitTransfers"`
}

// NewBaseTransactionMeta counts explicit transfers only for crypto transfers;
// other operations never list transfers in their body.
func NewBaseTransactionMeta(body *txn.Body) BaseTransactionMeta {
	meta := BaseTransactionMeta{
		MemoUtf8Bytes: body.MemoBytes(),
	}
	if body.Functionality() == txn.CryptoTransfer {
		meta.NumExplicitTransfers = uint64(len(body.CryptoTransfer.Transfers))
	}
	return meta
}
