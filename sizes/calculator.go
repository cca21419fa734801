// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sizes

import "github.com/ava-labs/feemeter/txn"

var _ Calculator = DefaultCalculator{}

// Calculator measures the parts of a transaction whose size depends on the
// protocol's canonical encoding.
type Calculator interface {
	// BaseBodyBytes returns the size of [body] excluding its
	// operation-specific payload.
	BaseBodyBytes(body *txn.Body) uint64
}

// DefaultCalculator charges the fixed envelope fields at their nominal
// widths plus the UTF-8 length of the memo.
type DefaultCalculator struct{}

func (DefaultCalculator) BaseBodyBytes(body *txn.Body) uint64 {
	return BasicTxBodySize + body.MemoBytes()
}
