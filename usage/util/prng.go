// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package util

import (
	"fmt"

	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/usage"
)

var _ usage.TxnUsageCalculator = Prng{}

// Prng meters a pseudorandom number request. With a range, the request carries
// the range and the record a number in it; without one, the record carries a
// full pseudorandom hash.
type Prng struct{}

func (Prng) Functionality() txn.Functionality {
	return txn.UtilPrng
}

func (Prng) Customize(body *txn.Body, estimator *usage.TxnEstimator) error {
	op := body.UtilPrng
	if op == nil {
		return fmt.Errorf("%w: expected %s, got %s",
			usage.ErrWrongFunctionality,
			txn.UtilPrng,
			body.Functionality(),
		)
	}

	recordBytes := uint64(sizes.TxHashSize)
	if op.Range > 0 {
		estimator.PlusBpt(sizes.IntSize)
		recordBytes = sizes.IntSize
	}
	estimator.PlusRbs(recordBytes * estimator.Properties().LegacyReceiptStorageSeconds)
	return nil
}
