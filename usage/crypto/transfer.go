// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/usage"

	safemath "github.com/ava-labs/feemeter/utils/math"
)

var _ usage.TxnUsageCalculator = Transfer{}

// Transfer meters an hbar transfer. Each adjustment is transmitted once and
// kept in the record for the receipt storage period.
type Transfer struct{}

func (Transfer) Functionality() txn.Functionality {
	return txn.CryptoTransfer
}

func (Transfer) Customize(body *txn.Body, estimator *usage.TxnEstimator) error {
	op := body.CryptoTransfer
	if op == nil {
		return fmt.Errorf("%w: expected %s, got %s",
			usage.ErrWrongFunctionality,
			txn.CryptoTransfer,
			body.Functionality(),
		)
	}

	adjustmentBytes, err := safemath.Mul(uint64(len(op.Transfers)), sizes.LongAccountAmountBytes)
	if err != nil {
		return fmt.Errorf("%w: transfer bytes", err)
	}
	adjustmentRbs, err := safemath.Mul(adjustmentBytes, estimator.Properties().LegacyReceiptStorageSeconds)
	if err != nil {
		return fmt.Errorf("%w: transfer record byte-seconds", err)
	}
	estimator.
		PlusBpt(adjustmentBytes).
		PlusRbs(adjustmentRbs)
	return nil
}
