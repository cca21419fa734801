// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"fmt"

	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/usage"
)

var _ usage.QueryUsageCalculator = BalanceQuery{}

// BalanceQuery meters a balance lookup: the request names one account and the
// response returns that account and its balance.
type BalanceQuery struct{}

func (BalanceQuery) Functionality() txn.Functionality {
	return txn.CryptoGetAccountBalance
}

func (BalanceQuery) Customize(query *txn.Query, q *usage.QueryUsage) error {
	if query.CryptoGetAccountBalance == nil {
		return fmt.Errorf("%w: expected %s, got %s",
			usage.ErrWrongFunctionality,
			txn.CryptoGetAccountBalance,
			query.Functionality(),
		)
	}

	q.AddTb(sizes.BasicEntityIDSize)
	q.AddRb(sizes.BasicEntityIDSize + sizes.LongSize)
	return nil
}
