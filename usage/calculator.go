// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import "github.com/ava-labs/feemeter/txn"

// TxnUsageCalculator adds the usage specific to one kind of transaction on top
// of the base estimate.
type TxnUsageCalculator interface {
	// Functionality is the kind of transaction this calculator handles.
	Functionality() txn.Functionality

	// Customize adds the usage of [body] to [estimator] with its Plus
	// methods.
	Customize(body *txn.Body, estimator *TxnEstimator) error
}

// QueryUsageCalculator adds the usage specific to one kind of query.
type QueryUsageCalculator interface {
	Functionality() txn.Functionality

	Customize(query *txn.Query, usage *QueryUsage) error
}
