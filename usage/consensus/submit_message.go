// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consensus

import (
	"fmt"

	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/usage"
)

var _ usage.TxnUsageCalculator = SubmitMessage{}

// SubmitMessage meters a message submitted to a topic.
type SubmitMessage struct{}

func (SubmitMessage) Functionality() txn.Functionality {
	return txn.ConsensusSubmitMessage
}

func (SubmitMessage) Customize(body *txn.Body, estimator *usage.TxnEstimator) error {
	op := body.ConsensusSubmitMessage
	if op == nil {
		return fmt.Errorf("%w: expected %s, got %s",
			usage.ErrWrongFunctionality,
			txn.ConsensusSubmitMessage,
			body.Functionality(),
		)
	}

	estimator.PlusBpt(sizes.LongBasicEntityIDSize + uint64(len(op.Message)))
	// the receipt also carries the topic's new sequence number and running hash
	receiptSecs := estimator.Properties().LegacyReceiptStorageSeconds
	estimator.PlusNetworkRbs((sizes.LongSize + sizes.TxHashSize) * receiptSecs)
	return nil
}
