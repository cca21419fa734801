// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"fmt"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"

	safemath "github.com/ava-labs/feemeter/utils/math"
)

// QueryUsage accumulates the bytes a query transmits and the bytes its
// response returns. Queries are answered by one node without consensus, so
// the node is the only payee.
//
// QueryUsage is single-use and not safe for concurrent use.
type QueryUsage struct {
	// TODO: charge StateProofSize once state proofs are served for
	// AnswerStateProof and CostAnswerStateProof.
	responseType txn.ResponseType

	tb  uint64
	rb  uint64
	err error
}

func NewQueryUsage(responseType txn.ResponseType) *QueryUsage {
	return &QueryUsage{
		responseType: responseType,
		tb:           sizes.BasicQueryHeader,
	}
}

func (q *QueryUsage) ResponseType() txn.ResponseType {
	return q.responseType
}

// Tb returns the transmitted bytes so far.
func (q *QueryUsage) Tb() uint64 {
	return q.tb
}

// Rb returns the response bytes so far.
func (q *QueryUsage) Rb() uint64 {
	return q.rb
}

func (q *QueryUsage) AddTb(n uint64) *QueryUsage {
	return q.add(&q.tb, n, "tb")
}

func (q *QueryUsage) AddRb(n uint64) *QueryUsage {
	return q.add(&q.rb, n, "rb")
}

func (q *QueryUsage) add(total *uint64, n uint64, name string) *QueryUsage {
	if q.err != nil {
		return q
	}
	sum, err := safemath.Add(*total, n)
	if err != nil {
		q.err = fmt.Errorf("%w: %s", err, name)
		return q
	}
	*total = sum
	return q
}

func (q *QueryUsage) Finalize() (fees.FeeData, error) {
	if q.err != nil {
		return fees.FeeData{}, q.err
	}
	return withDefaultQueryPartitioning(fees.Components{
		Bpt: q.tb,
		Bpr: q.rb,
	}), nil
}
