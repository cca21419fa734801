// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
)

func TestQueryUsage(t *testing.T) {
	require := require.New(t)

	q := NewQueryUsage(txn.AnswerStateProof)
	require.Equal(txn.AnswerStateProof, q.ResponseType())
	require.Equal(uint64(sizes.BasicQueryHeader), q.Tb())
	require.Zero(q.Rb())

	got, err := q.AddTb(24).AddRb(32).AddRb(8).Finalize()
	require.NoError(err)
	require.Equal(fees.FeeData{
		NodeData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      sizes.BasicQueryHeader + 24,
			Bpr:      40,
		},
	}, got)
}

func TestQueryUsageResponseTypeDoesNotChangeUsage(t *testing.T) {
	require := require.New(t)

	answerOnly, err := NewQueryUsage(txn.AnswerOnly).AddRb(10).Finalize()
	require.NoError(err)
	stateProof, err := NewQueryUsage(txn.CostAnswerStateProof).AddRb(10).Finalize()
	require.NoError(err)
	require.Equal(answerOnly, stateProof)
}

func TestQueryUsageOverflow(t *testing.T) {
	require := require.New(t)

	got, err := NewQueryUsage(txn.AnswerOnly).AddTb(math.MaxUint64).Finalize()
	require.ErrorIs(err, ErrOverflow)
	require.Equal(fees.FeeData{}, got)
}
