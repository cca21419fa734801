// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
)

type fixedSizer uint64

func (s fixedSizer) BaseBodyBytes(*txn.Body) uint64 {
	return uint64(s)
}

func TestNewEstimator(t *testing.T) {
	require := require.New(t)

	_, err := NewEstimator(Properties{}, nil)
	require.ErrorIs(err, ErrInvalidProperties)

	_, err = NewEstimator(Properties{LegacyReceiptStorageSeconds: CenturySeconds + 1}, nil)
	require.ErrorIs(err, ErrInvalidProperties)

	e, err := NewEstimator(Properties{LegacyReceiptStorageSeconds: 90}, nil)
	require.NoError(err)
	require.Equal(uint64(90), e.Properties().LegacyReceiptStorageSeconds)
	require.Equal(uint64(sizes.BasicTxBodySize), e.BaseBodyBytes(&txn.Body{}))
}

func TestBaseNetworkRbs(t *testing.T) {
	require.Equal(t, uint64(sizes.BasicReceiptSize*180), DefaultEstimator().BaseNetworkRbs())
}

func TestBaseRecordBytes(t *testing.T) {
	require := require.New(t)

	e := DefaultEstimator()

	noTransfers := transferBody(memo, 0)
	require.Equal(uint64(sizes.BasicTxRecordSize+len(memo)), e.BaseRecordBytes(noTransfers))

	for _, k := range []int{1, 2, 7} {
		withTransfers := transferBody(memo, k)
		require.Equal(
			e.BaseRecordBytes(noTransfers)+uint64(sizes.BasicAccountAmtSize*k),
			e.BaseRecordBytes(withTransfers),
		)
	}

	// transfers are only counted for crypto transfers
	prng := &txn.Body{Memo: memo, UtilPrng: &txn.UtilPrngBody{Range: 10}}
	require.Equal(uint64(sizes.BasicTxRecordSize+len(memo)), e.BaseRecordBytes(prng))
}

func TestBaseEstimate(t *testing.T) {
	require := require.New(t)

	var (
		e        = DefaultEstimator()
		body     = transferBody(memo, 1)
		sigs     = sigMap(2)
		sigUsage = NewSigUsage(sigs, 1)
	)
	require.Equal(SigUsage{NumSigs: 2, SigsSize: 142, NumPayerKeys: 1}, sigUsage)

	acc, err := e.BaseEstimate(body, sigUsage)
	require.NoError(err)

	base := acc.Base()
	require.Equal(uint64(sizes.IntSize), base.Bpr)
	require.Equal(sigUsage.NumSigs, base.Vpt)
	require.Equal(e.BaseBodyBytes(body)+sigUsage.SigsSize, base.Bpt)
	require.Equal(e.BaseRecordBytes(body)*180, acc.Rbs())
	require.Zero(acc.Sbs())

	usage, err := acc.Finalize()
	require.NoError(err)
	require.Equal(fees.Components{
		Bpt: 72 + 28 + 142,
		Vpt: 2,
		// (132 + 28 + 32) * 180 / 3600
		Rbh: 9,
		Bpr: 4,
	}, usage)
}

func TestBaseEstimateOverflow(t *testing.T) {
	require := require.New(t)

	e, err := NewEstimator(DefaultProperties, fixedSizer(math.MaxUint64))
	require.NoError(err)

	_, err = e.BaseEstimate(transferBody("", 0), SigUsage{NumSigs: 1, SigsSize: 1})
	require.ErrorIs(err, ErrOverflow)
}

func TestWithDefaultTxnPartitioning(t *testing.T) {
	require := require.New(t)

	usage := fees.Components{
		Constant: 99,
		Bpt:      1,
		Vpt:      2,
		Rbh:      3,
		Sbh:      4,
		Gas:      5,
		Tv:       6,
		Bpr:      7,
		Sbpr:     8,
	}
	got := DefaultEstimator().WithDefaultTxnPartitioning(usage, fees.TokenFungibleCommon, 10, 11)
	require.Equal(fees.FeeData{
		SubType: fees.TokenFungibleCommon,
		NetworkData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      1,
			Vpt:      2,
			Rbh:      10,
		},
		NodeData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      1,
			Vpt:      11,
			Bpr:      7,
			Sbpr:     8,
		},
		ServiceData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Rbh:      3,
			Sbh:      4,
			Tv:       6,
		},
	}, got)
}

func TestWithDefaultQueryPartitioning(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("only the node is charged", prop.ForAll(
		func(bpt, bpr, sbpr, rbh, tv uint64) string {
			usage := fees.Components{Bpt: bpt, Bpr: bpr, Sbpr: sbpr, Rbh: rbh, Tv: tv}
			got := DefaultEstimator().WithDefaultQueryPartitioning(usage)
			switch {
			case !got.NetworkData.IsZero():
				return "network component is not zero"
			case !got.ServiceData.IsZero():
				return "service component is not zero"
			case got.NodeData != (fees.Components{Constant: sizes.FeeMatricesConst, Bpt: bpt, Bpr: bpr, Sbpr: sbpr}):
				return "unexpected node component"
			default:
				return ""
			}
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestNonDegenerateDiv(t *testing.T) {
	require := require.New(t)

	require.Zero(NonDegenerateDiv(0, 60))
	require.Equal(uint64(1), NonDegenerateDiv(1, 60))
	require.Equal(uint64(5), NonDegenerateDiv(301, 60))
	require.Equal(uint64(math.MaxUint64), NonDegenerateDiv(math.MaxUint64, 1))
}

func TestNonDegenerateDivProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("zero is never charged", prop.ForAll(
		func(divisor uint64) bool {
			return NonDegenerateDiv(0, divisor) == 0
		},
		gen.UInt64Range(1, math.MaxUint64),
	))
	properties.Property("positive usage is always charged", prop.ForAll(
		func(amount, divisor uint64) bool {
			return NonDegenerateDiv(amount, divisor) >= 1
		},
		gen.UInt64Range(1, math.MaxUint64),
		gen.UInt64Range(1, math.MaxUint64),
	))
	properties.Property("matches integer division when it is positive", prop.ForAll(
		func(amount, divisor uint64) bool {
			q := amount / divisor
			return q < 1 || NonDegenerateDiv(amount, divisor) == q
		},
		gen.UInt64(),
		gen.UInt64Range(1, 1<<20),
	))
	properties.TestingRun(t)
}

func TestChangeInBsUsage(t *testing.T) {
	tests := []struct {
		name        string
		oldUsage    int64
		oldLifetime int64
		newUsage    int64
		newLifetime int64
		want        int64
		wantErr     error
	}{
		{
			name:        "lifetimes capped at a century",
			oldUsage:    1234,
			oldLifetime: CenturySeconds + 1,
			newUsage:    2345,
			newLifetime: 2*CenturySeconds + 1,
			want:        CenturySeconds * (2345 - 1234),
		},
		{
			name:        "uncapped",
			oldUsage:    10,
			oldLifetime: 100,
			newUsage:    20,
			newLifetime: 200,
			want:        20*200 - 10*100,
		},
		{
			name:        "shrinking usage",
			oldUsage:    20,
			oldLifetime: 200,
			newUsage:    10,
			newLifetime: 100,
			want:        10*100 - 20*200,
		},
		{
			name:        "overflow",
			oldUsage:    0,
			oldLifetime: 0,
			newUsage:    math.MaxInt64,
			newLifetime: 2,
			wantErr:     ErrOverflow,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			got, err := ChangeInBsUsage(test.oldUsage, test.oldLifetime, test.newUsage, test.newLifetime)
			require.ErrorIs(err, test.wantErr)
			require.Equal(test.want, got)
		})
	}
}

func TestRelativeLifetime(t *testing.T) {
	require := require.New(t)

	body := transferBody("", 0)
	got, err := RelativeLifetime(body, 1_234_567+7_776_000)
	require.NoError(err)
	require.Equal(int64(7_776_000), got)

	got, err = RelativeLifetime(body, 1_234_500)
	require.NoError(err)
	require.Equal(int64(-67), got)

	body.TransactionID.ValidStart.Seconds = math.MinInt64 + 1
	_, err = RelativeLifetime(body, math.MaxInt64)
	require.ErrorIs(err, ErrOverflow)
}
