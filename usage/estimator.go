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

// CenturySeconds caps the lifetime any entity is charged for.
const CenturySeconds = 100 * 365 * 24 * 60 * 60

var defaultEstimator = &Estimator{
	props: DefaultProperties,
	sizer: sizes.DefaultCalculator{},
}

// Estimator computes the usage every transaction or query incurs before any
// operation-specific costs, and partitions finished usage among the network,
// node and service payees.
//
// Estimator holds no mutable state and is safe for concurrent use.
type Estimator struct {
	props Properties
	sizer sizes.Calculator
}

// NewEstimator returns an estimator reading [props]. A nil [sizer] means
// sizes.DefaultCalculator.
func NewEstimator(props Properties, sizer sizes.Calculator) (*Estimator, error) {
	if err := props.Verify(); err != nil {
		return nil, err
	}
	if sizer == nil {
		sizer = sizes.DefaultCalculator{}
	}
	return &Estimator{
		props: props,
		sizer: sizer,
	}, nil
}

// DefaultEstimator returns the estimator configured with DefaultProperties and
// sizes.DefaultCalculator.
func DefaultEstimator() *Estimator {
	return defaultEstimator
}

func (e *Estimator) Properties() Properties {
	return e.props
}

// BaseNetworkRbs is the receipt retention, in byte-seconds, charged to the
// network for every transaction.
func (e *Estimator) BaseNetworkRbs() uint64 {
	// Properties.Verify bounds the storage seconds, so this can't overflow.
	return sizes.BasicReceiptSize * e.props.LegacyReceiptStorageSeconds
}

func (e *Estimator) BaseBodyBytes(body *txn.Body) uint64 {
	return e.sizer.BaseBodyBytes(body)
}

func (e *Estimator) BaseRecordBytes(body *txn.Body) uint64 {
	meta := NewBaseTransactionMeta(body)
	return sizes.BasicTxRecordSize + meta.MemoUtf8Bytes + sizes.BasicAccountAmtSize*meta.NumExplicitTransfers
}

// BaseEstimate returns an accumulator holding the minimum usage of [body]
// signed as described by [sigUsage].
func (e *Estimator) BaseEstimate(body *txn.Body, sigUsage SigUsage) (*Accumulator, error) {
	bpt, err := safemath.Add(e.BaseBodyBytes(body), sigUsage.SigsSize)
	if err != nil {
		return nil, fmt.Errorf("%w: base bpt", err)
	}
	rbs, err := safemath.Mul(e.BaseRecordBytes(body), e.props.LegacyReceiptStorageSeconds)
	if err != nil {
		return nil, fmt.Errorf("%w: base record byte-seconds", err)
	}

	acc := NewAccumulator(fees.Components{
		Bpr: sizes.IntSize,
		Vpt: sigUsage.NumSigs,
		Bpt: bpt,
	})
	acc.AddRbs(rbs)
	return acc, nil
}

// WithDefaultTxnPartitioning splits [usage] among the payees of a
// transaction. The node is paid per payer key it must verify; the network is
// paid per signature supplied.
func (*Estimator) WithDefaultTxnPartitioning(
	usage fees.Components,
	subType fees.SubType,
	networkRbh uint64,
	numPayerKeys uint64,
) fees.FeeData {
	return fees.FeeData{
		SubType: subType,
		NetworkData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      usage.Bpt,
			Vpt:      usage.Vpt,
			Rbh:      networkRbh,
		},
		NodeData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      usage.Bpt,
			Vpt:      numPayerKeys,
			Bpr:      usage.Bpr,
			Sbpr:     usage.Sbpr,
		},
		ServiceData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Rbh:      usage.Rbh,
			Sbh:      usage.Sbh,
			Tv:       usage.Tv,
		},
	}
}

// WithDefaultQueryPartitioning charges [usage] to the node alone.
func (*Estimator) WithDefaultQueryPartitioning(usage fees.Components) fees.FeeData {
	return withDefaultQueryPartitioning(usage)
}

func withDefaultQueryPartitioning(usage fees.Components) fees.FeeData {
	return fees.FeeData{
		SubType: fees.Default,
		NodeData: fees.Components{
			Constant: sizes.FeeMatricesConst,
			Bpt:      usage.Bpt,
			Bpr:      usage.Bpr,
			Sbpr:     usage.Sbpr,
		},
	}
}

// NonDegenerateDiv returns amount / divisor, except that a positive amount
// never rounds down to zero. [divisor] must be positive.
func NonDegenerateDiv(amount, divisor uint64) uint64 {
	if amount == 0 {
		return 0
	}
	return max(1, amount/divisor)
}

// ChangeInBsUsage returns the change in byte-seconds when an entity using
// [oldUsage] bytes for [oldLifetime] seconds is replaced by one using
// [newUsage] bytes for [newLifetime] seconds. Lifetimes are capped at
// CenturySeconds.
func ChangeInBsUsage(oldUsage, oldLifetime, newUsage, newLifetime int64) (int64, error) {
	oldBs, err := safemath.MulInt64(min(oldLifetime, CenturySeconds), oldUsage)
	if err != nil {
		return 0, fmt.Errorf("%w: old byte-seconds", err)
	}
	newBs, err := safemath.MulInt64(min(newLifetime, CenturySeconds), newUsage)
	if err != nil {
		return 0, fmt.Errorf("%w: new byte-seconds", err)
	}
	return safemath.SubInt64(newBs, oldBs)
}

// RelativeLifetime returns the seconds from the valid start of [body] to
// [expiry]. The valid start is agreed by consensus, so every node computes the
// same lifetime.
func RelativeLifetime(body *txn.Body, expiry int64) (int64, error) {
	return safemath.SubInt64(expiry, body.TransactionID.ValidStart.Seconds)
}
