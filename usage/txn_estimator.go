// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"fmt"
	"strings"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"

	safemath "github.com/ava-labs/feemeter/utils/math"
)

type inputs uint8

const (
	hasEnvelope inputs = 1 << iota
	hasSignatureMap
	hasPayerKeyCount

	allInputs = hasEnvelope | hasSignatureMap | hasPayerKeyCount
)

func (i inputs) missing() string {
	var names []string
	if i&hasEnvelope == 0 {
		names = append(names, "envelope")
	}
	if i&hasSignatureMap == 0 {
		names = append(names, "signature map")
	}
	if i&hasPayerKeyCount == 0 {
		names = append(names, "payer key count")
	}
	return strings.Join(names, ", ")
}

// TxnEstimator computes the partitioned usage of a single transaction. It
// needs the transaction body, its signature map and the payer's key count;
// operation-specific calculators then add their deltas with the Plus methods
// before Finalize is called once.
//
// Record, storage and network deltas are in byte-seconds.
//
// TxnEstimator is single-use and not safe for concurrent use.
type TxnEstimator struct {
	estimator *Estimator

	present      inputs
	body         *txn.Body
	sigMap       *txn.SignatureMap
	numPayerKeys uint64

	bpt        uint64
	vpt        uint64
	rbs        uint64
	sbs        uint64
	gas        uint64
	tv         uint64
	networkRbs uint64

	err error
}

func NewTxnEstimator(estimator *Estimator) *TxnEstimator {
	return &TxnEstimator{estimator: estimator}
}

// NewTxnEstimatorFor returns an estimator with every required input set.
func NewTxnEstimatorFor(
	estimator *Estimator,
	body *txn.Body,
	sigMap *txn.SignatureMap,
	numPayerKeys uint64,
) *TxnEstimator {
	return NewTxnEstimator(estimator).
		WithEnvelope(body).
		WithSignatureMap(sigMap).
		WithPayerKeyCount(numPayerKeys)
}

func (t *TxnEstimator) Estimator() *Estimator {
	return t.estimator
}

// Properties is shorthand for t.Estimator().Properties().
func (t *TxnEstimator) Properties() Properties {
	return t.estimator.props
}

// WithEnvelope sets the transaction body. A nil body leaves the input unset.
func (t *TxnEstimator) WithEnvelope(body *txn.Body) *TxnEstimator {
	if body != nil {
		t.body = body
		t.present |= hasEnvelope
	}
	return t
}

// WithSignatureMap sets the signatures. A nil map leaves the input unset; an
// empty map is a valid input.
func (t *TxnEstimator) WithSignatureMap(sigMap *txn.SignatureMap) *TxnEstimator {
	if sigMap != nil {
		t.sigMap = sigMap
		t.present |= hasSignatureMap
	}
	return t
}

func (t *TxnEstimator) WithPayerKeyCount(n uint64) *TxnEstimator {
	t.numPayerKeys = n
	t.present |= hasPayerKeyCount
	return t
}

func (t *TxnEstimator) PlusBpt(n uint64) *TxnEstimator {
	return t.plus(&t.bpt, n, "bpt")
}

func (t *TxnEstimator) PlusVpt(n uint64) *TxnEstimator {
	return t.plus(&t.vpt, n, "vpt")
}

func (t *TxnEstimator) PlusRbs(n uint64) *TxnEstimator {
	return t.plus(&t.rbs, n, "rbs")
}

func (t *TxnEstimator) PlusSbs(n uint64) *TxnEstimator {
	return t.plus(&t.sbs, n, "sbs")
}

func (t *TxnEstimator) PlusGas(n uint64) *TxnEstimator {
	return t.plus(&t.gas, n, "gas")
}

func (t *TxnEstimator) PlusTv(n uint64) *TxnEstimator {
	return t.plus(&t.tv, n, "tv")
}

func (t *TxnEstimator) PlusNetworkRbs(n uint64) *TxnEstimator {
	return t.plus(&t.networkRbs, n, "network rbs")
}

func (t *TxnEstimator) plus(total *uint64, n uint64, name string) *TxnEstimator {
	if t.err != nil {
		return t
	}
	sum, err := safemath.Add(*total, n)
	if err != nil {
		t.err = fmt.Errorf("%w: %s delta", err, name)
		return t
	}
	*total = sum
	return t
}

// Finalize returns the partitioned usage of the transaction. It fails with
// ErrMissingInputs if a required input was never set, and with ErrOverflow if
// any tally overflowed; it never returns a partial schedule.
func (t *TxnEstimator) Finalize(subType fees.SubType) (fees.FeeData, error) {
	if t.present != allInputs {
		return fees.FeeData{}, fmt.Errorf("%w: %s", ErrMissingInputs, t.present.missing())
	}
	if t.err != nil {
		return fees.FeeData{}, t.err
	}

	sigUsage := NewSigUsage(t.sigMap, t.numPayerKeys)
	acc, err := t.estimator.BaseEstimate(t.body, sigUsage)
	if err != nil {
		return fees.FeeData{}, err
	}
	acc.AddBpt(t.bpt)
	acc.AddVpt(t.vpt)
	acc.AddGas(t.gas)
	acc.AddTv(t.tv)
	acc.AddRbs(t.rbs)
	acc.AddSbs(t.sbs)

	networkRbs, err := safemath.Add(t.estimator.BaseNetworkRbs(), t.networkRbs)
	if err != nil {
		return fees.FeeData{}, fmt.Errorf("%w: network rbs", err)
	}

	usage, err := acc.Finalize()
	if err != nil {
		return fees.FeeData{}, err
	}
	return t.estimator.WithDefaultTxnPartitioning(
		usage,
		subType,
		NonDegenerateDiv(networkRbs, sizes.HrsDivisor),
		sigUsage.NumPayerKeys,
	), nil
}
