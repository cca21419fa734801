// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meter estimates the fee components of transactions and queries by
// dispatching them to the usage calculator registered for their
// functionality.
package meter

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/usage"
	"github.com/ava-labs/feemeter/usage/consensus"
	"github.com/ava-labs/feemeter/usage/crypto"
	"github.com/ava-labs/feemeter/usage/util"
	"github.com/ava-labs/feemeter/utils/logging"
)

var (
	ErrUnsupportedFunctionality = errors.New("unsupported functionality")
	ErrDuplicateCalculator      = errors.New("duplicate calculator")
)

// TxnCalculators are the built-in transaction usage calculators.
func TxnCalculators() []usage.TxnUsageCalculator {
	return []usage.TxnUsageCalculator{
		consensus.SubmitMessage{},
		crypto.Transfer{},
		util.Prng{},
	}
}

// QueryCalculators are the built-in query usage calculators.
func QueryCalculators() []usage.QueryUsageCalculator {
	return []usage.QueryUsageCalculator{
		crypto.BalanceQuery{},
	}
}

type Config struct {
	Properties       usage.Properties
	MetricsNamespace string
	TxnCalculators   []usage.TxnUsageCalculator
	QueryCalculators []usage.QueryUsageCalculator
}

// Meter is safe for concurrent use; every estimate runs on its own
// accumulators.
type Meter struct {
	log        logging.Logger
	estimator  *usage.Estimator
	txnCalcs   map[txn.Functionality]usage.TxnUsageCalculator
	queryCalcs map[txn.Functionality]usage.QueryUsageCalculator
	metrics    *metrics
}

func New(
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*Meter, error) {
	estimator, err := usage.NewEstimator(config.Properties, nil)
	if err != nil {
		return nil, err
	}

	m := &Meter{
		log:        log,
		estimator:  estimator,
		txnCalcs:   make(map[txn.Functionality]usage.TxnUsageCalculator, len(config.TxnCalculators)),
		queryCalcs: make(map[txn.Functionality]usage.QueryUsageCalculator, len(config.QueryCalculators)),
	}
	for _, calc := range config.TxnCalculators {
		f := calc.Functionality()
		if _, ok := m.txnCalcs[f]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCalculator, f)
		}
		m.txnCalcs[f] = calc
	}
	for _, calc := range config.QueryCalculators {
		f := calc.Functionality()
		if _, ok := m.queryCalcs[f]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCalculator, f)
		}
		m.queryCalcs[f] = calc
	}

	m.metrics, err = newMetrics(config.MetricsNamespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}
	return m, nil
}

func (m *Meter) Estimator() *usage.Estimator {
	return m.estimator
}

// EstimateTxn returns the fee components of [body] signed with [sigMap] by a
// payer holding [payerKey].
func (m *Meter) EstimateTxn(
	body *txn.Body,
	sigMap *txn.SignatureMap,
	payerKey *txn.Key,
	subType fees.SubType,
) (fees.FeeData, error) {
	if body == nil {
		return fees.FeeData{}, fmt.Errorf("%w: envelope", usage.ErrMissingInputs)
	}

	f := body.Functionality()
	feeData, err := m.estimateTxn(f, body, sigMap, payerKey, subType)
	if err != nil {
		m.metrics.txnsFailed.WithLabelValues(f.String()).Inc()
		m.log.Error("failed to estimate transaction usage",
			zap.Stringer("txID", body.TransactionID),
			zap.Stringer("functionality", f),
			zap.Error(err),
		)
		return fees.FeeData{}, err
	}

	m.metrics.observeTxn(f, feeData)
	m.log.Debug("estimated transaction usage",
		zap.Stringer("txID", body.TransactionID),
		zap.Stringer("functionality", f),
		zap.Stringer("subType", subType),
		zap.Uint64("bpt", feeData.NetworkData.Bpt),
		zap.Uint64("vpt", feeData.NetworkData.Vpt),
		zap.Uint64("rbh", feeData.ServiceData.Rbh),
	)
	return feeData, nil
}

func (m *Meter) estimateTxn(
	f txn.Functionality,
	body *txn.Body,
	sigMap *txn.SignatureMap,
	payerKey *txn.Key,
	subType fees.SubType,
) (fees.FeeData, error) {
	calc, ok := m.txnCalcs[f]
	if !ok {
		return fees.FeeData{}, fmt.Errorf("%w: %s", ErrUnsupportedFunctionality, f)
	}

	estimator := usage.NewTxnEstimatorFor(m.estimator, body, sigMap, sizes.CountCryptoKeys(payerKey))
	if err := calc.Customize(body, estimator); err != nil {
		return fees.FeeData{}, err
	}
	return estimator.Finalize(subType)
}

// EstimateQuery returns the fee components of answering [query].
func (m *Meter) EstimateQuery(query *txn.Query) (fees.FeeData, error) {
	if query == nil {
		return fees.FeeData{}, fmt.Errorf("%w: query", usage.ErrMissingInputs)
	}

	f := query.Functionality()
	feeData, err := m.estimateQuery(f, query)
	if err != nil {
		m.metrics.queriesFailed.WithLabelValues(f.String()).Inc()
		m.log.Error("failed to estimate query usage",
			zap.Stringer("functionality", f),
			zap.Error(err),
		)
		return fees.FeeData{}, err
	}

	m.metrics.queriesMetered.WithLabelValues(f.String()).Inc()
	m.log.Debug("estimated query usage",
		zap.Stringer("functionality", f),
		zap.Stringer("responseType", query.ResponseType),
		zap.Uint64("bpt", feeData.NodeData.Bpt),
		zap.Uint64("bpr", feeData.NodeData.Bpr),
	)
	return feeData, nil
}

func (m *Meter) estimateQuery(f txn.Functionality, query *txn.Query) (fees.FeeData, error) {
	calc, ok := m.queryCalcs[f]
	if !ok {
		return fees.FeeData{}, fmt.Errorf("%w: %s", ErrUnsupportedFunctionality, f)
	}

	q := usage.NewQueryUsage(query.ResponseType)
	if err := calc.Customize(query, q); err != nil {
		return fees.FeeData{}, err
	}
	return q.Finalize()
}
