// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meter

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/txn"
	"github.com/ava-labs/feemeter/utils/metric"
	"github.com/ava-labs/feemeter/utils/wrappers"
)

const functionalityLabel = "functionality"

type metrics struct {
	txnsMetered,
	txnsFailed,
	queriesMetered,
	queriesFailed *prometheus.CounterVec

	bpt,
	rbh *prometheus.HistogramVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		txnsMetered:    metric.NewCounterVec(namespace, "txns_metered", functionalityLabel),
		txnsFailed:     metric.NewCounterVec(namespace, "txns_failed", functionalityLabel),
		queriesMetered: metric.NewCounterVec(namespace, "queries_metered", functionalityLabel),
		queriesFailed:  metric.NewCounterVec(namespace, "queries_failed", functionalityLabel),
		bpt: metric.NewHistogramVec(
			namespace,
			"txn_bpt",
			"bytes per transaction charged to the network",
			metric.BytesBuckets,
			functionalityLabel,
		),
		rbh: metric.NewHistogramVec(
			namespace,
			"txn_rbh",
			"record byte-hours charged to the service",
			metric.ByteHoursBuckets,
			functionalityLabel,
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.txnsMetered),
		registerer.Register(m.txnsFailed),
		registerer.Register(m.queriesMetered),
		registerer.Register(m.queriesFailed),
		registerer.Register(m.bpt),
		registerer.Register(m.rbh),
	)
	return m, errs.Err
}

func (m *metrics) observeTxn(f txn.Functionality, feeData fees.FeeData) {
	label := f.String()
	m.txnsMetered.WithLabelValues(label).Inc()
	m.bpt.WithLabelValues(label).Observe(float64(feeData.NetworkData.Bpt))
	m.rbh.WithLabelValues(label).Observe(float64(feeData.ServiceData.Rbh))
}
