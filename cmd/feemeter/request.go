// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/meter"
	"github.com/ava-labs/feemeter/txn"
)

type txnRequest struct {
	Body     *txn.Body         `json:"body"`
	SigMap   *txn.SignatureMap `json:"sigMap"`
	PayerKey *txn.Key          `json:"payerKey"`
	SubType  fees.SubType      `json:"subType"`
}

// estimateTxn decodes a JSON or YAML transaction request and estimates it.
func estimateTxn(m *meter.Meter, request []byte) (fees.FeeData, error) {
	var r txnRequest
	if err := yaml.UnmarshalStrict(request, &r); err != nil {
		return fees.FeeData{}, fmt.Errorf("couldn't parse transaction request: %w", err)
	}
	return m.EstimateTxn(r.Body, r.SigMap, r.PayerKey, r.SubType)
}

func estimateQuery(m *meter.Meter, request []byte) (fees.FeeData, error) {
	var q txn.Query
	if err := yaml.UnmarshalStrict(request, &q); err != nil {
		return fees.FeeData{}, fmt.Errorf("couldn't parse query request: %w", err)
	}
	return m.EstimateQuery(&q)
}
