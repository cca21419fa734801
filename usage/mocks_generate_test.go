// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/calculator.go -mock_names=TxnUsageCalculator=TxnUsageCalculator,QueryUsageCalculator=QueryUsageCalculator . TxnUsageCalculator,QueryUsageCalculator
