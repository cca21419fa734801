// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sizes defines the protocol size constants and the canonical size
// functions every node uses to measure transactions. All values are in bytes
// unless noted otherwise, and must be identical on every node.
package sizes

const (
	LongSize   = 8
	IntSize    = 4
	BoolSize   = 4
	KeySize    = 32
	TxHashSize = 48

	// FeeMatricesConst is the constant term of every fee component.
	FeeMatricesConst = 1

	// shard, realm, num
	BasicEntityIDSize = 3 * LongSize
	// account ID, amount
	BasicAccountAmtSize = BasicEntityIDSize + LongSize
	// payer account ID, valid start
	BasicTxIDSize = BasicEntityIDSize + LongSize
	// hbar equivalent, cent equivalent, expiration
	ExchangeRateSize = 2*IntSize + LongSize
	// status, current and next exchange rates
	BasicReceiptSize = IntSize + 2*ExchangeRateSize
	// receipt, hash, consensus timestamp, transaction ID, charged fee
	BasicTxRecordSize = BasicReceiptSize + TxHashSize + LongSize + BasicTxIDSize + LongSize
	// node account ID, transaction ID, fee, valid duration
	BasicTxBodySize = BasicEntityIDSize + BasicTxIDSize + LongSize + LongSize

	BasicQueryHeader    = 212
	BasicQueryResHeader = 2*IntSize + LongSize
	StateProofSize      = 2000

	// Entity numbers and account amounts are charged as a single long when the
	// shard and realm are implied by the network.
	LongBasicEntityIDSize  = LongSize
	LongAccountAmountBytes = LongBasicEntityIDSize + LongSize

	// HrsDivisor converts byte-seconds to byte-hours.
	HrsDivisor = 3600
)
