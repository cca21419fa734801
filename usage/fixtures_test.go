// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import "github.com/ava-labs/feemeter/txn"

const memo = "You won't want to hear this."

var (
	canonicalSig = []byte("0123456789012345678901234567890123456789012345678901234567890123")

	payer = txn.AccountID{Num: 2}
	node  = txn.AccountID{Num: 3}
)

func transferBody(memo string, numTransfers int) *txn.Body {
	transfers := make([]txn.AccountAmount, numTransfers)
	for i := range transfers {
		transfers[i] = txn.AccountAmount{
			AccountID: txn.AccountID{Num: uint64(1001 + i)},
			Amount:    int64(i + 1),
		}
	}
	return &txn.Body{
		TransactionID: txn.TransactionID{
			ValidStart: txn.Timestamp{Seconds: 1_234_567, Nanos: 890},
			Payer:      payer,
		},
		NodeAccountID:        node,
		TransactionFee:       100_000_000,
		TransactionValidSecs: 120,
		Memo:                 memo,
		CryptoTransfer:       &txn.CryptoTransferBody{Transfers: transfers},
	}
}

// sigMap returns [n] ed25519 pairs, each 71 bytes when encoded.
func sigMap(n int) *txn.SignatureMap {
	pairs := make([]txn.SignaturePair, n)
	for i := range pairs {
		pairs[i] = txn.SignaturePair{
			PubKeyPrefix: []byte{byte('a' + i)},
			Type:         txn.SigEd25519,
			Signature:    canonicalSig,
		}
	}
	return &txn.SignatureMap{Pairs: pairs}
}
