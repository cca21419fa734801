// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sizes

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/feemeter/txn"
)

var canonicalSig = []byte("0123456789012345678901234567890123456789012345678901234567890123")

func TestDerivedConstants(t *testing.T) {
	require := require.New(t)

	require.Equal(24, BasicEntityIDSize)
	require.Equal(32, BasicAccountAmtSize)
	require.Equal(36, BasicReceiptSize)
	require.Equal(132, BasicTxRecordSize)
	require.Equal(72, BasicTxBodySize)
	require.Equal(16, BasicQueryResHeader)
	require.Equal(16, LongAccountAmountBytes)
}

func TestBaseBodyBytes(t *testing.T) {
	require := require.New(t)

	var calc Calculator = DefaultCalculator{}
	require.Equal(uint64(BasicTxBodySize), calc.BaseBodyBytes(&txn.Body{}))
	require.Equal(
		uint64(BasicTxBodySize+28),
		calc.BaseBodyBytes(&txn.Body{Memo: "You won't want to hear this."}),
	)
}

func TestSignatureMapBytes(t *testing.T) {
	pair := func(prefix string, sigType txn.SignatureType, sig []byte) txn.SignaturePair {
		return txn.SignaturePair{
			PubKeyPrefix: []byte(prefix),
			Type:         sigType,
			Signature:    sig,
		}
	}
	tests := []struct {
		name   string
		sigMap *txn.SignatureMap
		want   uint64
	}{
		{
			name: "nil map",
			want: 0,
		},
		{
			name:   "empty map",
			sigMap: &txn.SignatureMap{},
			want:   0,
		},
		{
			// pair = (1+1+1) + (1+1+64) = 69; entry = 1+1+69
			name: "one ed25519 pair",
			sigMap: &txn.SignatureMap{Pairs: []txn.SignaturePair{
				pair("a", txn.SigEd25519, canonicalSig),
			}},
			want: 71,
		},
		{
			name: "two ed25519 pairs",
			sigMap: &txn.SignatureMap{Pairs: []txn.SignaturePair{
				pair("a", txn.SigEd25519, canonicalSig),
				pair("b", txn.SigEd25519, canonicalSig),
			}},
			want: 142,
		},
		{
			// pair = (1+1+64); entry = 1+1+66
			name: "no prefix",
			sigMap: &txn.SignatureMap{Pairs: []txn.SignaturePair{
				pair("", txn.SigECDSASecp256k1, canonicalSig),
			}},
			want: 68,
		},
		{
			// pair = (1+1+1) + (1+2+200) = 206; entry = 1+2+206
			name: "multi-byte length prefix",
			sigMap: &txn.SignatureMap{Pairs: []txn.SignaturePair{
				pair("a", txn.SigRSA3072, bytes.Repeat([]byte{1}, 200)),
			}},
			want: 209,
		},
		{
			// the unset signature is not written
			name: "unknown signature type",
			sigMap: &txn.SignatureMap{Pairs: []txn.SignaturePair{
				pair("a", 0, canonicalSig),
			}},
			want: 5,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, SignatureMapBytes(test.sigMap))
		})
	}
}

func TestKeySizes(t *testing.T) {
	ed := &txn.Key{Ed25519: canonicalSig[:32]}
	secp := &txn.Key{ECDSASecp256k1: canonicalSig[:33]}
	contract := &txn.Key{ContractID: &txn.EntityID{Num: 1001}}

	tests := []struct {
		name      string
		key       *txn.Key
		wantBytes uint64
		wantCount uint64
	}{
		{
			name: "nil",
		},
		{
			name:      "ed25519",
			key:       ed,
			wantBytes: KeySize,
			wantCount: 1,
		},
		{
			name:      "key list",
			key:       &txn.Key{KeyList: []*txn.Key{ed, secp, contract}},
			wantBytes: 3 * KeySize,
			wantCount: 3,
		},
		{
			name: "nested threshold",
			key: &txn.Key{Threshold: &txn.ThresholdKey{
				Threshold: 1,
				Keys: []*txn.Key{
					ed,
					{Threshold: &txn.ThresholdKey{Threshold: 2, Keys: []*txn.Key{ed, secp}}},
				},
			}},
			wantBytes: 3*KeySize + 2*IntSize,
			wantCount: 3,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(test.wantBytes, KeyBytes(test.key))
			require.Equal(test.wantCount, CountCryptoKeys(test.key))
		})
	}
}
