// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

import "fmt"

// SignatureType is the kind of signature carried by a SignaturePair. The
// numeric values are the field numbers of the signature in the canonical
// encoding.
type SignatureType uint8

const (
	SigContract       SignatureType = 2
	SigEd25519        SignatureType = 3
	SigRSA3072        SignatureType = 4
	SigECDSA384       SignatureType = 5
	SigECDSASecp256k1 SignatureType = 6
)

func (t SignatureType) String() string {
	switch t {
	case SigContract:
		return "contract"
	case SigEd25519:
		return "ed25519"
	case SigRSA3072:
		return "RSA_3072"
	case SigECDSA384:
		return "ECDSA_384"
	case SigECDSASecp256k1:
		return "ECDSA_secp256k1"
	default:
		return fmt.Sprintf("SignatureType(%d)", uint8(t))
	}
}

type SignaturePair struct {
	PubKeyPrefix []byte        `json:"pubKeyPrefix"`
	Type         SignatureType `json:"type"`
	Signature    []byte        `json:"signature"`
}

// SignatureMap is the decoded set of signatures attached to a transaction.
type SignatureMap struct {
	Pairs []SignaturePair `json:"pairs"`
}
