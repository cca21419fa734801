// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

// Key is a decoded key structure. Exactly one of the fields is expected to be
// set; a Key with several fields set is treated as the first set field in
// declaration order.
type Key struct {
	Ed25519        []byte        `json:"ed25519,omitempty"`
	ECDSASecp256k1 []byte        `json:"ecdsaSecp256k1,omitempty"`
	ContractID     *EntityID     `json:"contractID,omitempty"`
	KeyList        []*Key        `json:"keyList,omitempty"`
	Threshold      *ThresholdKey `json:"threshold,omitempty"`
}

// ThresholdKey requires at least Threshold of Keys to sign.
type ThresholdKey struct {
	Threshold uint32 `json:"threshold"`
	Keys      []*Key `json:"keys"`
}
