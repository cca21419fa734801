// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

import "fmt"

// EntityID identifies an account, topic, or contract by its shard, realm and
// number.
type EntityID struct {
	Shard uint64 `json:"shard"`
	Realm uint64 `json:"realm"`
	Num   uint64 `json:"num"`
}

type (
	AccountID EntityID
	TopicID   EntityID
)

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

func (id AccountID) String() string {
	return EntityID(id).String()
}

func (id TopicID) String() string {
	return EntityID(id).String()
}

// Timestamp is a consensus or valid-start time, in seconds and nanoseconds
// since the epoch.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

// TransactionID is the payer account plus the valid-start time chosen by the
// payer.
type TransactionID struct {
	ValidStart Timestamp `json:"validStart"`
	Payer      AccountID `json:"payer"`
}

func (id TransactionID) String() string {
	return fmt.Sprintf("%s@%d.%09d", id.Payer, id.ValidStart.Seconds, id.ValidStart.Nanos)
}
