// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"errors"
	"fmt"
)

const DefaultLegacyReceiptStorageSeconds = 180

var (
	ErrInvalidProperties = errors.New("invalid usage properties")

	DefaultProperties = Properties{
		LegacyReceiptStorageSeconds: DefaultLegacyReceiptStorageSeconds,
	}
)

// Properties are the network-wide constants the estimator reads. They are
// loaded once at startup and must be identical on every node.
type Properties struct {
	// LegacyReceiptStorageSeconds is how long a receipt is retained, and so
	// how long every transaction is charged for storing one.
	LegacyReceiptStorageSeconds uint64 `json:"legacyReceiptStorageSeconds"`
}

func (p Properties) Verify() error {
	switch {
	case p.LegacyReceiptStorageSeconds == 0:
		return fmt.Errorf("%w: legacy receipt storage seconds must be positive", ErrInvalidProperties)
	case p.LegacyReceiptStorageSeconds > CenturySeconds:
		return fmt.Errorf("%w: legacy receipt storage seconds %d exceeds %d",
			ErrInvalidProperties,
			p.LegacyReceiptStorageSeconds,
			CenturySeconds,
		)
	default:
		return nil
	}
}
