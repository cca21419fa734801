// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// NumComponents is the number of resource dimensions in Components.
	NumComponents = 9

	uint64Len = 8

	// ComponentsLen is the length of the canonical encoding of Components.
	ComponentsLen = NumComponents * uint64Len
)

var errUnexpectedLen = errors.New("unexpected bytes length")

// Components is a measured bundle of resource usage. It is a value type: a
// Components returned from a finalized computation is never mutated by the
// engine afterwards.
type Components struct {
	// Constant is the flat per-payee term.
	Constant uint64 `json:"constant"`
	// Bpt is bytes per transaction.
	Bpt uint64 `json:"bpt"`
	// Vpt is signature verifications per transaction.
	Vpt uint64 `json:"vpt"`
	// Rbh is record byte-hours.
	Rbh uint64 `json:"rbh"`
	// Sbh is storage byte-hours.
	Sbh uint64 `json:"sbh"`
	Gas uint64 `json:"gas"`
	// Tv is transferred value.
	Tv uint64 `json:"tv"`
	// Bpr is bytes per response.
	Bpr uint64 `json:"bpr"`
	// Sbpr is storage bytes per response.
	Sbpr uint64 `json:"sbpr"`
}

func (c *Components) values() [NumComponents]uint64 {
	return [NumComponents]uint64{c.Constant, c.Bpt, c.Vpt, c.Rbh, c.Sbh, c.Gas, c.Tv, c.Bpr, c.Sbpr}
}

func (c *Components) IsZero() bool {
	return *c == Components{}
}

// Bytes returns the big-endian encoding of every dimension in declaration
// order.
func (c *Components) Bytes() []byte {
	res := make([]byte, ComponentsLen)
	for i, v := range c.values() {
		binary.BigEndian.PutUint64(res[i*uint64Len:], v)
	}
	return res
}

func (c *Components) FromBytes(b []byte) error {
	if len(b) != ComponentsLen {
		return fmt.Errorf("%w: expected %d, actual %d",
			errUnexpectedLen,
			ComponentsLen,
			len(b),
		)
	}
	var v [NumComponents]uint64
	for i := range v {
		v[i] = binary.BigEndian.Uint64(b[i*uint64Len : (i+1)*uint64Len])
	}
	*c = Components{
		Constant: v[0],
		Bpt:      v[1],
		Vpt:      v[2],
		Rbh:      v[3],
		Sbh:      v[4],
		Gas:      v[5],
		Tv:       v[6],
		Bpr:      v[7],
		Sbpr:     v[8],
	}
	return nil
}
