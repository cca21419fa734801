// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import "fmt"

// FeeDataLen is the length of the canonical encoding of FeeData.
const FeeDataLen = 1 + 3*ComponentsLen

// FeeData is a usage vector partitioned among the three payees of a
// transaction or query.
type FeeData struct {
	SubType     SubType    `json:"subType"`
	NetworkData Components `json:"networkData"`
	NodeData    Components `json:"nodeData"`
	ServiceData Components `json:"serviceData"`
}

// Bytes returns the canonical encoding of [d]. Two nodes agree on a fee
// schedule iff their encodings are equal.
func (d *FeeData) Bytes() []byte {
	res := make([]byte, 0, FeeDataLen)
	res = append(res, byte(d.SubType))
	res = append(res, d.NetworkData.Bytes()...)
	res = append(res, d.NodeData.Bytes()...)
	return append(res, d.ServiceData.Bytes()...)
}

func (d *FeeData) FromBytes(b []byte) error {
	if len(b) != FeeDataLen {
		return fmt.Errorf("%w: expected %d, actual %d",
			errUnexpectedLen,
			FeeDataLen,
			len(b),
		)
	}
	var res FeeData
	res.SubType = SubType(b[0])
	b = b[1:]
	if err := res.NetworkData.FromBytes(b[:ComponentsLen]); err != nil {
		return err
	}
	if err := res.NodeData.FromBytes(b[ComponentsLen : 2*ComponentsLen]); err != nil {
		return err
	}
	if err := res.ServiceData.FromBytes(b[2*ComponentsLen:]); err != nil {
		return err
	}
	*d = res
	return nil
}
