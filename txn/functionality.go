// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errUnknownFunctionality = errors.New("unknown functionality")

// Functionality names the operation a transaction or query performs.
type Functionality uint8

const (
	NONE Functionality = iota
	CryptoTransfer
	ConsensusSubmitMessage
	UtilPrng
	CryptoGetAccountBalance
)

var functionalityStrings = map[Functionality]string{
	NONE:                    "NONE",
	CryptoTransfer:          "CryptoTransfer",
	ConsensusSubmitMessage:  "ConsensusSubmitMessage",
	UtilPrng:                "UtilPrng",
	CryptoGetAccountBalance: "CryptoGetAccountBalance",
}

func ToFunctionality(s string) (Functionality, error) {
	for f, str := range functionalityStrings {
		if str == s {
			return f, nil
		}
	}
	return NONE, fmt.Errorf("%w: %q", errUnknownFunctionality, s)
}

func (f Functionality) String() string {
	if s, ok := functionalityStrings[f]; ok {
		return s
	}
	return fmt.Sprintf("Functionality(%d)", uint8(f))
}

func (f Functionality) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *Functionality) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*f, err = ToFunctionality(str)
	return err
}
