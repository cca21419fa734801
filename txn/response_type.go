// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txn

import (
	"encoding/json"
	"fmt"
)

// ResponseType is the level of detail a query asks for.
type ResponseType uint8

const (
	AnswerOnly ResponseType = iota
	AnswerStateProof
	CostAnswer
	CostAnswerStateProof
)

var responseTypeStrings = [...]string{
	AnswerOnly:           "ANSWER_ONLY",
	AnswerStateProof:     "ANSWER_STATE_PROOF",
	CostAnswer:           "COST_ANSWER",
	CostAnswerStateProof: "COST_ANSWER_STATE_PROOF",
}

func (r ResponseType) String() string {
	if int(r) < len(responseTypeStrings) {
		return responseTypeStrings[r]
	}
	return fmt.Sprintf("ResponseType(%d)", uint8(r))
}

// IsStateProof reports whether a state proof was requested along with the
// answer or cost.
func (r ResponseType) IsStateProof() bool {
	return r == AnswerStateProof || r == CostAnswerStateProof
}

func (r ResponseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ResponseType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	for i, s := range responseTypeStrings {
		if s == str {
			*r = ResponseType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown response type: %q", str)
}
