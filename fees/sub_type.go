// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"encoding/json"
	"fmt"
)

// SubType distinguishes variants of one functionality that may be priced
// differently.
type SubType uint8

const (
	Default SubType = iota
	TokenFungibleCommon
	TokenNonFungibleUnique
	TokenFungibleCommonWithCustomFees
	TokenNonFungibleUniqueWithCustomFees
	ScheduleCreateContractCall
)

var subTypeStrings = [...]string{
	Default:                              "DEFAULT",
	TokenFungibleCommon:                  "TOKEN_FUNGIBLE_COMMON",
	TokenNonFungibleUnique:               "TOKEN_NON_FUNGIBLE_UNIQUE",
	TokenFungibleCommonWithCustomFees:    "TOKEN_FUNGIBLE_COMMON_WITH_CUSTOM_FEES",
	TokenNonFungibleUniqueWithCustomFees: "TOKEN_NON_FUNGIBLE_UNIQUE_WITH_CUSTOM_FEES",
	ScheduleCreateContractCall:           "SCHEDULE_CREATE_CONTRACT_CALL",
}

func (s SubType) String() string {
	if int(s) < len(subTypeStrings) {
		return subTypeStrings[s]
	}
	return fmt.Sprintf("SubType(%d)", uint8(s))
}

func ToSubType(str string) (SubType, error) {
	for i, s := range subTypeStrings {
		if s == str {
			return SubType(i), nil
		}
	}
	return Default, fmt.Errorf("unknown sub type: %q", str)
}

func (s SubType) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SubType) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	var err error
	*s, err = ToSubType(str)
	return err
}
