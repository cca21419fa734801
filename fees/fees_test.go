// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentsEncodingIsPositional(t *testing.T) {
	require := require.New(t)

	input := Components{
		Constant: 1,
		Bpt:      2,
		Vpt:      3,
		Rbh:      4,
		Sbh:      5,
		Gas:      6,
		Tv:       7,
		Bpr:      8,
		Sbpr:     math.MaxUint64,
	}
	b := input.Bytes()
	require.Len(b, ComponentsLen)
	// Bpt is the second big-endian word
	require.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 2}, b[8:16])

	var output Components
	require.NoError(output.FromBytes(b))
	require.Equal(input, output)

	err := output.FromBytes(b[1:])
	require.ErrorIs(err, errUnexpectedLen)
}

func TestFeeDataFromBytes(t *testing.T) {
	require := require.New(t)

	input := FeeData{
		SubType:     TokenFungibleCommonWithCustomFees,
		NetworkData: Components{Constant: 1, Bpt: 100, Vpt: 2, Rbh: 7},
		NodeData:    Components{Constant: 1, Bpt: 100, Vpt: 1, Bpr: 4},
		ServiceData: Components{Constant: 1, Rbh: 7, Tv: 1000},
	}
	b := input.Bytes()
	require.Len(b, FeeDataLen)

	var output FeeData
	require.NoError(output.FromBytes(b))
	require.Equal(input, output)

	require.ErrorIs(output.FromBytes(b[:FeeDataLen-1]), errUnexpectedLen)
}

func TestIsZero(t *testing.T) {
	require := require.New(t)

	var c Components
	require.True(c.IsZero())
	c.Gas = 1
	require.False(c.IsZero())
}

func TestSubTypeJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(FeeData{SubType: ScheduleCreateContractCall})
	require.NoError(err)
	require.Contains(string(b), `"subType":"SCHEDULE_CREATE_CONTRACT_CALL"`)

	var d FeeData
	require.NoError(json.Unmarshal(b, &d))
	require.Equal(ScheduleCreateContractCall, d.SubType)

	_, err = ToSubType("TOKEN_SOMETHING")
	require.Error(err)
	require.Equal("SubType(200)", SubType(200).String())
}
