// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"errors"

	safemath "github.com/ava-labs/feemeter/utils/math"
)

var (
	// ErrMissingInputs is returned when an estimator is finalized before all
	// of its required inputs were provided. It indicates a caller bug.
	ErrMissingInputs = errors.New("missing required estimator inputs")

	// ErrWrongFunctionality is returned when a calculator is handed a
	// transaction or query it does not handle.
	ErrWrongFunctionality = errors.New("wrong functionality")

	// ErrOverflow and ErrUnderflow are returned when a tally or delta leaves
	// the range of its integer type.
	ErrOverflow  = safemath.ErrOverflow
	ErrUnderflow = safemath.ErrUnderflow
)
