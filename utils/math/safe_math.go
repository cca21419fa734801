// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	ErrOverflow  = errors.New("overflow")
	ErrUnderflow = errors.New("underflow")
)

// MaxUint returns the maximum value of an unsigned integer of type T.
func MaxUint[T constraints.Unsigned]() T {
	return ^T(0)
}

// Add returns:
// 1) a + b
// 2) If there is overflow, an error
func Add[T constraints.Unsigned](a, b T) (T, error) {
	if a > MaxUint[T]()-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub returns:
// 1) a - b
// 2) If there is underflow, an error
func Sub[T constraints.Unsigned](a, b T) (T, error) {
	if a < b {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

// Mul returns:
// 1) a * b
// 2) If there is overflow, an error
func Mul[T constraints.Unsigned](a, b T) (T, error) {
	if b != 0 && a > MaxUint[T]()/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// AddInt64 returns a + b, or an error if the result does not fit in an int64.
func AddInt64(a, b int64) (int64, error) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, ErrOverflow
	case b < 0 && a < math.MinInt64-b:
		return 0, ErrUnderflow
	}
	return a + b, nil
}

// SubInt64 returns a - b, or an error if the result does not fit in an int64.
func SubInt64(a, b int64) (int64, error) {
	switch {
	case b < 0 && a > math.MaxInt64+b:
		return 0, ErrOverflow
	case b > 0 && a < math.MinInt64+b:
		return 0, ErrUnderflow
	}
	return a - b, nil
}

// MulInt64 returns a * b, or an error if the result does not fit in an int64.
func MulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		if (a < 0) == (b < 0) {
			return 0, ErrOverflow
		}
		return 0, ErrUnderflow
	}
	return c, nil
}
