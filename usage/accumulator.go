// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package usage

import (
	"fmt"

	"github.com/ava-labs/feemeter/fees"
	"github.com/ava-labs/feemeter/sizes"

	safemath "github.com/ava-labs/feemeter/utils/math"
)

// Accumulator assembles one usage vector. Record and storage usage are
// tallied in byte-seconds and converted to byte-hours once, in Finalize.
//
// The first arithmetic error is kept and every later addition is ignored;
// Finalize reports it.
//
// Accumulator is single-use and not safe for concurrent use.
type Accumulator struct {
	base fees.Components
	rbs  uint64
	sbs  uint64
	err  error
}

func NewAccumulator(base fees.Components) *Accumulator {
	return &Accumulator{base: base}
}

// Base returns the vector accumulated so far, without record or storage
// byte-hours.
func (a *Accumulator) Base() fees.Components {
	return a.base
}

func (a *Accumulator) Rbs() uint64 {
	return a.rbs
}

func (a *Accumulator) Sbs() uint64 {
	return a.sbs
}

func (a *Accumulator) Err() error {
	return a.err
}

func (a *Accumulator) AddRbs(n uint64) {
	a.add(&a.rbs, n, "rbs")
}

func (a *Accumulator) AddSbs(n uint64) {
	a.add(&a.sbs, n, "sbs")
}

func (a *Accumulator) AddBpt(n uint64) {
	a.add(&a.base.Bpt, n, "bpt")
}

func (a *Accumulator) AddVpt(n uint64) {
	a.add(&a.base.Vpt, n, "vpt")
}

func (a *Accumulator) AddGas(n uint64) {
	a.add(&a.base.Gas, n, "gas")
}

func (a *Accumulator) AddTv(n uint64) {
	a.add(&a.base.Tv, n, "tv")
}

func (a *Accumulator) AddBpr(n uint64) {
	a.add(&a.base.Bpr, n, "bpr")
}

func (a *Accumulator) AddSbpr(n uint64) {
	a.add(&a.base.Sbpr, n, "sbpr")
}

func (a *Accumulator) add(total *uint64, n uint64, name string) {
	if a.err != nil {
		return
	}
	sum, err := safemath.Add(*total, n)
	if err != nil {
		a.err = fmt.Errorf("%w: %s", err, name)
		return
	}
	*total = sum
}

// Finalize returns the accumulated vector with rbh and sbh derived from the
// byte-second tallies.
func (a *Accumulator) Finalize() (fees.Components, error) {
	if a.err != nil {
		return fees.Components{}, a.err
	}
	usage := a.base
	usage.Rbh = NonDegenerateDiv(a.rbs, sizes.HrsDivisor)
	usage.Sbh = NonDegenerateDiv(a.sbs, sizes.HrsDivisor)
	return usage, nil
}
