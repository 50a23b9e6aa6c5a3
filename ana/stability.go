// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// StabilityEstimate holds advisory time-step bounds for an explicit
// simulation of the hillslope
//
//   Deff    = D・H*・(S/Sc)²      effective diffusivity at the steepest slope
//   DtDiff  = dx² / (2・Deff)     diffusive bound
//   DtWeath = H* / P0             weathering bound
//
type StabilityEstimate struct {
	Deff    float64 // effective diffusivity
	DtDiff  float64 // diffusive time-step bound; +Inf if Deff = 0
	DtWeath float64 // weathering time-step bound
}

// Stability computes the time-step bounds. The caller chooses the stricter one
func Stability(D, Hstar, Sc, Ssteep, dx, P0 float64) (o StabilityEstimate, err error) {
	if !(D > 0) || !(Hstar > 0) || !(Sc > 0) {
		return o, domainErr("D, Hstar and Sc must be positive. D = %g, Hstar = %g, Sc = %g", D, Hstar, Sc)
	}
	if !(dx > 0) || !(P0 > 0) {
		return o, domainErr("dx and P0 must be positive. dx = %g, P0 = %g", dx, P0)
	}
	if !(Ssteep >= 0) || math.IsInf(Ssteep, 0) {
		return o, domainErr("steepest slope must be finite and non-negative. S = %g", Ssteep)
	}
	r := Ssteep / Sc
	o.Deff = D * Hstar * r * r
	o.DtDiff = math.Inf(1)
	if o.Deff > 0 {
		o.DtDiff = dx * dx / (2.0 * o.Deff)
	}
	o.DtWeath = Hstar / P0
	return
}

// Dt returns the binding (smaller) bound
func (o StabilityEstimate) Dt() float64 {
	return math.Min(o.DtDiff, o.DtWeath)
}

// Binding names the constraint giving Dt
func (o StabilityEstimate) Binding() string {
	if o.DtWeath <= o.DtDiff {
		return "weathering"
	}
	return "diffusion"
}

// Steps returns the number of steps of size Dt needed to cover duration.
// A count that does not fit in an int is a domain error
func (o StabilityEstimate) Steps(duration float64) (n int, err error) {
	if !(duration >= 0) || math.IsInf(duration, 0) {
		return 0, domainErr("duration must be finite and non-negative. duration = %g", duration)
	}
	dt := o.Dt()
	if !(dt > 0) {
		return 0, domainErr("time step must be positive. dt = %g", dt)
	}
	steps := math.Ceil(duration / dt)
	if steps >= math.MaxInt {
		return 0, domainErr("%g steps of %g do not fit in an int", steps, dt)
	}
	return int(steps), nil
}

func (o StabilityEstimate) String() string {
	return io.Sf("Deff = %g, dt(diffusion) = %g, dt(weathering) = %g => dt = %g (%s)",
		o.Deff, o.DtDiff, o.DtWeath, o.Dt(), o.Binding())
}
