// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Taylor implements the depth-dependent nonlinear law truncated after the
// second term of its Taylor series
//
//   q = D f S (1 + (S/Sc)²)
//
//   thus  D f / Sc² ・ S³  +  D f ・ S  -  q  =  0
//
type Taylor struct {
	D  float64 // transport coefficient
	Sc float64 // critical slope
}

// add model to factory
func init() {
	allocators["taylor"] = func() Model { return new(Taylor) }
}

// Init initialises this structure
func (o *Taylor) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "D":
			o.D = p.V
		case "Sc":
			o.Sc = p.V
		}
	}
	if !(o.D > 0) {
		return chk.Err("taylor transport: D must be positive. D = %g is invalid", o.D)
	}
	if !(o.Sc > 0) {
		return chk.Err("taylor transport: Sc must be positive. Sc = %g is invalid", o.Sc)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Taylor) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "D", V: 0.01},
		&dbf.P{N: "Sc", V: 0.8},
	}
}

// Flux computes q
func (o Taylor) Flux(s, f float64) float64 {
	r := s / o.Sc
	return o.D * f * s * (1.0 + r*r)
}

// DfluxDs computes dq/dS
func (o Taylor) DfluxDs(s, f float64) float64 {
	r := s / o.Sc
	return o.D * f * (1.0 + 3.0*r*r)
}
