// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Linear implements depth-dependent linear diffusion
//
//   q = D f S
//
type Linear struct {
	D float64 // transport coefficient
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
}

// Init initialises this structure
func (o *Linear) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "D":
			o.D = p.V
		}
	}
	if !(o.D > 0) {
		return chk.Err("linear transport: D must be positive. D = %g is invalid", o.D)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "D", V: 0.01},
	}
}

// Flux computes q
func (o Linear) Flux(s, f float64) float64 {
	return o.D * f * s
}

// DfluxDs computes dq/dS
func (o Linear) DfluxDs(s, f float64) float64 {
	return o.D * f
}
