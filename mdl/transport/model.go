// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transport implements hillslope sediment transport laws
package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines sediment transport laws q(S, f) where S is the slope
// magnitude and f the flux capacity of the soil column
type Model interface {
	Init(prms dbf.Params) error   // Init initialises this structure
	GetPrms() dbf.Params          // GetPrms gets (an example) of parameters
	Flux(s, f float64) float64    // Flux computes the volumetric flux per unit width
	DfluxDs(s, f float64) float64 // DfluxDs computes dq/dS
}

// New transport model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'transport' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
