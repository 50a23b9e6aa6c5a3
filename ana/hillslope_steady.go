// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/stratgroup/landlab/mdl/transport"
	"gonum.org/v1/gonum/floats"
)

// HillslopeSteady computes the steady state of a symmetric 1-D hillslope
// eroding at a uniform rate E, with soil produced from bedrock and moved by
// the nonlinear law q = D f S (1 + (S/Sc)²) or, if Law = "linear", by q = D f S
//
//              ridge
//                o                 P = P0・exp(-H/H*)
//             ,'   ',              f = H*・(1 - exp(-H/H*))
//          o'         'o
//       ,'               ',
//    o'                     'o     z = zb at both boundaries
//    |<-dx->|
//    0      1   ...        nnodes-1
//
type HillslopeSteady struct {

	// input
	Law    string  // transport law: "taylor" (default) or "linear"
	D      float64 // transport coefficient [L²/T]
	Sc     float64 // critical slope
	Hstar  float64 // production decay depth [L]
	P0     float64 // bare-bedrock production rate [L/T]
	E      float64 // erosion (uplift) rate [L/T]
	Dx     float64 // cell width [L]
	Zb     float64 // boundary elevation [L]
	Nnodes int     // number of nodes including both boundaries

	// derived
	H    float64           // equilibrium soil thickness
	F    float64           // flux capacity
	Qs   []float64         // flux targets from boundary to ridge
	S    []float64         // slopes from boundary to ridge
	Z    []float64         // elevations of all nodes
	Stab StabilityEstimate // time-step bounds at the steepest interface

	// auxiliary
	model transport.Model // transport law used to evaluate fluxes
}

// Init initialises this structure and computes the solution.
// Law must be set before calling Init. On error, o is left untouched
func (o *HillslopeSteady) Init(prms dbf.Params) (err error) {

	// default values
	n := HillslopeSteady{
		Law:    o.Law,
		D:      0.01,
		Sc:     0.8,
		Hstar:  0.5,
		P0:     0.0002,
		E:      0.0001,
		Dx:     10.0,
		Zb:     0.0,
		Nnodes: 7,
	}
	if n.Law == "" {
		n.Law = "taylor"
	}

	// parameters
	for _, p := range prms {
		switch p.N {
		case "D":
			n.D = p.V
		case "Sc":
			n.Sc = p.V
		case "Hstar":
			n.Hstar = p.V
		case "P0":
			n.P0 = p.V
		case "E":
			n.E = p.V
		case "dx":
			n.Dx = p.V
		case "zb":
			n.Zb = p.V
		case "nnodes":
			if p.V != math.Trunc(p.V) {
				return domainErr("nnodes must be an integer. nnodes = %g", p.V)
			}
			n.Nnodes = int(p.V)
		}
	}

	// check
	if !(n.D > 0) || !(n.Sc > 0) || !(n.Dx > 0) {
		return domainErr("D, Sc and dx must be positive. D = %g, Sc = %g, dx = %g", n.D, n.Sc, n.Dx)
	}
	if n.Nnodes < 3 {
		return domainErr("at least 3 nodes are required. nnodes = %d", n.Nnodes)
	}

	// transport law
	n.model, err = transport.New(n.Law)
	if err != nil {
		return
	}
	err = n.model.Init([]*dbf.P{
		&dbf.P{N: "D", V: n.D},
		&dbf.P{N: "Sc", V: n.Sc},
	})
	if err != nil {
		return
	}

	// soil
	n.H, err = EquilibriumThickness(n.E, n.P0, n.Hstar)
	if err != nil {
		return
	}
	n.F = FluxCapacity(n.Hstar, n.H)

	// fluxes and slopes
	nint := n.Nnodes - 2
	M := HalfInterfaces(nint)
	n.Qs = make([]float64, M)
	n.S = make([]float64, M)
	for j := 1; j <= M; j++ {
		n.Qs[j-1], err = InterfaceFlux(n.E, n.Dx, j, nint)
		if err != nil {
			return
		}
		if n.Law == "linear" {
			n.S[j-1], err = LinearSlope(n.D, n.F, n.Qs[j-1])
		} else {
			n.S[j-1], err = InterfaceSlope(n.D, n.Sc, n.F, n.Qs[j-1])
		}
		if err != nil {
			return
		}
	}

	// elevations
	n.Z, err = ElevationProfile(n.S, n.Dx, n.Zb, n.Nnodes)
	if err != nil {
		return
	}

	// stability
	n.Stab, err = Stability(n.D, n.Hstar, n.Sc, floats.Max(n.S), n.Dx, n.P0)
	if err != nil {
		return
	}

	// results
	*o = n
	return
}

// Flux computes the flux carried by slope s at the equilibrium thickness
func (o HillslopeSteady) Flux(s float64) float64 {
	return o.model.Flux(s, o.F)
}

// Production computes the soil production rate for thickness H
func (o HillslopeSteady) Production(H float64) float64 {
	return o.P0 * math.Exp(-H/o.Hstar)
}

// X returns the coordinates of the nodes
func (o HillslopeSteady) X() []float64 {
	return utl.LinSpace(0, o.Dx*float64(o.Nnodes-1), o.Nnodes)
}

// Residual computes, for each interior node, the normalised steady-state
// balance
//
//   r = (q_out - q_in - E・dx) / (E・dx)
//
// with fluxes evaluated at the solved slopes. r ≈ 0 at steady state
func (o HillslopeSteady) Residual() (res []float64) {
	M := len(o.S)
	q := make([]float64, M)
	for j, s := range o.S {
		q[j] = o.Flux(s)
	}
	src := o.E * o.Dx
	res = make([]float64, o.Nnodes-2)
	for i := 1; i <= M; i++ {
		var qout, qin float64
		switch {
		case i < M:
			qout, qin = q[i-1], q[i]
		case o.Nnodes%2 == 1:
			qout = 2.0 * q[i-1] // single ridge node drains both ways
		default:
			qout = q[i-1] // ridge pair: no flux between the pair
		}
		r := (qout - qin - src) / src
		res[i-1] = r
		res[o.Nnodes-2-i] = r
	}
	return
}

// CheckProfile compares elevations computed elsewhere with this solution
func (o HillslopeSteady) CheckProfile(tst *testing.T, z []float64, tol float64) {
	chk.Array(tst, "z", tol, z, o.Z)
}

// CheckSlopes compares half-profile slopes computed elsewhere with this solution
func (o HillslopeSteady) CheckSlopes(tst *testing.T, s []float64, tol float64) {
	chk.Array(tst, "S", tol, s, o.S)
}

// Plot plots the elevation profile
func (o HillslopeSteady) Plot(dirout, fnkey string) {
	plt.Reset(false, nil)
	plt.Plot(o.X(), o.Z, &plt.A{C: "k", Ls: "-", M: "o"})
	plt.Gll("$x$", "$z$", nil)
	plt.Save(dirout, fnkey)
}

// String returns a table with inputs and derived values
func (o HillslopeSteady) String() (l string) {
	l = io.ArgsTable("STEADY HILLSLOPE",
		"transport law", "law", o.Law,
		"transport coefficient [L²/T]", "D", o.D,
		"critical slope", "Sc", o.Sc,
		"production decay depth [L]", "Hstar", o.Hstar,
		"bare-bedrock production [L/T]", "P0", o.P0,
		"erosion rate [L/T]", "E", o.E,
		"cell width [L]", "dx", o.Dx,
		"boundary elevation [L]", "zb", o.Zb,
		"number of nodes", "nnodes", o.Nnodes,
		"soil thickness [L]", "H", o.H,
		"flux capacity [L]", "f", o.F,
	)
	l += io.Sf("\n%4s%16s%16s\n", "j", "qs", "S")
	for j := range o.S {
		l += io.Sf("%4d%16.8e%16.8f\n", j+1, o.Qs[j], o.S[j])
	}
	l += io.Sf("\nz = %v\n%v\n", o.Z, o.Stab)
	return
}
