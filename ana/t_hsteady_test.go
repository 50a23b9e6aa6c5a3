// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_hsteady01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hsteady01. seven nodes hillslope")

	var sol HillslopeSteady
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "D", V: 0.01},
		&dbf.P{N: "Sc", V: 0.8},
		&dbf.P{N: "Hstar", V: 0.5},
		&dbf.P{N: "P0", V: 0.0002},
		&dbf.P{N: "E", V: 0.0001},
		&dbf.P{N: "dx", V: 10},
		&dbf.P{N: "nnodes", V: 7},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pf("%v\n", sol)

	chk.Float64(tst, "H", 1e-9, sol.H, 0.346573590)
	chk.Float64(tst, "f", 1e-9, sol.F, 0.25)
	chk.Array(tst, "qs", 1e-15, sol.Qs, []float64{0.0025, 0.0015, 0.0005})
	sol.CheckSlopes(tst, []float64{0.62270931, 0.45389138, 0.18938632}, 1e-6)
	sol.CheckProfile(tst, []float64{0, 6.227, 10.766, 12.660, 10.766, 6.227, 0}, 1e-3)
	chk.Float64(tst, "production", 1e-15, sol.Production(sol.H), sol.E)

	chk.Float64(tst, "Deff", 1e-6, sol.Stab.Deff, 0.00302934)
	chk.Float64(tst, "DtDiff", 1, sol.Stab.DtDiff, 16504.76)
	chk.Float64(tst, "DtWeath", 1e-9, sol.Stab.DtWeath, 2500)
	chk.String(tst, sol.Stab.Binding(), "weathering")

	for j, s := range sol.S {
		chk.Float64(tst, io.Sf("q(S%d)", j+1), 1e-15, sol.Flux(s), sol.Qs[j])
	}

	res := sol.Residual()
	io.Pforan("residual = %v\n", res)
	chk.Int(tst, "len(residual)", len(res), 5)
	chk.Array(tst, "residual", 1e-10, res, make([]float64, len(res)))

	if chk.Verbose {
		sol.Plot("/tmp/landlab", "ana_hsteady01")
	}
}

func Test_hsteady02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hsteady02. ridge pair and defaults")

	var sol HillslopeSteady
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "nnodes", V: 8},
		&dbf.P{N: "zb", V: 50},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pf("%v\n", sol)

	chk.Float64(tst, "D", 1e-17, sol.D, 0.01)
	chk.Float64(tst, "Sc", 1e-17, sol.Sc, 0.8)
	chk.Array(tst, "qs", 1e-15, sol.Qs, []float64{0.003, 0.002, 0.001})
	chk.Int(tst, "len(Z)", len(sol.Z), 8)
	chk.Float64(tst, "z0", 1e-17, sol.Z[0], 50)
	chk.Float64(tst, "z7", 1e-17, sol.Z[7], 50)
	chk.Float64(tst, "ridge pair", 1e-17, sol.Z[3], sol.Z[4])

	res := sol.Residual()
	io.Pforan("residual = %v\n", res)
	chk.Int(tst, "len(residual)", len(res), 6)
	chk.Array(tst, "residual", 1e-10, res, make([]float64, len(res)))
	chk.Array(tst, "x", 1e-15, sol.X(), []float64{0, 10, 20, 30, 40, 50, 60, 70})

	// larger grids
	for _, n := range []int{3, 4, 11, 20, 51} {
		err = sol.Init([]*dbf.P{
			&dbf.P{N: "nnodes", V: float64(n)},
			&dbf.P{N: "dx", V: 5},
		})
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		chk.Array(tst, io.Sf("residual(n=%d)", n), 1e-10, sol.Residual(), make([]float64, n-2))
	}
}

func Test_hsteady03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hsteady03. invalid parameters")

	for _, prms := range []dbf.Params{
		{&dbf.P{N: "E", V: 0.0002}},
		{&dbf.P{N: "E", V: 0.0003}},
		{&dbf.P{N: "Hstar", V: 0}},
		{&dbf.P{N: "D", V: 0}},
		{&dbf.P{N: "Sc", V: -0.8}},
		{&dbf.P{N: "dx", V: 0}},
		{&dbf.P{N: "nnodes", V: 2}},
		{&dbf.P{N: "nnodes", V: 7.5}},
	} {
		var sol HillslopeSteady
		err := sol.Init(prms)
		if !errors.Is(err, ErrDomain) {
			tst.Errorf("%s = %g: domain error expected. err = %v\n", prms[0].N, prms[0].V, err)
			return
		}
		if sol.Z != nil || sol.H != 0 {
			tst.Errorf("no partial result expected\n")
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_hsteady04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hsteady04. failed re-initialisation keeps previous solution")

	var sol HillslopeSteady
	err := sol.Init([]*dbf.P{&dbf.P{N: "nnodes", V: 11}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	H, S, Z := sol.H, sol.S, sol.Z

	for _, prms := range []dbf.Params{
		{&dbf.P{N: "nnodes", V: 2}},
		{&dbf.P{N: "nnodes", V: 4}, &dbf.P{N: "E", V: 0.0003}},
		{&dbf.P{N: "nnodes", V: 5}, &dbf.P{N: "D", V: 0}},
	} {
		err = sol.Init(prms)
		if !errors.Is(err, ErrDomain) {
			tst.Errorf("domain error expected. err = %v\n", err)
			return
		}
		chk.Int(tst, "nnodes", sol.Nnodes, 11)
		chk.Float64(tst, "E", 1e-17, sol.E, 0.0001)
		chk.Float64(tst, "D", 1e-17, sol.D, 0.01)
		chk.Float64(tst, "H", 1e-17, sol.H, H)
		chk.Array(tst, "S", 1e-17, sol.S, S)
		chk.Array(tst, "Z", 1e-17, sol.Z, Z)
		res := sol.Residual()
		chk.Int(tst, "len(residual)", len(res), 9)
		chk.Array(tst, "residual", 1e-10, res, make([]float64, 9))
	}
}

func Test_hsteady05(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("hsteady05. linear transport law")

	sol := HillslopeSteady{Law: "linear"}
	err := sol.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pf("%v\n", sol)

	// q = D f S  =>  S = qs / (D f) with D f = 0.0025
	sol.CheckSlopes(tst, []float64{1.0, 0.6, 0.2}, 1e-12)
	sol.CheckProfile(tst, []float64{0, 10, 16, 18, 16, 10, 0}, 1e-10)
	chk.Array(tst, "residual", 1e-10, sol.Residual(), make([]float64, 5))

	// the linear law needs steeper slopes than the nonlinear one
	var tay HillslopeSteady
	tay.Init(nil)
	for j := range sol.S {
		if sol.S[j] <= tay.S[j] {
			tst.Errorf("linear slope must exceed taylor slope at interface %d\n", j+1)
			return
		}
	}

	// unknown law
	bad := HillslopeSteady{Law: "roering"}
	err = bad.Init(nil)
	if err == nil {
		tst.Errorf("Init should have failed with an unknown law\n")
		return
	}
	if bad.Z != nil {
		tst.Errorf("no partial result expected\n")
		return
	}

	// linear slope
	_, err = LinearSlope(0.01, 0.25, -1)
	if !errors.Is(err, ErrDomain) {
		tst.Errorf("domain error expected. err = %v\n", err)
	}
}
