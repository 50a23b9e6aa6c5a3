// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of reference values and plots
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/stratgroup/landlab/ana"
)

// NumFmt is the format used to write numbers to fixtures
var NumFmt = "%.15e"

// Table returns the reference values of a steady hillslope as lines of
//
//   key [index] value
//
// where index is the 1-based interface (qs, S) or the 0-based node (z)
func Table(sol *ana.HillslopeSteady) (l string) {
	if sol == nil || sol.Z == nil {
		chk.Panic("cannot write table of uninitialised solution")
	}
	line := func(key string, v float64) string {
		return io.Sf("%-14s"+NumFmt+"\n", key, v)
	}
	l += line("H", sol.H)
	l += line("f", sol.F)
	for j := range sol.S {
		l += line(io.Sf("qs %d", j+1), sol.Qs[j])
	}
	for j := range sol.S {
		l += line(io.Sf("S %d", j+1), sol.S[j])
	}
	for i, z := range sol.Z {
		l += line(io.Sf("z %d", i), z)
	}
	l += line("Deff", sol.Stab.Deff)
	l += line("dt_diffusion", sol.Stab.DtDiff)
	l += line("dt_weathering", sol.Stab.DtWeath)
	l += line("dt", sol.Stab.Dt())
	return
}

// SaveFixture writes the table of reference values to dirout/fnkey.txt
func SaveFixture(dirout, fnkey string, sol *ana.HillslopeSteady) {
	io.WriteStringToFileD(dirout, fnkey+".txt", Table(sol))
}

// PlotProfiles plots the elevation profiles of many solutions
func PlotProfiles(dirout, fnkey string, sols []*ana.HillslopeSteady, sty Styles) {
	if len(sty) != len(sols) {
		sty = GetDefaultStyles(sols)
	}
	plt.Reset(false, nil)
	for i, sol := range sols {
		plt.Plot(sol.X(), sol.Z, &sty[i])
	}
	plt.Gll(GetTexLabel("x", "m"), GetTexLabel("z", "m"), nil)
	plt.Save(dirout, fnkey)
}
