// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/stratgroup/landlab/ana"
)

// Styles
type Styles []plt.A

func GetDefaultStyles(sols []*ana.HillslopeSteady) Styles {
	colors := []string{"k", "r", "b", "g", "m", "c"}
	sty := make([]plt.A, len(sols))
	for i, sol := range sols {
		sty[i].C = colors[i%len(colors)]
		sty[i].M = "o"
		sty[i].Ls = "-"
		sty[i].L = io.Sf("E=%g, n=%d", sol.E, sol.Nnodes)
	}
	return sty
}

func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "x":
		l += "x"
	case "z":
		l += "z"
	case "H":
		l += "H"
	case "qs":
		l += "q_s"
	case "S":
		l += "S"
	default:
		l += key
	}
	l += "$"
	if unit != "" {
		l += " $[" + unit + "]$"
	}
	return l
}
