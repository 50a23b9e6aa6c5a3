// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// RootTol is the relative tolerance used to accept a root as real and non-negative
var RootTol = 1e-9

// Cubic holds the coefficients of
//
//   P0・S³ + P1・S² + P2・S + P3 = 0
//
// for the slope S at one interface. With q = D f S (1 + (S/Sc)²):
//
//   P0 = f D / Sc²    P1 = 0    P2 = f D    P3 = -qs
//
type Cubic struct {
	P0, P1, P2, P3 float64
}

// NewCubic returns the cubic whose real root is the slope carrying qs
func NewCubic(D, Sc, f, qs float64) Cubic {
	return Cubic{
		P0: f * D / (Sc * Sc),
		P1: 0,
		P2: f * D,
		P3: -qs,
	}
}

// Eval evaluates the polynomial at s
func (o Cubic) Eval(s float64) float64 {
	return ((o.P0*s+o.P1)*s+o.P2)*s + o.P3
}

// Roots returns the three (possibly complex) roots computed as the
// eigenvalues of the companion matrix
func (o Cubic) Roots() (roots []complex128, err error) {
	if o.P0 == 0 || math.IsNaN(o.P0) || math.IsInf(o.P0, 0) {
		return nil, rootErr("leading coefficient must be finite and non-zero. P0 = %g", o.P0)
	}
	a2, a1, a0 := o.P1/o.P0, o.P2/o.P0, o.P3/o.P0
	c := mat.NewDense(3, 3, []float64{
		-a2, -a1, -a0,
		1, 0, 0,
		0, 1, 0,
	})
	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, rootErr("eigenvalue decomposition of companion matrix failed. coefficients = %v", o)
	}
	return eig.Values(nil), nil
}

// RealRoot returns the unique root with (near) zero imaginary part and
// non-negative real part. Tiny negative real parts within tolerance are
// clamped to zero
func (o Cubic) RealRoot() (s float64, err error) {
	roots, err := o.Roots()
	if err != nil {
		return
	}
	scale := 1.0
	for _, r := range roots {
		scale = math.Max(scale, cmplx.Abs(r))
	}
	tol := RootTol * scale
	found := 0
	for _, r := range roots {
		if math.Abs(imag(r)) < tol && real(r) >= -tol {
			s = math.Max(real(r), 0)
			found++
		}
	}
	if found != 1 {
		return 0, rootErr("%d candidate roots found in %v", found, roots)
	}
	return
}
