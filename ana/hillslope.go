// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// EquilibriumThickness computes the soil thickness H at which production
// P0・exp(-H/H*) balances the erosion rate E
//
//   H = H*・ln(P0/E)
//
func EquilibriumThickness(E, P0, Hstar float64) (H float64, err error) {
	if !(E > 0) || !(P0 > 0) {
		return 0, domainErr("E and P0 must be positive. E = %g, P0 = %g", E, P0)
	}
	if !(Hstar > 0) {
		return 0, domainErr("Hstar must be positive. Hstar = %g", Hstar)
	}
	if E >= P0 {
		return 0, domainErr("E must be smaller than P0 for a finite thickness. E = %g, P0 = %g", E, P0)
	}
	return Hstar * math.Log(P0/E), nil
}

// FluxCapacity computes f = H*・(1 - exp(-H/H*)). f ∈ (0, H*) for H > 0
func FluxCapacity(Hstar, H float64) float64 {
	return Hstar * (1.0 - math.Exp(-H/Hstar))
}

// HalfInterfaces returns the number of interfaces solved along one half of
// a symmetric profile with nint interior nodes. When nint is even, the
// interface between the two ridge nodes carries no flux and is not counted
func HalfInterfaces(nint int) int {
	return (nint + 1) / 2
}

// InterfaceFlux computes the steady flux per unit width crossing interface j
// (1-based, counted from the boundary) of a symmetric profile with nint
// interior nodes and cell width dx
//
//   qs = E・(M - j + c)・dx
//
//   M: number of interfaces in half profile
//   c: ½ if the ridge is a single node (nint odd); 1 if it is a pair (nint even)
//
func InterfaceFlux(E, dx float64, j, nint int) (qs float64, err error) {
	if !(E > 0) || !(dx > 0) {
		return 0, domainErr("E and dx must be positive. E = %g, dx = %g", E, dx)
	}
	if nint < 1 {
		return 0, domainErr("at least one interior node is required. nint = %d", nint)
	}
	M := HalfInterfaces(nint)
	if j < 1 || j > M {
		return 0, domainErr("interface index must be in [1, %d]. j = %d", M, j)
	}
	c := 0.5
	if nint%2 == 0 {
		c = 1.0
	}
	return E * (float64(M-j) + c) * dx, nil
}

// InterfaceSlope computes the slope S carrying the flux qs
func InterfaceSlope(D, Sc, f, qs float64) (S float64, err error) {
	if !(D > 0) || !(Sc > 0) || !(f > 0) {
		return 0, domainErr("D, Sc and f must be positive. D = %g, Sc = %g, f = %g", D, Sc, f)
	}
	if !(qs >= 0) {
		return 0, domainErr("qs must be non-negative. qs = %g", qs)
	}
	if qs == 0 {
		return 0, nil
	}
	return NewCubic(D, Sc, f, qs).RealRoot()
}

// LinearSlope computes the slope carrying qs under the linear law q = D f S
func LinearSlope(D, f, qs float64) (S float64, err error) {
	if !(D > 0) || !(f > 0) {
		return 0, domainErr("D and f must be positive. D = %g, f = %g", D, f)
	}
	if !(qs >= 0) || math.IsInf(qs, 0) {
		return 0, domainErr("qs must be finite and non-negative. qs = %g", qs)
	}
	return qs / (D * f), nil
}

// ElevationProfile computes the elevations of all nnodes nodes given the
// slopes from the boundary to the ridge. The far half is mirrored:
//
//   nnodes = 2M + 1  =>  single ridge node
//   nnodes = 2M + 2  =>  two ridge nodes at the same elevation
//
func ElevationProfile(slopes []float64, dx, zb float64, nnodes int) (Z []float64, err error) {
	M := len(slopes)
	if M < 1 {
		return nil, domainErr("at least one slope is required")
	}
	if !(dx > 0) {
		return nil, domainErr("dx must be positive. dx = %g", dx)
	}
	if nnodes != 2*M+1 && nnodes != 2*M+2 {
		return nil, domainErr("%d slopes cannot describe %d nodes", M, nnodes)
	}
	for i, s := range slopes {
		if !(s >= 0) || math.IsInf(s, 0) {
			return nil, domainErr("slope %d must be finite and non-negative. S = %g", i, s)
		}
	}
	half := make([]float64, M+1)
	floats.ScaleTo(half[1:], dx, slopes)
	floats.CumSum(half, half)
	floats.AddConst(zb, half)
	Z = make([]float64, nnodes)
	for i, z := range half {
		Z[i] = z
		Z[nnodes-1-i] = z
	}
	return
}
