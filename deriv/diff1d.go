// Package deriv implements the Hamilton-Jacobi ENO1/2/3 and WENO5
// reconstructions of grad(phi), their upwind and central/Laplacian
// companions, and the narrow-band "local" variants of each, per spec.md
// §4.C and §4.H.
//
// All stencils are directionally split: every axis is processed
// independently by the same one-dimensional kernels in this file, applied
// along whichever axis is current. This collapses the per-dimension
// Fortran headers in the original source (lsm_spatial_derivatives{1,2,3}d.h)
// into one runtime-d implementation, per spec.md §9's design note.
package deriv

import "github.com/EMinsight/lsmtoolbox/grid"

// axisLine reads phi along one axis through idx0 into an accessor closure,
// so the 1-D stencil math below never has to know whether it is operating
// in 1, 2 or 3 dimensions.
func axisLine[T grid.Real](f *grid.Field[T], idx0 [grid.MaxDim]int, axis int) func(i int) T {
	return func(i int) T {
		idx := idx0
		idx[axis] = i
		return f.At(idx)
	}
}

func abs[T grid.Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// d1At, d2At, d3At compute the undivided differences used throughout this
// file, directly from phi samples (no separate scratch pass is needed
// mathematically, but the Box-level wrappers in eno.go still materialize
// D1/D2/D3 into caller-supplied scratch fields per spec.md's data model).
//
//	D1[i] = phi[i] - phi[i-1]
//	D2[i] = D1[i+1] - D1[i]
//	D3[i] = D2[i+1] - D2[i]
func d1At[T grid.Real](phi func(int) T, i int) T { return phi(i) - phi(i-1) }
func d2At[T grid.Real](phi func(int) T, i int) T { return d1At(phi, i+1) - d1At(phi, i) }
func d3At[T grid.Real](phi func(int) T, i int) T { return d2At(phi, i+1) - d2At(phi, i) }

// eno1Minus/eno1Plus implement spec.md's ENO1 formula directly:
// phi_x_minus(i) = D1[i]/dx, phi_x_plus(i) = D1[i+1]/dx.
func eno1Minus[T grid.Real](phi func(int) T, i int, dx T) T { return d1At(phi, i) / dx }
func eno1Plus[T grid.Real](phi func(int) T, i int, dx T) T  { return d1At(phi, i+1) / dx }

// eno2Minus/eno2Plus: ENO2 one-sided derivatives, derived from Newton
// divided-difference interpolation over the two candidate 3-point stencils
// (the quadratic interpolant, differentiated at x_i); the smaller-magnitude
// second difference selects the stencil, ties preferring the downstream
// (rightward) candidate.
func eno2Minus[T grid.Real](phi func(int) T, i int, dx T) T {
	d2left := d2At(phi, i-1)
	d2right := d2At(phi, i)
	if abs(d2left) < abs(d2right) {
		return d1At(phi, i-1)/dx + T(1.5)*d2left/dx
	}
	return d1At(phi, i)/dx + T(0.5)*d2right/dx
}

func eno2Plus[T grid.Real](phi func(int) T, i int, dx T) T {
	d2left := d2At(phi, i)
	d2right := d2At(phi, i+1)
	if abs(d2left) < abs(d2right) {
		return d1At(phi, i)/dx + T(0.5)*d2left/dx
	}
	return d1At(phi, i+1)/dx - T(0.5)*d2right/dx
}

// eno3 formulas. A cubic Newton interpolant through the 4 chosen points,
// differentiated and evaluated at x_i, collapses (for each of the four
// possible final 4-point stencils, three per side) to one of
// enoFormulaA1/A2/B2/C1 below, keyed to the array index the stencil is
// anchored at.
func enoFormulaA1[T grid.Real](phi func(int) T, i int, dx T) T {
	return d1At(phi, i)/dx + T(2.5)*d2At(phi, i)/dx + T(11.0/6.0)*d3At(phi, i)/dx
}
func enoFormulaA2[T grid.Real](phi func(int) T, i int, dx T) T {
	return d1At(phi, i)/dx + T(1.5)*d2At(phi, i)/dx + T(1.0/3.0)*d3At(phi, i)/dx
}
func enoFormulaB2[T grid.Real](phi func(int) T, i int, dx T) T {
	return d1At(phi, i)/dx + T(0.5)*d2At(phi, i)/dx - T(1.0/6.0)*d3At(phi, i)/dx
}
func enoFormulaC1[T grid.Real](phi func(int) T, i int, dx T) T {
	return d1At(phi, i)/dx - T(0.5)*d2At(phi, i)/dx + T(1.0/3.0)*d3At(phi, i)/dx
}

func eno3Minus[T grid.Real](phi func(int) T, i int, dx T) T {
	if abs(d2At(phi, i-1)) < abs(d2At(phi, i)) {
		if abs(d3At(phi, i-2)) < abs(d3At(phi, i-1)) {
			return enoFormulaA1(phi, i-2, dx)
		}
		return enoFormulaA2(phi, i-1, dx)
	}
	if abs(d3At(phi, i-1)) < abs(d3At(phi, i)) {
		return enoFormulaA2(phi, i-1, dx)
	}
	return enoFormulaB2(phi, i, dx)
}

func eno3Plus[T grid.Real](phi func(int) T, i int, dx T) T {
	if abs(d2At(phi, i)) < abs(d2At(phi, i+1)) {
		if abs(d3At(phi, i-1)) < abs(d3At(phi, i)) {
			return enoFormulaA2(phi, i-1, dx)
		}
		return enoFormulaB2(phi, i, dx)
	}
	if abs(d3At(phi, i)) < abs(d3At(phi, i+1)) {
		return enoFormulaB2(phi, i, dx)
	}
	return enoFormulaC1(phi, i+1, dx)
}

// weno5Minus/weno5Plus implement the classical Jiang-Peng HJ-WENO5
// reconstruction with epsilon=1e-6 in the smoothness indicators, per
// spec.md §4.C.
const weno5Eps = 1e-6

func weno5Combine[T grid.Real](v1, v2, v3, v4, v5 T) T {
	p1 := v1/3 - T(7.0/6.0)*v2 + T(11.0/6.0)*v3
	p2 := -v2/6 + T(5.0/6.0)*v3 + v4/3
	p3 := v3/3 + T(5.0/6.0)*v4 - v5/6

	s1 := T(13.0/12.0)*sq(v1-2*v2+v3) + T(0.25)*sq(v1-4*v2+3*v3)
	s2 := T(13.0/12.0)*sq(v2-2*v3+v4) + T(0.25)*sq(v2-v4)
	s3 := T(13.0/12.0)*sq(v3-2*v4+v5) + T(0.25)*sq(3*v3-4*v4+v5)

	eps := T(weno5Eps)
	a1 := T(0.1) / sq(eps+s1)
	a2 := T(0.6) / sq(eps+s2)
	a3 := T(0.3) / sq(eps+s3)
	sum := a1 + a2 + a3
	return (a1*p1 + a2*p2 + a3*p3) / sum
}

func sq[T grid.Real](v T) T { return v * v }

func weno5Minus[T grid.Real](phi func(int) T, i int, dx T) T {
	v1 := d1At(phi, i-2) / dx
	v2 := d1At(phi, i-1) / dx
	v3 := d1At(phi, i) / dx
	v4 := d1At(phi, i+1) / dx
	v5 := d1At(phi, i+2) / dx
	return weno5Combine(v1, v2, v3, v4, v5)
}

func weno5Plus[T grid.Real](phi func(int) T, i int, dx T) T {
	u1 := d1At(phi, i+3) / dx
	u2 := d1At(phi, i+2) / dx
	u3 := d1At(phi, i+1) / dx
	u4 := d1At(phi, i) / dx
	u5 := d1At(phi, i-1) / dx
	return weno5Combine(u1, u2, u3, u4, u5)
}
