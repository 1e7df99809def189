// Package rk implements the TVD Runge-Kutta stage kernels spec.md §4.E
// decomposes level-set time integration into. Each kernel is a point-wise
// combination over the fill box; ghost cells are never touched, and the
// right-hand side for the next stage is always recomputed by the caller
// between kernel calls.
package rk

import "github.com/EMinsight/lsmtoolbox/grid"

// Step1 implements first-order Euler: next = cur + dt*rhs.
func Step1[T grid.Real](next, cur, rhs *grid.Field[T], fillBox grid.Box, dt T) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		next.Set(idx, cur.At(idx)+dt*rhs.At(idx))
	})
}

// TVD2Stage1 computes the first TVD RK2 stage: u1 = cur + dt*rhs(cur). The
// caller recomputes rhs at u1 before calling TVD2Stage2.
func TVD2Stage1[T grid.Real](u1, cur, rhs *grid.Field[T], fillBox grid.Box, dt T) {
	Step1(u1, cur, rhs, fillBox, dt)
}

// TVD2Stage2 computes the TVD RK2 correction: next = 1/2*cur + 1/2*u1 +
// 1/2*dt*rhs(u1).
func TVD2Stage2[T grid.Real](next, cur, u1, rhsAtU1 *grid.Field[T], fillBox grid.Box, dt T) {
	half := T(0.5)
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		next.Set(idx, half*cur.At(idx)+half*u1.At(idx)+half*dt*rhsAtU1.At(idx))
	})
}

// TVD3Stage1 computes the first TVD RK3 stage, identical to TVD2Stage1:
// u1 = cur + dt*rhs(cur).
func TVD3Stage1[T grid.Real](u1, cur, rhs *grid.Field[T], fillBox grid.Box, dt T) {
	Step1(u1, cur, rhs, fillBox, dt)
}

// TVD3Stage2 computes the second TVD RK3 stage:
// u2 = 3/4*cur + 1/4*u1 + 1/4*dt*rhs(u1).
func TVD3Stage2[T grid.Real](u2, cur, u1, rhsAtU1 *grid.Field[T], fillBox grid.Box, dt T) {
	threeQuarters, quarter := T(0.75), T(0.25)
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		u2.Set(idx, threeQuarters*cur.At(idx)+quarter*u1.At(idx)+quarter*dt*rhsAtU1.At(idx))
	})
}

// TVD3Stage3 computes the final TVD RK3 stage:
// next = 1/3*cur + 2/3*u2 + 2/3*dt*rhs(u2).
func TVD3Stage3[T grid.Real](next, cur, u2, rhsAtU2 *grid.Field[T], fillBox grid.Box, dt T) {
	third, twoThirds := T(1.0/3.0), T(2.0/3.0)
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		next.Set(idx, third*cur.At(idx)+twoThirds*u2.At(idx)+twoThirds*dt*rhsAtU2.At(idx))
	})
}
