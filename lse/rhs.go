// Package lse assembles the level-set right-hand side spec.md §4.D
// describes: advection, normal-velocity, constant-normal-velocity and
// mean-curvature terms, each an additive contribution the caller accumulates
// into one lse_rhs field before handing it to a TVD Runge-Kutta stage.
package lse

import (
	"math"

	"github.com/EMinsight/lsmtoolbox/grid"
)

// sqrtT computes sqrt through float64, the same precision-widening trick
// gonum/floats uses internally for generic numeric code: constraints.Float
// carries no Sqrt method of its own.
func sqrtT[T grid.Real](v T) T { return T(math.Sqrt(float64(v))) }

// ZeroRHS zeroes rhs over fillBox, the entry point every assembly sequence
// starts from (spec.md §4.D: "the caller zeroes it first").
func ZeroRHS[T grid.Real](rhs *grid.Field[T], fillBox grid.Box) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		rhs.Set(idx, 0)
	})
}

// AddAdvection subtracts V·grad(phi)_upwind into rhs, where the upwind
// component per axis is phiMinus[a] if velocity[a]>=0 else phiPlus[a].
func AddAdvection[T grid.Real](rhs *grid.Field[T], velocity, phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, ndim int) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		var dot T
		for a := 0; a < ndim; a++ {
			v := velocity[a].At(idx)
			var g T
			if v >= 0 {
				g = phiMinus[a].At(idx)
			} else {
				g = phiPlus[a].At(idx)
			}
			dot += v * g
		}
		rhs.Set(idx, rhs.At(idx)-dot)
	})
}

// godunovNormSq evaluates the squared Godunov-Hamiltonian norm contribution
// of one axis at a point, given the sign of the driving normal velocity.
func godunovNormSq[T grid.Real](vnNonneg bool, plus, minus T) T {
	if vnNonneg {
		return maxT(maxT(minus, 0)*maxT(minus, 0), minT(plus, 0)*minT(plus, 0))
	}
	return maxT(minT(minus, 0)*minT(minus, 0), maxT(plus, 0)*maxT(plus, 0))
}

func maxT[T grid.Real](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minT[T grid.Real](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// AddNormalVelocity subtracts Vn*|grad(phi)|_G into rhs, using the
// Godunov-Hamiltonian norm of spec.md §4.D.
func AddNormalVelocity[T grid.Real](rhs *grid.Field[T], vn *grid.Field[T], phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, ndim int) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		v := vn.At(idx)
		var sum T
		for a := 0; a < ndim; a++ {
			sum += godunovNormSq(v >= 0, phiPlus[a].At(idx), phiMinus[a].At(idx))
		}
		rhs.Set(idx, rhs.At(idx)-v*sqrtT(sum))
	})
}

// AddConstantNormalVelocity is AddNormalVelocity specialized to a scalar Vn,
// requiring no velocity-field ghost.
func AddConstantNormalVelocity[T grid.Real](rhs *grid.Field[T], vn T, phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, ndim int) {
	nonneg := vn >= 0
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		var sum T
		for a := 0; a < ndim; a++ {
			sum += godunovNormSq(nonneg, phiPlus[a].At(idx), phiMinus[a].At(idx))
		}
		rhs.Set(idx, rhs.At(idx)-vn*sqrtT(sum))
	})
}

// CurvatureEpsilon is the default guard against dividing by |grad(phi)|~0,
// spec.md §4.D's ε_curv.
const CurvatureEpsilon = 1e-12

// AddCurvature subtracts b*kappa*|grad(phi)| into rhs, where kappa is the
// mean curvature computed from the central first/second partials grad/hess
// (hess holds phi_aa on its diagonal entries hess[a][a] and the mixed
// partials phi_ab on hess[a][b], a<b; only the upper triangle including the
// diagonal is read). Cells with |grad(phi)| < CurvatureEpsilon are left
// untouched.
func AddCurvature[T grid.Real](rhs *grid.Field[T], b T, grad []*grid.Field[T], hess [][]*grid.Field[T], fillBox grid.Box, ndim int) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		var gradSq T
		g := make([]T, ndim)
		for a := 0; a < ndim; a++ {
			g[a] = grad[a].At(idx)
			gradSq += g[a] * g[a]
		}
		gradNorm := sqrtT(gradSq)
		if gradNorm < T(CurvatureEpsilon) {
			return
		}

		var numerator T
		var sumAA T
		for a := 0; a < ndim; a++ {
			phiAA := hess[a][a].At(idx)
			sumAA += phiAA
			var otherSq T
			for bx := 0; bx < ndim; bx++ {
				if bx == a {
					continue
				}
				otherSq += g[bx] * g[bx]
			}
			numerator += phiAA * otherSq
		}
		var cross T
		for a := 0; a < ndim; a++ {
			for bx := a + 1; bx < ndim; bx++ {
				cross += g[a] * g[bx] * hess[a][bx].At(idx)
			}
		}
		numerator -= 2 * cross

		kappa := numerator / (gradNorm * gradSq)
		rhs.Set(idx, rhs.At(idx)-b*kappa*gradNorm)
	})
}
