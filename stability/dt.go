// Package stability computes the CFL-restricted maximum stable timestep for
// each of the four level-set right-hand-side kernels (spec.md §4.F). Callers
// combine the returned values by taking the minimum across whichever
// physics terms are active in a given step.
package stability

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/narrowband"
)

// DefaultCFL is the default Courant number, spec.md §4.F.
const DefaultCFL = 0.9

// maxFloat64 is math.MaxFloat64 held in a variable rather than inlined as an
// untyped constant: converting the constant directly to a generic T would
// fail to compile for the float32 instantiation (constant overflow check),
// even though the runtime conversion below is well defined (saturates to
// +Inf for float32).
var maxFloat64 float64 = math.MaxFloat64

func maxAbsField[T grid.Real](f *grid.Field[T], fillBox grid.Box) T {
	var m T
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		v := f.At(idx)
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	})
	return m
}

// AdvectionDt bounds the timestep for the advection kernel:
// dt <= cfl / sum_a max_cell|V_a|/h_a.
func AdvectionDt[T grid.Real](velocity []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int, cfl T) T {
	var denom float64
	for a := 0; a < ndim; a++ {
		denom += float64(maxAbsField(velocity[a], fillBox)) / float64(h[a])
	}
	if denom == 0 {
		return T(maxFloat64)
	}
	return T(float64(cfl) / denom)
}

func maxAbs[T grid.Real](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

// NormalVelocityDt bounds the timestep for the normal-velocity kernel:
// dt <= cfl / (max_cell|Vn| * sqrt(sum_a (max(|phi_a+|,|phi_a-|))^2/h_a^2)).
func NormalVelocityDt[T grid.Real](vn *grid.Field[T], phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int, cfl T) T {
	maxVn := maxAbsField(vn, fillBox)
	return normalVelocityDtCommon(maxVn, phiPlus, phiMinus, fillBox, h, ndim, cfl)
}

// ConstantNormalVelocityDt specializes NormalVelocityDt to a scalar Vn.
func ConstantNormalVelocityDt[T grid.Real](vn T, phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int, cfl T) T {
	maxVn := vn
	if maxVn < 0 {
		maxVn = -maxVn
	}
	return normalVelocityDtCommon(maxVn, phiPlus, phiMinus, fillBox, h, ndim, cfl)
}

func normalVelocityDtCommon[T grid.Real](maxVn T, phiPlus, phiMinus []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int, cfl T) T {
	if maxVn == 0 {
		return T(maxFloat64)
	}
	maxGrad := make([]T, ndim)
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		for a := 0; a < ndim; a++ {
			g := maxAbs(phiPlus[a].At(idx), phiMinus[a].At(idx))
			if g > maxGrad[a] {
				maxGrad[a] = g
			}
		}
	})
	terms := make([]float64, ndim)
	for a := 0; a < ndim; a++ {
		terms[a] = float64(maxGrad[a]) * float64(maxGrad[a]) / (float64(h[a]) * float64(h[a]))
	}
	sum := floats.Sum(terms)
	denom := float64(maxVn) * math.Sqrt(sum)
	if denom == 0 {
		return T(maxFloat64)
	}
	return T(float64(cfl) / denom)
}

// CurvatureDt bounds the timestep for the mean-curvature kernel:
// dt <= cfl / (2*b*sum_a 1/h_a^2).
func CurvatureDt[T grid.Real](b T, h [grid.MaxDim]T, ndim int, cfl T) T {
	terms := make([]float64, ndim)
	for a := 0; a < ndim; a++ {
		terms[a] = 1.0 / (float64(h[a]) * float64(h[a]))
	}
	denom := 2 * float64(b) * floats.Sum(terms)
	if denom == 0 {
		return T(maxFloat64)
	}
	return T(float64(cfl) / denom)
}

// LocalAdvectionDt is AdvectionDt restricted to a narrow-band layer, for
// callers re-deriving dt only over the active band rather than the whole
// fill box.
func LocalAdvectionDt[T grid.Real](velocity []*grid.Field[T], nb *grid.NarrowBand, layer int, h [grid.MaxDim]T, ndim int, cfl T) T {
	maxV := make([]T, ndim)
	narrowband.Walk(nb, layer, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			v := velocity[a].At(idx)
			if v < 0 {
				v = -v
			}
			if v > maxV[a] {
				maxV[a] = v
			}
		}
	})
	var denom float64
	for a := 0; a < ndim; a++ {
		denom += float64(maxV[a]) / float64(h[a])
	}
	if denom == 0 {
		return T(maxFloat64)
	}
	return T(float64(cfl) / denom)
}
