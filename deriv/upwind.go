package deriv

import "github.com/EMinsight/lsmtoolbox/grid"

// UpwindSelect fills grad[a] by choosing, at every cell of fillBox and for
// every axis a<ndim, whichever of plus[a]/minus[a] is upwind with respect to
// velocity[a] at that cell: grad = minus where velocity>0, plus where
// velocity<0, 0 where velocity==0. This is the three-way sign-of-velocity
// selection spec.md §4.C assigns to the upwind-variant right-hand sides,
// factored out so every caller (HJ-ENO or HJ-WENO reconstructions alike)
// shares one implementation.
func UpwindSelect[T grid.Real](grad []*grid.Field[T], plus, minus []*grid.Field[T], velocity []*grid.Field[T], fillBox grid.Box, ndim int) {
	for a := 0; a < ndim; a++ {
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			switch v := velocity[a].At(idx); {
			case v > 0:
				grad[a].Set(idx, minus[a].At(idx))
			case v < 0:
				grad[a].Set(idx, plus[a].At(idx))
			default:
				grad[a].Set(idx, 0)
			}
		})
	}
}

// UpwindSelectConstant is UpwindSelect specialized to a constant velocity
// vector rather than a per-cell velocity field, as used by the
// constant-normal-velocity right-hand side.
func UpwindSelectConstant[T grid.Real](grad []*grid.Field[T], plus, minus []*grid.Field[T], velocity [grid.MaxDim]T, fillBox grid.Box, ndim int) {
	for a := 0; a < ndim; a++ {
		v := velocity[a]
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			switch {
			case v > 0:
				grad[a].Set(idx, minus[a].At(idx))
			case v < 0:
				grad[a].Set(idx, plus[a].At(idx))
			default:
				grad[a].Set(idx, 0)
			}
		})
	}
}
