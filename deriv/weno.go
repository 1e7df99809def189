package deriv

import "github.com/EMinsight/lsmtoolbox/grid"

const weno5Margin = 3

// HJWeno5 fills plus[a]/minus[a] with the HJ-WENO5 one-sided derivatives of
// phi along axis a, for every axis a<ndim, over every cell of fillBox. phi
// must be interior to its ghost box by at least 3 cells on every face.
func HJWeno5[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("HJWeno5", "phi", fillBox, phi.GhostBox, weno5Margin)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			minus[a].Set(idx, weno5Minus(line, i, h[a]))
			plus[a].Set(idx, weno5Plus(line, i, h[a]))
		})
	}
}

// HJWeno5_1D is the one-dimensional convenience form of HJWeno5.
func HJWeno5_1D[T grid.Real](plus, minus, phi *grid.Field[T], fillBox grid.Box, dx T) {
	HJWeno5([]*grid.Field[T]{plus}, []*grid.Field[T]{minus}, phi, fillBox, [grid.MaxDim]T{dx}, 1)
}
