package deriv

import "github.com/EMinsight/lsmtoolbox/grid"

// eno1Margin..eno3Margin are the number of ghost cells each ENO order reads beyond
// fillBox on the upwind side of its widest candidate stencil.
const (
	eno1Margin = 1
	eno2Margin = 2
	eno3Margin = 3
)

// HJEno1 fills plus[a]/minus[a] with the ENO1 one-sided derivatives of phi
// along axis a, and d1[a] with the undivided first differences used to get
// there, for every axis a<ndim, over every cell of fillBox. plus, minus and
// d1 must each have ndim entries; every field (including phi) must be
// interior to its own ghost box by at least one cell on every face, per
// spec.md §4.C.
func HJEno1[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1 []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("HJEno1", "phi", fillBox, phi.GhostBox, eno1Margin)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			minus[a].Set(idx, eno1Minus(line, i, h[a]))
			plus[a].Set(idx, eno1Plus(line, i, h[a]))
		})
	}
}

// HJEno1_1D is the one-dimensional convenience form of HJEno1: phi, plus,
// minus and d1 are all laid out along axis 0.
func HJEno1_1D[T grid.Real](plus, minus, phi, d1 *grid.Field[T], fillBox grid.Box, dx T) {
	HJEno1([]*grid.Field[T]{plus}, []*grid.Field[T]{minus}, phi, []*grid.Field[T]{d1}, fillBox, [grid.MaxDim]T{dx}, 1)
}

// HJEno2 is HJEno1's ENO2 counterpart; d2 additionally receives the
// undivided second differences.
func HJEno2[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1, d2 []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("HJEno2", "phi", fillBox, phi.GhostBox, eno2Margin)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			d2[a].Set(idx, d2At(line, i))
			minus[a].Set(idx, eno2Minus(line, i, h[a]))
			plus[a].Set(idx, eno2Plus(line, i, h[a]))
		})
	}
}

// HJEno2_1D is the one-dimensional convenience form of HJEno2.
func HJEno2_1D[T grid.Real](plus, minus, phi, d1, d2 *grid.Field[T], fillBox grid.Box, dx T) {
	HJEno2([]*grid.Field[T]{plus}, []*grid.Field[T]{minus}, phi, []*grid.Field[T]{d1}, []*grid.Field[T]{d2}, fillBox, [grid.MaxDim]T{dx}, 1)
}

// HJEno3 is HJEno1's ENO3 counterpart; d3 additionally receives the
// undivided third differences.
func HJEno3[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1, d2, d3 []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("HJEno3", "phi", fillBox, phi.GhostBox, eno3Margin)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			d2[a].Set(idx, d2At(line, i))
			d3[a].Set(idx, d3At(line, i))
			minus[a].Set(idx, eno3Minus(line, i, h[a]))
			plus[a].Set(idx, eno3Plus(line, i, h[a]))
		})
	}
}

// HJEno3_1D is the one-dimensional convenience form of HJEno3.
func HJEno3_1D[T grid.Real](plus, minus, phi, d1, d2, d3 *grid.Field[T], fillBox grid.Box, dx T) {
	HJEno3([]*grid.Field[T]{plus}, []*grid.Field[T]{minus}, phi, []*grid.Field[T]{d1}, []*grid.Field[T]{d2}, []*grid.Field[T]{d3}, fillBox, [grid.MaxDim]T{dx}, 1)
}
