package deriv

import "github.com/EMinsight/lsmtoolbox/grid"

// CentralGradient2nd fills grad[a] with the second-order central difference
// of phi along axis a, for every axis a<ndim, over fillBox. phi must be
// interior to its ghost box by at least 1 cell.
func CentralGradient2nd[T grid.Real](grad []*grid.Field[T], phi *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("CentralGradient2nd", "phi", fillBox, phi.GhostBox, 1)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			grad[a].Set(idx, (line(i+1)-line(i-1))/(2*h[a]))
		})
	}
}

// CentralGradient4th fills grad[a] with the fourth-order central difference
// of phi along axis a. phi must be interior to its ghost box by at least 2
// cells.
func CentralGradient4th[T grid.Real](grad []*grid.Field[T], phi *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	for a := 0; a < ndim; a++ {
		grid.MustInterior("CentralGradient4th", "phi", fillBox, phi.GhostBox, 2)
		fillBox.Iterate(func(idx [grid.MaxDim]int) {
			line := axisLine(phi, idx, a)
			i := idx[a]
			num := -line(i+2) + T(8)*line(i+1) - T(8)*line(i-1) + line(i-2)
			grad[a].Set(idx, num/(T(12)*h[a]))
		})
	}
}

// Laplacian2nd fills lap with the second-order central-difference Laplacian
// of phi, summed over the ndim axes. phi must be interior to its ghost box
// by at least 1 cell.
func Laplacian2nd[T grid.Real](lap *grid.Field[T], phi *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim int) {
	grid.MustInterior("Laplacian2nd", "phi", fillBox, phi.GhostBox, 1)
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		var sum T
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			sum += (line(i+1) - 2*line(i) + line(i-1)) / (h[a] * h[a])
		}
		lap.Set(idx, sum)
	})
}
