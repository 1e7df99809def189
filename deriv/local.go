// Local variants of every reconstruction in this package, restricted to a
// grid.NarrowBand layer per spec.md §4.H: each walks only the listed points
// of the given layer, and writes a result at a point only if the mask tag
// there clears mark_fb. They call exactly the same per-point formulas as
// their global counterparts, so a local evaluation and a global one
// restricted to the same mask-qualified cells agree bit-for-bit (spec.md §8
// scenario 6).
package deriv

import (
	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/narrowband"
)

// LocalHJEno1 is HJEno1 restricted to narrow-band layer `layer`, writing a
// result only where the mask tag is <= markFB.
func LocalHJEno1[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1 []*grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, h [grid.MaxDim]T, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			minus[a].Set(idx, eno1Minus(line, i, h[a]))
			plus[a].Set(idx, eno1Plus(line, i, h[a]))
		}
	})
}

// LocalHJEno2 is HJEno2 restricted to narrow-band layer `layer`.
func LocalHJEno2[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1, d2 []*grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, h [grid.MaxDim]T, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			d2[a].Set(idx, d2At(line, i))
			minus[a].Set(idx, eno2Minus(line, i, h[a]))
			plus[a].Set(idx, eno2Plus(line, i, h[a]))
		}
	})
}

// LocalHJEno3 is HJEno3 restricted to narrow-band layer `layer`.
func LocalHJEno3[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], d1, d2, d3 []*grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, h [grid.MaxDim]T, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			d1[a].Set(idx, d1At(line, i))
			d2[a].Set(idx, d2At(line, i))
			d3[a].Set(idx, d3At(line, i))
			minus[a].Set(idx, eno3Minus(line, i, h[a]))
			plus[a].Set(idx, eno3Plus(line, i, h[a]))
		}
	})
}

// LocalHJWeno5 is HJWeno5 restricted to narrow-band layer `layer`.
func LocalHJWeno5[T grid.Real](plus, minus []*grid.Field[T], phi *grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, h [grid.MaxDim]T, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			minus[a].Set(idx, weno5Minus(line, i, h[a]))
			plus[a].Set(idx, weno5Plus(line, i, h[a]))
		}
	})
}

// LocalCentralGradient2nd is CentralGradient2nd restricted to narrow-band
// layer `layer`.
func LocalCentralGradient2nd[T grid.Real](grad []*grid.Field[T], phi *grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, h [grid.MaxDim]T, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			line := axisLine(phi, idx, a)
			i := idx[a]
			grad[a].Set(idx, (line(i+1)-line(i-1))/(2*h[a]))
		}
	})
}

// LocalUpwindSelect is UpwindSelect restricted to narrow-band layer `layer`.
func LocalUpwindSelect[T grid.Real](grad []*grid.Field[T], plus, minus, velocity []*grid.Field[T], nb *grid.NarrowBand, layer int, markFB byte, ndim int) {
	narrowband.WalkWritable[T](nb, layer, markFB, func(idx [grid.MaxDim]int, pos int) {
		for a := 0; a < ndim; a++ {
			switch v := velocity[a].At(idx); {
			case v > 0:
				grad[a].Set(idx, minus[a].At(idx))
			case v < 0:
				grad[a].Set(idx, plus[a].At(idx))
			default:
				grad[a].Set(idx, 0)
			}
		}
	})
}
