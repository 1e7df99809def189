// Package lsmutil implements the general-purpose level-set utilities of
// spec.md §4.G: the max-norm termination criterion for re-initialization
// loops, the smoothed volume/surface integrals, and interpolated sampling
// along a segment.
package lsmutil

import (
	"math"

	"github.com/EMinsight/lsmtoolbox/grid"
)

// MaxNormDiff returns max over fillBox of |f-g|.
func MaxNormDiff[T grid.Real](f, g *grid.Field[T], fillBox grid.Box) T {
	var m T
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		d := f.At(idx) - g.At(idx)
		if d < 0 {
			d = -d
		}
		if d > m {
			m = d
		}
	})
	return m
}

// smoothedHeaviside implements H_eps(s), spec.md §4.G.
func smoothedHeaviside[T grid.Real](s, eps T) T {
	if s < -eps {
		return 0
	}
	if s > eps {
		return 1
	}
	se, epsf := float64(s), float64(eps)
	return T(0.5 * (1 + se/epsf + math.Sin(math.Pi*se/epsf)/math.Pi))
}

// smoothedDelta implements delta_eps(s), spec.md §4.G.
func smoothedDelta[T grid.Real](s, eps T) T {
	if s < -eps || s > eps {
		return 0
	}
	se, epsf := float64(s), float64(eps)
	return T((1 + math.Cos(math.Pi*se/epsf)) / (2 * epsf))
}

// cellVolume is the per-cell volume (area in 2-D, length in 1-D) implied by
// spacing h over ndim axes.
func cellVolume[T grid.Real](h [grid.MaxDim]T, ndim int) T {
	v := T(1)
	for a := 0; a < ndim; a++ {
		v *= h[a]
	}
	return v
}

// VolumeIntegral approximates integral(psi * H_eps(-phi) dV) over fillBox by
// a midpoint-rule sum, spec.md §4.G.
func VolumeIntegral[T grid.Real](psi, phi *grid.Field[T], eps T, fillBox grid.Box, h [grid.MaxDim]T, ndim int) T {
	dv := cellVolume(h, ndim)
	var sum T
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		sum += psi.At(idx) * smoothedHeaviside(-phi.At(idx), eps) * dv
	})
	return sum
}

// SurfaceIntegral approximates integral(psi * delta_eps(phi) * |grad(phi)|
// dV) over fillBox by a midpoint-rule sum, spec.md §4.G.
func SurfaceIntegral[T grid.Real](psi, phi *grid.Field[T], gradPhi []*grid.Field[T], eps T, fillBox grid.Box, h [grid.MaxDim]T, ndim int) T {
	dv := cellVolume(h, ndim)
	var sum T
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		var gradSq T
		for a := 0; a < ndim; a++ {
			g := gradPhi[a].At(idx)
			gradSq += g * g
		}
		gradNorm := T(math.Sqrt(float64(gradSq)))
		sum += psi.At(idx) * smoothedDelta(phi.At(idx), eps) * gradNorm * dv
	})
	return sum
}

// SamplePhiOnSegment returns n equispaced trilinear-interpolated samples of
// phi along the straight segment from start to end (inclusive), spec.md
// §4.G. xlo/h describe the grid's physical coordinate mapping (spec.md §3).
func SamplePhiOnSegment[T grid.Real](phi *grid.Field[T], start, end [grid.MaxDim]T, n int, xlo, h [grid.MaxDim]T, ndim int) []T {
	if n < 1 {
		return nil
	}
	out := make([]T, n)
	for s := 0; s < n; s++ {
		var t T
		if n > 1 {
			t = T(s) / T(n-1)
		}
		var x [grid.MaxDim]T
		for a := 0; a < ndim; a++ {
			x[a] = start[a] + t*(end[a]-start[a])
		}
		out[s] = trilinearInterp(phi, x, xlo, h, ndim)
	}
	return out
}

// trilinearInterp interpolates phi at physical coordinate x by (bi/tri)
// linear interpolation across the 2^ndim cells surrounding x, hand-written
// since no third-party library in the pack offers grid-aligned
// interpolation against this cell-centered ghost-box layout.
func trilinearInterp[T grid.Real](phi *grid.Field[T], x, xlo, h [grid.MaxDim]T, ndim int) T {
	var base [grid.MaxDim]int
	var frac [grid.MaxDim]T
	for a := 0; a < ndim; a++ {
		cellf := (x[a]-xlo[a])/h[a] - T(0.5)
		cell := int(math.Floor(float64(cellf)))
		base[a] = cell
		frac[a] = cellf - T(cell)
	}

	var sum T
	corners := 1 << uint(ndim)
	for c := 0; c < corners; c++ {
		var idx [grid.MaxDim]int
		weight := T(1)
		for a := 0; a < ndim; a++ {
			bit := (c >> uint(a)) & 1
			idx[a] = base[a] + bit
			if bit == 1 {
				weight *= frac[a]
			} else {
				weight *= 1 - frac[a]
			}
		}
		sum += weight * phi.At(idx)
	}
	return sum
}
