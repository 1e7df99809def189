// Package narrowband implements the index-list iteration driver shared by
// every "local" operator variant (spec.md §4.H): walking the portion of a
// grid.NarrowBand's index lists that belongs to a given layer, and
// deciding per point whether a result may be written or a cached
// difference may be trusted, purely from mask-byte comparisons against
// caller-supplied thresholds.
package narrowband

import "github.com/EMinsight/lsmtoolbox/grid"

// CanWrite reports whether a result may be written at idx: the mask tag at
// idx must be <= markFB.
func CanWrite[T grid.Real](nb *grid.NarrowBand, idx [grid.MaxDim]int, markFB byte) bool {
	return nb.MaskAt(idx) <= markFB
}

// DifferenceValid reports whether a scratch difference of the order
// thresholded by markD may be trusted at idx (mask tag <= markD), versus
// needing to be recomputed on demand.
func DifferenceValid[T grid.Real](nb *grid.NarrowBand, idx [grid.MaxDim]int, markD byte) bool {
	return nb.MaskAt(idx) <= markD
}

// Walk calls fn(idx, pos) for every grid index in narrow-band layer `layer`,
// where pos is the point's position in the underlying index lists (useful
// for operators that need to cross-reference a parallel per-point array).
// layer is chosen by the caller to match the operator's stencil reach: an
// operator with a stencil of half-width w should be given a layer built to
// include all cells within w of the band it is meant to cover.
func Walk(nb *grid.NarrowBand, layer int, fn func(idx [grid.MaxDim]int, pos int)) {
	lo, hi := nb.Layer(layer)
	for p := lo; p <= hi; p++ {
		fn(nb.At(p), p)
	}
}

// WalkWritable is Walk restricted to points where CanWrite holds for markFB;
// fn is only invoked for points the operator is allowed to write.
func WalkWritable[T grid.Real](nb *grid.NarrowBand, layer int, markFB byte, fn func(idx [grid.MaxDim]int, pos int)) {
	Walk(nb, layer, func(idx [grid.MaxDim]int, pos int) {
		if CanWrite[T](nb, idx, markFB) {
			fn(idx, pos)
		}
	})
}
