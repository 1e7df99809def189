package grid

// NarrowBand is the index-lists / mask-field / layer-bound triple described
// in spec.md §3, named to mirror the argument names of
// lsm_utilities3d_local.h in the original LSMLIB source
// (index_x/index_y/index_z, nlo_index/nhi_index, narrow_band, mark_fb):
// the list is partitioned into contiguous layers L0 ⊂ L1 ⊂ ... ⊂ LK by
// per-layer cursors, and a byte mask field carries a layer tag per cell that
// every "local" operator consults to decide whether to write a result or
// trust a cached difference.
type NarrowBand struct {
	IndexX, IndexY, IndexZ []int
	NDim                   int

	// NLoIndex[l]/NHiIndex[l] bound layer l as [NLoIndex[0], NHiIndex[l]];
	// only NLoIndex[0] is ever consulted (the list has a single global
	// lower bound), the rest of NLoIndex is carried for fidelity with the
	// original descriptor's per-layer cursor pair.
	NLoIndex, NHiIndex []int

	Mask *Field[byte]
}

// NumLayers returns the number of narrow-band layers described.
func (nb *NarrowBand) NumLayers() int { return len(nb.NHiIndex) }

// Layer returns the [lo,hi] inclusive range into the index lists for layer
// l (L_l = [NLoIndex[0], NHiIndex[l]]).
func (nb *NarrowBand) Layer(l int) (lo, hi int) {
	return nb.NLoIndex[0], nb.NHiIndex[l]
}

// At returns the grid index at position p in the index lists.
func (nb *NarrowBand) At(p int) (idx [MaxDim]int) {
	idx[0] = nb.IndexX[p]
	if nb.NDim >= 2 {
		idx[1] = nb.IndexY[p]
	}
	if nb.NDim >= 3 {
		idx[2] = nb.IndexZ[p]
	}
	return
}

// MaskAt returns the mask byte at grid index idx.
func (nb *NarrowBand) MaskAt(idx [MaxDim]int) byte {
	return nb.Mask.At(idx)
}

// CheckIntegrity validates that every listed index lies within the mask
// field's ghost box, per spec.md §7.3 ("index in narrow-band list falls
// outside ghost box ... precondition failure").
func (nb *NarrowBand) CheckIntegrity(op string) error {
	gb := nb.Mask.GhostBox
	if len(nb.NHiIndex) == 0 {
		return nil
	}
	_, top := nb.Layer(len(nb.NHiIndex) - 1)
	for p := nb.NLoIndex[0]; p <= top; p++ {
		idx := nb.At(p)
		for d := 0; d < nb.NDim; d++ {
			if idx[d] < gb.Lo[d] || idx[d] > gb.Hi[d] {
				return &PreconditionError{op, "narrow_band", "index list entry outside mask ghost box"}
			}
		}
	}
	return nil
}
