package grid

import "fmt"

// Box is a rectangular index set [Lo[0]..Hi[0]] x ... x [Lo[NDim-1]..Hi[NDim-1]].
// Axes at or beyond NDim carry Lo==Hi==0 and are ignored by every method.
type Box struct {
	NDim   int
	Lo, Hi [MaxDim]int
}

// NewBox builds a Box from explicit lower/upper corners. len(lo) must equal
// len(hi) and be 1, 2 or 3.
func NewBox(lo, hi []int) Box {
	if len(lo) != len(hi) {
		panic(fmt.Sprintf("grid: NewBox: len(lo)=%d != len(hi)=%d", len(lo), len(hi)))
	}
	ndim := len(lo)
	if ndim < 1 || ndim > MaxDim {
		panic(fmt.Sprintf("grid: NewBox: dimension %d out of range [1,%d]", ndim, MaxDim))
	}
	var b Box
	b.NDim = ndim
	for d := 0; d < ndim; d++ {
		b.Lo[d], b.Hi[d] = lo[d], hi[d]
	}
	return b
}

// Shape returns the per-axis extent (Hi-Lo+1); axes beyond NDim report 1.
func (b Box) Shape() (s [MaxDim]int) {
	for d := 0; d < MaxDim; d++ {
		if d < b.NDim {
			s[d] = b.Hi[d] - b.Lo[d] + 1
		} else {
			s[d] = 1
		}
	}
	return
}

// Size is the total number of cells in the box.
func (b Box) Size() int {
	n := 1
	s := b.Shape()
	for d := 0; d < b.NDim; d++ {
		n *= s[d]
	}
	return n
}

// Strides returns the flat-array stride for each axis under row-major
// (axis 0 fastest-varying) layout, matching spec.md's W_k = (1, W0, W0*W1).
func (b Box) Strides() (st [MaxDim]int) {
	s := b.Shape()
	st[0] = 1
	for d := 1; d < MaxDim; d++ {
		st[d] = st[d-1] * s[d-1]
	}
	return
}

// Offset returns the flat offset of idx relative to b.Lo. idx beyond b.NDim
// is ignored.
func (b Box) Offset(idx [MaxDim]int) int {
	st := b.Strides()
	off := 0
	for d := 0; d < b.NDim; d++ {
		off += (idx[d] - b.Lo[d]) * st[d]
	}
	return off
}

// Contains reports whether other is entirely inside b.
func (b Box) Contains(other Box) bool {
	if other.NDim != b.NDim {
		return false
	}
	for d := 0; d < b.NDim; d++ {
		if other.Lo[d] < b.Lo[d] || other.Hi[d] > b.Hi[d] {
			return false
		}
	}
	return true
}

// GrownBy returns a box expanded by width cells on every face.
func (b Box) GrownBy(width int) Box {
	g := b
	for d := 0; d < b.NDim; d++ {
		g.Lo[d] -= width
		g.Hi[d] += width
	}
	return g
}

// ShrunkBy returns a box contracted by width cells on every face (the
// interior of b with a margin of width).
func (b Box) ShrunkBy(width int) Box {
	return b.GrownBy(-width)
}

// InteriorBy reports whether fb lies inside gb with at least width cells of
// margin on every face, i.e. gb.ShrunkBy(width) contains fb.
func (b Box) InteriorBy(outer Box, width int) bool {
	return outer.ShrunkBy(width).Contains(b)
}

// Empty reports whether the box has zero cells along some axis.
func (b Box) Empty() bool {
	for d := 0; d < b.NDim; d++ {
		if b.Hi[d] < b.Lo[d] {
			return true
		}
	}
	return false
}

func (b Box) String() string {
	switch b.NDim {
	case 1:
		return fmt.Sprintf("[%d..%d]", b.Lo[0], b.Hi[0])
	case 2:
		return fmt.Sprintf("[%d..%d]x[%d..%d]", b.Lo[0], b.Hi[0], b.Lo[1], b.Hi[1])
	default:
		return fmt.Sprintf("[%d..%d]x[%d..%d]x[%d..%d]", b.Lo[0], b.Hi[0], b.Lo[1], b.Hi[1], b.Lo[2], b.Hi[2])
	}
}

// Iterate calls fn once for every index in b, in row-major (axis 0 fastest)
// order. Axes beyond b.NDim are held at Lo (==0).
func (b Box) Iterate(fn func(idx [MaxDim]int)) {
	var idx [MaxDim]int
	idx = b.Lo
	switch b.NDim {
	case 1:
		for i := b.Lo[0]; i <= b.Hi[0]; i++ {
			idx[0] = i
			fn(idx)
		}
	case 2:
		for j := b.Lo[1]; j <= b.Hi[1]; j++ {
			idx[1] = j
			for i := b.Lo[0]; i <= b.Hi[0]; i++ {
				idx[0] = i
				fn(idx)
			}
		}
	case 3:
		for k := b.Lo[2]; k <= b.Hi[2]; k++ {
			idx[2] = k
			for j := b.Lo[1]; j <= b.Hi[1]; j++ {
				idx[1] = j
				for i := b.Lo[0]; i <= b.Hi[0]; i++ {
					idx[0] = i
					fn(idx)
				}
			}
		}
	}
}
