package grid

// Grid describes a uniform Cartesian grid of dimension NDim in {1,2,3}:
// a lower corner XLo, strictly positive spacing H, and the fill/ghost index
// boxes every field on the grid shares (spec.md §3).
type Grid[T Real] struct {
	NDim       int
	XLo        [MaxDim]T
	H          [MaxDim]T
	FillBox    Box
	GhostBox   Box
}

// NewGrid validates spacing strict-positivity and box containment before
// returning the grid (spec.md §3 invariants).
func NewGrid[T Real](ndim int, xlo, h []T, fill, ghost Box) *Grid[T] {
	if len(xlo) != ndim || len(h) != ndim {
		panic("grid: NewGrid: xlo/h length must equal ndim")
	}
	hv := make(map[string]float64, ndim)
	for d := 0; d < ndim; d++ {
		hv[axisName(d)] = float64(h[d])
	}
	MustPositive("NewGrid", hv)
	if !ghost.Contains(fill) {
		panic(&PreconditionError{"NewGrid", "fill", "fill box is not contained in ghost box"})
	}
	g := &Grid[T]{NDim: ndim, FillBox: fill, GhostBox: ghost}
	for d := 0; d < ndim; d++ {
		g.XLo[d] = xlo[d]
		g.H[d] = h[d]
	}
	return g
}

func axisName(d int) string {
	switch d {
	case 0:
		return "dx"
	case 1:
		return "dy"
	default:
		return "dz"
	}
}

// NewFieldLike allocates a field over this grid's ghost box.
func (g *Grid[T]) NewFieldLike() *Field[T] {
	return NewField[T](g.GhostBox)
}

// CellCenter returns the physical coordinates of cell-center idx.
func (g *Grid[T]) CellCenter(idx [MaxDim]int) (x [MaxDim]T) {
	for d := 0; d < g.NDim; d++ {
		x[d] = g.XLo[d] + (T(idx[d])+T(0.5))*g.H[d]
	}
	return
}
