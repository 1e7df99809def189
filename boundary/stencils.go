// Package boundary provides the ghost-cell writers spec.md §4.B treats as
// the numerical core's one black-box collaborator: given an interior box
// and a ghost width w, each writer fills the w ghost slabs outside one face
// from the w interior slabs inside. Writers are invoked one face at a time;
// corner ghosts are resolved by whichever face call touches them last.
package boundary

import (
	"fmt"

	"github.com/EMinsight/lsmtoolbox/grid"
)

// Face enumerates the bdry_location_idx face index from the original
// LSMLIB source (0..5 for 3-D: x-lo,x-hi,y-lo,y-hi,z-lo,z-hi), carried as a
// typed enum rather than a bare int (spec.md's supplemental feature list).
type Face int

const (
	XLo Face = iota
	XHi
	YLo
	YHi
	ZLo
	ZHi
)

// Axis and Hi decompose a Face into the axis it bounds and which side.
func (f Face) Axis() int { return int(f) / 2 }
func (f Face) Hi() bool  { return int(f)%2 == 1 }

func (f Face) String() string {
	names := []string{"x-lo", "x-hi", "y-lo", "y-hi", "z-lo", "z-hi"}
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("face(%d)", int(f))
}

// ghostIndex returns the grid index, along the bounded axis, of ghost offset
// k at this face of box (k=0 is the ghost cell nearest the face).
func ghostIndex(face Face, box grid.Box, k int) int {
	a := face.Axis()
	if face.Hi() {
		return box.Hi[a] + 1 + k
	}
	return box.Lo[a] - 1 - k
}

// interiorIndex returns the interior-cell index mirrored to ghost offset k
// at this face (k=0 is nearest the face).
func interiorIndex(face Face, box grid.Box, k int) int {
	a := face.Axis()
	if face.Hi() {
		return box.Hi[a] - k
	}
	return box.Lo[a] + k
}

func setAxis(idx [grid.MaxDim]int, axis, v int) [grid.MaxDim]int {
	idx[axis] = v
	return idx
}

// walkFace calls fn(ghostIdx, k) for k=0..width-1, for every transverse
// index on the given face of box widened by width on each transverse side
// (so edge and corner ghosts are visited too), with ghostIdx varying only
// along the bounded axis.
func walkFace[T grid.Real](f *grid.Field[T], face Face, box grid.Box, width int, fn func(idx [grid.MaxDim]int, k int)) {
	a := face.Axis()
	span := box.GrownBy(width)
	span.Lo[a], span.Hi[a] = box.Lo[a], box.Lo[a] // one row per transverse location
	span.Iterate(func(idx [grid.MaxDim]int) {
		for k := 0; k < width; k++ {
			gidx := setAxis(idx, a, ghostIndex(face, box, k))
			fn(gidx, k)
		}
	})
}

// HomogeneousNeumannConstant implements the ENO1/O(1) homogeneous Neumann
// writer: ghost[k] = nearest interior cell (constant extrapolation).
func HomogeneousNeumannConstant[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	grid.MustInterior("HomogeneousNeumannConstant", "f", interior, f.GhostBox, width)
	walkFace(f, face, interior, width, func(gidx [grid.MaxDim]int, k int) {
		a := face.Axis()
		iidx := setAxis(gidx, a, interiorIndex(face, interior, 0))
		f.Set(gidx, f.At(iidx))
	})
}

// HomogeneousNeumannReflect implements the ENO2/O(2)/WENO5 homogeneous
// Neumann writer: ghost[k] = interior[k] (both counted from the face, k=0
// nearest it), i.e. reflection across the face.
func HomogeneousNeumannReflect[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	grid.MustInterior("HomogeneousNeumannReflect", "f", interior, f.GhostBox, width)
	walkFace(f, face, interior, width, func(gidx [grid.MaxDim]int, k int) {
		a := face.Axis()
		iidx := setAxis(gidx, a, interiorIndex(face, interior, k))
		f.Set(gidx, f.At(iidx))
	})
}

// LinearExtrapolation implements ghost[k] = 2*interior[0] - interior[k+1].
func LinearExtrapolation[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	grid.MustInterior("LinearExtrapolation", "f", interior, f.GhostBox, width)
	walkFace(f, face, interior, width, func(gidx [grid.MaxDim]int, k int) {
		a := face.Axis()
		i0 := setAxis(gidx, a, interiorIndex(face, interior, 0))
		ik1 := setAxis(gidx, a, interiorIndex(face, interior, k+1))
		f.Set(gidx, 2*f.At(i0)-f.At(ik1))
	})
}

// QuadraticExtrapolation implements the analogous three-point formula:
// ghost[k] = 3*interior[0] - 3*interior[k+1] + interior[k+2].
func QuadraticExtrapolation[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	grid.MustInterior("QuadraticExtrapolation", "f", interior, f.GhostBox, width)
	walkFace(f, face, interior, width, func(gidx [grid.MaxDim]int, k int) {
		a := face.Axis()
		i0 := setAxis(gidx, a, interiorIndex(face, interior, 0))
		i1 := setAxis(gidx, a, interiorIndex(face, interior, k+1))
		i2 := setAxis(gidx, a, interiorIndex(face, interior, k+2))
		f.Set(gidx, 3*f.At(i0)-3*f.At(i1)+f.At(i2))
	})
}

// AntiPeriodic fills each ghost cell with the negated value of the interior
// cell one period (N cells, the interior extent along the bounded axis)
// away.
func AntiPeriodic[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	periodicLike(f, face, interior, width, -1)
}

// Periodic fills each ghost cell with the value of the interior cell one
// period (N cells, the interior extent along the bounded axis) away.
func Periodic[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int) {
	periodicLike(f, face, interior, width, 1)
}

func periodicLike[T grid.Real](f *grid.Field[T], face Face, interior grid.Box, width int, sign T) {
	grid.MustInterior("Periodic", "f", interior, f.GhostBox, width)
	a := face.Axis()
	walkFace(f, face, interior, width, func(gidx [grid.MaxDim]int, k int) {
		// The source lies one period away: for the hi face ghost k wraps
		// from interior cell Lo+k, for the lo face from Hi-k.
		var src int
		if face.Hi() {
			src = interior.Lo[a] + k
		} else {
			src = interior.Hi[a] - k
		}
		sidx := setAxis(gidx, a, src)
		f.Set(gidx, sign*f.At(sidx))
	})
}
