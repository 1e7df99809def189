package fmm

import "github.com/EMinsight/lsmtoolbox/grid"

// ComputeDistanceFunction is the package-level entry point spec.md §4.I
// names directly: it builds a Solver, runs it, and returns the signed
// distance field together with that solver's Diagnostics counters.
func ComputeDistanceFunction[T grid.Real](phi *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim, order int, mask *grid.Field[byte]) (*grid.Field[T], *Diagnostics) {
	s := NewSolver[T](ndim, h, phi.GhostBox, order, mask)
	dist := s.ComputeDistanceFunction(phi, fillBox)
	return dist, &s.Diagnostics
}

// ComputeExtensionFields is the package-level entry point for the
// extension-field variant: it runs the same march as
// ComputeDistanceFunction but additionally carries each of sources along
// via the Adalsteinsson-Sethian construction.
func ComputeExtensionFields[T grid.Real](phi *grid.Field[T], sources []*grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim, order int, mask *grid.Field[byte]) (*grid.Field[T], []*grid.Field[T], *Diagnostics) {
	s := NewSolver[T](ndim, h, phi.GhostBox, order, mask)
	dist, ext := s.ComputeExtensionFields(phi, sources, fillBox)
	return dist, ext, &s.Diagnostics
}

// SolveEikonalEquation implements spec.md line 174's
// solve_eikonal_equation(T, F, mask?, order, grid_dims, h): F is the
// propagation speed field, and when mask is given, T already holds the
// known arrival-time boundary values on every cell where mask is nonzero --
// those cells are seeded Known directly from T and the march propagates
// outward from them, skipping the zero-crossing-of-phi initialization
// compute_distance_function uses. With mask nil there is no boundary to
// seed from directly, so T is instead treated as a signed level-set field
// and the march falls back to the same zero-crossing initialization as
// ComputeDistanceFunction, dividing by F at every accepting cell away from
// the front.
func SolveEikonalEquation[T grid.Real](t *grid.Field[T], speed *grid.Field[T], fillBox grid.Box, h [grid.MaxDim]T, ndim, order int, mask *grid.Field[byte]) (*grid.Field[T], *Diagnostics) {
	s := NewSolver[T](ndim, h, t.GhostBox, order, nil)
	s.Speed = speed
	if mask != nil {
		dist := s.marchFromBoundary(t, mask, fillBox)
		return dist, &s.Diagnostics
	}
	dist := s.ComputeDistanceFunction(t, fillBox)
	return dist, &s.Diagnostics
}
