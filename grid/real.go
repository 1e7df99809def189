// Package grid provides the index-range ("box") algebra and the flat,
// ghost-box-addressed array abstraction ("field") that every operator in
// this module is built on.
package grid

import "golang.org/x/exp/constraints"

// Real is the floating point type every field, box and operator in the
// toolbox is parameterized by. Pick float64 (double) or float32 (single)
// once per program; every kernel in every package runs uniformly in that
// precision.
type Real interface {
	constraints.Float
}

// MaxDim is the highest spatial dimension the toolbox supports.
const MaxDim = 3
