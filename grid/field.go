package grid

// Field is a dense array addressed by a ghost box. Fields carry no metadata
// at runtime beyond the data pointer and the ghost box, per spec.md §3. T is
// unconstrained here (rather than Real) so the same container can also hold
// the byte mask fields described in spec.md §3; arithmetic kernels that need
// floating-point values constrain their own type parameter to Real and pass
// it through to Field.
type Field[T any] struct {
	Data     []T
	GhostBox Box
}

// NewField allocates a zeroed field over gb.
func NewField[T any](gb Box) *Field[T] {
	return &Field[T]{Data: make([]T, gb.Size()), GhostBox: gb}
}

// At returns the value at idx (indices relative to the grid's index space,
// not the flat array).
func (f *Field[T]) At(idx [MaxDim]int) T {
	return f.Data[f.GhostBox.Offset(idx)]
}

// Set writes the value at idx.
func (f *Field[T]) Set(idx [MaxDim]int, v T) {
	f.Data[f.GhostBox.Offset(idx)] = v
}

// AtOffset and SetOffset give direct access when the caller already has a
// flat offset (e.g. from a narrow-band index list via GhostBox.Offset),
// avoiding repeated stride math in hot loops.
func (f *Field[T]) AtOffset(off int) T      { return f.Data[off] }
func (f *Field[T]) SetOffset(off int, v T)  { f.Data[off] = v }

// Fill sets every cell in the field's ghost box to v.
func (f *Field[T]) Fill(v T) {
	for i := range f.Data {
		f.Data[i] = v
	}
}

// Clone returns a deep copy sharing the same ghost box.
func (f *Field[T]) Clone() *Field[T] {
	out := &Field[T]{Data: make([]T, len(f.Data)), GhostBox: f.GhostBox}
	copy(out.Data, f.Data)
	return out
}

// Axis1D returns the value at idx0 shifted by n steps along axis a. Used by derivative kernels that walk a line of
// cells along one axis at a time.
func (f *Field[T]) Axis1D(idx0 [MaxDim]int, axis, n int) T {
	idx := idx0
	idx[axis] += n
	return f.At(idx)
}
