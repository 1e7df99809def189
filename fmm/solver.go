package fmm

import (
	"math"

	"go.uber.org/atomic"

	"github.com/EMinsight/lsmtoolbox/grid"
)

// status tags a cell's marching state.
type status byte

const (
	far status = iota
	trial
	known
)

// Diagnostics are atomic counters a Solver updates as it runs, so a caller
// monitoring a long-running march from another goroutine never races with
// the marching loop itself.
type Diagnostics struct {
	CellsInitialized atomic.Int64
	CellsPropagated  atomic.Int64
	CausalityRetries atomic.Int64
}

// Solver holds the state one Fast Marching Method run needs: grid geometry,
// spatial order, an optional do-not-touch mask, and the diagnostic counters
// the run accumulates into. Construct one per call to ComputeDistanceFunction
// or ComputeExtensionFields; a Solver is not meant to be reused across
// unrelated inputs.
type Solver[T grid.Real] struct {
	NDim     int
	H        [grid.MaxDim]T
	GhostBox grid.Box
	Order    int // 1 or 2
	Mask     *grid.Field[byte]

	// Speed is the optional propagation-speed field F in the Eikonal
	// equation |grad(T)|=1/F; nil means F=1 (pure signed-distance mode),
	// spec.md §4.I.
	Speed *grid.Field[T]

	Diagnostics Diagnostics

	dist *grid.Field[T]
	sign []int8    // cell-by-cell sign of the input phi, offset-indexed
	stat []status  // marching status, offset-indexed
	heap *handleHeap
	ext  []*grid.Field[T]
}

func (s *Solver[T]) signAt(idx [grid.MaxDim]int) int8    { return s.sign[s.GhostBox.Offset(idx)] }
func (s *Solver[T]) setSign(idx [grid.MaxDim]int, v int8) { s.sign[s.GhostBox.Offset(idx)] = v }
func (s *Solver[T]) statAt(idx [grid.MaxDim]int) status   { return s.stat[s.GhostBox.Offset(idx)] }
func (s *Solver[T]) setStat(idx [grid.MaxDim]int, v status) {
	s.stat[s.GhostBox.Offset(idx)] = v
}

// NewSolver builds a Solver over ghostBox. order must be 1 or 2; mask may be
// nil (no cells excluded).
func NewSolver[T grid.Real](ndim int, h [grid.MaxDim]T, ghostBox grid.Box, order int, mask *grid.Field[byte]) *Solver[T] {
	if order != 1 && order != 2 {
		panic(&grid.PreconditionError{Operator: "NewSolver", Argument: "order", Detail: "must be 1 or 2"})
	}
	return &Solver[T]{
		NDim: ndim, H: h, GhostBox: ghostBox, Order: order, Mask: mask,
	}
}

func (s *Solver[T]) masked(idx [grid.MaxDim]int) bool {
	return s.Mask != nil && s.Mask.At(idx) != 0
}

// speedSqAt returns F(idx)^2, defaulting to 1 when no speed field was
// supplied (pure distance mode).
func (s *Solver[T]) speedSqAt(idx [grid.MaxDim]int) float64 {
	if s.Speed == nil {
		return 1
	}
	f := float64(s.Speed.At(idx))
	return f * f
}

// neighbor returns the neighbor of idx along axis a in direction dir
// (+1/-1), and whether it lies within the ghost box.
func (s *Solver[T]) neighbor(idx [grid.MaxDim]int, a, dir int) ([grid.MaxDim]int, bool) {
	n := idx
	n[a] += dir
	if n[a] < s.GhostBox.Lo[a] || n[a] > s.GhostBox.Hi[a] {
		return n, false
	}
	return n, true
}

// ComputeDistanceFunction runs the Fast Marching Method over fillBox and
// returns a signed distance field agreeing with phi's sign, per spec.md
// §4.I.
func (s *Solver[T]) ComputeDistanceFunction(phi *grid.Field[T], fillBox grid.Box) *grid.Field[T] {
	dist, _ := s.march(phi, fillBox, nil)
	return dist
}

// ComputeExtensionFields runs the Fast Marching Method and additionally
// propagates len(sources) extension fields via the Adalsteinsson-Sethian
// construction, returning the distance field and the extended fields in the
// same order as sources.
func (s *Solver[T]) ComputeExtensionFields(phi *grid.Field[T], sources []*grid.Field[T], fillBox grid.Box) (*grid.Field[T], []*grid.Field[T]) {
	return s.march(phi, fillBox, sources)
}

func (s *Solver[T]) march(phi *grid.Field[T], fillBox grid.Box, sources []*grid.Field[T]) (*grid.Field[T], []*grid.Field[T]) {
	gb := phi.GhostBox
	s.GhostBox = gb
	s.dist = grid.NewField[T](gb)
	s.sign = make([]int8, gb.Size())
	s.stat = make([]status, gb.Size())
	s.heap = newHandleHeap(fillBox.Size())

	s.ext = make([]*grid.Field[T], len(sources))
	for k, src := range sources {
		s.ext[k] = src.Clone()
	}

	const bigT = math.MaxFloat32 // large sentinel, representable in float32 too
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		s.dist.Set(idx, T(bigT))
		if phi.At(idx) < 0 {
			s.setSign(idx, -1)
		} else {
			s.setSign(idx, 1)
		}
	})

	s.initializeNearFront(phi, fillBox)
	s.propagate(phi)

	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		if s.masked(idx) {
			return
		}
		d := s.dist.At(idx)
		if s.signAt(idx) < 0 && d > 0 {
			s.dist.Set(idx, -d)
		}
	})

	return s.dist, s.ext
}

// marchFromBoundary implements the mask-seeded initialization spec.md line
// 174's solve_eikonal_equation uses in place of compute_distance_function's
// zero-crossing seeding: every cell where boundaryMask is nonzero is Known
// from the start, holding its input t as the known arrival-time boundary
// value, and the march propagates outward from those cells alone. There is
// no sign flip at the end: an arrival-time field has no inside/outside to
// restore, unlike a signed distance field.
func (s *Solver[T]) marchFromBoundary(t *grid.Field[T], boundaryMask *grid.Field[byte], fillBox grid.Box) *grid.Field[T] {
	gb := t.GhostBox
	s.GhostBox = gb
	s.dist = grid.NewField[T](gb)
	s.sign = make([]int8, gb.Size())
	s.stat = make([]status, gb.Size())
	s.heap = newHandleHeap(fillBox.Size())
	s.ext = nil

	const bigT = math.MaxFloat32
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		s.dist.Set(idx, T(bigT))
	})

	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		if boundaryMask.At(idx) == 0 {
			return
		}
		s.dist.Set(idx, t.At(idx))
		s.setStat(idx, known)
		s.Diagnostics.CellsInitialized.Inc()
		s.enqueueNeighbors(idx)
	})

	s.propagate(t)
	return s.dist
}

// initializeNearFront implements spec.md §4.I step 1: seed Known cells
// adjacent to a sign change of phi with a first-order zero-crossing
// distance, and push their unmasked neighbors as Trial.
func (s *Solver[T]) initializeNearFront(phi *grid.Field[T], fillBox grid.Box) {
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		if s.masked(idx) {
			return
		}
		var sumInvSq float64
		found := false
		for a := 0; a < s.NDim; a++ {
			for _, dir := range [2]int{-1, 1} {
				nb, ok := s.neighbor(idx, a, dir)
				if !ok || s.masked(nb) {
					continue
				}
				p0, p1 := phi.At(idx), phi.At(nb)
				if (p0 < 0) == (p1 < 0) {
					continue // no sign change along this direction
				}
				theta := float64(p0) / float64(p0-p1) // fraction of h to the crossing
				ta := theta * float64(s.H[a])
				if ta == 0 {
					ta = 1e-12
				}
				sumInvSq += 1 / (ta * ta)
				found = true
			}
		}
		if !found {
			return
		}
		d := 1 / math.Sqrt(sumInvSq)
		s.dist.Set(idx, T(d))
		s.setStat(idx, known)
		s.Diagnostics.CellsInitialized.Inc()
		s.enqueueNeighbors(idx)
	})
}

// enqueueNeighbors makes every unmasked, non-Known neighbor of idx Trial and
// relaxes it against its Known neighbors (idx among them), so it sits in the
// heap keyed on its updated |T|.
func (s *Solver[T]) enqueueNeighbors(idx [grid.MaxDim]int) {
	for a := 0; a < s.NDim; a++ {
		for _, dir := range [2]int{-1, 1} {
			nb, ok := s.neighbor(idx, a, dir)
			if !ok || s.masked(nb) || s.statAt(nb) == known {
				continue
			}
			off := s.GhostBox.Offset(nb)
			if s.statAt(nb) == far {
				s.setStat(nb, trial)
				s.dist.Set(nb, T(math.MaxFloat32))
				s.heap.Push(off, math.MaxFloat64)
			}
			s.relax(nb)
		}
	}
}

// propagate implements spec.md §4.I step 2: repeatedly extract the
// smallest-|T| Trial cell, finalize it, and relax its neighbors.
func (s *Solver[T]) propagate(phi *grid.Field[T]) {
	for s.heap.Len() > 0 {
		off, _ := s.heap.PopMin()
		idx := s.offsetToIdx(off)
		s.setStat(idx, known)
		s.Diagnostics.CellsPropagated.Inc()
		s.enqueueNeighbors(idx)
	}
}

func (s *Solver[T]) offsetToIdx(off int) [grid.MaxDim]int {
	var idx [grid.MaxDim]int
	st := s.GhostBox.Strides()
	rem := off
	for d := s.NDim - 1; d >= 0; d-- {
		idx[d] = rem/st[d] + s.GhostBox.Lo[d]
		rem %= st[d]
	}
	return idx
}

// relax recomputes the candidate T at w from its Known upwind neighbors and
// updates the heap if the candidate improves on w's current value.
func (s *Solver[T]) relax(w [grid.MaxDim]int) {
	rhs := 1 / s.speedSqAt(w)
	candidate, contributors, ok := s.eikonalUpdate(w, rhs)
	if !ok {
		return
	}
	for {
		droppedAny := false
		for _, c := range contributors {
			if math.Abs(candidate) < math.Abs(c.value) {
				contributors = removeAxis(contributors, c.axis)
				droppedAny = true
				s.Diagnostics.CausalityRetries.Inc()
				break
			}
		}
		if !droppedAny {
			break
		}
		if len(contributors) == 0 {
			return
		}
		var ok2 bool
		candidate, contributors, ok2 = s.solveQuadratic(contributors, rhs)
		if !ok2 {
			return
		}
	}

	if math.Abs(candidate) >= math.Abs(float64(s.dist.At(w))) {
		return
	}
	s.dist.Set(w, T(candidate))
	s.updateExtension(w, candidate, contributors)
	off := s.GhostBox.Offset(w)
	if s.heap.Contains(off) {
		s.heap.DecreaseKey(off, math.Abs(candidate))
	} else {
		s.setStat(w, trial)
		s.heap.Push(off, math.Abs(candidate))
	}
}

// contributor names one axis's upwind-neighbor contribution to the
// quadratic Eikonal update at a cell.
type contributor struct {
	axis      int
	value     float64 // T_a (or the second-order combination (4*T_a - T_a')/3)
	coeff     float64 // 1/h_a (first order) or 3/(2*h_a) (second order)
	neighbor  [grid.MaxDim]int
	secondNbr [grid.MaxDim]int
	hasSecond bool
}

func removeAxis(cs []contributor, axis int) []contributor {
	out := cs[:0]
	for _, c := range cs {
		if c.axis != axis {
			out = append(out, c)
		}
	}
	return out
}

// eikonalUpdate builds the per-axis contributors at w and solves the
// resulting quadratic (or linear) equation, per spec.md §4.I's upwind
// Eikonal update.
func (s *Solver[T]) eikonalUpdate(w [grid.MaxDim]int, rhs float64) (float64, []contributor, bool) {
	var contributors []contributor
	for a := 0; a < s.NDim; a++ {
		lo, okLo := s.upwindNeighbor(w, a, -1)
		hi, okHi := s.upwindNeighbor(w, a, 1)
		var chosen *upwindCandidate
		switch {
		case okLo && okHi:
			if math.Abs(lo.t) <= math.Abs(hi.t) {
				chosen = &lo
			} else {
				chosen = &hi
			}
		case okLo:
			chosen = &lo
		case okHi:
			chosen = &hi
		default:
			continue
		}
		c := contributor{axis: a, neighbor: chosen.idx, value: chosen.t, coeff: 1 / float64(s.H[a])}
		if s.Order == 2 && chosen.hasSecond {
			c.coeff = 1.5 / float64(s.H[a])
			c.value = (4*chosen.t - chosen.t2) / 3
			c.secondNbr = chosen.idx2
			c.hasSecond = true
		}
		contributors = append(contributors, c)
	}
	if len(contributors) == 0 {
		return 0, nil, false
	}
	return s.solveQuadratic(contributors, rhs)
}

type upwindCandidate struct {
	idx       [grid.MaxDim]int
	t         float64
	idx2      [grid.MaxDim]int
	t2        float64
	hasSecond bool
}

// upwindNeighbor finds the Known, unmasked neighbor of w along axis a in
// direction dir, plus (for the second-order scheme) the next Known neighbor
// one further step in the same direction, if its |T| is monotone with the
// first.
func (s *Solver[T]) upwindNeighbor(w [grid.MaxDim]int, a, dir int) (upwindCandidate, bool) {
	n1, ok := s.neighbor(w, a, dir)
	if !ok || s.masked(n1) || s.statAt(n1) != known {
		return upwindCandidate{}, false
	}
	cand := upwindCandidate{idx: n1, t: float64(s.dist.At(n1))}
	n2, ok2 := s.neighbor(n1, a, dir)
	if ok2 && !s.masked(n2) && s.statAt(n2) == known {
		t2 := float64(s.dist.At(n2))
		if math.Abs(t2) <= math.Abs(cand.t) {
			cand.idx2 = n2
			cand.t2 = t2
			cand.hasSecond = true
		}
	}
	return cand, true
}

// solveQuadratic solves sum_a coeff_a^2*(T-value_a)^2 = rhs (rhs=1/F(w)^2)
// for T, taking the root larger in magnitude, per spec.md §4.I.
func (s *Solver[T]) solveQuadratic(cs []contributor, rhs float64) (float64, []contributor, bool) {
	if len(cs) == 1 {
		c := cs[0]
		t := c.value + math.Copysign(math.Sqrt(rhs)/c.coeff, 1)
		return t, cs, true
	}
	var A, B, C float64
	for _, c := range cs {
		A += c.coeff * c.coeff
		B += -2 * c.coeff * c.coeff * c.value
		C += c.coeff * c.coeff * c.value * c.value
	}
	C -= rhs
	disc := B*B - 4*A*C
	if disc < 0 {
		// No real root with every axis contributing: drop the
		// least-constraining (largest-|value|) axis and retry, matching
		// the causality-correction fallback for the quadratic case too.
		if len(cs) == 1 {
			return 0, nil, false
		}
		worst := 0
		for i, c := range cs {
			if math.Abs(c.value) > math.Abs(cs[worst].value) {
				worst = i
			}
		}
		reduced := append([]contributor{}, cs[:worst]...)
		reduced = append(reduced, cs[worst+1:]...)
		return s.solveQuadratic(reduced, rhs)
	}
	root := (-B + math.Sqrt(disc)) / (2 * A)
	return root, cs, true
}

// updateExtension applies the Adalsteinsson-Sethian weighted average to
// every extension field at w: E_k(w) = sum_a w_a*E_k(n_a) / sum_a w_a, with
// w_a = (T(w)-T_a)/h_a^2 (or the second-order coeff^2*(T(w)-value), with
// value the combination (4*T_a - T_a')/3, when the contributor used the
// second-order form), per spec.md §4.I.
func (s *Solver[T]) updateExtension(w [grid.MaxDim]int, candidate float64, contributors []contributor) {
	if len(s.ext) == 0 {
		return
	}
	weights := make([]float64, len(contributors))
	var sumW float64
	for i, c := range contributors {
		weights[i] = c.coeff * c.coeff * (candidate - c.value)
		sumW += weights[i]
	}
	if sumW == 0 {
		return
	}
	for k := range s.ext {
		var sum float64
		for i, c := range contributors {
			sum += weights[i] * float64(s.ext[k].At(c.neighbor))
		}
		s.ext[k].Set(w, T(sum/sumW))
	}
}
