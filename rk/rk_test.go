package rk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/rk"
)

func TestStep1Euler(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{3})
	cur := grid.NewField[float64](fill)
	rhs := grid.NewField[float64](fill)
	next := grid.NewField[float64](fill)
	cur.Fill(1.0)
	rhs.Fill(2.0)

	rk.Step1(next, cur, rhs, fill, 0.1)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, 1.2, next.At(idx), 1e-12)
	})
}

// TVD RK2/RK3 applied to the ODE u'=lambda*u (constant rhs=lambda*u at
// every stage) must reproduce the exact scheme coefficients: with rhs held
// at a fixed value c (as if lambda*u were frozen across the step, isolating
// the kernels' arithmetic from any RHS recomputation), RK2 should give
// cur + dt*c exactly when u1's rhs also equals c.
func TestTVD2MatchesEulerOnConstantRHS(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{1})
	cur := grid.NewField[float64](fill)
	rhs := grid.NewField[float64](fill)
	u1 := grid.NewField[float64](fill)
	next := grid.NewField[float64](fill)
	cur.Fill(3.0)
	rhs.Fill(2.0)
	dt := 0.5

	rk.TVD2Stage1(u1, cur, rhs, fill, dt)
	rk.TVD2Stage2(next, cur, u1, rhs, fill, dt)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, 4.0, next.At(idx), 1e-12) // 3 + 0.5*2
	})
}

func TestTVD3MatchesEulerOnConstantRHS(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{1})
	cur := grid.NewField[float64](fill)
	rhs := grid.NewField[float64](fill)
	u1 := grid.NewField[float64](fill)
	u2 := grid.NewField[float64](fill)
	next := grid.NewField[float64](fill)
	cur.Fill(3.0)
	rhs.Fill(2.0)
	dt := 0.5

	rk.TVD3Stage1(u1, cur, rhs, fill, dt)
	rk.TVD3Stage2(u2, cur, u1, rhs, fill, dt)
	rk.TVD3Stage3(next, cur, u2, rhs, fill, dt)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, 4.0, next.At(idx), 1e-12)
	})
}
