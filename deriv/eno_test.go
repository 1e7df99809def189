package deriv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/deriv"
	"github.com/EMinsight/lsmtoolbox/grid"
)

// ENO1 reproduces a linear function's derivative exactly (degree <= p-1 = 0
// for p=1 means constant derivative; a line has constant first derivative
// and zero higher undivided differences, so both the plus and minus
// reconstructions must hit the exact slope to round-off).
func TestHJEno1ExactOnLinear(t *testing.T) {
	const n = 20
	const slope = 3.25
	const intercept = -1.0
	dx := 0.1

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(1)

	phi := grid.NewField[float64](ghost)
	ghost.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		phi.Set(idx, slope*x+intercept)
	})

	plus := grid.NewField[float64](ghost)
	minus := grid.NewField[float64](ghost)
	d1 := grid.NewField[float64](ghost)
	deriv.HJEno1_1D(plus, minus, phi, d1, fill, dx)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, slope, plus.At(idx), 1e-10)
		require.InDelta(t, slope, minus.At(idx), 1e-10)
	})
}

// ENO2 reproduces a quadratic's derivative exactly: phi(x)=x^2 has constant
// second undivided difference, so every 3-point candidate stencil the
// switch can choose agrees, and both plus/minus reconstructions return
// 2x to round-off.
func TestHJEno2ExactOnQuadratic(t *testing.T) {
	const n = 24
	dx := 0.05

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(2)

	phi := grid.NewField[float64](ghost)
	ghost.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		phi.Set(idx, x*x)
	})

	plus := grid.NewField[float64](ghost)
	minus := grid.NewField[float64](ghost)
	d1 := grid.NewField[float64](ghost)
	d2 := grid.NewField[float64](ghost)
	deriv.HJEno2_1D(plus, minus, phi, d1, d2, fill, dx)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		require.InDelta(t, 2*x, plus.At(idx), 1e-9)
		require.InDelta(t, 2*x, minus.At(idx), 1e-9)
	})
}

// ENO3 reproduces a cubic's derivative exactly for the same reason, one
// order up: phi(x)=x^3 has constant third undivided difference.
func TestHJEno3ExactOnCubic(t *testing.T) {
	const n = 30
	dx := 0.04

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(3)

	phi := grid.NewField[float64](ghost)
	ghost.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		phi.Set(idx, x*x*x)
	})

	plus := grid.NewField[float64](ghost)
	minus := grid.NewField[float64](ghost)
	d1 := grid.NewField[float64](ghost)
	d2 := grid.NewField[float64](ghost)
	d3 := grid.NewField[float64](ghost)
	deriv.HJEno3_1D(plus, minus, phi, d1, d2, d3, fill, dx)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		require.InDelta(t, 3*x*x, plus.At(idx), 1e-7)
		require.InDelta(t, 3*x*x, minus.At(idx), 1e-7)
	})
}

// A 2-D smoke test: ENO1 along both axes of phi(x,y)=2x+3y should return
// the constant partials on every interior cell.
func TestHJEno1TwoDimensional(t *testing.T) {
	const nx, ny = 12, 10
	dx, dy := 0.1, 0.2

	fill := grid.NewBox([]int{0, 0}, []int{nx - 1, ny - 1})
	ghost := fill.GrownBy(1)

	phi := grid.NewField[float64](ghost)
	ghost.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		y := float64(idx[1]) * dy
		phi.Set(idx, 2*x+3*y)
	})

	plus := []*grid.Field[float64]{grid.NewField[float64](ghost), grid.NewField[float64](ghost)}
	minus := []*grid.Field[float64]{grid.NewField[float64](ghost), grid.NewField[float64](ghost)}
	d1 := []*grid.Field[float64]{grid.NewField[float64](ghost), grid.NewField[float64](ghost)}

	deriv.HJEno1(plus, minus, phi, d1, fill, [grid.MaxDim]float64{dx, dy}, 2)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, 2.0, plus[0].At(idx), 1e-10)
		require.InDelta(t, 2.0, minus[0].At(idx), 1e-10)
		require.InDelta(t, 3.0, plus[1].At(idx), 1e-10)
		require.InDelta(t, 3.0, minus[1].At(idx), 1e-10)
	})
}
