package lse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/lse"
)

// Advecting phi(x)=x at unit rightward velocity with exact grad(phi)=1
// everywhere leaves rhs = -1 at every interior cell (the upwind branch picks
// phiMinus since V>0).
func TestAddAdvectionUpwindPicksMinusWhenPositive(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{9})
	ghost := fill.GrownBy(1)

	rhs := grid.NewField[float64](ghost)
	velocity := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	plus := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	minus := []*grid.Field[float64]{grid.NewField[float64](ghost)}

	velocity[0].Fill(1.0)
	plus[0].Fill(7.0)  // should be ignored
	minus[0].Fill(1.0) // should be used

	lse.ZeroRHS(rhs, fill)
	lse.AddAdvection(rhs, velocity, plus, minus, fill, 1)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, -1.0, rhs.At(idx), 1e-12)
	})
}

// With zero normal velocity the normal-velocity term contributes nothing,
// regardless of the gradient reconstructions.
func TestAddNormalVelocityZeroIsNoOp(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{4})
	ghost := fill.GrownBy(1)

	rhs := grid.NewField[float64](ghost)
	vn := grid.NewField[float64](ghost)
	plus := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	minus := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	plus[0].Fill(3.0)
	minus[0].Fill(-2.0)

	lse.ZeroRHS(rhs, fill)
	lse.AddNormalVelocity(rhs, vn, plus, minus, fill, 1)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.Equal(t, 0.0, rhs.At(idx))
	})
}

// A circle of radius r (phi = sqrt(x^2+y^2) - r, so |grad(phi)|=1 and
// kappa=1/r exactly) shrinks under -b*kappa*|grad(phi)| at rate -b/r.
func TestAddCurvatureOnCircle(t *testing.T) {
	const r = 2.0
	const b = 0.5

	fill := grid.NewBox([]int{0}, []int{0})
	ghost := fill

	rhs := grid.NewField[float64](ghost)
	grad := []*grid.Field[float64]{grid.NewField[float64](ghost), grid.NewField[float64](ghost)}
	// On the circle at angle 0 (x=r, y=0): grad(phi) = (1,0),
	// phi_xx = y^2/d^3, phi_yy = x^2/d^3, phi_xy = -xy/d^3 at d=r.
	grad[0].Fill(1.0)
	grad[1].Fill(0.0)

	hess := [][]*grid.Field[float64]{
		{grid.NewField[float64](ghost), grid.NewField[float64](ghost)},
		{nil, grid.NewField[float64](ghost)},
	}
	hess[0][0].Fill(0.0)     // phi_xx = y^2/r^3 = 0
	hess[0][1].Fill(0.0)     // phi_xy = -xy/r^3 = 0
	hess[1][1].Fill(1.0 / r) // phi_yy = x^2/r^3 = 1/r

	lse.ZeroRHS(rhs, fill)
	lse.AddCurvature(rhs, b, grad, hess, fill, 2)

	fill.Iterate(func(idx [grid.MaxDim]int) {
		require.InDelta(t, -b/r, rhs.At(idx), 1e-9)
	})
}
