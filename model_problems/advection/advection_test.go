package advection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/model_problems/advection"
)

// A unit-speed rightward advection of a sine wave over one full period
// must return close to the starting profile.
func TestAdvectionRunIsPeriodic(t *testing.T) {
	const n = 64
	const ghostWidth = 3
	dx := 2 * math.Pi / n

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(ghostWidth)

	phi := grid.NewField[float64](ghost)
	fill.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		phi.Set(idx, math.Sin(x))
	})

	velocity := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	velocity[0].Fill(1.0)

	p := &advection.Problem{
		NDim: 1, H: [grid.MaxDim]float64{dx}, FillBox: fill, GhostWidth: ghostWidth,
		CFL: 0.5, FinalTime: 2 * math.Pi, Velocity: velocity,
	}

	out, steps := p.Run(phi, 0, false)
	require.True(t, steps > 0)

	var maxErr float64
	fill.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		want := math.Sin(x)
		e := math.Abs(out.At(idx) - want)
		if e > maxErr {
			maxErr = e
		}
	})
	require.Less(t, maxErr, 0.2)
}

// The same periodic-advection check under every Scheme/RKOrder combination
// the scenario config can select, confirming the dispatch in Run actually
// reaches each reconstruction and each Runge-Kutta order rather than always
// falling back to the eno2/RK2 default.
func TestAdvectionRunEverySchemeAndRKOrder(t *testing.T) {
	const n = 64
	const ghostWidth = 3
	dx := 2 * math.Pi / n

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(ghostWidth)

	for _, scheme := range []string{"eno1", "eno2", "eno3", "weno5"} {
		for _, rkOrder := range []int{1, 2, 3} {
			phi := grid.NewField[float64](ghost)
			fill.Iterate(func(idx [grid.MaxDim]int) {
				x := float64(idx[0]) * dx
				phi.Set(idx, math.Sin(x))
			})

			velocity := []*grid.Field[float64]{grid.NewField[float64](ghost)}
			velocity[0].Fill(1.0)

			p := &advection.Problem{
				NDim: 1, H: [grid.MaxDim]float64{dx}, FillBox: fill, GhostWidth: ghostWidth,
				CFL: 0.5, FinalTime: 2 * math.Pi, Velocity: velocity,
				Scheme: scheme, RKOrder: rkOrder,
			}

			out, steps := p.Run(phi, 0, false)
			require.True(t, steps > 0, "scheme=%s rkOrder=%d", scheme, rkOrder)

			var maxErr float64
			fill.Iterate(func(idx [grid.MaxDim]int) {
				x := float64(idx[0]) * dx
				e := math.Abs(out.At(idx) - math.Sin(x))
				if e > maxErr {
					maxErr = e
				}
			})
			require.Less(t, maxErr, 0.5, "scheme=%s rkOrder=%d", scheme, rkOrder)
		}
	}
}
