package stability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/stability"
)

func TestAdvectionDt(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{9})
	velocity := []*grid.Field[float64]{grid.NewField[float64](fill), grid.NewField[float64](fill)}
	velocity[0].Fill(2.0)
	velocity[1].Fill(1.0)

	dt := stability.AdvectionDt(velocity, fill, [grid.MaxDim]float64{0.1, 0.2}, 2, 0.9)
	// denom = 2/0.1 + 1/0.2 = 20 + 5 = 25; dt = 0.9/25
	require.InDelta(t, 0.9/25.0, dt, 1e-12)
}

func TestCurvatureDt(t *testing.T) {
	dt := stability.CurvatureDt(0.5, [grid.MaxDim]float64{0.1, 0.1}, 2, 0.9)
	// denom = 2*0.5*(1/0.01+1/0.01) = 1*(200) = 200; dt = 0.9/200
	require.InDelta(t, 0.9/200.0, dt, 1e-12)
}

func TestConstantNormalVelocityDtZeroIsUnbounded(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{4})
	plus := []*grid.Field[float64]{grid.NewField[float64](fill)}
	minus := []*grid.Field[float64]{grid.NewField[float64](fill)}
	plus[0].Fill(1.0)
	minus[0].Fill(1.0)

	dt := stability.ConstantNormalVelocityDt(0.0, plus, minus, fill, [grid.MaxDim]float64{0.1}, 1, 0.9)
	require.True(t, dt > 1e300)
}
