package deriv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/deriv"
	"github.com/EMinsight/lsmtoolbox/grid"
)

// A local ENO2 + local central-O(2) evaluation restricted to a band of
// cells must agree bit-for-bit with the global operators at every cell the
// band covers, since both call exactly the same per-point formula.
func TestLocalOperatorsMatchGlobalOnBand(t *testing.T) {
	const n = 30
	dx := 0.07

	fill := grid.NewBox([]int{0}, []int{n - 1})
	ghost := fill.GrownBy(3)

	phi := grid.NewField[float64](ghost)
	ghost.Iterate(func(idx [grid.MaxDim]int) {
		x := float64(idx[0]) * dx
		phi.Set(idx, x*x*x-2*x*x+x)
	})

	// Global reference over the whole fill box.
	gPlus := grid.NewField[float64](ghost)
	gMinus := grid.NewField[float64](ghost)
	gD1 := grid.NewField[float64](ghost)
	gD2 := grid.NewField[float64](ghost)
	deriv.HJEno2_1D(gPlus, gMinus, phi, gD1, gD2, fill, dx)

	gGrad := grid.NewField[float64](ghost)
	deriv.CentralGradient2nd([]*grid.Field[float64]{gGrad}, phi, fill, [grid.MaxDim]float64{dx}, 1)

	// Narrow band covering cells 10..14 (width 5), mask 0 everywhere on the
	// band (<= any markFB), 255 off it.
	mask := grid.NewField[byte](ghost)
	mask.Fill(255)
	var indexX []int
	for i := 10; i <= 14; i++ {
		mask.Set([grid.MaxDim]int{i}, 0)
		indexX = append(indexX, i)
	}
	nb := &grid.NarrowBand{
		IndexX:   indexX,
		NDim:     1,
		NLoIndex: []int{0},
		NHiIndex: []int{len(indexX) - 1},
		Mask:     mask,
	}

	lPlus := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	lMinus := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	lD1 := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	lD2 := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	deriv.LocalHJEno2(lPlus, lMinus, phi, lD1, lD2, nb, 0, 0, [grid.MaxDim]float64{dx}, 1)

	lGrad := []*grid.Field[float64]{grid.NewField[float64](ghost)}
	deriv.LocalCentralGradient2nd(lGrad, phi, nb, 0, 0, [grid.MaxDim]float64{dx}, 1)

	for i := 10; i <= 14; i++ {
		idx := [grid.MaxDim]int{i}
		require.Equal(t, gPlus.At(idx), lPlus[0].At(idx))
		require.Equal(t, gMinus.At(idx), lMinus[0].At(idx))
		require.Equal(t, gGrad.At(idx), lGrad[0].At(idx))
	}
}
