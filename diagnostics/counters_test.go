package diagnostics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/diagnostics"
	"github.com/EMinsight/lsmtoolbox/grid"
)

func TestIsNonFinite(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{4})
	f := grid.NewField[float64](fill)
	f.Fill(1.0)
	require.False(t, diagnostics.IsNonFinite(f, fill))

	f.Set([grid.MaxDim]int{2}, math.NaN())
	require.True(t, diagnostics.IsNonFinite(f, fill))
}

func TestPanicIfNonFinitePanicsOnInf(t *testing.T) {
	fill := grid.NewBox([]int{0}, []int{2})
	f := grid.NewField[float64](fill)
	f.Set([grid.MaxDim]int{1}, math.Inf(1))

	require.Panics(t, func() {
		diagnostics.PanicIfNonFinite("phi", f, fill)
	})
}
