package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/EMinsight/lsmtoolbox/grid"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("scenario", "", "")
	fs.Int("ndim", 2, "")
	fs.Int("n", 16, "")
	fs.Float64("cfl", 0.5, "")
	fs.Float64("finalTime", 1.0, "")
	return fs
}

func TestLoadScenarioDefaultCircle(t *testing.T) {
	s, err := loadScenario(testFlags())
	require.NoError(t, err)
	require.Equal(t, 2, s.NDim)
	require.Equal(t, []int{16, 16}, s.N)
	require.NoError(t, s.Validate())
}

func TestBuildGridMatchesScenario(t *testing.T) {
	s, err := loadScenario(testFlags())
	require.NoError(t, err)
	fill, h := buildGrid(s)
	require.Equal(t, 15, fill.Hi[0])
	require.InDelta(t, 2.0/16, h[0], 1e-12)
}

func TestSeedCircleZeroCrossingNearRadius(t *testing.T) {
	s, err := loadScenario(testFlags())
	require.NoError(t, err)
	fill, _ := buildGrid(s)
	phi := seedCircle(s, fill)

	center := [grid.MaxDim]int{8, 8}
	require.Less(t, phi.At(center), 0.0)

	corner := [grid.MaxDim]int{0, 0}
	require.Greater(t, phi.At(corner), 0.0)
}
