package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/EMinsight/lsmtoolbox/config"
	"github.com/EMinsight/lsmtoolbox/diagnostics"
	"github.com/EMinsight/lsmtoolbox/grid"
)

// addScenarioFlags registers the flag set every subcommand shares: either
// --scenario names a YAML file, or ndim/n/cfl/finalTime build a default
// circle scenario in loadScenario.
func addScenarioFlags(c *cobra.Command) {
	c.Flags().String("scenario", "", "scenario YAML file (overrides ndim/n/cfl/finalTime)")
	c.Flags().Int("ndim", 2, "grid dimension, 1-3, when no --scenario is given")
	c.Flags().Int("n", 64, "cells per axis when no --scenario is given")
	c.Flags().Float64("cfl", 0.5, "CFL number when no --scenario is given")
	c.Flags().Float64("finalTime", 1.0, "final time when no --scenario is given")
}

// panicErr reports a fatal configuration error the way cmd/1D.go's
// LimitCFL warns to stdout before falling back, except these are
// unrecoverable: there is no sane default grid for a malformed scenario.
func panicErr(err error) {
	panic(err)
}

// loadScenario reads a scenario file named by the --scenario flag, or
// falls back to a small built-in default (a circle centered in the
// square/cube [-1,1]^ndim) when none is given, so every subcommand runs out of the
// box the way cmd/1D.go's Defaults table gives every model a usable
// starting point without a config file.
func loadScenario(cmd cmdFlags) (*config.Scenario, error) {
	path, _ := cmd.GetString("scenario")
	if path != "" {
		s, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		if err := s.Validate(); err != nil {
			return nil, err
		}
		return s, nil
	}
	ndim, _ := cmd.GetInt("ndim")
	n, _ := cmd.GetInt("n")
	cfl, _ := cmd.GetFloat64("cfl")
	finalTime, _ := cmd.GetFloat64("finalTime")

	s := &config.Scenario{
		Title:      "default circle",
		NDim:       ndim,
		GhostWidth: 3,
		Scheme:     "eno2",
		RKOrder:    2,
		CFL:        cfl,
		FinalTime:  finalTime,
	}
	for d := 0; d < ndim; d++ {
		s.N = append(s.N, n)
		s.XLo = append(s.XLo, -1)
		s.XHi = append(s.XHi, 1)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// cmdFlags is the subset of *cobra.Command's flag accessors loadScenario
// needs; factored out so it can be exercised without a full cobra.Command.
type cmdFlags interface {
	GetString(name string) (string, error)
	GetInt(name string) (int, error)
	GetFloat64(name string) (float64, error)
}

// buildGrid turns a validated scenario into the Box/spacing pair every
// model problem's Problem struct takes.
func buildGrid(s *config.Scenario) (fill grid.Box, h [grid.MaxDim]float64) {
	lo := make([]int, s.NDim)
	hi := make([]int, s.NDim)
	for d := 0; d < s.NDim; d++ {
		hi[d] = s.N[d] - 1
	}
	fill = grid.NewBox(lo, hi)
	sp := s.Spacing()
	for d := 0; d < s.NDim; d++ {
		h[d] = sp[d]
	}
	return fill, h
}

// seedCircle fills phi with the signed distance to a circle/sphere
// centered in the domain, radius a quarter of the smallest extent —
// the same "unit circle-ish" initial condition spec.md's worked FMM and
// curvature-flow examples use.
func seedCircle(s *config.Scenario, fill grid.Box) *grid.Field[float64] {
	ghost := fill.GrownBy(s.GhostWidth)
	phi := grid.NewField[float64](ghost)

	center := make([]float64, s.NDim)
	minExtent := math.Inf(1)
	for d := 0; d < s.NDim; d++ {
		center[d] = 0.5 * (s.XLo[d] + s.XHi[d])
		if extent := s.XHi[d] - s.XLo[d]; extent < minExtent {
			minExtent = extent
		}
	}
	radius := 0.25 * minExtent
	sp := s.Spacing()

	fill.Iterate(func(idx [grid.MaxDim]int) {
		var sumSq float64
		for d := 0; d < s.NDim; d++ {
			x := s.XLo[d] + float64(idx[d])*sp[d]
			dx := x - center[d]
			sumSq += dx * dx
		}
		phi.Set(idx, math.Sqrt(sumSq)-radius)
	})
	return phi
}

func printResult(title string, steps int, phi *grid.Field[float64], fill grid.Box) {
	var minV, maxV = math.Inf(1), math.Inf(-1)
	fill.Iterate(func(idx [grid.MaxDim]int) {
		v := phi.At(idx)
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	})
	fmt.Printf("%s: %d steps, phi range [%8.5f, %8.5f]\n", title, steps, minV, maxV)

	var counters diagnostics.RunCounters
	counters.Steps.Add(int64(steps))
	fmt.Printf("%s: steps counter = %d, %s\n", title, counters.Steps.Load(), diagnostics.MemUsage())
}
