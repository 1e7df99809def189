// Package config parses the YAML scenario files the command-line tools
// consume: grid geometry, physics terms to activate, integration settings,
// and Fast Marching Method options. The parsing style (Parse([]byte) error
// plus a diagnostic Print()) mirrors InputParameters.InputParameters2D from
// the original DG solver this toolbox grew out of.
package config

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
)

// Scenario is the top-level document every `lsmtoolbox` subcommand reads.
type Scenario struct {
	Title string `yaml:"Title"`

	NDim  int       `yaml:"NDim"`
	N     []int     `yaml:"N"`     // cell counts per axis
	XLo   []float64 `yaml:"XLo"`
	XHi   []float64 `yaml:"XHi"`

	GhostWidth int    `yaml:"GhostWidth"`
	Scheme     string `yaml:"Scheme"` // "eno1", "eno2", "eno3", "weno5"
	RKOrder    int    `yaml:"RKOrder"`

	CFL       float64 `yaml:"CFL"`
	FinalTime float64 `yaml:"FinalTime"`
	MaxSteps  int     `yaml:"MaxSteps"`

	Physics Physics `yaml:"Physics"`

	FMM FMMOptions `yaml:"FMM"`

	PlotEvery int    `yaml:"PlotEvery"`
	PlotTitle string `yaml:"PlotTitle"`
}

// Physics selects which of the level-set right-hand-side terms are active
// and their parameters.
type Physics struct {
	Advection              bool      `yaml:"Advection"`
	AdvectionVelocity      []float64 `yaml:"AdvectionVelocity"`
	NormalVelocity         bool      `yaml:"NormalVelocity"`
	ConstantNormalVelocity *float64  `yaml:"ConstantNormalVelocity"`
	Curvature              bool      `yaml:"Curvature"`
	CurvatureB             float64   `yaml:"CurvatureB"`
}

// FMMOptions controls the Fast Marching re-initialization/extension pass.
type FMMOptions struct {
	Enabled bool `yaml:"Enabled"`
	Order   int  `yaml:"Order"`
}

// Parse unmarshals a scenario document.
func (s *Scenario) Parse(data []byte) error {
	return yaml.Unmarshal(data, s)
}

// Load reads and parses a scenario file, expanding a leading "~" in path
// via the user's home directory.
func Load(path string) (*Scenario, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("config: expanding %q: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", expanded, err)
	}
	var s Scenario
	if err := s.Parse(data); err != nil {
		return nil, fmt.Errorf("config: parsing %q: %w", expanded, err)
	}
	return &s, nil
}

// Print writes a human-readable summary of the scenario to stdout, in the
// same "[value]\t\t= Field" register as InputParameters2D.Print.
func (s *Scenario) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", s.Title)
	fmt.Printf("[%d]\t\t\t= NDim\n", s.NDim)
	fmt.Printf("%v\t\t= N\n", s.N)
	fmt.Printf("[%s]\t\t= Scheme\n", s.Scheme)
	fmt.Printf("[%d]\t\t\t= RKOrder\n", s.RKOrder)
	fmt.Printf("%8.5f\t\t= CFL\n", s.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", s.FinalTime)
	if s.Physics.Advection {
		fmt.Printf("%v\t\t= AdvectionVelocity\n", s.Physics.AdvectionVelocity)
	}
	if s.Physics.Curvature {
		fmt.Printf("%8.5f\t\t= CurvatureB\n", s.Physics.CurvatureB)
	}
}

// Validate checks the invariants the grid/deriv packages assume before a
// scenario is handed to a model problem: NDim in [1,3] and matching-length
// geometry arrays, strictly positive cell counts.
func (s *Scenario) Validate() error {
	if s.NDim < 1 || s.NDim > 3 {
		return fmt.Errorf("config: NDim=%d out of range [1,3]", s.NDim)
	}
	if len(s.N) != s.NDim || len(s.XLo) != s.NDim || len(s.XHi) != s.NDim {
		return fmt.Errorf("config: N/XLo/XHi must each have length NDim=%d", s.NDim)
	}
	for d := 0; d < s.NDim; d++ {
		if s.N[d] <= 0 {
			return fmt.Errorf("config: N[%d]=%d must be positive", d, s.N[d])
		}
		if s.XHi[d] <= s.XLo[d] {
			return fmt.Errorf("config: XHi[%d]=%v must exceed XLo[%d]=%v", d, s.XHi[d], d, s.XLo[d])
		}
	}
	if s.GhostWidth <= 0 {
		return fmt.Errorf("config: GhostWidth=%d must be positive", s.GhostWidth)
	}
	switch s.Scheme {
	case "", "eno1", "eno2", "eno3", "weno5":
	default:
		return fmt.Errorf("config: Scheme=%q must be one of eno1, eno2, eno3, weno5", s.Scheme)
	}
	if s.RKOrder != 0 && (s.RKOrder < 1 || s.RKOrder > 3) {
		return fmt.Errorf("config: RKOrder=%d must be 1, 2 or 3", s.RKOrder)
	}
	return nil
}

// Spacing returns the per-axis grid spacing implied by N/XLo/XHi.
func (s *Scenario) Spacing() [3]float64 {
	var h [3]float64
	for d := 0; d < s.NDim; d++ {
		h[d] = (s.XHi[d] - s.XLo[d]) / float64(s.N[d])
	}
	return h
}
