// Package advection runs a level-set advection scenario: a signed-distance
// field carried by a (possibly spatially varying) velocity field under
// TVD Runge-Kutta time integration, following the time-stepping and
// optional live-plotting structure of Advection1D.AdvectionDFR adapted from
// DG elements to the ghost-box level-set data model.
package advection

import (
	"fmt"
	"sync"

	"github.com/notargets/avs/chart2d"
	avsutil "github.com/notargets/avs/utils"

	"github.com/EMinsight/lsmtoolbox/boundary"
	"github.com/EMinsight/lsmtoolbox/deriv"
	"github.com/EMinsight/lsmtoolbox/diagnostics"
	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/lse"
	"github.com/EMinsight/lsmtoolbox/rk"
	"github.com/EMinsight/lsmtoolbox/stability"
)

// Problem holds the grid, scheme choice, and plotting state for a 1-D or
// 2-D advection run. Only the 1-D case plots; higher dimensions run
// headless.
type Problem struct {
	NDim       int
	H          [grid.MaxDim]float64
	FillBox    grid.Box
	GhostWidth int
	CFL        float64
	FinalTime  float64

	// Scheme selects the upwind gradient reconstruction: "eno1", "eno2",
	// "eno3" or "weno5". Empty defaults to "eno2".
	Scheme string
	// RKOrder selects the TVD Runge-Kutta time integrator: 1, 2 or 3. Zero
	// defaults to 2.
	RKOrder int

	Velocity []*grid.Field[float64]

	plotOnce sync.Once
	chart    *chart2d.Chart2D
	colorMap *avsutil.ColorMap
}

func (p *Problem) scheme() string {
	if p.Scheme == "" {
		return "eno2"
	}
	return p.Scheme
}

func (p *Problem) rkOrder() int {
	if p.RKOrder == 0 {
		return 2
	}
	return p.RKOrder
}

// reconstructGradients fills plus/minus with the upwind derivatives of phi
// under p.Scheme, using d1/d2/d3 as scratch for whichever undivided
// differences that reconstruction needs.
func (p *Problem) reconstructGradients(phi *grid.Field[float64], plus, minus, d1, d2, d3 []*grid.Field[float64]) {
	switch p.scheme() {
	case "eno1":
		deriv.HJEno1(plus, minus, phi, d1, p.FillBox, p.H, p.NDim)
	case "eno3":
		deriv.HJEno3(plus, minus, phi, d1, d2, d3, p.FillBox, p.H, p.NDim)
	case "weno5":
		deriv.HJWeno5(plus, minus, phi, p.FillBox, p.H, p.NDim)
	default:
		deriv.HJEno2(plus, minus, phi, d1, d2, p.FillBox, p.H, p.NDim)
	}
}

// Run integrates phi forward to FinalTime with the configured TVD
// Runge-Kutta order and upwind gradient reconstruction, plotting every
// plotEvery steps when NDim==1 and showGraph is set.
func (p *Problem) Run(phi *grid.Field[float64], plotEvery int, showGraph bool) (*grid.Field[float64], int) {
	ghost := phi.GhostBox
	interior := p.FillBox

	plus := make([]*grid.Field[float64], p.NDim)
	minus := make([]*grid.Field[float64], p.NDim)
	d1 := make([]*grid.Field[float64], p.NDim)
	d2 := make([]*grid.Field[float64], p.NDim)
	d3 := make([]*grid.Field[float64], p.NDim)
	for a := 0; a < p.NDim; a++ {
		plus[a] = grid.NewField[float64](ghost)
		minus[a] = grid.NewField[float64](ghost)
		d1[a] = grid.NewField[float64](ghost)
		d2[a] = grid.NewField[float64](ghost)
		d3[a] = grid.NewField[float64](ghost)
	}

	rhs := grid.NewField[float64](ghost)
	u1 := phi.Clone()
	rhsAtU1 := grid.NewField[float64](ghost)
	rkOrder := p.rkOrder()
	var u2, rhsAtU2 *grid.Field[float64]
	if rkOrder == 3 {
		u2 = grid.NewField[float64](ghost)
		rhsAtU2 = grid.NewField[float64](ghost)
	}

	step := 0
	var t float64
	for t < p.FinalTime {
		p.applyBoundaries(phi)
		p.reconstructGradients(phi, plus, minus, d1, d2, d3)

		dt := stability.AdvectionDt(p.Velocity, interior, p.H, p.NDim, p.CFL)
		if t+dt > p.FinalTime {
			dt = p.FinalTime - t
		}

		lse.ZeroRHS(rhs, interior)
		lse.AddAdvection(rhs, p.Velocity, plus, minus, interior, p.NDim)

		switch rkOrder {
		case 1:
			rk.Step1(phi, phi, rhs, interior, dt)
		case 3:
			rk.TVD3Stage1(u1, phi, rhs, interior, dt)

			p.applyBoundaries(u1)
			p.reconstructGradients(u1, plus, minus, d1, d2, d3)
			lse.ZeroRHS(rhsAtU1, interior)
			lse.AddAdvection(rhsAtU1, p.Velocity, plus, minus, interior, p.NDim)
			rk.TVD3Stage2(u2, phi, u1, rhsAtU1, interior, dt)

			p.applyBoundaries(u2)
			p.reconstructGradients(u2, plus, minus, d1, d2, d3)
			lse.ZeroRHS(rhsAtU2, interior)
			lse.AddAdvection(rhsAtU2, p.Velocity, plus, minus, interior, p.NDim)
			rk.TVD3Stage3(phi, phi, u2, rhsAtU2, interior, dt)
		default: // 2
			rk.TVD2Stage1(u1, phi, rhs, interior, dt)

			p.applyBoundaries(u1)
			p.reconstructGradients(u1, plus, minus, d1, d2, d3)
			lse.ZeroRHS(rhsAtU1, interior)
			lse.AddAdvection(rhsAtU1, p.Velocity, plus, minus, interior, p.NDim)
			rk.TVD2Stage2(phi, phi, u1, rhsAtU1, interior, dt)
		}
		diagnostics.PanicIfNonFinite("phi", phi, interior)

		t += dt
		step++
		if plotEvery > 0 && step%plotEvery == 0 {
			p.plot(showGraph, phi)
		}
	}
	return phi, step
}

// applyBoundaries fills GhostWidth layers of ghost cells on every face of
// every axis with periodic copies from the opposite side of the fill box.
func (p *Problem) applyBoundaries(phi *grid.Field[float64]) {
	for a := 0; a < p.NDim; a++ {
		lo := boundary.Face(2 * a)
		hi := boundary.Face(2*a + 1)
		boundary.Periodic(phi, lo, p.FillBox, p.GhostWidth)
		boundary.Periodic(phi, hi, p.FillBox, p.GhostWidth)
	}
}

func (p *Problem) plot(showGraph bool, phi *grid.Field[float64]) {
	if !showGraph || p.NDim != 1 {
		return
	}
	p.plotOnce.Do(func() {
		lo := float32(0)
		hi := float32(p.FillBox.Size())
		p.chart = chart2d.NewChart2D(1280, 1024, lo, hi, -2, 2)
		p.colorMap = avsutil.NewColorMap(-1, 1, 1)
		go p.chart.Plot()
	})
	xs := make([]float64, p.FillBox.Size())
	ys := make([]float64, p.FillBox.Size())
	i := 0
	p.FillBox.Iterate(func(idx [grid.MaxDim]int) {
		xs[i] = float64(idx[0])
		ys[i] = phi.At(idx)
		i++
	})
	if err := p.chart.AddSeries("phi", xs, ys, chart2d.NoGlyph, chart2d.Solid, p.colorMap.GetRGB(0)); err != nil {
		fmt.Printf("advection: plot series failed: %v\n", err)
	}
}
