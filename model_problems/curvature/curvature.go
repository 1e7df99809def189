// Package curvature runs the canonical mean-curvature-flow scenario: a
// circle (2-D) or sphere (3-D) signed-distance field shrinking under
// phi_t = -b*kappa*|grad(phi)|, following the same run-loop shape as
// Advection1D.AdvectionDFR.Run.
package curvature

import (
	"github.com/EMinsight/lsmtoolbox/boundary"
	"github.com/EMinsight/lsmtoolbox/deriv"
	"github.com/EMinsight/lsmtoolbox/diagnostics"
	"github.com/EMinsight/lsmtoolbox/grid"
	"github.com/EMinsight/lsmtoolbox/lse"
	"github.com/EMinsight/lsmtoolbox/rk"
	"github.com/EMinsight/lsmtoolbox/stability"
)

// Problem holds the grid and curvature-flow coefficient for a run.
type Problem struct {
	NDim       int
	H          [grid.MaxDim]float64
	FillBox    grid.Box
	GhostWidth int
	CFL        float64
	FinalTime  float64
	B          float64 // curvature-flow rate coefficient

	// RKOrder selects the TVD Runge-Kutta time integrator: 1, 2 or 3. Zero
	// defaults to 2.
	RKOrder int
}

func (p *Problem) rkOrder() int {
	if p.RKOrder == 0 {
		return 2
	}
	return p.RKOrder
}

// Run integrates phi forward to FinalTime under the configured TVD
// Runge-Kutta order, with second-order central gradients/Hessian for
// curvature, returning the evolved field and step count.
func (p *Problem) Run(phi *grid.Field[float64]) (*grid.Field[float64], int) {
	ghost := phi.GhostBox
	interior := p.FillBox

	grad := make([]*grid.Field[float64], p.NDim)
	for a := 0; a < p.NDim; a++ {
		grad[a] = grid.NewField[float64](ghost)
	}
	hess := make([][]*grid.Field[float64], p.NDim)
	for a := 0; a < p.NDim; a++ {
		hess[a] = make([]*grid.Field[float64], p.NDim)
		for b := a; b < p.NDim; b++ {
			hess[a][b] = grid.NewField[float64](ghost)
		}
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
		p.computeGradAndHessian(phi, grad, hess)

		dt := stability.CurvatureDt(p.B, p.H, p.NDim, p.CFL)
		if t+dt > p.FinalTime {
			dt = p.FinalTime - t
		}

		lse.ZeroRHS(rhs, interior)
		lse.AddCurvature(rhs, p.B, grad, hess, interior, p.NDim)

		switch rkOrder {
		case 1:
			rk.Step1(phi, phi, rhs, interior, dt)
		case 3:
			rk.TVD3Stage1(u1, phi, rhs, interior, dt)

			p.applyBoundaries(u1)
			p.computeGradAndHessian(u1, grad, hess)
			lse.ZeroRHS(rhsAtU1, interior)
			lse.AddCurvature(rhsAtU1, p.B, grad, hess, interior, p.NDim)
			rk.TVD3Stage2(u2, phi, u1, rhsAtU1, interior, dt)

			p.applyBoundaries(u2)
			p.computeGradAndHessian(u2, grad, hess)
			lse.ZeroRHS(rhsAtU2, interior)
			lse.AddCurvature(rhsAtU2, p.B, grad, hess, interior, p.NDim)
			rk.TVD3Stage3(phi, phi, u2, rhsAtU2, interior, dt)
		default: // 2
			rk.TVD2Stage1(u1, phi, rhs, interior, dt)

			p.applyBoundaries(u1)
			p.computeGradAndHessian(u1, grad, hess)
			lse.ZeroRHS(rhsAtU1, interior)
			lse.AddCurvature(rhsAtU1, p.B, grad, hess, interior, p.NDim)
			rk.TVD2Stage2(phi, phi, u1, rhsAtU1, interior, dt)
		}
		diagnostics.PanicIfNonFinite("phi", phi, interior)

		t += dt
		step++
	}
	return phi, step
}

// computeGradAndHessian fills grad[a]=phi_a and hess[a][b]=phi_ab (a<=b) by
// second-order central differences.
func (p *Problem) computeGradAndHessian(phi *grid.Field[float64], grad []*grid.Field[float64], hess [][]*grid.Field[float64]) {
	deriv.CentralGradient2nd(grad, phi, p.FillBox, p.H, p.NDim)
	for a := 0; a < p.NDim; a++ {
		p.FillBox.Iterate(func(idx [grid.MaxDim]int) {
			idxP := idx
			idxM := idx
			idxP[a]++
			idxM[a]--
			hess[a][a].Set(idx, (phi.At(idxP)-2*phi.At(idx)+phi.At(idxM))/(p.H[a]*p.H[a]))
		})
		for b := a + 1; b < p.NDim; b++ {
			p.FillBox.Iterate(func(idx [grid.MaxDim]int) {
				pp, pm, mp, mm := idx, idx, idx, idx
				pp[a]++
				pp[b]++
				pm[a]++
				pm[b]--
				mp[a]--
				mp[b]++
				mm[a]--
				mm[b]--
				mixed := (phi.At(pp) - phi.At(pm) - phi.At(mp) + phi.At(mm)) / (4 * p.H[a] * p.H[b])
				hess[a][b].Set(idx, mixed)
			})
		}
	}
}

func (p *Problem) applyBoundaries(phi *grid.Field[float64]) {
	for a := 0; a < p.NDim; a++ {
		lo := boundary.Face(2 * a)
		hi := boundary.Face(2*a + 1)
		boundary.QuadraticExtrapolation(phi, lo, p.FillBox, p.GhostWidth)
		boundary.QuadraticExtrapolation(phi, hi, p.FillBox, p.GhostWidth)
	}
}
