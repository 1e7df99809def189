package cmd

import (
	"github.com/spf13/cobra"

	"github.com/EMinsight/lsmtoolbox/model_problems/curvature"
)

var curvatureCmd = &cobra.Command{
	Use:   "curvature",
	Short: "Shrink a level-set field under mean-curvature flow",
	Long: `
Evolves a signed-distance circle/sphere under phi_t = -b*kappa*|grad phi|,
integrated with TVD Runge-Kutta and second-order central differences.

lsmtoolbox curvature --scenario scenario.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadScenario(cmd.Flags())
		if err != nil {
			panicErr(err)
		}
		fill, h := buildGrid(s)
		phi := seedCircle(s, fill)

		b := s.Physics.CurvatureB
		if b == 0 {
			b, _ = cmd.Flags().GetFloat64("b")
		}

		p := &curvature.Problem{
			NDim: s.NDim, H: h, FillBox: fill, GhostWidth: s.GhostWidth,
			CFL: s.CFL, FinalTime: s.FinalTime, B: b, RKOrder: s.RKOrder,
		}
		out, steps := p.Run(phi)
		printResult("curvature", steps, out, fill)
	},
}

func init() {
	rootCmd.AddCommand(curvatureCmd)
	addScenarioFlags(curvatureCmd)
	curvatureCmd.Flags().Float64("b", 1.0, "curvature-flow rate coefficient when not set via scenario")
}
