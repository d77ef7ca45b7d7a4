package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

var (
	calcMaterial string
	calcOD       float64
	calcWall     float64
	calcAngle    float64
	calcStraight float64
	calcD        float64
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute bend geometry and the simplified stress check",
	Long: `Compute Wall Factor, CLR, minimum bend radius, arc length, total
length, outer-fibre stress and factor of safety for a single bend.

Examples:
  # 10mm OD copper tube, 90 degree bend on a 3D die
  bendcli calc --material Copper --od 10 --wall 1 --angle 90 --straight 500 --d 3.0`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().StringVarP(&calcMaterial, "material", "m", "", "Tube material name [required]")
	calcCmd.Flags().Float64Var(&calcOD, "od", 0, "Tube outer diameter (mm) [required]")
	calcCmd.Flags().Float64VarP(&calcWall, "wall", "w", 0, "Wall thickness (mm) [required]")
	calcCmd.Flags().Float64VarP(&calcAngle, "angle", "a", 90, "Bend angle (degrees)")
	calcCmd.Flags().Float64VarP(&calcStraight, "straight", "s", 0, "Straight length before the bend (mm)")
	calcCmd.Flags().Float64VarP(&calcD, "d", "d", 3.0, `"D" of bend (CLR / OD), typical dies: 2, 2.5, 3, 4, 5`)

	calcCmd.MarkFlagRequired("material")
	calcCmd.MarkFlagRequired("od")
	calcCmd.MarkFlagRequired("wall")
}

func collectInput() (bend.Input, materials.Properties, error) {
	input := bend.Input{
		MaterialName:     calcMaterial,
		OuterDiameterMm:  calcOD,
		WallThicknessMm:  calcWall,
		BendAngleDeg:     calcAngle,
		StraightLengthMm: calcStraight,
		BendMultiplierD:  calcD,
	}
	mat, err := materials.Lookup(input.MaterialName)
	if err != nil {
		return bend.Input{}, materials.Properties{}, err
	}
	if err := input.Validate(); err != nil {
		return bend.Input{}, materials.Properties{}, err
	}
	return input, mat, nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	input, mat, err := collectInput()
	if err != nil {
		return err
	}
	res := bend.Calculate(input, mat)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Wall Factor (WF = OD / t)\t%.2f\n", res.WallFactor)
	fmt.Fprintf(w, "Center-Line Radius CLR\t%.2f mm\n", res.CenterLineRadiusMm)
	fmt.Fprintf(w, "Minimum Bend Radius (WF x OD)\t%.2f mm\n", res.MinimumBendRadiusMm)
	fmt.Fprintf(w, "Bend Arc Length\t%.2f mm\n", res.BendArcLengthMm)
	fmt.Fprintf(w, "Approx. Total Tube Length\t%.2f mm\n", res.TotalLengthMm)
	fmt.Fprintf(w, "Simplified Outer-Fibre Stress\t%.2f MPa\n", res.OuterFibreStressMPa)
	fmt.Fprintf(w, "Factor of Safety vs Yield\t%.2f\n", res.FactorOfSafety)
	return w.Flush()
}
