// Package bend computes single-bend tube geometry and a simplified
// outer-fibre stress check from the relationships used in bending manuals:
// Wall Factor, "D" of bend, center-line radius, arc length and total length.
package bend

import (
	"fmt"
	"math"

	"TubeBend/internal/materials"
)

// epsilonMm floors wall thickness and CLR before they are used as
// divisors, keeping Calculate total without raising on degenerate input.
const epsilonMm = 1e-6

// StandardDies are the "D" of bend values of a typical die set. The engine
// accepts any positive multiplier; this set drives Recommend and UI hints.
var StandardDies = []float64{2.0, 2.5, 3.0, 4.0, 5.0}

type Input struct {
	MaterialName     string  `json:"material"`
	OuterDiameterMm  float64 `json:"od_mm"`
	WallThicknessMm  float64 `json:"wall_mm"`
	BendAngleDeg     float64 `json:"angle_deg"`
	StraightLengthMm float64 `json:"straight_mm"`
	BendMultiplierD  float64 `json:"d_of_bend"`
}

type Result struct {
	WallFactor          float64 `json:"wall_factor"`
	CenterLineRadiusMm  float64 `json:"clr_mm"`
	MinimumBendRadiusMm float64 `json:"min_bend_radius_mm"`
	BendArcLengthMm     float64 `json:"arc_length_mm"`
	TotalLengthMm       float64 `json:"total_length_mm"`
	OuterFibreStressMPa float64 `json:"stress_mpa"`
	FactorOfSafety      float64 `json:"fos"`
}

// Validate enforces the input ranges the engine itself does not check.
// Calculate stays total over all float inputs; collection surfaces (HTTP
// handlers, CLI) call Validate before invoking it.
func (in Input) Validate() error {
	if in.OuterDiameterMm <= 0 {
		return fmt.Errorf("outer diameter must be positive, got %g", in.OuterDiameterMm)
	}
	if in.WallThicknessMm <= 0 {
		return fmt.Errorf("wall thickness must be positive, got %g", in.WallThicknessMm)
	}
	if in.BendAngleDeg <= 0 || in.BendAngleDeg > 360 {
		return fmt.Errorf("bend angle must be in (0, 360], got %g", in.BendAngleDeg)
	}
	if in.StraightLengthMm < 0 {
		return fmt.Errorf("straight length must not be negative, got %g", in.StraightLengthMm)
	}
	if in.BendMultiplierD <= 0 {
		return fmt.Errorf("\"D\" of bend must be positive, got %g", in.BendMultiplierD)
	}
	return nil
}

// Calculate derives all bend quantities from the input geometry and the
// resolved material constants. Pure and deterministic: identical inputs
// produce bit-identical results.
//
// The stress figure is a teaching-level estimate: outer-fibre strain is
// taken as (t/2)/CLR and scaled by E with an ad-hoc /1000 factor. It
// ignores ovalisation, local buckling and mandrel support, and is kept
// as-is for output compatibility with the governing formula sheet.
func Calculate(in Input, mat materials.Properties) Result {
	wallEff := math.Max(in.WallThicknessMm, epsilonMm)
	wf := in.OuterDiameterMm / wallEff
	clr := in.BendMultiplierD * in.OuterDiameterMm
	// WF x OD is a common shop heuristic for minimum bend radius, not a
	// physical law.
	mbr := wf * in.OuterDiameterMm

	theta := in.BendAngleDeg * math.Pi / 180.0
	arc := clr * theta
	total := in.StraightLengthMm + arc

	strain := (in.WallThicknessMm / 2.0) / math.Max(clr, epsilonMm)
	stress := mat.ElasticModulusMPa * strain / 1000.0
	fos := math.Inf(1)
	if stress > 0 {
		fos = mat.YieldStrengthMPa / stress
	}

	return Result{
		WallFactor:          wf,
		CenterLineRadiusMm:  clr,
		MinimumBendRadiusMm: mbr,
		BendArcLengthMm:     arc,
		TotalLengthMm:       total,
		OuterFibreStressMPa: stress,
		FactorOfSafety:      fos,
	}
}
