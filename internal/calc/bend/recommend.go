package bend

import (
	"fmt"

	"TubeBend/internal/materials"
)

type RecommendInput struct {
	MaterialName     string  `json:"material"`
	OuterDiameterMm  float64 `json:"od_mm"`
	WallThicknessMm  float64 `json:"wall_mm"`
	BendAngleDeg     float64 `json:"angle_deg"`
	StraightLengthMm float64 `json:"straight_mm"`
	TargetFoS        float64 `json:"target_fos"`
}

type RecommendResult struct {
	BendMultiplierD float64 `json:"d_of_bend"`
	Result          Result  `json:"result"`
	Notes           string  `json:"notes"`
}

// RecommendDie sweeps the standard die set from tightest to gentlest and
// returns the smallest "D" whose factor of safety clears the target. A
// tighter bend is cheaper to route, so the first passing die wins.
func RecommendDie(in RecommendInput, mat materials.Properties) (RecommendResult, error) {
	if in.TargetFoS <= 0 {
		in.TargetFoS = 1.5
	}
	base := Input{
		MaterialName:     in.MaterialName,
		OuterDiameterMm:  in.OuterDiameterMm,
		WallThicknessMm:  in.WallThicknessMm,
		BendAngleDeg:     in.BendAngleDeg,
		StraightLengthMm: in.StraightLengthMm,
	}
	for _, d := range StandardDies {
		base.BendMultiplierD = d
		res := Calculate(base, mat)
		if res.FactorOfSafety >= in.TargetFoS {
			return RecommendResult{
				BendMultiplierD: d,
				Result:          res,
				Notes:           fmt.Sprintf("Tightest standard die meeting FoS >= %.2f.", in.TargetFoS),
			}, nil
		}
	}
	return RecommendResult{}, fmt.Errorf("no standard die reaches FoS %.2f for this geometry", in.TargetFoS)
}
