package xlsx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

const exportSheet = "Bend Report"

// BuildWorkbook lays out one calculation as label/value rows in the same
// order the PDF report uses.
func BuildWorkbook(in bend.Input, res bend.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	rows := []struct {
		label string
		value interface{}
	}{
		{"Tube Bending Report", nil},
		{"Material", in.MaterialName},
		{"Tube O.D. (mm)", in.OuterDiameterMm},
		{"Wall Thickness (mm)", in.WallThicknessMm},
		{"Bend Angle (deg)", in.BendAngleDeg},
		{"Straight Length (mm)", in.StraightLengthMm},
		{"\"D\" of Bend (CLR/OD)", in.BendMultiplierD},
		{"Calculated Values", nil},
		{"Wall Factor (WF = OD / t)", res.WallFactor},
		{"Center-Line Radius CLR (mm)", res.CenterLineRadiusMm},
		{"Minimum Bend Radius (mm)", res.MinimumBendRadiusMm},
		{"Bend Arc Length (mm)", res.BendArcLengthMm},
		{"Approx. Total Tube Length (mm)", res.TotalLengthMm},
		{"Simplified Outer-Fibre Stress (MPa)", res.OuterFibreStressMPa},
		{"Factor of Safety vs Yield (FoS)", res.FactorOfSafety},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, row.label); err != nil {
			return nil, err
		}
		if row.value == nil {
			continue
		}
		cell, err = excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, row.value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Export runs the calculation and streams the workbook as a download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input bend.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	mat, err := materials.Lookup(input.MaterialName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := bend.Calculate(input, mat)

	f, err := BuildWorkbook(input, res)
	if err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"tube_bending_report.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
}
