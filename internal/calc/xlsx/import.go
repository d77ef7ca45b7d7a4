// Package xlsx moves bend calculations in and out of Excel workbooks:
// bulk import of input rows and export of a single calculation in the
// report's field order.
package xlsx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

type Handler struct{}

type BendImportResult struct {
	Count   int           `json:"count"`
	Results []bend.Result `json:"results"`
}

// Import reads an uploaded workbook, one calculation per data row. Rows
// that fail to parse or validate are skipped rather than failing the
// whole upload, mirroring how shop spreadsheets mix notes with data.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []bend.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseBendRow(rows[i])
		if err != nil {
			continue
		}
		mat, err := materials.Lookup(input.MaterialName)
		if err != nil {
			continue
		}
		if err := input.Validate(); err != nil {
			continue
		}
		results = append(results, bend.Calculate(input, mat))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(BendImportResult{Count: len(results), Results: results})
}

// parseBendRow expects: material, od_mm, wall_mm, angle_deg, straight_mm, d_of_bend
func parseBendRow(row []string) (bend.Input, error) {
	if len(row) < 6 {
		return bend.Input{}, fmt.Errorf("bad row")
	}
	fields := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := toFloat(row[i+1])
		if err != nil {
			return bend.Input{}, err
		}
		fields[i] = v
	}
	return bend.Input{
		MaterialName:     row[0],
		OuterDiameterMm:  fields[0],
		WallThicknessMm:  fields[1],
		BendAngleDeg:     fields[2],
		StraightLengthMm: fields[3],
		BendMultiplierD:  fields[4],
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
