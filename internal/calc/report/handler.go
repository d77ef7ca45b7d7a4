package report

import (
	"encoding/json"
	"net/http"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

type Handler struct{}

// Generate runs the calculation and streams the PDF as a download.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
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

	data, err := Build(input, res)
	if err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"tube_bending_report.pdf\"")
	w.Write(data)
}
