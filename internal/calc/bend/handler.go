package bend

import (
	"encoding/json"
	"net/http"

	"TubeBend/internal/materials"
)

type Handler struct{}

// Calc resolves the material, validates the input ranges and runs the
// engine. Unknown materials are rejected before any computation happens.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
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
	res := Calculate(input, mat)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input RecommendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	mat, err := materials.Lookup(input.MaterialName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	probe := Input{
		MaterialName:     input.MaterialName,
		OuterDiameterMm:  input.OuterDiameterMm,
		WallThicknessMm:  input.WallThicknessMm,
		BendAngleDeg:     input.BendAngleDeg,
		StraightLengthMm: input.StraightLengthMm,
		BendMultiplierD:  StandardDies[0],
	}
	if err := probe.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec, err := RecommendDie(input, mat)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// Materials lists the recognized material names with their constants.
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name string `json:"name"`
		materials.Properties
	}
	all := materials.All()
	out := make([]entry, 0, len(all))
	for _, name := range materials.Names() {
		out = append(out, entry{Name: name, Properties: all[name]})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
