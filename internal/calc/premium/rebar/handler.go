package rebar

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var input SuggestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Suggest(input)
	if res == nil {
		http.Error(w, "Geometry is infeasible: cover leaves no effective depth", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Arrange(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AstRequiredMM2 float64 `json:"ast_required_mm2"`
		BMM            float64 `json:"b_mm"`
		CoverMM        float64 `json:"cover_mm"`
		StirrupDiaMM   float64 `json:"stirrup_dia_mm"`
		MaxLayers      int     `json:"max_layers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.MaxLayers == 0 {
		input.MaxLayers = 2
	}
	arr, err := SelectBarArrangement(input.AstRequiredMM2, input.BMM, input.CoverMM, input.StirrupDiaMM, input.MaxLayers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(arr)
}
