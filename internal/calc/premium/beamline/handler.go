package beamline

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Optimizer *Optimizer
}

func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	opt := h.Optimizer
	if opt == nil {
		opt = NewOptimizer(nil)
	}
	res := opt.Optimize(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
